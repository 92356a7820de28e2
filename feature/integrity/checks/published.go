package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"moodbank/core/build"
	"moodbank/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckPublished returns the manifest entries that are missing from bucket
// under prefix. The manifest file itself is expected too.
func CheckPublished(ctx context.Context, client storage.Client, bucket, prefix string, m *build.Manifest) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	prefix = strings.Trim(prefix, "/")
	listPrefix := ""
	if prefix != "" {
		listPrefix = prefix + "/"
	}

	found := make(map[string]struct{})
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		found[obj.Key] = struct{}{}
	}

	expected := make([]string, 0, len(m.Files)+1)
	for _, f := range m.Files {
		expected = append(expected, f.Path)
	}
	expected = append(expected, build.ManifestName)

	missing := []string{}
	for _, rel := range expected {
		key := rel
		if prefix != "" {
			key = path.Join(prefix, rel)
		}
		if _, ok := found[key]; !ok {
			missing = append(missing, rel)
		}
	}
	return missing, nil
}
