package build

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"moodbank/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PublishReport summarizes an upload.
type PublishReport struct {
	Bucket   string   `json:"bucket"`
	Uploaded []string `json:"uploaded"`
	Removed  []string `json:"removed"`
}

// Publish uploads the manifest's files and the manifest itself to bucket
// under prefix, creating the bucket if needed. Objects under prefix that the
// manifest no longer lists are removed.
func (b *Builder) Publish(ctx context.Context, client storage.Client, bucket, prefix string, m *Manifest) (*PublishReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		b.logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	prefix = strings.Trim(prefix, "/")
	report := &PublishReport{Bucket: bucket, Uploaded: []string{}, Removed: []string{}}
	keep := make(map[string]struct{}, len(m.Files)+1)

	files := make([]string, 0, len(m.Files)+1)
	for _, f := range m.Files {
		files = append(files, f.Path)
	}
	files = append(files, ManifestName)

	for _, rel := range files {
		object := objectName(prefix, rel)
		if err := b.upload(ctx, client, bucket, object, rel); err != nil {
			b.logger.Error("Failed to upload artifact", zap.String("object", object), zap.Error(err))
			return report, err
		}
		keep[object] = struct{}{}
		report.Uploaded = append(report.Uploaded, object)
	}

	listPrefix := ""
	if prefix != "" {
		listPrefix = prefix + "/"
	}
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return report, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if _, ok := keep[obj.Key]; ok {
			continue
		}
		if err := client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return report, fmt.Errorf("failed to remove stale object %s: %w", obj.Key, err)
		}
		report.Removed = append(report.Removed, obj.Key)
	}

	b.logger.Info("Published build",
		zap.String("bucket", bucket),
		zap.String("prefix", prefix),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("removed", len(report.Removed)),
	)
	return report, nil
}

func (b *Builder) upload(ctx context.Context, client storage.Client, bucket, object, rel string) error {
	f, err := os.Open(filepath.Join(b.outDir, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(path.Ext(rel))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, bucket, object, f, info.Size(), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("upload %s: %w", object, err)
	}
	return nil
}

func objectName(prefix, rel string) string {
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}
