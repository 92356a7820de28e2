package build

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ManifestName is the file written at the top of the output directory.
const ManifestName = "moodbank-manifest.json"

// Entry describes one emitted artifact.
type Entry struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Manifest lists everything a build emitted.
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	Files       []Entry   `json:"files"`
}

// TotalSize returns the summed size of all entries.
func (m *Manifest) TotalSize() int64 {
	var n int64
	for _, f := range m.Files {
		n += f.Size
	}
	return n
}

// ErrUnsafeOutDir is returned when the output directory would overlap the
// project root in a way that makes emptying it destructive.
var ErrUnsafeOutDir = errors.New("unsafe build output directory")

// Builder copies the project root into the output directory.
type Builder struct {
	root        string
	outDir      string
	emptyOutDir bool
	debounce    time.Duration
	exclude     PathSet
	logger      *zap.Logger
	now         func() time.Time
}

// NewBuilder resolves root and outDir. A relative outDir is resolved against
// root.
func NewBuilder(root string, cfg Config, logger *zap.Logger) (*Builder, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("build root must not be empty")
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return nil, errors.New("build output dir must not be empty")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	outDir := cfg.OutDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(absRoot, outDir)
	}
	outDir = filepath.Clean(outDir)

	if outDir == absRoot || isWithin(absRoot, outDir) {
		return nil, fmt.Errorf("%w: %s contains the project root", ErrUnsafeOutDir, outDir)
	}
	if filepath.Dir(outDir) == outDir {
		return nil, fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeOutDir, outDir)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	debounce := time.Duration(cfg.WatchDebounceMillis) * time.Millisecond
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	return &Builder{
		root:        absRoot,
		outDir:      outDir,
		emptyOutDir: cfg.EmptyOutDir,
		debounce:    debounce,
		exclude:     NewPathSet(cfg.Exclude),
		logger:      logger.With(zap.String("component", "build")),
		now:         time.Now,
	}, nil
}

// Root returns the absolute project root.
func (b *Builder) Root() string { return b.root }

// OutDir returns the absolute output directory.
func (b *Builder) OutDir() string { return b.outDir }

// Build emits every source file under root into the output directory and
// writes the manifest. Nothing is written outside the output directory.
func (b *Builder) Build(ctx context.Context) (*Manifest, error) {
	start := b.now()

	info, err := os.Stat(b.root)
	if err != nil {
		return nil, fmt.Errorf("invalid root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid root %s: not a directory", b.root)
	}

	if b.emptyOutDir {
		if err := os.RemoveAll(b.outDir); err != nil {
			return nil, fmt.Errorf("empty output dir: %w", err)
		}
	}
	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	manifest := &Manifest{Files: []Entry{}}

	err = filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if b.skip(path, d) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(b.root, path)
		if err != nil {
			return err
		}
		entry, err := b.emit(path, rel)
		if err != nil {
			return err
		}
		manifest.Files = append(manifest.Files, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	manifest.GeneratedAt = b.now().UTC()
	if err := b.writeManifest(manifest); err != nil {
		return nil, err
	}

	b.logger.Info("Build completed",
		zap.String("out_dir", b.outDir),
		zap.Int("files", len(manifest.Files)),
		zap.Int64("bytes", manifest.TotalSize()),
		zap.Duration("elapsed", b.now().Sub(start)),
	)
	return manifest, nil
}

// skip reports whether path is excluded from the build or the watch set.
func (b *Builder) skip(path string, d fs.DirEntry) bool {
	if path == b.root {
		return false
	}
	if path == b.outDir {
		return true
	}
	return Private(d.Name()) || b.exclude.Has(path)
}

func (b *Builder) emit(src, rel string) (Entry, error) {
	dest := filepath.Join(b.outDir, rel)
	if !isWithin(dest, b.outDir) {
		return Entry{}, fmt.Errorf("%s escapes the output dir", rel)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Entry{}, err
	}

	in, err := os.Open(src)
	if err != nil {
		return Entry{}, err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Entry{}, err
	}

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(out, h), in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Entry{}, fmt.Errorf("copy %s: %w", rel, err)
	}

	return Entry{
		Path:   filepath.ToSlash(rel),
		Size:   n,
		SHA256: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

func (b *Builder) writeManifest(m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.outDir, ManifestName), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest of a previous build.
func ReadManifest(outDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(outDir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// isWithin reports whether path lies strictly inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
