package integrity

import (
	"context"
	"errors"
	"fmt"

	"moodbank/core/build"
	"moodbank/core/storage"
	"moodbank/feature/integrity/checks"
	"moodbank/feature/mood"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by CheckPublished when no storage client is configured.
var ErrStorageDisabled = errors.New("storage is not configured")

// Options wires the service to the resources it inspects.
type Options struct {
	Root   string
	OutDir string
	DB     *gorm.DB
	Client storage.Client
	Bucket string
	Prefix string
	Logger *zap.Logger
}

// Service handles integrity checks.
type Service struct {
	opts   Options
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{opts: opts, logger: l}
}

// CheckProject reports on the project root and build output.
func (s *Service) CheckProject() (*checks.ProjectReport, error) {
	return checks.CheckProject(s.opts.Root, s.opts.OutDir)
}

// CheckSchema compares the mood entries table with the model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.opts.DB, mood.TableName, mood.Columns)
}

// CheckPublished returns the local build artifacts missing from the bucket.
func (s *Service) CheckPublished(ctx context.Context) ([]string, error) {
	if s.opts.Client == nil {
		return nil, ErrStorageDisabled
	}
	m, err := build.ReadManifest(s.opts.OutDir)
	if err != nil {
		return nil, fmt.Errorf("no local build to compare: %w", err)
	}
	return checks.CheckPublished(ctx, s.opts.Client, s.opts.Bucket, s.opts.Prefix, m)
}

// Run executes every check. A failing check is reported in its own entry;
// Healthy is false if any check failed or found a problem.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{Healthy: true, Checks: make(map[string]any)}

	if project, err := s.CheckProject(); err != nil {
		report.fail("project", err)
	} else {
		report.Checks["project"] = project
		report.Healthy = report.Healthy && project.Status == "ok"
	}

	if schema, err := s.CheckSchema(); err != nil {
		report.fail("schema", err)
	} else {
		report.Checks["schema"] = schema
		report.Healthy = report.Healthy && schema.Matched
	}

	if s.opts.Client != nil {
		if missing, err := s.CheckPublished(ctx); err != nil {
			report.fail("published", err)
		} else {
			report.Checks["published"] = map[string]any{"status": "checked", "missing": missing}
			report.Healthy = report.Healthy && len(missing) == 0
		}
	}

	s.logger.Info("Integrity checks completed", zap.Bool("healthy", report.Healthy))
	return report
}

// Report is the combined result of Run.
type Report struct {
	Healthy bool           `json:"healthy"`
	Checks  map[string]any `json:"checks"`
}

func (r *Report) fail(name string, err error) {
	r.Healthy = false
	r.Checks[name] = map[string]any{"status": "error", "error": err.Error()}
}
