package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"moodbank/core/build"
)

// RequiredFiles lists the files the project root must contain.
var RequiredFiles = []string{"index.html"}

// ProjectReport describes the front-end project on disk.
type ProjectReport struct {
	Root    string   `json:"root"`
	Exists  bool     `json:"exists"`
	Missing []string `json:"missing"`
	OutDir  string   `json:"out_dir"`
	Built   bool     `json:"built"`
	Files   int      `json:"files"`
	Status  string   `json:"status"` // "ok", "error"
}

// CheckProject verifies the project root and reports whether outDir holds a build.
func CheckProject(root, outDir string) (*ProjectReport, error) {
	report := &ProjectReport{Root: root, OutDir: outDir, Missing: []string{}, Status: "ok"}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		report.Status = "error"
		report.Missing = append(report.Missing, RequiredFiles...)
		return report, nil
	case err != nil:
		return nil, fmt.Errorf("failed to stat root %s: %w", root, err)
	case !info.IsDir():
		report.Status = "error"
		return report, nil
	}
	report.Exists = true

	for _, name := range RequiredFiles {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			report.Missing = append(report.Missing, name)
			report.Status = "error"
		}
	}

	if m, err := build.ReadManifest(outDir); err == nil {
		report.Built = true
		report.Files = len(m.Files)
	}
	return report, nil
}
