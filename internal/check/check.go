// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation for ffprobe.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrFfprobeNotFound is returned by CheckDeps when ffprobe is missing.
var ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: it reports ffprobe
// availability and version. Returns false when ffprobe is unusable.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Error("ffprobe not found")
		return false
	}

	cmd := exec.Command("ffprobe", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffprobe: %s", firstLine)
	return true
}

// CheckDeps is the pre-pipeline validation: ffprobe must be on PATH before
// any directory is scanned.
func CheckDeps() error {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}
