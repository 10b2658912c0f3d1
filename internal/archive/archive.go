// Package archive moves finished deck exports out of the way so a new
// session starts with a clean export directory.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveExports moves the export directory into a timestamped
// sibling under archive/
func ArchiveExports(exportsDir string) (string, error) {
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		return "", fmt.Errorf("exports directory does not exist: %s", exportsDir)
	}

	parentDir := filepath.Dir(exportsDir)
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("exports-%s", timestamp))

	// A same-second rerun would collide, so fall back to microseconds.
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("exports-%s", timestamp))
	}

	if err := os.Rename(exportsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive exports directory: %w", err)
	}

	return archivePath, nil
}
