// Package fileutil holds file system helpers shared by the CLI commands.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OwnerReadWrite is the file permission mode for scoped output files
// (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// OwnerDir is the permission mode for directories created for output.
const OwnerDir os.FileMode = 0o750

// RelPath returns inputPath relative to baseDir. Inputs outside baseDir are
// rejected.
func RelPath(baseDir, inputPath string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("fileutil: invalid base directory: %w", err)
	}
	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return "", fmt.Errorf("fileutil: invalid input path %s: %w", inputPath, err)
	}

	rel, err := filepath.Rel(absBase, absInput)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("fileutil: %s is outside the base directory %s", inputPath, baseDir)
	}
	return rel, nil
}

// RejectSymlink returns an error if path is an existing symlink.
// This prevents a symlink from redirecting output to an unintended location.
func RejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fileutil: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("fileutil: refusing to write to symlink: %s", path)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), OwnerDir); err != nil {
		return fmt.Errorf("fileutil: creating directory for %s: %w", path, err)
	}
	if err := RejectSymlink(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, OwnerReadWrite); err != nil {
		return fmt.Errorf("fileutil: writing %s: %w", path, err)
	}
	return nil
}
