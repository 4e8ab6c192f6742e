// Package fileutil holds file modes and helpers shared by the CLI and generator.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated declaration files
// intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirMode is the permission mode for output directories created on demand.
const DirMode os.FileMode = 0o755

// WriteFile writes data to path, creating the parent directory if needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirMode); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CheckOutputPath reports whether outputPath may be written. It fails when
// the output would replace inputPath or is a symlink, and reports whether a
// regular file already exists there. An empty inputPath skips the overwrite
// check.
func CheckOutputPath(outputPath, inputPath string) (exists bool, err error) {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return false, fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != "" {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return false, fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return false, fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	info, err := os.Lstat(outputPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return false, fmt.Errorf("refusing to write to symlink: %s", outputPath)
	}
	if info.IsDir() {
		return false, fmt.Errorf("output path %s is a directory", outputPath)
	}
	return true, nil
}
