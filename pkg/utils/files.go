// =============================================================================
// Inventory Voucher Manager - File Utilities
// =============================================================================
//
// Small file helpers shared by the store and the exporter: directory
// management and existence checks.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir creates the parent directory of the given file path.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
