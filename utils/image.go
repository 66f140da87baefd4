package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewImageName returns a fresh random filename with the given extension.
func NewImageName(ext string) string {
	return uuid.NewString() + ext
}

// SavePNG writes image bytes to filename under folder, creating the folder
// if needed.
func SavePNG(data []byte, folder, filename string) error {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(folder, filename), data, 0644)
}

// RemoveFile deletes a stored artifact. Best effort: a missing file is not
// an error.
func RemoveFile(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
