package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio"
)

// MakeDir makes sure the given directory exists.
func MakeDir(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		err := os.MkdirAll(dirPath, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", dirPath, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a directory: %s", dirPath)
	}
	return nil
}

// WriteAtomic writes the file through a pending file in the same directory,
// which replaces the target path only once write returns successfully.
// On failure no file is left at the target path.
func WriteAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := MakeDir(dir); err != nil {
		return err
	}
	pending, err := renameio.TempFile(dir, path)
	if err != nil {
		return fmt.Errorf("could not create temporary file for '%s': %w", path, err)
	}
	defer pending.Cleanup()

	if err := pending.Chmod(0644); err != nil {
		return fmt.Errorf("could not set permissions for '%s': %w", path, err)
	}
	writer := bufio.NewWriter(pending)
	if err := write(writer); err != nil {
		return fmt.Errorf("could not write '%s': %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("could not flush '%s': %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("could not move '%s' into place: %w", path, err)
	}
	return nil
}
