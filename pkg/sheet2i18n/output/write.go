package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is one document to write.
type File struct {
	Path string
	Data []byte
}

// WriteFile writes data to path through a temporary file in the same
// directory, so an existing file is either fully replaced or left untouched.
// Missing parent directories are created.
func WriteFile(path string, data []byte) error {
	return WriteAll(File{Path: path, Data: data})
}

// WriteAll stages every file as a temporary file next to its target and
// renames them into place only after all of them were written. When staging
// fails, no target is touched.
func WriteAll(files ...File) (err error) {
	staged := make([]string, 0, len(files))
	defer func() {
		if err != nil {
			for _, tmp := range staged {
				os.Remove(tmp)
			}
		}
	}()

	for _, f := range files {
		tmp, err := stage(f)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err = os.Rename(staged[i], f.Path); err != nil {
			return fmt.Errorf("replace %s: %w", f.Path, err)
		}
	}
	return nil
}

// stage writes f.Data into a temporary file in f.Path's directory and returns its name.
func stage(f File) (name string, err error) {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(f.Data); err != nil {
		return "", err
	}
	if err = tmp.Chmod(0644); err != nil {
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	return tmp.Name(), nil
}
