package common

import (
	"os"
	"path/filepath"
)

func FileExists(path string) bool {
	return Error(os.Stat(path)) == nil
}

// WriteFile writes content to path, creating the parent directory first.
func WriteFile(path string, content []byte) error {
	parent := filepath.Dir(path)
	if !FileExists(parent) {
		err := os.MkdirAll(parent, 0o755)
		if err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(content)
	return err
}
