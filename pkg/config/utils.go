package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindEnvFile walks up from the working directory and returns the first
// path where name exists. An empty name means ".env".
func FindEnvFile(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findUpward(wd, name)
}

func findUpward(dir, name string) (string, error) {
	if name == "" {
		name = ".env"
	}
	for {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", name, os.ErrNotExist)
		}
		dir = parent
	}
}
