package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	dotEnvPathEnv     = "DOTENV"
	defaultDotEnvPath = ".env"
)

// dotEnvPath returns the .env file location, overridable with DOTENV.
func dotEnvPath() string {
	if path := os.Getenv(dotEnvPathEnv); path != "" {
		return path
	}
	return defaultDotEnvPath
}

// loadDotEnv loads variables from the file at path into the process
// environment. Variables that are already set are not overridden, so the
// real environment always wins over the file. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}
