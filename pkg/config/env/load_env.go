package env

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from the file named by ENV_PATH, or
// from the first of paths that exists. Variables already set are kept.
// A missing file is only an error in local mode (env "local" or empty).
func LoadDotEnv(env string, paths ...string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = firstExisting(paths)
		slog.Info("ENV_PATH is not set, using default path", "defaultPath", envPath)
	}

	if envPath == "" {
		if isLocal(env) {
			return errors.New("no .env file found")
		}
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		if isLocal(env) {
			slog.Error("Failed to load environment variables in local mode", "error", err, "path", envPath)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}
	return nil
}

func isLocal(env string) bool {
	return env == "local" || env == ""
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
