package common

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// StageEnv names the deployment stage; "prod" skips the .env file.
const StageEnv = "GW_STAGE"

// LoadDotEnv loads variables from path into the process environment outside
// production. Variables already set are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	if os.Getenv(StageEnv) == "prod" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Environment returns the config overlay name for this stage, or "" when
// GW_STAGE is unset.
func Environment() string {
	return os.Getenv(StageEnv)
}
