package main

import (
	"errors"
	"io/fs"

	"github.com/dogmatiq/litecoind"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// environment is the configuration read from environment variables. Flags
// take precedence over these values.
type environment struct {
	URL       string `env:"LITECOIND_URL" env-default:"http://127.0.0.1:9332/"`
	Wallet    string `env:"LITECOIND_WALLET"`
	CA        string `env:"LITECOIND_CA"`
	Cookie    string `env:"LITECOIND_COOKIE"`
	LogFormat string `env:"LTCRPC_LOG_FORMAT" env-default:"console"`
}

// loadEnvironment reads the environment, after loading any variables defined
// in a .env file in the working directory.
func loadEnvironment() (environment, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return environment{}, err
	}

	var env environment
	if err := cleanenv.ReadEnv(&env); err != nil {
		return environment{}, err
	}

	if env.URL == "" {
		env.URL = litecoind.DefaultURL
	}

	return env, nil
}
