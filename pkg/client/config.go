package client

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where the Good Stuff service lives.
type Config interface {
	ServerURL() string
}

// LoadConfig resolves the server address from, in order: a local .env file,
// GOODSTUFF_* environment variables, and a .goodstuff config file in the
// working directory or home directory. Defaults to the local dev server.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("server", "http://127.0.0.1:8000")
	viper.SetConfigName(".goodstuff") // .yaml is implicit
	viper.SetEnvPrefix("GOODSTUFF")
	viper.AutomaticEnv()

	if override := os.Getenv("GOODSTUFF_CONFIG_PATH"); override != "" {
		if expanded, err := homedir.Expand(override); err == nil {
			viper.AddConfigPath(expanded)
		} else {
			viper.AddConfigPath(override)
		}
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Server: viper.GetString("server")}, nil
}

type fileConfig struct {
	Server string `json:"server"`
}

func (f *fileConfig) ServerURL() string {
	return f.Server
}

// StaticConfig pins the server URL, mostly for tests and --server overrides.
type StaticConfig string

// ServerURL implements Config.
func (s StaticConfig) ServerURL() string { return string(s) }
