package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the storage layer where its data tree lives.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data path from a .dashcal config file or the
// DASHCAL_PATH environment variable, defaulting to ~/.dashcal.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.dashcal.db")
	viper.SetConfigName(".dashcal") // .yaml is implicit
	viper.SetEnvPrefix("DASHCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("DASHCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
