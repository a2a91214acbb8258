package config

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func Decode(config *Tree, path string) error {
	_, err := toml.DecodeFile(path, config)
	if err != nil {
		return err
	}

	config.filePath, err = filepath.Abs(path)
	return err
}
