package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fdtree/internal/config"

	"github.com/rs/zerolog/log"
)

var defaultConfigPaths = []string{
	"fdtree.toml",
	"~/.config/fdtree/config.toml",
	"/etc/fdtree/config.toml",
}

const internalDefaultConfigPath = "<DEFAULT>"

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func findConfigFile() string {
	for _, path := range defaultConfigPaths {
		path = expandHome(path)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return internalDefaultConfigPath
}

func findAndDecodeConfig() *config.Tree {
	cfg := config.Default

	if configPath == internalDefaultConfigPath {
		configPath = findConfigFile()
	}

	if configPath != internalDefaultConfigPath {
		if err := config.Decode(&cfg, configPath); err != nil {
			fmt.Fprintln(os.Stderr, "Decode config file failed")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Debug().Str("Path", configPath).Msg("Config file loaded")
	}

	return &cfg
}
