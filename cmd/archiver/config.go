package main

import (
	"fmt"
	"os"

	"github.com/airbusgeo/goes-archiver/interface/provider"
	"gopkg.in/yaml.v3"
)

// configPathEnv points to an optional YAML file preloading flag defaults.
const configPathEnv = "GOES_ARCHIVER_CONFIG"

// fileDefaults are the flag defaults that can be overridden from the YAML
// defaults file. Flags given on the command line always win.
type fileDefaults struct {
	Root          string `yaml:"root"`
	Satellite     string `yaml:"satellite"`
	ImageSize     string `yaml:"imageSize"`
	StrideMinutes int    `yaml:"strideMinutes"`
	MaxWorkers    int    `yaml:"maxWorkers"`
}

func newFileDefaults() fileDefaults {
	return fileDefaults{
		Root:          ".",
		Satellite:     "goes-east",
		ImageSize:     provider.DefaultImageSize,
		StrideMinutes: 10,
		MaxWorkers:    8,
	}
}

func (d *fileDefaults) load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, d); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
