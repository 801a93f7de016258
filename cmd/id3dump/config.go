package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// options are the output settings. Defaults may come from a TOML file;
// flags set on the command line always win.
type options struct {
	JSON    bool `toml:"json"`
	Frames  bool `toml:"frames"`
	Preview int  `toml:"preview"`
}

func defaultOptions() options {
	return options{Frames: true, Preview: 16}
}

// loadOptions reads output defaults from a TOML file.
func loadOptions(path string) (options, error) {
	opts := defaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse %s: %w", path, err)
	}
	return opts, nil
}
