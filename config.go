package main

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig holds project-level defaults loadable from an optional
// thirdcc.toml, so a project need not repeat long flag invocations on every
// build. Explicit flags always override values loaded here.
type FileConfig struct {
	Entry            string `toml:"entry"`
	MemLimit         int    `toml:"mem_limit"`
	Output           string `toml:"output"`
	OutputHex        string `toml:"output_hex"`
	PrintDisassembly bool   `toml:"print_disassembly"`
}

// LoadConfig reads path as TOML, returning a zero-valued FileConfig (and no
// error) if the file simply does not exist.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	return cfg, err
}
