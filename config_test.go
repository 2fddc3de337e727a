package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_missingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "thirdcc.toml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func Test_LoadConfig_parsesFields(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "thirdcc.toml")
	body := `
entry = "main"
mem_limit = 128
output = "out.bin"
output_hex = "out.hex"
print_disassembly = true
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, FileConfig{
		Entry:            "main",
		MemLimit:         128,
		Output:           "out.bin",
		OutputHex:        "out.hex",
		PrintDisassembly: true,
	}, cfg)
}

func Test_LoadConfig_malformedFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "thirdcc.toml")
	require.NoError(t, os.WriteFile(p, []byte("not = [valid toml"), 0o644))

	_, err := LoadConfig(p)
	assert.Error(t, err)
}
