package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligun0805/evm-interactor/internal/config"
)

func execute(t *testing.T, st config.Settings, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(st)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestChainsCommandCreatesDefaultTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	out, err := execute(t, config.Settings{LogLevel: "error"}, "chains", "--config", path)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Contains(t, out, "* eth")
	assert.Contains(t, out, "https://mainnet.base.org")
	assert.Contains(t, out, "42161")
}

func TestKeysCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "address.txt")
	content := "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80\n\nnot-a-key\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := execute(t, config.Settings{LogLevel: "error"}, "keys", "--keys", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "2 keys")
	assert.NotContains(t, out, "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
}

func TestRunRejectsMissingKeys(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, config.Settings{LogLevel: "error"}, "run",
		"--config", filepath.Join(dir, "config.json"),
		"--keys", filepath.Join(dir, "missing.txt"),
		"--contract", "0x000000000000000000000000000000000000c0de",
		"--chain", "eth",
		"--times", "1",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no private keys")
}

func TestRunFlagsRequest(t *testing.T) {
	f := runFlags{chain: "base", contract: "0xabc", data: "0x01", times: 4, delay: "1-2"}
	q := f.request()
	assert.Equal(t, "4", q.Times)
	assert.Empty(t, q.Gas)

	f.gas = 600000
	assert.Equal(t, "600000", f.request().Gas)
}
