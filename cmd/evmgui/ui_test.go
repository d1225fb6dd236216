package main

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligun0805/evm-interactor/internal/config"
	"github.com/ligun0805/evm-interactor/internal/interact"
)

var errDown = errors.New("connection refused")

// downChain answers nothing.
type downChain struct{}

func (downChain) ChainID(context.Context) (*big.Int, error) { return nil, errDown }
func (downChain) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return nil, errDown
}
func (downChain) PendingNonceAt(context.Context, common.Address) (uint64, error) { return 0, errDown }
func (downChain) SuggestGasPrice(context.Context) (*big.Int, error)              { return nil, errDown }
func (downChain) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 0, errDown
}
func (downChain) SendTransaction(context.Context, *types.Transaction) error { return errDown }
func (downChain) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, errDown
}
func (downChain) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, errDown
}

func newTestController(t *testing.T, keyFile string) *controller {
	t.Helper()
	dir := t.TempDir()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	st := config.Settings{
		ConfigPath: filepath.Join(dir, "config.json"),
		KeysPath:   filepath.Join(dir, "address.txt"),
		Chain:      "base",
		Times:      1,
		Delay:      "0-0",
		LogDir:     filepath.Join(dir, "log_data"),
	}
	if keyFile != "" {
		require.NoError(t, os.WriteFile(st.KeysPath, []byte(keyFile), 0o600))
	}
	c := newController(a, st, zerolog.Nop())
	c.build(a.NewWindow("test"))
	c.loadData()
	return c
}

func TestLoadDataCreatesConfigAndWarnsOnMissingKeys(t *testing.T) {
	c := newTestController(t, "")

	assert.FileExists(t, c.st.ConfigPath)
	assert.Equal(t, []string{"arbitrum", "base", "bsc", "eth", "op"}, c.chainSel.Options)
	assert.Equal(t, "base", c.chainSel.Selected)
	assert.Empty(t, c.keys)
	assert.Contains(t, c.logBox.Text, "Created default config file")
	assert.Contains(t, c.logBox.Text, "not loaded")
}

func TestStartWithoutKeysIsRejected(t *testing.T) {
	c := newTestController(t, "")
	c.contract.SetText("0x000000000000000000000000000000000000c0de")

	c.onStart()
	assert.False(t, c.running())
	assert.Contains(t, c.logBox.Text, "no private keys")
}

func TestStartRefusedWhileRunning(t *testing.T) {
	c := newTestController(t, "")
	c.task = &interact.Task{}

	c.onStart()
	assert.Contains(t, c.logBox.Text, "Execution already running")
}

func TestRunAgainstUnreachableNode(t *testing.T) {
	c := newTestController(t, "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80\n")
	closed := make(chan struct{})
	c.dial = func(context.Context, string) (interact.Chain, func(), error) {
		return downChain{}, func() { close(closed) }, nil
	}
	c.contract.SetText("0x000000000000000000000000000000000000c0de")

	c.onStart()
	require.Eventually(t, func() bool { return !c.running() }, 5*time.Second, 10*time.Millisecond)
	<-closed

	assert.Contains(t, c.logBox.Text, "unable to connect")
	assert.False(t, c.startBtn.Disabled())
	assert.True(t, c.stopBtn.Disabled())
	assert.Positive(t, c.journal.Len())
}

func TestTrimLines(t *testing.T) {
	text := "a\nb\nc\nd\n"
	assert.Equal(t, text, trimLines(text, 4))
	assert.Equal(t, "c\nd\n", trimLines(text, 2))
	assert.Equal(t, 3, strings.Count(trimLines(strings.Repeat("x\n", 10), 3), "\n"))
}

func TestFormatLine(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)
	assert.Equal(t, "13:04:05 hello\n", formatLine(ts, "hello"))
}
