package main

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ligun0805/evm-interactor/internal/config"
	"github.com/ligun0805/evm-interactor/internal/evmrpc"
	"github.com/ligun0805/evm-interactor/internal/interact"
	"github.com/ligun0805/evm-interactor/internal/journal"
)

// dialFunc opens the node a run talks to. The returned closer is called
// once the run is over.
type dialFunc func(ctx context.Context, rpcURL string) (interact.Chain, func(), error)

// controller owns the window state. Widgets are only touched from callbacks
// and the drain goroutine of the single live task.
type controller struct {
	app fyne.App
	win fyne.Window
	st  config.Settings
	log zerolog.Logger

	chains  config.ChainTable
	keys    []string
	journal *journal.Journal
	dial    dialFunc

	mu   sync.Mutex
	task *interact.Task

	chainSel *widget.Select
	contract *widget.Entry
	data     *widget.Entry
	times    *widget.Entry
	gas      *widget.Entry
	delay    *widget.Entry

	startBtn  *widget.Button
	stopBtn   *widget.Button
	exportBtn *widget.Button

	logBox      *widget.Entry
	logScroll   *container.Scroll
	progress    *widget.ProgressBar
	progressLbl *widget.Label
}

func newController(a fyne.App, st config.Settings, log zerolog.Logger) *controller {
	return &controller{
		app:     a,
		st:      st,
		log:     log,
		chains:  config.ChainTable{},
		journal: journal.New(),
		dial:    dialNode(st),
	}
}

func dialNode(st config.Settings) dialFunc {
	return func(ctx context.Context, rpcURL string) (interact.Chain, func(), error) {
		c, err := evmrpc.Dial(ctx, rpcURL, evmrpc.Options{
			Timeout: st.RPCTimeout,
			Rate:    st.RPCRate,
			Burst:   st.RPCBurst,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	}
}

func (c *controller) running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.task != nil
}

func (c *controller) setRunning(on bool) {
	if on {
		c.startBtn.Disable()
		c.stopBtn.Enable()
		return
	}
	c.startBtn.Enable()
	c.stopBtn.Disable()
}
