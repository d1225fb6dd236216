package main

import (
	"context"
	"fmt"

	"github.com/ligun0805/evm-interactor/internal/interact"
)

// onStart validates the form and launches a task. A second start while one
// is live is refused.
func (c *controller) onStart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.task != nil {
		c.appendLog("Execution already running")
		return
	}

	p, err := c.request().Build(c.chains, c.keys)
	if err != nil {
		c.appendLog(fmt.Sprintf("Error: %v", err))
		return
	}
	chain, closeFn, err := c.dial(context.Background(), p.Chain.RPC)
	if err != nil {
		c.appendLog(fmt.Sprintf("Error: unable to connect to RPC %s: %v", p.Chain.RPC, err))
		return
	}

	task := interact.Start(context.Background(), chain, p,
		interact.WithLogger(c.log),
		interact.WithReceiptTimeout(c.st.ReceiptTimeout),
		interact.WithCallTimeout(c.st.RPCTimeout),
	)
	c.task = task
	c.setRunning(true)
	c.setProgress(0, p.Total())
	go c.drain(task, p.Total(), closeFn)
}

// drain forwards task events to the log until the task finishes.
func (c *controller) drain(task *interact.Task, total int, closeFn func()) {
	done := 0
	for ev := range task.Events() {
		c.appendEvent(ev)
		c.journal.Record(ev)
		if ev.Kind == interact.KindTxConfirmed {
			done++
			c.setProgress(done, total)
		}
	}
	if _, err := task.Wait(); err != nil {
		c.log.Debug().Err(err).Str("run", task.ID()).Msg("Run aborted")
	}
	if closeFn != nil {
		closeFn()
	}

	c.mu.Lock()
	c.setRunning(false)
	if c.task == task {
		c.task = nil
	}
	c.mu.Unlock()
}

// onStop requests cancellation; the transaction in flight still completes.
func (c *controller) onStop() {
	c.mu.Lock()
	task := c.task
	c.mu.Unlock()
	if task == nil {
		return
	}
	c.appendLog("Stopping, waiting for the current transaction to finish...")
	task.Stop()
	if c.stopBtn != nil {
		c.stopBtn.Disable()
	}
}
