package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ligun0805/evm-interactor/internal/config"
	"github.com/ligun0805/evm-interactor/internal/evmrpc"
	"github.com/ligun0805/evm-interactor/internal/interact"
	"github.com/ligun0805/evm-interactor/internal/journal"
	"github.com/ligun0805/evm-interactor/internal/keys"
)

type runFlags struct {
	chain          string
	contract       string
	data           string
	times          int
	gas            uint64
	delay          string
	promptKey      bool
	journal        bool
	logDir         string
	receiptTimeout time.Duration
	rpcTimeout     time.Duration
	rpcRate        float64
	rpcBurst       int
}

func (f runFlags) request() interact.Request {
	q := interact.Request{
		Chain:    f.chain,
		Contract: f.contract,
		Data:     f.data,
		Times:    strconv.Itoa(f.times),
		Delay:    f.delay,
	}
	if f.gas > 0 {
		q.Gas = strconv.FormatUint(f.gas, 10)
	}
	return q
}

func newRunCmd(g *globalFlags, st config.Settings) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Send the configured interaction from every key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractions(cmd.Context(), g, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.chain, "chain", st.Chain, "chain name from the chain table")
	fl.StringVar(&f.contract, "contract", st.Contract, "target contract address")
	fl.StringVar(&f.data, "data", st.Data, "calldata hex, 0x optional")
	fl.IntVar(&f.times, "times", st.Times, "interactions per key")
	fl.Uint64Var(&f.gas, "gas", st.GasLimit, "fixed gas limit, 0 = max(2x estimate, 500000)")
	fl.StringVar(&f.delay, "delay", st.Delay, "random delay range in seconds, min-max")
	fl.BoolVar(&f.promptKey, "prompt-key", false, "enter a single private key instead of reading the key file")
	fl.BoolVar(&f.journal, "journal", false, "export the transaction journal when the run ends")
	fl.StringVar(&f.logDir, "log-dir", st.LogDir, "journal export directory")
	fl.DurationVar(&f.receiptTimeout, "receipt-timeout", st.ReceiptTimeout, "how long to wait for each receipt")
	fl.DurationVar(&f.rpcTimeout, "rpc-timeout", st.RPCTimeout, "timeout of every other RPC call")
	fl.Float64Var(&f.rpcRate, "rpc-rate", st.RPCRate, "max RPC requests per second, 0 = unlimited")
	fl.IntVar(&f.rpcBurst, "rpc-burst", st.RPCBurst, "RPC burst size when rate limited")
	return cmd
}

func loadRunKeys(log zerolog.Logger, g *globalFlags, f *runFlags) ([]string, error) {
	if f.promptKey {
		k, err := readPassword("Enter private key: ")
		if err != nil {
			return nil, err
		}
		if k == "" {
			return nil, nil
		}
		return []string{keys.Normalize(k)}, nil
	}
	list, err := keys.Load(g.keysPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", g.keysPath).Msg("Private key file not found, create it with one key per line")
		return nil, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("path", g.keysPath).Msg("Failed to read private keys")
		return nil, nil
	}
	log.Info().Int("count", len(list)).Msg("Loaded private keys")
	return list, nil
}

func runInteractions(ctx context.Context, g *globalFlags, f *runFlags) error {
	log := g.logger()
	table := g.chains(log)

	keyList, err := loadRunKeys(log, g, f)
	if err != nil {
		return err
	}
	p, err := f.request().Build(table, keyList)
	if err != nil {
		return err
	}
	printConfig(p, f)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := evmrpc.Dial(ctx, p.Chain.RPC, evmrpc.Options{
		Timeout: f.rpcTimeout,
		Rate:    f.rpcRate,
		Burst:   f.rpcBurst,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	task := interact.Start(ctx, client, p,
		interact.WithLogger(log),
		interact.WithReceiptTimeout(f.receiptTimeout),
		interact.WithCallTimeout(f.rpcTimeout),
	)
	go func() {
		select {
		case <-ctx.Done():
			log.Warn().Msg("Stop requested, finishing the transaction in flight")
		case <-task.Done():
		}
	}()

	var j *journal.Journal
	if f.journal {
		j = journal.New()
	}
	for ev := range task.Events() {
		if j != nil {
			j.Record(ev)
		}
	}
	sum, runErr := task.Wait()

	if j != nil {
		path, err := j.Export(f.logDir)
		if err != nil {
			log.Error().Err(err).Msg("Failed to export journal")
		} else {
			log.Info().Str("path", path).Int("entries", j.Len()).Msg("Journal saved")
		}
	}
	if runErr != nil {
		return runErr
	}
	if sum.Cancelled {
		log.Info().Int("sent", sum.Sent).Msg("Run stopped")
	}
	return nil
}
