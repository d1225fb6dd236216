package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ligun0805/evm-interactor/internal/config"
	"github.com/ligun0805/evm-interactor/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	keysPath   string
	logLevel   string
	jsonLog    bool
}

func (g *globalFlags) logger() zerolog.Logger {
	return logging.New(g.logLevel, os.Stderr, !g.jsonLog)
}

// chains loads the chain table, creating the default file on first use.
// A broken file is logged and yields an empty table.
func (g *globalFlags) chains(log zerolog.Logger) config.ChainTable {
	table, created, err := config.LoadChains(g.configPath)
	if created {
		log.Info().Str("path", g.configPath).Msg("Created default chain config")
	}
	if err != nil {
		log.Error().Err(err).Str("path", g.configPath).Msg("Failed to load chain config")
		return config.ChainTable{}
	}
	return table
}

func newRootCmd(st config.Settings) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "evmcli",
		Short:         "Send repeated contract interactions from a list of private keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", st.ConfigPath, "chain table (JSON, created with defaults when missing)")
	pf.StringVar(&g.keysPath, "keys", st.KeysPath, "private key file, one key per line")
	pf.StringVar(&g.logLevel, "log-level", st.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&g.jsonLog, "json-log", false, "write JSON log lines instead of console output")

	root.AddCommand(newRunCmd(g, st), newChainsCmd(g), newKeysCmd(g))
	return root
}
