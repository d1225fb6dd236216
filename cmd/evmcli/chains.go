package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChainsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the configured chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := g.chains(g.logger())
			def := table.DefaultChain()
			for _, name := range table.Names() {
				c := table[name]
				mark := " "
				if name == def {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %-8d %s\n", mark, name, c.ChainID, c.RPC)
			}
			return nil
		},
	}
}
