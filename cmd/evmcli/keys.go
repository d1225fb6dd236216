package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ligun0805/evm-interactor/internal/keys"
)

func newKeysCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the accounts behind the key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := keys.Load(g.keysPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, k := range list {
				addr, err := keys.Address(k)
				if err != nil {
					fmt.Fprintf(out, "%3d  %-14s  invalid: %v\n", i+1, keys.Mask(k), err)
					continue
				}
				fmt.Fprintf(out, "%3d  %-14s  %s\n", i+1, keys.Mask(k), addr.Hex())
			}
			fmt.Fprintf(out, "%d keys\n", len(list))
			return nil
		},
	}
}
