package main

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/ligun0805/evm-interactor/internal/interact"
	"github.com/ligun0805/evm-interactor/internal/keys"
)

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", errors.Wrap(err, "read private key")
	}
	return strings.TrimSpace(string(b)), nil
}

func printConfig(p interact.Params, f *runFlags) {
	gas := "auto"
	if p.GasLimit > 0 {
		gas = fmt.Sprint(p.GasLimit)
	}
	fmt.Println("=== CONFIG ===")
	fmt.Println("Chain         :", p.Chain.Name)
	fmt.Println("RPC           :", p.Chain.RPC)
	fmt.Println("Chain ID      :", p.Chain.ChainID)
	fmt.Println("Contract      :", p.Target.Hex())
	fmt.Println("Calldata      :", hexutil.Encode(p.Data))
	fmt.Println("Times per key :", p.Times)
	fmt.Println("Gas limit     :", gas)
	fmt.Println("Delay (s)     :", p.Delay.String())
	fmt.Println("Receipt wait  :", f.receiptTimeout)
	if f.rpcRate > 0 {
		fmt.Printf("RPC rate      : %g/s (burst %d)\n", f.rpcRate, f.rpcBurst)
	}
	fmt.Println("Keys          :", len(p.Keys))
	for i, k := range p.Keys {
		fmt.Printf("  %3d %s\n", i+1, keys.Mask(k))
	}
	fmt.Println("==============")
}
