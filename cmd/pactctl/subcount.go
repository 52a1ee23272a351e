package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/quotientgraph/pact/canon"
	"github.com/quotientgraph/pact/spasm"
	"github.com/quotientgraph/pact/telemetry"
)

var skipBidirected bool

var subcountCmd = &cobra.Command{
	Use:   "subcount <pattern> <host>",
	Short: "count subgraph embeddings of pattern in host via spasm coefficients",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubcount,
}

func init() {
	subcountCmd.Flags().BoolVar(&skipBidirected, "skip-bidirected", false, "skip quotient graphs with a bidirected edge pair")
}

func runSubcount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format)

	pattern, err := readGraphArg(args[0])
	if err != nil {
		return fmt.Errorf("reading pattern: %w", err)
	}
	host, err := readGraphArg(args[1])
	if err != nil {
		return fmt.Errorf("reading host: %w", err)
	}

	sp := spasm.NewSpace(canon.NewBacktracking())
	coeffs, err := spasm.BasisCoefficients(cmd.Context(), pattern, sp, spasm.AllowExpand, skipBidirected)
	if err != nil {
		return fmt.Errorf("computing basis coefficients: %w", err)
	}

	total := new(big.Rat)
	dcfg := cfg.DecompConfig()
	ecfg := cfg.ExecConfig()
	for id, coeff := range coeffs {
		basis, ok := sp.Get(id)
		if !ok {
			return fmt.Errorf("basis graph %s vanished from space", id)
		}
		homCount, err := countHomomorphisms(cmd.Context(), basis, host, dcfg, ecfg, cfg.Decomposition.SolverPath, 1)
		if err != nil {
			return fmt.Errorf("counting homomorphisms of basis graph %s: %w", id, err)
		}
		term := new(big.Rat).Mul(coeff, new(big.Rat).SetInt(homCount.AsBigInt()))
		total.Add(total, term)
	}

	logger.Info("subcount complete", "basis_graphs", sp.Len())

	if total.IsInt() {
		fmt.Fprintln(cmd.OutOrStdout(), total.Num().String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), total.RatString())
	return nil
}
