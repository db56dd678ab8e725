//
// dist.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"github.com/markkurossi/wide/dist"
	"github.com/markkurossi/wide/mpa"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// termLabel returns the label pᵏqⁿ⁻ᵏ of the k:th pmf term.
func termLabel(n, k int) string {
	return "p" + superscript.Itoa(k) + "q" + superscript.Itoa(n-k)
}

// splitSamples splits the sample arguments at commas and drops empty
// values.
func splitSamples(args []string) []string {
	return lo.Compact(lo.FlatMap(args, func(arg string, _ int) []string {
		return lo.Map(strings.Split(arg, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	}))
}

func pmfTable(n int, pmf []mpa.Float) *tabulate.Tabulate {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("k").SetAlign(tabulate.MR)
	tab.Header("Term").SetAlign(tabulate.ML)
	tab.Header("P(X=k)").SetAlign(tabulate.MR)

	for k, v := range pmf {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", k))
		row.Column(termLabel(n, k))
		row.Column(v.String())
	}
	return tab
}

var pmfCommand = &cobra.Command{
	Use:   "pmf [flags] SAMPLE...",
	Short: "Compute the binomial probability mass function",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		trials, _ := cmd.Flags().GetInt("trials")

		samples := splitSamples(args)
		pmf, err := dist.BinomialPMF(cfg, samples, target, trials)
		if err != nil {
			return errors.Trace(err)
		}
		sample("BinomialPMF", cfg.GetFloatType())

		tab := pmfTable(trials, pmf)
		sum, err := dist.Sum(pmf, cfg.GetFloatType())
		if err != nil {
			return errors.Trace(err)
		}
		row := tab.Row()
		row.Column("")
		row.Column("Σ").SetFormat(tabulate.FmtBold)
		row.Column(sum.String()).SetFormat(tabulate.FmtBold)

		tab.Print(cmd.OutOrStdout())
		return nil
	},
}

var meanCommand = &cobra.Command{
	Use:   "mean [flags] SAMPLE...",
	Short: "Compute the binomial mean",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		trials, _ := cmd.Flags().GetInt("trials")

		mean, err := dist.BinomialMean(cfg, splitSamples(args), target,
			trials)
		if err != nil {
			return errors.Trace(err)
		}
		sample("BinomialMean", cfg.GetFloatType())
		fmt.Fprintln(cmd.OutOrStdout(), mean)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{pmfCommand, meanCommand} {
		cmd.Flags().StringP("target", "t", "1", "target sample value")
		cmd.Flags().IntP("trials", "n", 1, "number of trials")
	}
}
