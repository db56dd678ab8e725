//
// numtheory.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/juju/errors"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/wide/mpa"
	"github.com/markkurossi/wide/numtheory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func parseArgs(args []string) ([]int64, error) {
	result := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, errors.NotValidf("argument %q", arg)
		}
		result[i] = v
	}
	return result, nil
}

func printInt(cmd *cobra.Command, label string, v mpa.Int) {
	logger.Debug(label, zap.Stringer("type", v.Info()),
		zap.Int("bits", v.BitLen()))
	fmt.Fprintln(cmd.OutOrStdout(), v)
}

var factorialCommand = &cobra.Command{
	Use:   "factorial N",
	Short: "Compute N!",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		r, err := numtheory.Factorial(v[0], cfg.GetIntType())
		if err != nil {
			return errors.Trace(err)
		}
		sample("Factorial", cfg.GetIntType())
		printInt(cmd, "factorial", r)
		return nil
	},
}

var combCommand = &cobra.Command{
	Use:   "comb N R",
	Short: "Compute the number of R-element subsets of an N-element set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		r, err := numtheory.Combination(v[0], v[1], cfg.GetIntType())
		if err != nil {
			return errors.Trace(err)
		}
		sample("Combination", cfg.GetIntType())
		printInt(cmd, "combination", r)
		return nil
	},
}

var permCommand = &cobra.Command{
	Use:   "perm N R",
	Short: "Compute the number of R-element sequences of an N-element set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		r, err := numtheory.Permutation(v[0], v[1], cfg.GetIntType())
		if err != nil {
			return errors.Trace(err)
		}
		sample("Permutation", cfg.GetIntType())
		printInt(cmd, "permutation", r)
		return nil
	},
}

var gaussCommand = &cobra.Command{
	Use:   "gauss N",
	Short: "Compute the sum 0+1+...+N",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		r, err := numtheory.GaussSum(v[0], cfg.GetIntType())
		if err != nil {
			return errors.Trace(err)
		}
		sample("GaussSum", cfg.GetIntType())
		printInt(cmd, "gauss", r)
		return nil
	},
}

var divmodCommand = &cobra.Command{
	Use:   "divmod A B",
	Short: "Compute the quotient and remainder of A/B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		info := cfg.GetIntType()
		a, err := mpa.Parse(args[0], info)
		if err != nil {
			return errors.Trace(err)
		}
		b, err := mpa.Parse(args[1], info)
		if err != nil {
			return errors.Trace(err)
		}
		q, r, err := a.DivRem(b)
		if err != nil {
			return errors.Trace(err)
		}
		divRemEnd := time.Now()
		tq, tr, err := numtheory.DivisibilityTheorem(a, b,
			cfg.GetMaxIterations())
		if err != nil {
			return errors.Trace(err)
		}
		s := sample("DivMod", info)
		s.SubSample("DivRem", divRemEnd)
		s.SubSample("Refinement", time.Now())

		tab := tabulate.New(tabulate.UnicodeLight)
		tab.Header("Method").SetAlign(tabulate.ML)
		tab.Header("Quotient").SetAlign(tabulate.MR)
		tab.Header("Remainder").SetAlign(tabulate.MR)

		row := tab.Row()
		row.Column("DivRem")
		row.Column(q.String())
		row.Column(r.String())

		row = tab.Row()
		row.Column("Refinement")
		row.Column(tq.String())
		row.Column(tr.String())

		tab.Print(cmd.OutOrStdout())
		return nil
	},
}
