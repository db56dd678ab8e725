//
// verify.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"time"

	"github.com/juju/errors"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/wide/mpa"
	"github.com/markkurossi/wide/numtheory"
	"github.com/markkurossi/wide/parallel"
	"github.com/markkurossi/wide/prg"
	"github.com/markkurossi/wide/types"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type verifyResult struct {
	division        bool
	combination     bool
	divisionTime    time.Duration
	combinationTime time.Duration
}

// verifyDivision checks that the refinement division agrees with
// DivRem for random operands.
func verifyDivision(rand *prg.PRG, info types.Info) (bool, error) {
	a, err := mpa.Rand(rand, info)
	if err != nil {
		return false, err
	}
	b, err := mpa.Rand(rand, info)
	if err != nil {
		return false, err
	}
	b = b.Rsh(uint(rand.Intn(int(info.Bits))))
	if b.IsZero() {
		b, err = mpa.NewUint(1, info)
		if err != nil {
			return false, err
		}
	}
	q, r, err := a.DivRem(b)
	if err != nil {
		if errors.Is(err, mpa.ErrOverflow) {
			// The only overflowing signed division is min/-1.
			return true, nil
		}
		return false, err
	}
	tq, tr, err := numtheory.DivisibilityTheorem(a, b, int(info.Bits)+1)
	if err != nil {
		return false, err
	}
	return q.Cmp(tq) == 0 && r.Cmp(tr) == 0, nil
}

// verifyCombination checks the symmetry C(n,r) = C(n,n-r) for random
// n and r. The value C(n,r) < 2**n fits into info for n < bits.
func verifyCombination(rand *prg.PRG, info types.Info) (bool, error) {
	n := int64(rand.Intn(min(int(info.Bits), 1024)))
	r := int64(rand.Intn(int(n) + 1))
	a, err := numtheory.Combination(n, r, info)
	if err != nil {
		return false, err
	}
	b, err := numtheory.Combination(n, n-r, info)
	if err != nil {
		return false, err
	}
	return a.Cmp(b) == 0, nil
}

var verifyCommand = &cobra.Command{
	Use:   "verify",
	Short: "Verify arithmetic properties with random operands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		info := cfg.GetIntType()

		results, err := parallel.Map(count, cfg.GetWorkers(),
			func(i int) (verifyResult, error) {
				rand := prg.FromSeed(seed + uint64(i))
				var result verifyResult
				var err error
				start := time.Now()
				result.division, err = verifyDivision(rand, info)
				if err != nil {
					return result, err
				}
				mid := time.Now()
				result.divisionTime = mid.Sub(start)
				result.combination, err = verifyCombination(rand, info)
				result.combinationTime = time.Since(mid)
				return result, err
			})
		if err != nil {
			return errors.Trace(err)
		}
		s := sample("Verify", info)
		s.AbsSubSample("Division", lo.SumBy(results,
			func(r verifyResult) time.Duration {
				return r.divisionTime
			}))
		s.AbsSubSample("Combination", lo.SumBy(results,
			func(r verifyResult) time.Duration {
				return r.combinationTime
			}))

		division := lo.CountBy(results, func(r verifyResult) bool {
			return r.division
		})
		combination := lo.CountBy(results, func(r verifyResult) bool {
			return r.combination
		})
		logger.Info("verify",
			zap.Stringer("type", info),
			zap.Int("count", count),
			zap.Uint64("seed", seed),
			zap.Int("division", division),
			zap.Int("combination", combination))

		tab := tabulate.New(tabulate.UnicodeLight)
		tab.Header("Property").SetAlign(tabulate.ML)
		tab.Header("Passed").SetAlign(tabulate.MR)
		tab.Header("Failed").SetAlign(tabulate.MR)

		for _, check := range []lo.Tuple2[string, int]{
			lo.T2("DivRem = refinement", division),
			lo.T2("C(n,r) = C(n,n-r)", combination),
		} {
			row := tab.Row()
			row.Column(check.A)
			row.Column(fmt.Sprintf("%d", check.B))
			row.Column(fmt.Sprintf("%d", count-check.B))
		}
		tab.Print(cmd.OutOrStdout())

		if division != count || combination != count {
			return errors.Errorf("verification failed")
		}
		return nil
	},
}

func init() {
	verifyCommand.Flags().Int("count", 100, "number of random checks")
	verifyCommand.Flags().Uint64("seed", 1, "random seed")
}
