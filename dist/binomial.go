//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package dist implements the binomial distribution over an
// empirically estimated success probability.
package dist

import (
	"errors"
	"fmt"

	"github.com/markkurossi/wide/env"
	"github.com/markkurossi/wide/mpa"
	"github.com/markkurossi/wide/numtheory"
	"github.com/markkurossi/wide/parallel"
	"github.com/markkurossi/wide/types"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrEmptySample is returned when the probability is estimated from
// an empty sample sequence.
var ErrEmptySample = errors.New("empty sample")

// EstimateP returns the fraction of samples equal to target as a
// floating point number of type info.
func EstimateP[T comparable](samples []T, target T, info types.Info) (
	mpa.Float, error) {

	if len(samples) == 0 {
		return mpa.Float{}, fmt.Errorf("dist.EstimateP: %w", ErrEmptySample)
	}
	matches := lo.Count(samples, target)
	num, err := mpa.FromInteger(matches, types.Uint64)
	if err != nil {
		return mpa.Float{}, err
	}
	den, err := mpa.FromInteger(len(samples), types.Uint64)
	if err != nil {
		return mpa.Float{}, err
	}
	return mpa.Ratio(num, den, info)
}

// BinomialPMF returns the binomial probability mass function
// P(X=k) = C(n,k) * p**k * (1-p)**(n-k) for k=0...n where n is trials
// and p is estimated from samples. The result has n+1 entries. The
// entries are computed concurrently and renormalized so that they sum
// to one. Every entry is in the range [0, 1]. A nil cfg uses the
// default configuration.
func BinomialPMF[T comparable](cfg *env.Config, samples []T, target T,
	trials int) ([]mpa.Float, error) {

	if cfg == nil {
		cfg = new(env.Config)
	}
	if trials < 0 {
		return nil, fmt.Errorf("dist.BinomialPMF: trials=%d: %w",
			trials, numtheory.ErrInvalidRange)
	}
	info := cfg.GetFloatType()
	p, err := EstimateP(samples, target, info)
	if err != nil {
		return nil, err
	}
	one, err := mpa.OneFloat(info)
	if err != nil {
		return nil, err
	}
	q, err := one.Sub(p)
	if err != nil {
		return nil, err
	}
	cfg.GetLogger().Debug("binomial pmf",
		zap.Int("samples", len(samples)),
		zap.Stringer("p", p),
		zap.Int("trials", trials),
		zap.Stringer("int", cfg.GetIntType()),
		zap.Stringer("float", info))

	intType := cfg.GetIntType()
	pmf, err := parallel.Map(trials+1, cfg.GetWorkers(),
		func(k int) (mpa.Float, error) {
			return term(int64(trials), int64(k), p, q, intType, info)
		})
	if err != nil {
		return nil, err
	}

	sum, err := Sum(pmf, info)
	if err != nil {
		return nil, err
	}
	zero := mpa.ZeroFloat(info)
	return parallel.MapSlice(pmf, cfg.GetWorkers(),
		func(_ int, v mpa.Float) (mpa.Float, error) {
			v, err := v.Quo(sum)
			if err != nil {
				return mpa.Float{}, err
			}
			switch {
			case v.Cmp(zero) < 0:
				return zero, nil
			case v.Cmp(one) > 0:
				return one, nil
			default:
				return v, nil
			}
		})
}

// term computes C(n,k) * p**k * q**(n-k).
func term(n, k int64, p, q mpa.Float, intType, info types.Info) (
	mpa.Float, error) {

	c, err := numtheory.Combination(n, k, intType)
	if err != nil {
		return mpa.Float{}, err
	}
	result, err := mpa.FloatFromInt(c, info)
	if err != nil {
		return mpa.Float{}, err
	}
	pk, err := p.Pow(uint(k))
	if err != nil {
		return mpa.Float{}, err
	}
	qk, err := q.Pow(uint(n - k))
	if err != nil {
		return mpa.Float{}, err
	}
	result, err = result.Mul(pk)
	if err != nil {
		return mpa.Float{}, err
	}
	return result.Mul(qk)
}

// BinomialMean returns the mean trials*p of the binomial distribution
// where p is estimated from samples. A nil cfg uses the default
// configuration.
func BinomialMean[T comparable](cfg *env.Config, samples []T, target T,
	trials int) (mpa.Float, error) {

	if cfg == nil {
		cfg = new(env.Config)
	}
	if trials < 0 {
		return mpa.Float{}, fmt.Errorf("dist.BinomialMean: trials=%d: %w",
			trials, numtheory.ErrInvalidRange)
	}
	info := cfg.GetFloatType()
	p, err := EstimateP(samples, target, info)
	if err != nil {
		return mpa.Float{}, err
	}
	n, err := mpa.FromInteger(trials, types.Uint64)
	if err != nil {
		return mpa.Float{}, err
	}
	nf, err := mpa.FloatFromInt(n, info)
	if err != nil {
		return mpa.Float{}, err
	}
	mean, err := nf.Mul(p)
	if err != nil {
		return mpa.Float{}, err
	}
	cfg.GetLogger().Debug("binomial mean",
		zap.Int("samples", len(samples)),
		zap.Stringer("p", p),
		zap.Int("trials", trials),
		zap.Stringer("mean", mean))
	return mean, nil
}

// Sum returns the sum of values as a floating point number of type
// info.
func Sum(values []mpa.Float, info types.Info) (mpa.Float, error) {
	sum := mpa.ZeroFloat(info)
	var err error
	for _, v := range values {
		sum, err = sum.Add(v)
		if err != nil {
			return mpa.Float{}, err
		}
	}
	return sum, nil
}
