//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiming(t *testing.T) {
	timing := NewTiming("Bits")

	var buf bytes.Buffer
	timing.Print(&buf)
	assert.Empty(t, buf.String())

	s := timing.Sample("Parse", []string{"512"})
	s.SubSample("Limbs", time.Now())
	s.AbsSubSample("Digits", time.Millisecond)
	timing.Sample("Combination", []string{"1024"})

	require.Len(t, timing.Samples, 2)
	assert.Equal(t, timing.Start, timing.Samples[0].Start)
	assert.Equal(t, timing.Samples[0].End, timing.Samples[1].Start)
	assert.Len(t, timing.Samples[0].Samples, 2)

	timing.Print(&buf)
	out := buf.String()
	for _, s := range []string{
		"Op", "Bits", "Parse", "Limbs", "Digits", "Combination", "1024",
		"Total",
	} {
		assert.Contains(t, out, s)
	}
}

func TestNilSample(t *testing.T) {
	var s *Sample
	s.SubSample("Limbs", time.Now())
	s.AbsSubSample("Digits", time.Millisecond)
	assert.Nil(t, s)
}
