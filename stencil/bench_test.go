package stencil_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvarray/stencil"
	"github.com/katalvlaran/lvarray/traverse"
)

var sinkF float64

func benchStep(b *testing.B, p traverse.Policy) {
	for _, n := range []int{32, 64} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			s, err := stencil.New(n, stencil.WithPolicy(p))
			if err != nil {
				b.Fatal(err)
			}
			defer s.Close()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := s.Step(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()
			if sinkF, err = stencil.Checksum(s.P2()); err != nil {
				b.Fatal(err)
			}
		})
	}
}

func BenchmarkStepNatural(b *testing.B) { benchStep(b, traverse.Natural) }
func BenchmarkStepFast(b *testing.B)    { benchStep(b, traverse.Fast) }

// BenchmarkRun is the classic 112³ run cut down to 10 steps per iteration.
func BenchmarkRun(b *testing.B) {
	s, err := stencil.New(112)
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Setup(); err != nil {
			b.Fatal(err)
		}
		if sinkF, err = s.Run(context.Background(), 10, nil); err != nil {
			b.Fatal(err)
		}
	}
}
