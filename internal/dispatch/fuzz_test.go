package dispatch

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/fuzzil-dev/fuzzil/internal/builder"
	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
)

// FuzzBuild drives the dispatch loop with corpus bytes consumed into a
// seed and a budget, asserting the invariant every other test in this
// package asserts by construction: Code.Check() must never fail on
// anything this engine produces. A panic that is an
// *ir.InvariantViolation reaching here (rather than being contained
// deliberately as a programming-error signal) is the actual bug this
// target hunts for; every other panic is re-raised so `go test` reports
// it plainly.
func FuzzBuild(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{})

	descs := []registry.Descriptor{
		intGenerator(), stringGenerator(), addGenerator(), selfAbortGenerator(),
	}
	weights := map[string]int{
		"IntegerGenerator":    3,
		"StringGenerator":     2,
		"IntegerAddGenerator": 5,
		"SelfAbortGenerator":  1,
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		ff := fuzz.NewConsumer(data)
		seed, err := ff.GetInt()
		if err != nil {
			return
		}
		budget, err := ff.GetInt()
		if err != nil {
			return
		}
		if budget < 0 {
			budget = -budget
		}
		budget %= 2000

		defer func() {
			if r := recover(); r != nil {
				if iv, ok := r.(*ir.InvariantViolation); ok {
					t.Fatalf("invariant violation escaped the dispatch loop: %v", iv)
				}
				panic(r)
			}
		}()

		b := builder.New(int64(seed), environment.Default())
		reg := registry.New(descs, weights)
		e := New(b, reg)
		e.Bootstrap(3)
		e.Build(budget)

		if err := b.Code().Check(); err != nil {
			t.Fatalf("generated program failed Check: %v", err)
		}
	})
}
