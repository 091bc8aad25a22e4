package bvec_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/teenjuna/bvec"
	"github.com/teenjuna/bvec/internal/testing/require"
)

// Each goroutine owns its own vector, per the single-owner contract.
func TestVecManyOwners(t *testing.T) {
	t.Parallel()

	group := new(errgroup.Group)

	for range 8 {
		group.Go(func() error {
			const capacity = 64

			vec := bvec.New[int](capacity)
			var model []int

			for range 5000 {
				if rand.IntN(2) == 0 {
					value := rand.IntN(1000)
					ok := vec.TryPush(value)
					if ok != (len(model) < capacity) {
						return fmt.Errorf("push reported %v at length %d", ok, len(model))
					}
					if ok {
						model = append(model, value)
					}
				} else {
					value, ok := vec.Pop()
					if ok != (len(model) > 0) {
						return fmt.Errorf("pop reported %v at length %d", ok, len(model))
					}
					if ok {
						if value != model[len(model)-1] {
							return fmt.Errorf("popped %d, want %d", value, model[len(model)-1])
						}
						model = model[:len(model)-1]
					}
				}

				if vec.Len() != len(model) {
					return fmt.Errorf("length %d, want %d", vec.Len(), len(model))
				}
			}

			return nil
		})
	}

	require.Nil(t, group.Wait())
}
