package xmt

import (
	"hash"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BuildRootConcurrent computes bit for bit the same root as BuildRoot,
// fanning the pair hashing within each layer across up to workers goroutines.
//
// Layer derivation is a strict sequential dependency (layer k+1 needs all of
// layer k), so the only exploitable parallelism is within a layer. This is
// worthwhile only for very large leaf sequences; prefer BuildRoot otherwise.
//
// newHasher is called once per worker per layer, hash.Hash implementations
// are not safe for concurrent use. workers < 1 selects GOMAXPROCS.
func BuildRootConcurrent(newHasher func() hash.Hash, leaves []Value, workers int) (Value, error) {
	if len(leaves) == 0 {
		return Value{}, ErrEmptyLeaves
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	layer := leaves
	for len(layer) > 1 {
		cur := PadLayer(layer)
		next := make([]Value, len(cur)/2)

		pairs := len(next)
		chunk := (pairs + workers - 1) / workers

		eGroup := errgroup.Group{}
		for start := 0; start < pairs; start += chunk {
			end := min(start+chunk, pairs)
			eGroup.Go(func() error {
				hasher := newHasher()
				for p := start; p < end; p++ {
					parent, err := CombineValues(hasher, cur[2*p], cur[2*p+1])
					if err != nil {
						return err
					}
					next[p] = parent
				}
				return nil
			})
		}
		if err := eGroup.Wait(); err != nil {
			return Value{}, err
		}
		layer = next
	}
	return layer[0], nil
}
