// Package workload produces synthetic job mixes for the demo binary and
// soak tests.
package workload

import (
	"fmt"
	"math/rand"
)

// Spec describes one synthetic job.
type Spec struct {
	Weight   float64
	Duration float64
	Name     string
}

// Uniform returns n identical jobs.
func Uniform(n int, weight, duration float64) []Spec {
	specs := make([]Spec, n)
	for i := range specs {
		specs[i] = Spec{
			Weight:   weight,
			Duration: duration,
			Name:     fmt.Sprintf("uniform-%d", i),
		}
	}
	return specs
}

// HeavyTail returns a mix where most jobs are short and a few carry most of
// the work, the shape interactive workloads tend to have. The same rng seed
// reproduces the same mix.
func HeavyTail(n int, rng *rand.Rand) []Spec {
	specs := make([]Spec, 0, n)
	for i := 0; i < n; i++ {
		if rng.Float64() < 0.9 {
			specs = append(specs, Spec{
				Weight:   1 + rng.Float64()*4,
				Duration: 0.5 + rng.Float64()*2,
				Name:     fmt.Sprintf("short-%d", i),
			})
		} else {
			specs = append(specs, Spec{
				Weight:   0.5 + rng.Float64()*0.5,
				Duration: 20 + rng.Float64()*80,
				Name:     fmt.Sprintf("long-%d", i),
			})
		}
	}
	return specs
}

// StarvationProbe returns one low-weight giant followed by n high-weight
// minnows; useful for watching the aging term rescue the giant.
func StarvationProbe(n int) []Spec {
	specs := make([]Spec, 0, n+1)
	specs = append(specs, Spec{Weight: 0.01, Duration: 1000, Name: "giant"})
	for i := 0; i < n; i++ {
		specs = append(specs, Spec{
			Weight:   10,
			Duration: 1,
			Name:     fmt.Sprintf("minnow-%d", i),
		})
	}
	return specs
}
