package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a zero-filled tensor. Panics on an invalid shape;
// callers constructing from untrusted dimensions should use New.
func Zeros(rows, cols int) *Dense {
	d, err := New(rows, cols)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return d
}

// Full creates a tensor with every element set to v.
func Full(rows, cols int, v float64) *Dense {
	d := Zeros(rows, cols)
	for i := range d.data {
		d.data[i] = v
	}
	return d
}

// Randn creates a tensor with elements drawn from the standard normal
// distribution using the supplied source. The caller owns the source, so
// a fixed seed gives reproducible initialization.
func Randn(rows, cols int, rng *rand.Rand) *Dense {
	d := Zeros(rows, cols)
	for i := range d.data {
		d.data[i] = rng.NormFloat64()
	}
	return d
}
