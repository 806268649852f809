package random

import (
	"math/rand"
)

func Random[E any](r *rand.Rand, list []E) E {
	return list[r.Intn(len(list))]
}

// Between provides a value in [min, max) rounded to the given
// number of decimals.
func Between(r *rand.Rand, min, max float64, decimals int) float64 {
	v := min + r.Float64()*(max-min)
	f := 1.0
	for i := 0; i < decimals; i++ {
		f *= 10
	}
	return float64(int64(v*f)) / f
}
