package yayyson

import "math"

func nanFloat() float64    { return math.NaN() }
func posInfFloat() float64 { return math.Inf(1) }
func negInfFloat() float64 { return math.Inf(-1) }
