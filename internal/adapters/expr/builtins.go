package expr

import "math"

// builtinFuncs is the full function whitelist. Config can restrict the set
// but never extend it; nothing outside this table is callable.
func builtinFuncs() map[string]func(float64) float64 {
	return map[string]func(float64) float64{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"exp":   math.Exp,
		"ln":    math.Log,
		"log":   math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"abs":   math.Abs,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"sign":  sign,
	}
}

// builtinConsts is the standard constant table. Config can add constants on
// top of it.
func builtinConsts() map[string]float64 {
	return map[string]float64{
		"pi":  math.Pi,
		"π":   math.Pi,
		"e":   math.E,
		"tau": 2 * math.Pi,
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		// Preserves NaN, maps both zeros to 0.
		return x * 0
	}
}
