package variate

import "math"

// Peter Acklam's rational approximation to the inverse of the standard
// normal CDF. Coefficients are his published values, unmodified; the
// approximation's maximum relative error is below 1.15e-9 across (0,1),
// which normal_test.go checks against an independent high-precision
// quantile.
var (
	invNormA = [6]float64{
		-3.969683028665376e+01,
		2.209460984245205e+02,
		-2.759285104469687e+02,
		1.383577518672690e+02,
		-3.066479806614716e+01,
		2.506628277459239e+00,
	}
	invNormB = [5]float64{
		-5.447609879822406e+01,
		1.615858368580409e+02,
		-1.556989798598866e+02,
		6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	invNormC = [6]float64{
		-7.784894002430293e-03,
		-3.223964580411365e-01,
		-2.400758277161838e+00,
		-2.549732539343734e+00,
		4.374664141464968e+00,
		2.938163982698783e+00,
	}
	invNormD = [4]float64{
		7.784695709041462e-03,
		3.224671290700398e-01,
		2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

// invNormPLow is the breakpoint between the tail and central pieces of the
// approximation; the upper breakpoint is its mirror 1 - invNormPLow.
const invNormPLow = 0.02425

// stdNormalQuantile returns the standard normal quantile at p. Out-of-range
// inputs follow the usual quantile conventions: -Inf at 0, +Inf at 1, NaN
// outside [0,1]. The upper half reduces to the lower half by symmetry, so
// the rational pieces are only ever evaluated for p <= 0.5.
func stdNormalQuantile(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	case p == 1:
		return math.Inf(1)
	}

	if p > 0.5 {
		return -stdNormalQuantile(1 - p)
	}

	if p < invNormPLow {
		// Lower tail: rational in q = sqrt(-2 ln p).
		q := math.Sqrt(-2 * math.Log(p))
		num := ((((invNormC[0]*q+invNormC[1])*q+invNormC[2])*q+invNormC[3])*q+invNormC[4])*q + invNormC[5]
		den := (((invNormD[0]*q+invNormD[1])*q+invNormD[2])*q+invNormD[3])*q + 1
		return num / den
	}

	// Central region: rational in r = q^2 where q = p - 0.5.
	q := p - 0.5
	r := q * q
	num := (((((invNormA[0]*r+invNormA[1])*r+invNormA[2])*r+invNormA[3])*r+invNormA[4])*r + invNormA[5]) * q
	den := ((((invNormB[0]*r+invNormB[1])*r+invNormB[2])*r+invNormB[3])*r+invNormB[4])*r + 1
	return num / den
}
