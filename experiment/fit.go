// SPDX-License-Identifier: MIT
package experiment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit is a least-squares polynomial y = c₀ + c₁·x + c₂·x² fitted to the
// samples, with its coefficient of determination.
type Fit struct {
	// Coefficients in ascending power order.
	Coefficients []float64

	// R2 is 1 for a perfect fit, 0 for no better than the mean.
	R2 float64
}

// Predict evaluates the fitted polynomial at x.
func (f *Fit) Predict(x float64) float64 {
	y := 0.0
	for i := len(f.Coefficients) - 1; i >= 0; i-- {
		y = y*x + f.Coefficients[i]
	}

	return y
}

// FitQuadratic fits y ≈ c₀ + c₁·x + c₂·x² by least squares over a
// Vandermonde system. Needs at least three samples.
func FitQuadratic(xs, ys []float64) (*Fit, error) {
	const degree = 2
	if len(xs) != len(ys) {
		return nil, ErrSampleMismatch
	}
	if len(xs) < degree+1 {
		return nil, ErrTooFewSamples
	}

	v := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		p := 1.0
		for j := 0; j <= degree; j++ {
			v.Set(i, j, p)
			p *= x
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(v, mat.NewVecDense(len(ys), ys)); err != nil {
		return nil, fmt.Errorf("quadratic fit: %w", err)
	}

	f := &Fit{Coefficients: make([]float64, degree+1)}
	for j := 0; j <= degree; j++ {
		f.Coefficients[j] = coef.AtVec(j)
	}
	preds := make([]float64, len(xs))
	for i, x := range xs {
		preds[i] = f.Predict(x)
	}
	f.R2 = rSquared(ys, preds)

	return f, nil
}

// PowerLaw is y = Coefficient · x^Exponent fitted as a line in log space;
// the exponent is the empirical complexity order.
type PowerLaw struct {
	Coefficient float64
	Exponent    float64

	// R2 is measured in log space, where the regression ran.
	R2 float64
}

// Predict evaluates the fitted power law at x.
func (p *PowerLaw) Predict(x float64) float64 {
	return p.Coefficient * math.Pow(x, p.Exponent)
}

// FitPowerLaw fits y ≈ a·x^b via linear regression on (ln x, ln y).
// Every sample must be positive; needs at least two.
func FitPowerLaw(xs, ys []float64) (*PowerLaw, error) {
	if len(xs) != len(ys) {
		return nil, ErrSampleMismatch
	}
	if len(xs) < 2 {
		return nil, ErrTooFewSamples
	}

	lx := make([]float64, len(xs))
	ly := make([]float64, len(ys))
	for i := range xs {
		if xs[i] <= 0 || ys[i] <= 0 {
			return nil, ErrNonPositiveSample
		}
		lx[i] = math.Log(xs[i])
		ly[i] = math.Log(ys[i])
	}

	alpha, beta := stat.LinearRegression(lx, ly, nil, false)

	return &PowerLaw{
		Coefficient: math.Exp(alpha),
		Exponent:    beta,
		R2:          stat.RSquared(lx, ly, nil, alpha, beta),
	}, nil
}

// rSquared compares predictions against the baseline of always guessing the
// mean. A flat sample with zero residuals counts as perfect.
func rSquared(ys, preds []float64) float64 {
	mean := stat.Mean(ys, nil)
	var ssRes, ssTot float64
	for i := range ys {
		r := ys[i] - preds[i]
		ssRes += r * r
		t := ys[i] - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1 - ssRes/ssTot
}
