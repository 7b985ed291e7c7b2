package msis

import "fmt"

// splineFree marks an end slope as unconstrained (natural spline end).
const splineFree = 0.99e30

// splineFit returns the second derivatives of the cubic spline through
// (x, y). x must be strictly increasing. End slopes at or above
// splineFree leave that end natural.
func splineFit(x, y []float64, yp1, ypn float64) ([]float64, error) {
	n := len(x)
	if n < 2 || len(y) != n {
		return nil, fmt.Errorf("%w: spline needs at least two matching nodes", ErrMath)
	}
	for i := 1; i < n; i++ {
		if x[i] == x[i-1] {
			return nil, fmt.Errorf("%w: duplicate spline node at %g", ErrMath, x[i])
		}
	}

	y2 := make([]float64, n)
	u := make([]float64, n)
	if yp1 <= splineFree {
		y2[0] = -0.5
		u[0] = (3 / (x[1] - x[0])) * ((y[1]-y[0])/(x[1]-x[0]) - yp1)
	}
	for i := 1; i < n-1; i++ {
		sig := (x[i] - x[i-1]) / (x[i+1] - x[i-1])
		p := sig*y2[i-1] + 2
		y2[i] = (sig - 1) / p
		u[i] = (6*((y[i+1]-y[i])/(x[i+1]-x[i])-(y[i]-y[i-1])/(x[i]-x[i-1]))/(x[i+1]-x[i-1]) - sig*u[i-1]) / p
	}

	var qn, un float64
	if ypn <= splineFree {
		qn = 0.5
		un = (3 / (x[n-1] - x[n-2])) * (ypn - (y[n-1]-y[n-2])/(x[n-1]-x[n-2]))
	}
	y2[n-1] = (un - qn*u[n-2]) / (qn*y2[n-2] + 1)
	for k := n - 2; k >= 0; k-- {
		y2[k] = y2[k]*y2[k+1] + u[k]
	}
	return y2, nil
}

// splineEval interpolates the spline at xv.
func splineEval(x, y, y2 []float64, xv float64) (float64, error) {
	lo, hi := 0, len(x)-1
	for hi-lo > 1 {
		k := (hi + lo) / 2
		if x[k] > xv {
			hi = k
		} else {
			lo = k
		}
	}
	h := x[hi] - x[lo]
	if h == 0 {
		return 0, fmt.Errorf("%w: zero-width spline interval at %g", ErrMath, x[lo])
	}
	a := (x[hi] - xv) / h
	b := (xv - x[lo]) / h
	return a*y[lo] + b*y[hi] + ((a*a*a-a)*y2[lo]+(b*b*b-b)*y2[hi])*h*h/6, nil
}

// splineIntegral integrates the spline from x[0] to xv. Fewer than two
// nodes integrate to zero.
func splineIntegral(x, y, y2 []float64, xv float64) float64 {
	var sum float64
	lo, hi := 0, 1
	n := len(x)
	if n < 2 || len(y) < n || len(y2) < n {
		return 0
	}
	for xv > x[lo] && hi < n {
		xx := xv
		if hi < n-1 && xv >= x[hi] {
			xx = x[hi]
		}
		h := x[hi] - x[lo]
		a := (x[hi] - xx) / h
		b := (xx - x[lo]) / h
		a2, b2 := a*a, b*b
		sum += ((1-a2)*y[lo]/2 + b2*y[hi]/2 + ((-(1+a2*a2)/4+a2/2)*y2[lo]+(b2*b2/4-b2/2)*y2[hi])*h*h/6) * h
		lo++
		hi++
	}
	return sum
}
