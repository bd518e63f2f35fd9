/*
******************************************************************************
MIT License

Copyright (c) 2016 Kervin Low

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
******************************************************************************
*/

package models

import (
	"math"

	"github.com/kervinlow/quantstruct/options"
)

/*
BinomialTreeModel prices European and American options on a
Cox-Ross-Rubinstein lattice. Delta, gamma and theta are read directly
off the first two layers of the tree (delta needs only the first layer,
which every tree has); vega, rho, and gamma/theta on a one-step tree
fall back to central finite differences.
*/
type BinomialTreeModel struct {
	TimeToMaturity float64
	RiskFreeRate   float64
	Volatility     float64
	Steps          int
}

/*
NewBinomialTreeModel creates a BinomialTreeModel with the given number
of lattice steps.
*/
func NewBinomialTreeModel(timeToMaturity, riskFreeRate, volatility float64, steps int) (*BinomialTreeModel, error) {
	if timeToMaturity <= 0 {
		return nil, options.InvalidParameterError("time to maturity must be positive")
	}
	if volatility <= 0 {
		return nil, options.InvalidParameterError("volatility must be positive")
	}
	if steps < 1 {
		return nil, options.InvalidParameterError("steps must be at least 1")
	}
	return &BinomialTreeModel{
		TimeToMaturity: timeToMaturity,
		RiskFreeRate:   riskFreeRate,
		Volatility:     volatility,
		Steps:          steps,
	}, nil
}

func binomialSupports(c options.Contract) bool {
	return c.Style == options.European || c.Style == options.American
}

/*
lattice holds the full backward-induction value array plus the tree
parameters needed to read Greeks off its layers.
*/
type lattice struct {
	V  [][]float64
	U  float64
	Dt float64
	S0 float64
}

func (m *BinomialTreeModel) buildLattice(c options.Contract) (*lattice, error) {
	n := m.Steps
	dt := m.TimeToMaturity / float64(n)
	u := math.Exp(m.Volatility * math.Sqrt(dt))
	d := 1.0 / u
	q := c.Instrument.ContinuousDividendYield
	p := (math.Exp((m.RiskFreeRate-q)*dt) - d) / (u - d)
	if p <= 0 || p >= 1 {
		return nil, options.NumericalInstabilityError("binomial tree risk-neutral probability outside (0,1)")
	}
	s0 := c.Instrument.AdjustedSpot(m.TimeToMaturity)
	disc := math.Exp(-m.RiskFreeRate * dt)

	v := make([][]float64, n+1)
	v[n] = make([]float64, n+1)
	for j := 0; j <= n; j++ {
		spot := s0 * math.Pow(u, float64(n-2*j))
		v[n][j] = c.Payoff(options.Observable{Terminal: spot})
	}
	for i := n - 1; i >= 0; i-- {
		v[i] = make([]float64, i+1)
		for j := 0; j <= i; j++ {
			continuation := disc * (p*v[i+1][j] + (1-p)*v[i+1][j+1])
			if c.Style == options.American {
				spot := s0 * math.Pow(u, float64(i-2*j))
				intrinsic := c.Payoff(options.Observable{Terminal: spot})
				v[i][j] = math.Max(intrinsic, continuation)
			} else {
				v[i][j] = continuation
			}
		}
	}
	return &lattice{V: v, U: u, Dt: dt, S0: s0}, nil
}

/*
Price returns the lattice value at the root node.
*/
func (m *BinomialTreeModel) Price(c options.Contract) (float64, error) {
	if !binomialSupports(c) {
		return 0, unsupported("BinomialTreeModel", c)
	}
	lat, err := m.buildLattice(c)
	if err != nil {
		return 0, err
	}
	return lat.V[0][0], nil
}

/*
ImpliedVolatility runs Newton-Raphson on sigma using the tree's own
price and (finite-difference) vega, seeded at the model's current
volatility.
*/
func (m *BinomialTreeModel) ImpliedVolatility(c options.Contract, marketPrice float64) (float64, bool, error) {
	const tolerance = 1e-5
	const maxIterations = 100

	sigma := m.Volatility
	if sigma <= 0 {
		sigma = 0.2
	}
	for i := 0; i < maxIterations; i++ {
		trial := *m
		trial.Volatility = sigma
		price, err := trial.Price(c)
		if err != nil {
			return sigma, false, err
		}
		diff := marketPrice - price
		if math.Abs(diff) < tolerance {
			return sigma, true, nil
		}
		vega, err := trial.Vega(c)
		if err != nil {
			return sigma, false, err
		}
		if math.Abs(vega) < 1e-12 {
			return sigma, false, nil
		}
		sigma += diff / vega
		if sigma <= 0 {
			sigma = 1e-4
		}
	}
	return sigma, false, nil
}

func withBumpedSpot(c options.Contract, ds float64) options.Contract {
	bumped := c
	bumped.Instrument = bumped.Instrument.WithSpot(bumped.Instrument.Spot + ds)
	return bumped
}

/*
Delta is read off the tree's first layer when Steps >= 1 (always true
by construction); the two nodes one step from the root already encode
the dividend-adjusted spot move.
*/
func (m *BinomialTreeModel) Delta(c options.Contract) (float64, error) {
	if !binomialSupports(c) {
		return 0, unsupported("BinomialTreeModel", c)
	}
	lat, err := m.buildLattice(c)
	if err != nil {
		return 0, err
	}
	su := lat.S0 * lat.U
	sd := lat.S0 / lat.U
	return (lat.V[1][0] - lat.V[1][1]) / (su - sd), nil
}

/*
Gamma is read off the tree's second layer when Steps >= 2; a one-step
tree falls back to a central finite difference on spot.
*/
func (m *BinomialTreeModel) Gamma(c options.Contract) (float64, error) {
	if !binomialSupports(c) {
		return 0, unsupported("BinomialTreeModel", c)
	}
	if m.Steps < 2 {
		return m.gammaFD(c)
	}
	lat, err := m.buildLattice(c)
	if err != nil {
		return 0, err
	}
	suu := lat.S0 * lat.U * lat.U
	sdd := lat.S0 / (lat.U * lat.U)
	up := (lat.V[2][0] - lat.V[2][1]) / (suu - lat.S0)
	down := (lat.V[2][1] - lat.V[2][2]) / (lat.S0 - sdd)
	return (up - down) / (0.5 * (suu - sdd)), nil
}

func (m *BinomialTreeModel) gammaFD(c options.Contract) (float64, error) {
	h := 1e-4 * c.Instrument.Spot
	pUp, err := m.Price(withBumpedSpot(c, h))
	if err != nil {
		return 0, err
	}
	p0, err := m.Price(c)
	if err != nil {
		return 0, err
	}
	pDown, err := m.Price(withBumpedSpot(c, -h))
	if err != nil {
		return 0, err
	}
	return (pUp - 2*p0 + pDown) / (h * h), nil
}

/*
Theta is read off the middle node two steps from the root (the node
reached after 2*Dt of elapsed time at an unchanged spot) when Steps >=
2; a one-step tree falls back to a finite difference bumping time to
maturity.
*/
func (m *BinomialTreeModel) Theta(c options.Contract) (float64, error) {
	if !binomialSupports(c) {
		return 0, unsupported("BinomialTreeModel", c)
	}
	if m.Steps < 2 {
		return m.thetaFD(c)
	}
	lat, err := m.buildLattice(c)
	if err != nil {
		return 0, err
	}
	return (lat.V[2][1] - lat.V[0][0]) / (2 * lat.Dt), nil
}

func (m *BinomialTreeModel) thetaFD(c options.Contract) (float64, error) {
	h := 1e-4 * m.TimeToMaturity
	if h == 0 {
		h = 1e-4
	}
	up := *m
	up.TimeToMaturity = m.TimeToMaturity + h
	down := *m
	down.TimeToMaturity = m.TimeToMaturity - h
	pUp, err := up.Price(c)
	if err != nil {
		return 0, err
	}
	pDown, err := down.Price(c)
	if err != nil {
		return 0, err
	}
	return -(pUp - pDown) / (2 * h), nil
}

/*
Vega is a central finite difference on volatility; the CRR lattice has
no direct reading for it.
*/
func (m *BinomialTreeModel) Vega(c options.Contract) (float64, error) {
	if !binomialSupports(c) {
		return 0, unsupported("BinomialTreeModel", c)
	}
	const h = 1e-4
	up := *m
	up.Volatility = m.Volatility + h
	down := *m
	down.Volatility = m.Volatility - h
	pUp, err := up.Price(c)
	if err != nil {
		return 0, err
	}
	pDown, err := down.Price(c)
	if err != nil {
		return 0, err
	}
	return (pUp - pDown) / (2 * h), nil
}

/*
Rho is a central finite difference on the risk-free rate; the CRR
lattice has no direct reading for it.
*/
func (m *BinomialTreeModel) Rho(c options.Contract) (float64, error) {
	if !binomialSupports(c) {
		return 0, unsupported("BinomialTreeModel", c)
	}
	const h = 1e-4
	up := *m
	up.RiskFreeRate = m.RiskFreeRate + h
	down := *m
	down.RiskFreeRate = m.RiskFreeRate - h
	pUp, err := up.Price(c)
	if err != nil {
		return 0, err
	}
	pDown, err := down.Price(c)
	if err != nil {
		return 0, err
	}
	return (pUp - pDown) / (2 * h), nil
}
