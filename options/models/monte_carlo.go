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
	"math/rand"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kervinlow/quantstruct/options"
)

/*
AveragingKind selects the path-average convention a MonteCarloModel
uses for Asian contracts.
*/
type AveragingKind int

const (
	Arithmetic AveragingKind = iota
	Geometric
)

/*
MonteCarloModel prices European, Asian, Binary, Barrier, Lookback and
Rainbow contracts by simulating geometric Brownian motion paths under
the risk-neutral measure. A simulation call owns no RNG state beyond
the caller-supplied Source: callers running concurrent MonteCarloModel
invocations must supply distinct sources.

Greeks are central finite differences (vega and rho bump by 1e-4, delta
and gamma bump spot by 1e-4 * Spot, theta bumps TimeToMaturity by
1e-4 * TimeToMaturity and negates to express decay with calendar time
rather than time-to-maturity). Every bump reuses the same per-partition seed
sequence as the unbumped price (common random numbers), which cancels
much of the simulation noise between the two evaluations.
*/
type MonteCarloModel struct {
	TimeToMaturity float64
	RiskFreeRate   float64
	Volatility     float64
	Paths          int
	Steps          int
	Averaging      AveragingKind
	Source         rand.Source
}

func newMonteCarloModel(timeToMaturity, riskFreeRate, volatility float64, paths, steps int, averaging AveragingKind, source rand.Source) (*MonteCarloModel, error) {
	if timeToMaturity <= 0 {
		return nil, options.InvalidParameterError("time to maturity must be positive")
	}
	if volatility <= 0 {
		return nil, options.InvalidParameterError("volatility must be positive")
	}
	if paths < 1 {
		return nil, options.InvalidParameterError("paths must be at least 1")
	}
	if steps < 1 {
		return nil, options.InvalidParameterError("steps must be at least 1")
	}
	if source == nil {
		return nil, options.InvalidParameterError("a random source is required")
	}
	return &MonteCarloModel{
		TimeToMaturity: timeToMaturity,
		RiskFreeRate:   riskFreeRate,
		Volatility:     volatility,
		Paths:          paths,
		Steps:          steps,
		Averaging:      averaging,
		Source:         source,
	}, nil
}

/*
NewMonteCarloModelArithmetic creates a MonteCarloModel that averages
sampled path points arithmetically for Asian contracts.
*/
func NewMonteCarloModelArithmetic(timeToMaturity, riskFreeRate, volatility float64, paths, steps int, source rand.Source) (*MonteCarloModel, error) {
	return newMonteCarloModel(timeToMaturity, riskFreeRate, volatility, paths, steps, Arithmetic, source)
}

/*
NewMonteCarloModelGeometric creates a MonteCarloModel that averages
sampled path points geometrically for Asian contracts.
*/
func NewMonteCarloModelGeometric(timeToMaturity, riskFreeRate, volatility float64, paths, steps int, source rand.Source) (*MonteCarloModel, error) {
	return newMonteCarloModel(timeToMaturity, riskFreeRate, volatility, paths, steps, Geometric, source)
}

func monteCarloSupports(c options.Contract) bool {
	switch c.Style {
	case options.European, options.Asian, options.Binary, options.Barrier, options.Lookback, options.Rainbow:
		return true
	default:
		return false
	}
}

/*
simulatePath draws one single-asset GBM path and returns the terminal
observable fields a non-basket payoff may read.
*/
func (m *MonteCarloModel) simulatePath(c options.Contract, normal *distuv.Normal) options.Observable {
	dt := m.TimeToMaturity / float64(m.Steps)
	q := c.Instrument.ContinuousDividendYield
	drift := (m.RiskFreeRate - q - 0.5*m.Volatility*m.Volatility) * dt
	diffusion := m.Volatility * math.Sqrt(dt)

	spot := c.Instrument.AdjustedSpot(m.TimeToMaturity)
	sum := spot
	logSum := math.Log(spot)
	min, max := spot, spot
	n := 1
	for i := 0; i < m.Steps; i++ {
		spot *= math.Exp(drift + diffusion*normal.Rand())
		sum += spot
		logSum += math.Log(spot)
		if spot < min {
			min = spot
		}
		if spot > max {
			max = spot
		}
		n++
	}
	avg := sum / float64(n)
	if m.Averaging == Geometric {
		avg = math.Exp(logSum / float64(n))
	}
	return options.Observable{Terminal: spot, Average: avg, Min: min, Max: max}
}

/*
simulateBasket draws one GBM path per basket asset, each asset moving
independently off its own dividend-adjusted spot and continuous yield
but sharing the model's volatility and rate. The data model carries no
cross-asset correlation, so paths are drawn independently.
*/
func (m *MonteCarloModel) simulateBasket(c options.Contract, normal *distuv.Normal) []float64 {
	assets := c.Instrument.Assets
	basket := make([]float64, len(assets))
	dt := m.TimeToMaturity / float64(m.Steps)
	diffusion := m.Volatility * math.Sqrt(dt)
	for idx, asset := range assets {
		drift := (m.RiskFreeRate - asset.Instrument.ContinuousDividendYield - 0.5*m.Volatility*m.Volatility) * dt
		spot := asset.Instrument.AdjustedSpot(m.TimeToMaturity)
		for i := 0; i < m.Steps; i++ {
			spot *= math.Exp(drift + diffusion*normal.Rand())
		}
		basket[idx] = spot
	}
	return basket
}

func (m *MonteCarloModel) payoffAt(c options.Contract, normal *distuv.Normal) float64 {
	var payoff float64
	if c.Style == options.Rainbow {
		payoff = c.Payoff(options.Observable{Basket: m.simulateBasket(c, normal)})
	} else {
		payoff = c.Payoff(m.simulatePath(c, normal))
	}
	// A path that overflowed during simulation contributes nothing.
	if math.IsInf(payoff, 0) || math.IsNaN(payoff) {
		return 0.0
	}
	return payoff
}

func kahanAdd(sum, compensation, x float64) (float64, float64) {
	y := x - compensation
	t := sum + y
	compensation = (t - sum) - y
	return t, compensation
}

func (m *MonteCarloModel) workerCount() int {
	workers := runtime.GOMAXPROCS(0)
	if workers > m.Paths {
		workers = m.Paths
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

/*
seeds draws one independent seed per partition from the model's
Source. Capturing them once lets a Greek computation reuse the exact
same partitioning and shock sequence across its bumped price
evaluations.
*/
func (m *MonteCarloModel) seeds() []int64 {
	workers := m.workerCount()
	s := make([]int64, workers)
	for i := range s {
		s[i] = m.Source.Int63()
	}
	return s
}

/*
simulateSum partitions Paths disjointly across len(seeds) goroutines,
each with its own independently-seeded Normal draw, and combines the
partial Kahan sums commutatively.
*/
func (m *MonteCarloModel) simulateSum(c options.Contract, seeds []int64) float64 {
	workers := len(seeds)
	base := m.Paths / workers
	remainder := m.Paths % workers

	partials := make(chan float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		count := base
		if w < remainder {
			count++
		}
		wg.Add(1)
		go func(n int, seed int64) {
			defer wg.Done()
			normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
			sum, compensation := 0.0, 0.0
			for i := 0; i < n; i++ {
				sum, compensation = kahanAdd(sum, compensation, m.payoffAt(c, &normal))
			}
			partials <- sum
		}(count, seeds[w])
	}
	go func() {
		wg.Wait()
		close(partials)
	}()

	total, compensation := 0.0, 0.0
	for partial := range partials {
		total, compensation = kahanAdd(total, compensation, partial)
	}
	return total
}

func (m *MonteCarloModel) priceWithSeeds(c options.Contract, seeds []int64) (float64, error) {
	if !monteCarloSupports(c) {
		return 0, unsupported("MonteCarloModel", c)
	}
	sum := m.simulateSum(c, seeds)
	return math.Exp(-m.RiskFreeRate*m.TimeToMaturity) * sum / float64(m.Paths), nil
}

/*
Price returns the discounted mean simulated payoff.
*/
func (m *MonteCarloModel) Price(c options.Contract) (float64, error) {
	return m.priceWithSeeds(c, m.seeds())
}

/*
Delta is a central finite difference on spot.
*/
func (m *MonteCarloModel) Delta(c options.Contract) (float64, error) {
	if !monteCarloSupports(c) {
		return 0, unsupported("MonteCarloModel", c)
	}
	h := 1e-4 * c.Instrument.Spot
	seeds := m.seeds()
	pUp, err := m.priceWithSeeds(withBumpedSpot(c, h), seeds)
	if err != nil {
		return 0, err
	}
	pDown, err := m.priceWithSeeds(withBumpedSpot(c, -h), seeds)
	if err != nil {
		return 0, err
	}
	return (pUp - pDown) / (2 * h), nil
}

/*
Gamma is a central finite difference on spot.
*/
func (m *MonteCarloModel) Gamma(c options.Contract) (float64, error) {
	if !monteCarloSupports(c) {
		return 0, unsupported("MonteCarloModel", c)
	}
	h := 1e-4 * c.Instrument.Spot
	seeds := m.seeds()
	pUp, err := m.priceWithSeeds(withBumpedSpot(c, h), seeds)
	if err != nil {
		return 0, err
	}
	p0, err := m.priceWithSeeds(c, seeds)
	if err != nil {
		return 0, err
	}
	pDown, err := m.priceWithSeeds(withBumpedSpot(c, -h), seeds)
	if err != nil {
		return 0, err
	}
	return (pUp - 2*p0 + pDown) / (h * h), nil
}

/*
Theta is a central finite difference on time to maturity, negated so a
positive bump (calendar time passing) reads as time decay.
*/
func (m *MonteCarloModel) Theta(c options.Contract) (float64, error) {
	if !monteCarloSupports(c) {
		return 0, unsupported("MonteCarloModel", c)
	}
	h := 1e-4 * m.TimeToMaturity
	if h == 0 {
		h = 1e-4
	}
	seeds := m.seeds()
	up := *m
	up.TimeToMaturity = m.TimeToMaturity + h
	down := *m
	down.TimeToMaturity = m.TimeToMaturity - h
	pUp, err := up.priceWithSeeds(c, seeds)
	if err != nil {
		return 0, err
	}
	pDown, err := down.priceWithSeeds(c, seeds)
	if err != nil {
		return 0, err
	}
	return -(pUp - pDown) / (2 * h), nil
}

/*
Vega is a central finite difference on volatility.
*/
func (m *MonteCarloModel) Vega(c options.Contract) (float64, error) {
	if !monteCarloSupports(c) {
		return 0, unsupported("MonteCarloModel", c)
	}
	const h = 1e-4
	seeds := m.seeds()
	up := *m
	up.Volatility = m.Volatility + h
	down := *m
	down.Volatility = m.Volatility - h
	pUp, err := up.priceWithSeeds(c, seeds)
	if err != nil {
		return 0, err
	}
	pDown, err := down.priceWithSeeds(c, seeds)
	if err != nil {
		return 0, err
	}
	return (pUp - pDown) / (2 * h), nil
}

/*
Rho is a central finite difference on the risk-free rate.
*/
func (m *MonteCarloModel) Rho(c options.Contract) (float64, error) {
	if !monteCarloSupports(c) {
		return 0, unsupported("MonteCarloModel", c)
	}
	const h = 1e-4
	seeds := m.seeds()
	up := *m
	up.RiskFreeRate = m.RiskFreeRate + h
	down := *m
	down.RiskFreeRate = m.RiskFreeRate - h
	pUp, err := up.priceWithSeeds(c, seeds)
	if err != nil {
		return 0, err
	}
	pDown, err := down.priceWithSeeds(c, seeds)
	if err != nil {
		return 0, err
	}
	return (pUp - pDown) / (2 * h), nil
}

/*
ImpliedVolatility runs damped Newton-Raphson: each step is clamped to
[-0.1, 0.1], and the search stops early once the price residual or the
step itself drops below 1e-5. A non-positive market price, or a call
price exceeding spot, has no sensible implied volatility and
short-circuits to a converged 0.
*/
func (m *MonteCarloModel) ImpliedVolatility(c options.Contract, marketPrice float64) (float64, bool, error) {
	if !monteCarloSupports(c) {
		return 0, false, unsupported("MonteCarloModel", c)
	}
	if marketPrice <= 0 || (c.Type == options.Call && marketPrice > c.Instrument.Spot) {
		return 0, true, nil
	}

	const tolerance = 1e-5
	const maxIterations = 100
	const maxStep = 0.1

	sigma := m.Volatility
	if sigma <= 0 {
		sigma = 0.2
	}
	seeds := m.seeds()
	for i := 0; i < maxIterations; i++ {
		trial := *m
		trial.Volatility = sigma
		price, err := trial.priceWithSeeds(c, seeds)
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
		step := diff / vega
		if step > maxStep {
			step = maxStep
		} else if step < -maxStep {
			step = -maxStep
		}
		sigma += step
		if sigma <= 0 {
			sigma = 1e-4
		}
		if math.Abs(step) < tolerance {
			return sigma, true, nil
		}
	}
	return sigma, false, nil
}
