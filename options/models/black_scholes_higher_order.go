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

	qmath "github.com/kervinlow/quantstruct/math"
	"github.com/kervinlow/quantstruct/options"
)

/*
BlackScholesModel implements the higher-order Greeks analytically for
European contracts only; Binary closed forms don't have settled
second-order formulas in the standard references, so they report
unsupported. This satisfies options/greeks.HigherOrderGreeks.
*/
func (m *BlackScholesModel) requireEuropeanForHigherOrder(c options.Contract) error {
	if c.Style != options.European {
		return unsupported("BlackScholesModel higher-order greeks", c)
	}
	return nil
}

/*
Lambda is the option's elasticity: the percentage change in price for a
percentage change in spot, delta * S / price.
*/
func (m *BlackScholesModel) Lambda(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	delta, err := m.Delta(c)
	if err != nil {
		return 0, err
	}
	price, err := m.Price(c)
	if err != nil {
		return 0, err
	}
	if price == 0 {
		return 0, options.NumericalInstabilityError("lambda is undefined at zero price")
	}
	return delta * c.Instrument.Spot / price, nil
}

/*
Vanna is d(delta)/d(volatility), equivalently d(vega)/d(spot).
*/
func (m *BlackScholesModel) Vanna(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	q := c.Instrument.ContinuousDividendYield
	T := m.TimeToMaturity
	return -math.Exp(-q*T) * qmath.PDF(d1) * d2 / vol, nil
}

/*
Charm is d(delta)/d(time).
*/
func (m *BlackScholesModel) Charm(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	q := c.Instrument.ContinuousDividendYield
	r := m.RiskFreeRate
	T := m.TimeToMaturity
	discQ := math.Exp(-q * T)
	sqrtT := math.Sqrt(T)
	common := discQ * qmath.PDF(d1) * (2*(r-q)*T - d2*vol*sqrtT) / (2 * T * vol * sqrtT)
	if c.Type == options.Call {
		return q*discQ*qmath.CDF(d1) - common, nil
	}
	return -q*discQ*qmath.CDF(-d1) - common, nil
}

/*
Vomma is d(vega)/d(volatility).
*/
func (m *BlackScholesModel) Vomma(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	vega, err := m.Vega(c)
	if err != nil {
		return 0, err
	}
	return vega * d1 * d2 / vol, nil
}

/*
Veta is d(vega)/d(time).
*/
func (m *BlackScholesModel) Veta(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	q := c.Instrument.ContinuousDividendYield
	r := m.RiskFreeRate
	T := m.TimeToMaturity
	sqrtT := math.Sqrt(T)
	adjSpot := c.Instrument.AdjustedSpot(T)
	discQ := math.Exp(-q * T)
	term := q + ((r-q)*d1)/(vol*sqrtT) - (1+d1*d2)/(2*T)
	return -adjSpot * discQ * qmath.PDF(d1) * sqrtT * term, nil
}

/*
Speed is d(gamma)/d(spot).
*/
func (m *BlackScholesModel) Speed(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, _ := m.d1d2(c, vol)
	gamma, err := m.Gamma(c)
	if err != nil {
		return 0, err
	}
	T := m.TimeToMaturity
	adjSpot := c.Instrument.AdjustedSpot(T)
	return -gamma / adjSpot * (d1/(vol*math.Sqrt(T)) + 1), nil
}

/*
Zomma is d(gamma)/d(volatility).
*/
func (m *BlackScholesModel) Zomma(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	gamma, err := m.Gamma(c)
	if err != nil {
		return 0, err
	}
	return gamma * (d1*d2 - 1) / vol, nil
}

/*
Color is d(gamma)/d(time).
*/
func (m *BlackScholesModel) Color(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	q := c.Instrument.ContinuousDividendYield
	r := m.RiskFreeRate
	T := m.TimeToMaturity
	sqrtT := math.Sqrt(T)
	adjSpot := c.Instrument.AdjustedSpot(T)
	discQ := math.Exp(-q * T)
	bracket := 2*q*T + 1 + (2*(r-q)*T-d2*vol*sqrtT)*d1/(vol*sqrtT)
	return -discQ * qmath.PDF(d1) / (2 * adjSpot * T * vol * sqrtT) * bracket, nil
}

/*
Ultima is d(vomma)/d(volatility).
*/
func (m *BlackScholesModel) Ultima(c options.Contract) (float64, error) {
	if err := m.requireEuropeanForHigherOrder(c); err != nil {
		return 0, err
	}
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	vega, err := m.Vega(c)
	if err != nil {
		return 0, err
	}
	return -vega / (vol * vol) * (d1*d2*(1-d1*d2) + d1*d1 + d2*d2), nil
}
