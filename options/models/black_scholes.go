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
BlackScholesModel is the closed-form pricing model. It supports European
options and both Binary kinds (cash-or-nothing and asset-or-nothing);
every other style returns UnsupportedContractError.

The dividend-adjusted spot S' = Instrument.AdjustedSpot(T) enters d1
and d2 and the European formulae. The asset-or-nothing price multiplies
by the raw spot by convention of that closed form, and the Binary Greeks
use the raw spot wherever the spot appears outside d1 and d2.
*/
type BlackScholesModel struct {
	TimeToMaturity float64
	RiskFreeRate   float64
	Volatility     float64
}

/*
NewBlackScholesModel creates a BlackScholesModel for a given time
horizon, risk-free rate and volatility.
*/
func NewBlackScholesModel(timeToMaturity, riskFreeRate, volatility float64) (*BlackScholesModel, error) {
	if timeToMaturity <= 0 {
		return nil, options.InvalidParameterError("time to maturity must be positive")
	}
	if volatility <= 0 {
		return nil, options.InvalidParameterError("volatility must be positive")
	}
	return &BlackScholesModel{
		TimeToMaturity: timeToMaturity,
		RiskFreeRate:   riskFreeRate,
		Volatility:     volatility,
	}, nil
}

/*
d1d2 computes d1 and d2 for the given contract at the given volatility
(the volatility argument, rather than m.Volatility, lets
ImpliedVolatility re-evaluate the formula at trial sigmas without
mutating the model).
*/
func (m *BlackScholesModel) d1d2(c options.Contract, vol float64) (float64, float64) {
	sqrtT := math.Sqrt(m.TimeToMaturity)
	adjSpot := c.Instrument.AdjustedSpot(m.TimeToMaturity)
	d1 := (math.Log(adjSpot/c.Strike) +
		(m.RiskFreeRate-c.Instrument.ContinuousDividendYield+0.5*vol*vol)*m.TimeToMaturity) /
		(vol * sqrtT)
	d2 := d1 - vol*sqrtT
	return d1, d2
}

func (m *BlackScholesModel) priceEuropean(c options.Contract, vol float64) float64 {
	d1, d2 := m.d1d2(c, vol)
	adjSpot := c.Instrument.AdjustedSpot(m.TimeToMaturity)
	q := c.Instrument.ContinuousDividendYield
	discR := math.Exp(-m.RiskFreeRate * m.TimeToMaturity)
	discQ := math.Exp(-q * m.TimeToMaturity)
	if c.Type == options.Call {
		return adjSpot*discQ*qmath.CDF(d1) - c.Strike*discR*qmath.CDF(d2)
	}
	return c.Strike*discR*qmath.CDF(-d2) - adjSpot*discQ*qmath.CDF(-d1)
}

func (m *BlackScholesModel) priceCashOrNothing(c options.Contract, vol float64) float64 {
	_, d2 := m.d1d2(c, vol)
	discR := math.Exp(-m.RiskFreeRate * m.TimeToMaturity)
	if c.Type == options.Call {
		return discR * qmath.CDF(d2)
	}
	return discR * qmath.CDF(-d2)
}

func (m *BlackScholesModel) priceAssetOrNothing(c options.Contract, vol float64) float64 {
	d1, _ := m.d1d2(c, vol)
	q := c.Instrument.ContinuousDividendYield
	discQ := math.Exp(-q * m.TimeToMaturity)
	if c.Type == options.Call {
		return c.Instrument.Spot * discQ * qmath.CDF(d1)
	}
	return c.Instrument.Spot * discQ * qmath.CDF(-d1)
}

func (m *BlackScholesModel) priceAt(c options.Contract, vol float64) (float64, error) {
	switch {
	case c.Style == options.European:
		return m.priceEuropean(c, vol), nil
	case c.Style == options.Binary && c.BinaryKind == options.CashOrNothing:
		return m.priceCashOrNothing(c, vol), nil
	case c.Style == options.Binary && c.BinaryKind == options.AssetOrNothing:
		return m.priceAssetOrNothing(c, vol), nil
	default:
		return 0, unsupported("BlackScholesModel", c)
	}
}

/*
Price returns the theoretical value of the contract.
*/
func (m *BlackScholesModel) Price(c options.Contract) (float64, error) {
	return m.priceAt(c, m.Volatility)
}

/*
ImpliedVolatility runs Newton-Raphson on sigma, seeded at 0.2, updating
sigma += (marketPrice - price(sigma)) / vega(sigma) until the price
residual is below 1e-5 or 100 iterations elapse. If vega collapses to
(near) zero the search halts at the current estimate rather than
dividing by it.
*/
func (m *BlackScholesModel) ImpliedVolatility(c options.Contract, marketPrice float64) (float64, bool, error) {
	const tolerance = 1e-5
	const maxIterations = 100

	sigma := 0.2
	for i := 0; i < maxIterations; i++ {
		price, err := m.priceAt(c, sigma)
		if err != nil {
			return sigma, false, err
		}
		diff := marketPrice - price
		if math.Abs(diff) < tolerance {
			return sigma, true, nil
		}

		trial := *m
		trial.Volatility = sigma
		vega, err := trial.Vega(c)
		if err != nil {
			return sigma, false, err
		}
		if math.Abs(vega) < 1e-12 {
			return sigma, false, nil
		}
		sigma += diff / vega
	}
	return sigma, false, nil
}

/*
Delta returns d(price)/d(spot).
*/
func (m *BlackScholesModel) Delta(c options.Contract) (float64, error) {
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	q := c.Instrument.ContinuousDividendYield
	T := m.TimeToMaturity
	S := c.Instrument.Spot
	discQ := math.Exp(-q * T)

	switch {
	case c.Style == options.European:
		if c.Type == options.Call {
			return discQ * qmath.CDF(d1), nil
		}
		return discQ * (qmath.CDF(d1) - 1.0), nil

	case c.Style == options.Binary && c.BinaryKind == options.CashOrNothing:
		delta := math.Exp(-m.RiskFreeRate*T) * qmath.PDF(d2) / (vol * S * math.Sqrt(T))
		if c.Type == options.Call {
			return delta, nil
		}
		return -delta, nil

	case c.Style == options.Binary && c.BinaryKind == options.AssetOrNothing:
		if c.Type == options.Call {
			return discQ*qmath.PDF(d1)/(vol*math.Sqrt(T)) + discQ*qmath.CDF(d1), nil
		}
		return -discQ*qmath.PDF(d1)/(vol*math.Sqrt(T)) + discQ*qmath.CDF(-d1), nil

	default:
		return 0, unsupported("BlackScholesModel", c)
	}
}

/*
Gamma returns d(delta)/d(spot).
*/
func (m *BlackScholesModel) Gamma(c options.Contract) (float64, error) {
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	adjSpot := c.Instrument.AdjustedSpot(m.TimeToMaturity)
	T := m.TimeToMaturity
	S := c.Instrument.Spot

	switch {
	case c.Style == options.European:
		return qmath.PDF(d1) / (adjSpot * vol * math.Sqrt(T)), nil

	case c.Style == options.Binary && c.BinaryKind == options.CashOrNothing:
		gamma := -math.Exp(-m.RiskFreeRate*T) * qmath.PDF(d2) * d1 / (vol * vol * S * S * T)
		if c.Type == options.Call {
			return gamma, nil
		}
		return -gamma, nil

	case c.Style == options.Binary && c.BinaryKind == options.AssetOrNothing:
		q := c.Instrument.ContinuousDividendYield
		gamma := -math.Exp(-q*T) * qmath.PDF(d1) * d2 / (S * vol * vol * T)
		if c.Type == options.Call {
			return gamma, nil
		}
		return -gamma, nil

	default:
		return 0, unsupported("BlackScholesModel", c)
	}
}

/*
Theta returns the rate of change of price as calendar time passes, i.e.
-d(price)/d(TimeToMaturity), expressed per year (not per day).
*/
func (m *BlackScholesModel) Theta(c options.Contract) (float64, error) {
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	nd1 := qmath.CDF(d1)
	nd2 := qmath.CDF(d2)
	pdfD1 := qmath.PDF(d1)
	adjSpot := c.Instrument.AdjustedSpot(m.TimeToMaturity)
	q := c.Instrument.ContinuousDividendYield
	r := m.RiskFreeRate
	T := m.TimeToMaturity
	S := c.Instrument.Spot
	K := c.Strike

	switch {
	case c.Style == options.European:
		if c.Type == options.Call {
			return -adjSpot*math.Exp(-q*T)*pdfD1*vol/(2*math.Sqrt(T)) -
				r*K*math.Exp(-r*T)*nd2 +
				q*adjSpot*math.Exp(-q*T)*nd1, nil
		}
		return -adjSpot*math.Exp(-q*T)*pdfD1*vol/(2*math.Sqrt(T)) +
			r*K*math.Exp(-r*T)*qmath.CDF(-d2) -
			q*adjSpot*math.Exp(-q*T)*qmath.CDF(-d1), nil

	case c.Style == options.Binary && c.BinaryKind == options.CashOrNothing:
		pdfD2 := qmath.PDF(d2)
		inner := pdfD2/(2*T*vol*math.Sqrt(T)) * (math.Log(S/K) - (r-q-0.5*vol*vol)*T)
		if c.Type == options.Call {
			return math.Exp(-r*T) * (inner + r*nd2), nil
		}
		return -math.Exp(-r*T) * (inner - r*qmath.CDF(-d2)), nil

	case c.Style == options.Binary && c.BinaryKind == options.AssetOrNothing:
		inner := pdfD1/(2*T*vol*math.Sqrt(T)) * (math.Log(S/K) - (r-q+0.5*vol*vol)*T)
		if c.Type == options.Call {
			return S * math.Exp(-q*T) * (inner + q*nd1), nil
		}
		return S * math.Exp(-q*T) * (-inner + q*qmath.CDF(-d1)), nil

	default:
		return 0, unsupported("BlackScholesModel", c)
	}
}

/*
Vega returns d(price)/d(volatility).
*/
func (m *BlackScholesModel) Vega(c options.Contract) (float64, error) {
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	adjSpot := c.Instrument.AdjustedSpot(m.TimeToMaturity)
	T := m.TimeToMaturity
	S := c.Instrument.Spot

	switch {
	case c.Style == options.European:
		q := c.Instrument.ContinuousDividendYield
		return adjSpot * math.Exp(-q*T) * qmath.PDF(d1) * math.Sqrt(T), nil

	case c.Style == options.Binary && c.BinaryKind == options.CashOrNothing:
		vega := -math.Exp(-m.RiskFreeRate*T) * d1 * qmath.PDF(d2) / vol
		if c.Type == options.Call {
			return vega, nil
		}
		return -vega, nil

	case c.Style == options.Binary && c.BinaryKind == options.AssetOrNothing:
		q := c.Instrument.ContinuousDividendYield
		vega := -S * math.Exp(-q*T) * d2 * qmath.PDF(d1) / vol
		if c.Type == options.Call {
			return vega, nil
		}
		return -vega, nil

	default:
		return 0, unsupported("BlackScholesModel", c)
	}
}

/*
Rho returns d(price)/d(risk-free rate).
*/
func (m *BlackScholesModel) Rho(c options.Contract) (float64, error) {
	vol := m.Volatility
	d1, d2 := m.d1d2(c, vol)
	T := m.TimeToMaturity
	S := c.Instrument.Spot
	r := m.RiskFreeRate

	switch {
	case c.Style == options.European:
		discR := math.Exp(-r * T)
		if c.Type == options.Call {
			return c.Strike * T * discR * qmath.CDF(d2), nil
		}
		return -c.Strike * T * discR * qmath.CDF(-d2), nil

	case c.Style == options.Binary && c.BinaryKind == options.CashOrNothing:
		discR := math.Exp(-r * T)
		if c.Type == options.Call {
			return discR * (math.Sqrt(T)*qmath.PDF(d2)/vol - T*qmath.CDF(d2)), nil
		}
		return -discR * (math.Sqrt(T)*qmath.PDF(d2)/vol + T*qmath.CDF(-d2)), nil

	case c.Style == options.Binary && c.BinaryKind == options.AssetOrNothing:
		q := c.Instrument.ContinuousDividendYield
		rho := S * math.Exp(-q*T) * math.Sqrt(T) * qmath.PDF(d1) / vol
		if c.Type == options.Call {
			return rho, nil
		}
		return -rho, nil

	default:
		return 0, unsupported("BlackScholesModel", c)
	}
}
