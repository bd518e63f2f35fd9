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

/*
Package strategy composes Contracts priced by independent PricingModels
into named multi-leg strategies, producing (payoff, premium) as a
function of terminal spot. Construction-time invariants (same
expiration, call/put typing, strike ordering, moneyness) are checked
once, up front, rather than on every Evaluate call.
*/
package strategy

import (
	"math"

	"github.com/kervinlow/quantstruct/equity"
	"github.com/kervinlow/quantstruct/options"
	"github.com/kervinlow/quantstruct/options/models"
)

/*
Leg is one (contract, model) pair in a strategy, signed by Quantity:
positive is long, negative is short.
*/
type Leg struct {
	Contract options.Contract
	Model    models.PricingModel
	Quantity float64
}

/*
Strategy is a weighted collection of option legs, plus an optional
position in the underlying itself (used by stock-and-option strategies
like the covered call).
*/
type Strategy struct {
	Legs               []Leg
	Underlying         *equity.Instrument
	UnderlyingQuantity float64
}

/*
Evaluate returns the strategy's payoff and premium at the given
terminal spot: payoff is the sum of each leg's signed contract payoff
(plus any signed underlying position at that spot), and premium is the
sum of each leg's signed model price (plus the underlying's current
spot).
*/
func (s Strategy) Evaluate(terminalSpot float64) (payoff float64, premium float64, err error) {
	for _, leg := range s.Legs {
		price, err := leg.Model.Price(leg.Contract)
		if err != nil {
			return 0, 0, err
		}
		premium += leg.Quantity * price
		payoff += leg.Quantity * leg.Contract.Payoff(options.Observable{Terminal: terminalSpot})
	}
	if s.Underlying != nil {
		premium += s.UnderlyingQuantity * s.Underlying.Spot
		payoff += s.UnderlyingQuantity * terminalSpot
	}
	return payoff, premium, nil
}

func checkIsCall(c options.Contract) error {
	if !c.IsCall() {
		return options.StrategyInvariantViolationError("leg must be a call")
	}
	return nil
}

func checkIsPut(c options.Contract) error {
	if !c.IsPut() {
		return options.StrategyInvariantViolationError("leg must be a put")
	}
	return nil
}

/*
timeToMaturity extracts a concrete model's time horizon so strategies
can check legs share an expiration. Contracts carry no expiration of
their own in this data model: it lives on the model pricing them.
*/
func timeToMaturity(m models.PricingModel) (float64, bool) {
	switch model := m.(type) {
	case *models.BlackScholesModel:
		return model.TimeToMaturity, true
	case *models.BinomialTreeModel:
		return model.TimeToMaturity, true
	case *models.MonteCarloModel:
		return model.TimeToMaturity, true
	default:
		return 0, false
	}
}

func checkSameExpiration(a, b models.PricingModel) error {
	ta, oka := timeToMaturity(a)
	tb, okb := timeToMaturity(b)
	if !oka || !okb {
		return nil
	}
	if math.Abs(ta-tb) > 1e-12 {
		return options.StrategyInvariantViolationError("legs must share the same expiration")
	}
	return nil
}
