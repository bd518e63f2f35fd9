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
Package equity provides the representation of the underlying instrument
priced by the options engine: its spot, its dividend properties, and,
for basket/rainbow payoffs, its component assets.
*/
package equity

import (
	"fmt"
	"math"
)

/*
===============
Types of Errors
===============
*/

/*
The error ErrInvalidYield is returned when a dividend yield lies outside
the valid range [0, 1), or when a discrete dividend time is negative.
*/
type ErrInvalidYield string

func (e ErrInvalidYield) Error() string {
	return fmt.Sprintf("%s", string(e))
}

/*
The error ErrInvalidWeight is returned when a basket asset's weight is
not strictly positive.
*/
type ErrInvalidWeight string

func (e ErrInvalidWeight) Error() string {
	return fmt.Sprintf("%s", string(e))
}

/*
The error ErrNegativeSpot is returned when a spot price is not positive.
*/
type ErrNegativeSpot string

func (e ErrNegativeSpot) Error() string {
	return fmt.Sprintf("%s", string(e))
}

/*
-------
Asset
-------
*/

/*
Asset is one leg of a basket or rainbow underlying: a sub-instrument
together with the weight it carries in the basket. The weight's meaning
(e.g. normalized share vs raw unit count) is defined by the payoff that
consumes it, not by Asset itself; the sum of weights need not be 1.
*/
type Asset struct {
	Instrument Instrument
	Weight     float64
}

/*
-----------
Instrument
-----------
*/

/*
Instrument is an immutable-after-construction description of an
underlying asset: its current spot price, its continuous and discrete
dividend yields, and, optionally, the basket of sub-instruments a
rainbow or basket payoff reads its terminal prices from.

Instrument is constructed with NewInstrument and refined with the
With* builder methods, each of which returns a new value rather than
mutating the receiver.

Usage (example):

	inst := equity.NewInstrument(100.0).
		WithContinuousDividendYield(0.02).
		WithDiscreteDividends(0.01, []float64{0.25, 0.75})
*/
type Instrument struct {
	Spot                    float64
	ContinuousDividendYield float64
	DiscreteDividendYield   float64
	DividendTimes           []float64
	Assets                  []Asset
}

/*
NewInstrument creates an Instrument with the given spot price and no
dividends or basket assets.
*/
func NewInstrument(spot float64) Instrument {
	return Instrument{Spot: spot}
}

/*
WithSpot returns a copy of the Instrument with its spot price replaced.
*/
func (i Instrument) WithSpot(spot float64) Instrument {
	i.Spot = spot
	return i
}

/*
WithContinuousDividendYield returns a copy of the Instrument with its
continuous dividend yield q replaced.
*/
func (i Instrument) WithContinuousDividendYield(q float64) Instrument {
	i.ContinuousDividendYield = q
	return i
}

/*
WithDiscreteDividends returns a copy of the Instrument configured to pay
a proportional dividend of the given yield at each of the given times
(expressed as year fractions).
*/
func (i Instrument) WithDiscreteDividends(yield float64, times []float64) Instrument {
	i.DiscreteDividendYield = yield
	ts := make([]float64, len(times))
	copy(ts, times)
	i.DividendTimes = ts
	return i
}

/*
WithAssets returns a copy of the Instrument carrying the given ordered
list of weighted sub-instruments, used by basket and rainbow payoffs.
*/
func (i Instrument) WithAssets(assets []Asset) Instrument {
	a := make([]Asset, len(assets))
	copy(a, assets)
	i.Assets = a
	return i
}

/*
Validate checks the invariants from the data model: spot positive,
dividend times non-negative, discrete dividend yield in [0,1), and
basket weights strictly positive.
*/
func (i Instrument) Validate() error {
	if i.Spot <= 0 {
		return ErrNegativeSpot("spot price must be positive")
	}
	if i.DiscreteDividendYield < 0 || i.DiscreteDividendYield >= 1 {
		return ErrInvalidYield("discrete dividend yield must lie in [0, 1)")
	}
	for _, t := range i.DividendTimes {
		if t < 0 {
			return ErrInvalidYield("dividend times must be non-negative")
		}
	}
	for _, a := range i.Assets {
		if a.Weight <= 0 {
			return ErrInvalidWeight("basket asset weights must be positive")
		}
	}
	return nil
}

/*
AdjustedSpot returns the dividend-adjusted spot price used throughout
the pricing formulae: S * (1 - yd)^n, where n is the number of discrete
dividend times at or before t and yd is the discrete dividend yield.
*/
func (i Instrument) AdjustedSpot(t float64) float64 {
	n := 0.0
	for _, dt := range i.DividendTimes {
		if dt <= t {
			n++
		}
	}
	return i.Spot * math.Pow(1.0-i.DiscreteDividendYield, n)
}
