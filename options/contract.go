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

package options

import (
	"math"

	"github.com/kervinlow/quantstruct/equity"
)

/*
moneynessEpsilonFactor is the fraction of the strike used as the ATM
tolerance band: a contract is "at the money" when
|spot - strike| <= moneynessEpsilonFactor * strike.
*/
const moneynessEpsilonFactor = 1e-9

/*
Contract is the tagged union over every option style the engine prices.
Style selects which of the variant-specific fields below are meaningful:

  - Asian:   AsianKind
  - Barrier: BarrierDirection, BarrierLevel
  - Lookback: LookbackKind
  - Binary:  BinaryKind
  - Rainbow: RainbowKind

Contract values are immutable after construction; Flip returns a new
value rather than mutating the receiver.
*/
type Contract struct {
	Instrument equity.Instrument
	Strike     float64
	Type       OptionType
	Style      OptionStyle

	AsianKind        AsianKind
	BarrierDirection BarrierDirection
	BarrierLevel     float64
	LookbackKind     LookbackKind
	BinaryKind       BinaryKind
	RainbowKind      RainbowKind
}

/*
=============
Constructors
=============
*/

/*
NewEuropeanOption creates a European-style option, exercisable at
maturity only.
*/
func NewEuropeanOption(instrument equity.Instrument, strike float64, optionType OptionType) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	return Contract{Instrument: instrument, Strike: strike, Type: optionType, Style: European}, nil
}

/*
NewAmericanOption creates an American-style option, exercisable at any
time up to and including maturity.
*/
func NewAmericanOption(instrument equity.Instrument, strike float64, optionType OptionType) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	return Contract{Instrument: instrument, Strike: strike, Type: optionType, Style: American}, nil
}

/*
NewAsianFixedOption creates a fixed-strike Asian option, whose payoff
compares the path average to strike.
*/
func NewAsianFixedOption(instrument equity.Instrument, strike float64, optionType OptionType) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	return Contract{Instrument: instrument, Strike: strike, Type: optionType, Style: Asian, AsianKind: AsianFixed}, nil
}

/*
NewAsianFloatingOption creates a floating-strike Asian option, whose
payoff compares the terminal spot to the path average. Strike is unused
for this variant and is reported as zero.
*/
func NewAsianFloatingOption(instrument equity.Instrument, optionType OptionType) (Contract, error) {
	return Contract{Instrument: instrument, Strike: 0, Type: optionType, Style: Asian, AsianKind: AsianFloating}, nil
}

/*
NewBinaryCashOrNothingOption creates a binary option that pays one unit
of cash if it expires in the money, or nothing otherwise.
*/
func NewBinaryCashOrNothingOption(instrument equity.Instrument, strike float64, optionType OptionType) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	return Contract{Instrument: instrument, Strike: strike, Type: optionType, Style: Binary, BinaryKind: CashOrNothing}, nil
}

/*
NewBinaryAssetOrNothingOption creates a binary option that pays the
terminal spot if it expires in the money, or nothing otherwise.
*/
func NewBinaryAssetOrNothingOption(instrument equity.Instrument, strike float64, optionType OptionType) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	return Contract{Instrument: instrument, Strike: strike, Type: optionType, Style: Binary, BinaryKind: AssetOrNothing}, nil
}

func newBarrierOption(instrument equity.Instrument, strike float64, level float64, optionType OptionType, direction BarrierDirection) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	if level <= 0 {
		return Contract{}, InvalidParameterError("barrier level must be positive")
	}
	return Contract{
		Instrument:       instrument,
		Strike:           strike,
		Type:             optionType,
		Style:            Barrier,
		BarrierDirection: direction,
		BarrierLevel:     level,
	}, nil
}

/*
NewBarrierDownAndInOption creates a barrier option that activates once
the path trades at or below level.
*/
func NewBarrierDownAndInOption(instrument equity.Instrument, strike, level float64, optionType OptionType) (Contract, error) {
	return newBarrierOption(instrument, strike, level, optionType, DownAndIn)
}

/*
NewBarrierDownAndOutOption creates a barrier option that is knocked out
once the path trades at or below level.
*/
func NewBarrierDownAndOutOption(instrument equity.Instrument, strike, level float64, optionType OptionType) (Contract, error) {
	return newBarrierOption(instrument, strike, level, optionType, DownAndOut)
}

/*
NewBarrierUpAndInOption creates a barrier option that activates once the
path trades at or above level.
*/
func NewBarrierUpAndInOption(instrument equity.Instrument, strike, level float64, optionType OptionType) (Contract, error) {
	return newBarrierOption(instrument, strike, level, optionType, UpAndIn)
}

/*
NewBarrierUpAndOutOption creates a barrier option that is knocked out
once the path trades at or above level.
*/
func NewBarrierUpAndOutOption(instrument equity.Instrument, strike, level float64, optionType OptionType) (Contract, error) {
	return newBarrierOption(instrument, strike, level, optionType, UpAndOut)
}

/*
NewLookbackFixedOption creates a fixed-strike lookback option: a
European option on the terminal spot with strike fixed at inception.
*/
func NewLookbackFixedOption(instrument equity.Instrument, strike float64, optionType OptionType) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	return Contract{Instrument: instrument, Strike: strike, Type: optionType, Style: Lookback, LookbackKind: LookbackFixed}, nil
}

/*
NewLookbackFloatingOption creates a floating-strike lookback option,
whose payoff compares the terminal spot to the path's running extremum.
*/
func NewLookbackFloatingOption(instrument equity.Instrument, optionType OptionType) (Contract, error) {
	return Contract{Instrument: instrument, Strike: 0, Type: optionType, Style: Lookback, LookbackKind: LookbackFloating}, nil
}

func newRainbowOption(instrument equity.Instrument, strike float64, optionType OptionType, kind RainbowKind) (Contract, error) {
	if strike < 0 {
		return Contract{}, InvalidParameterError("strike must be non-negative")
	}
	if len(instrument.Assets) == 0 {
		return Contract{}, InvalidParameterError("rainbow option requires a non-empty asset basket")
	}
	return Contract{Instrument: instrument, Strike: strike, Type: optionType, Style: Rainbow, RainbowKind: kind}, nil
}

/*
NewRainbowBestOfOption creates a rainbow option paying the greater of
the basket's best terminal price and strike.
*/
func NewRainbowBestOfOption(instrument equity.Instrument, strike float64) (Contract, error) {
	return newRainbowOption(instrument, strike, Call, BestOf)
}

/*
NewRainbowWorstOfOption creates a rainbow option paying the lesser of
the basket's worst terminal price and strike.
*/
func NewRainbowWorstOfOption(instrument equity.Instrument, strike float64) (Contract, error) {
	return newRainbowOption(instrument, strike, Call, WorstOf)
}

/*
NewRainbowCallOnMaxOption creates a call on the basket's best performer.
*/
func NewRainbowCallOnMaxOption(instrument equity.Instrument, strike float64) (Contract, error) {
	return newRainbowOption(instrument, strike, Call, CallOnMax)
}

/*
NewRainbowCallOnMinOption creates a call on the basket's worst performer.
*/
func NewRainbowCallOnMinOption(instrument equity.Instrument, strike float64) (Contract, error) {
	return newRainbowOption(instrument, strike, Call, CallOnMin)
}

/*
NewRainbowPutOnMaxOption creates a put on the basket's best performer.
*/
func NewRainbowPutOnMaxOption(instrument equity.Instrument, strike float64) (Contract, error) {
	return newRainbowOption(instrument, strike, Put, PutOnMax)
}

/*
NewRainbowPutOnMinOption creates a put on the basket's worst performer.
*/
func NewRainbowPutOnMinOption(instrument equity.Instrument, strike float64) (Contract, error) {
	return newRainbowOption(instrument, strike, Put, PutOnMin)
}

/*
========
Methods
========
*/

/*
Payoff evaluates the contract's payoff function at the given terminal
observable. It never returns a negative value.
*/
func (c Contract) Payoff(ob Observable) float64 {
	switch c.Style {
	case European, American:
		return vanillaPayoff(c.Type, ob.Terminal, c.Strike)

	case Asian:
		switch c.AsianKind {
		case AsianFixed:
			return vanillaPayoff(c.Type, ob.Average, c.Strike)
		default: // AsianFloating
			return vanillaPayoff(c.Type, ob.Terminal, ob.Average)
		}

	case Lookback:
		switch c.LookbackKind {
		case LookbackFixed:
			return vanillaPayoff(c.Type, ob.Terminal, c.Strike)
		default: // LookbackFloating
			if c.Type == Call {
				return math.Max(ob.Terminal-ob.Min, 0.0)
			}
			return math.Max(ob.Max-ob.Terminal, 0.0)
		}

	case Barrier:
		return c.barrierPayoff(ob)

	case Binary:
		return c.binaryPayoff(ob)

	case Rainbow:
		return c.rainbowPayoff(ob)

	default:
		return 0.0
	}
}

/*
vanillaPayoff is the common max(x-k,0) / max(k-x,0) shape shared by
European, American, Asian and fixed-strike Lookback payoffs.
*/
func vanillaPayoff(t OptionType, x, k float64) float64 {
	if t == Call {
		return math.Max(x-k, 0.0)
	}
	return math.Max(k-x, 0.0)
}

func (c Contract) barrierPayoff(ob Observable) float64 {
	base := vanillaPayoff(c.Type, ob.Terminal, c.Strike)
	below := ob.Min <= c.BarrierLevel
	above := ob.Max >= c.BarrierLevel

	switch c.BarrierDirection {
	case DownAndIn:
		if below {
			return base
		}
		return 0.0
	case DownAndOut:
		if below {
			return 0.0
		}
		return base
	case UpAndIn:
		if above {
			return base
		}
		return 0.0
	default: // UpAndOut
		if above {
			return 0.0
		}
		return base
	}
}

func (c Contract) binaryPayoff(ob Observable) float64 {
	itm := ob.Terminal > c.Strike
	if c.Type == Put {
		itm = ob.Terminal < c.Strike
	}
	if !itm {
		return 0.0
	}
	if c.BinaryKind == AssetOrNothing {
		return ob.Terminal
	}
	return 1.0
}

func (c Contract) rainbowPayoff(ob Observable) float64 {
	best := ob.Basket[0]
	worst := ob.Basket[0]
	for _, s := range ob.Basket {
		if s > best {
			best = s
		}
		if s < worst {
			worst = s
		}
	}
	switch c.RainbowKind {
	case BestOf:
		return math.Max(best, c.Strike)
	case WorstOf:
		return math.Min(worst, c.Strike)
	case CallOnMax:
		return math.Max(best-c.Strike, 0.0)
	case CallOnMin:
		return math.Max(worst-c.Strike, 0.0)
	case PutOnMax:
		return math.Max(c.Strike-best, 0.0)
	default: // PutOnMin
		return math.Max(c.Strike-worst, 0.0)
	}
}

/*
Flip returns a copy of the contract with Call and Put swapped and every
other field preserved.
*/
func (c Contract) Flip() Contract {
	flipped := c
	if c.Type == Call {
		flipped.Type = Put
	} else {
		flipped.Type = Call
	}
	return flipped
}

/*
IsCall reports whether the contract is a call.
*/
func (c Contract) IsCall() bool { return c.Type == Call }

/*
IsPut reports whether the contract is a put.
*/
func (c Contract) IsPut() bool { return c.Type == Put }

/*
ITM reports whether the contract is in the money, comparing the
instrument's current spot to the strike.
*/
func (c Contract) ITM() bool {
	if c.Type == Call {
		return c.Instrument.Spot > c.Strike
	}
	return c.Instrument.Spot < c.Strike
}

/*
ATM reports whether the contract is at the money, within a tolerance of
moneynessEpsilonFactor * strike.
*/
func (c Contract) ATM() bool {
	eps := moneynessEpsilonFactor * c.Strike
	return math.Abs(c.Instrument.Spot-c.Strike) <= eps
}

/*
OTM reports whether the contract is out of the money.
*/
func (c Contract) OTM() bool {
	return !c.ITM() && !c.ATM()
}
