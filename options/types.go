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
Package options provides the contract taxonomy of the pricing engine: the
OptionType/OptionStyle tags, the Contract tagged union that carries a
style's variant-specific payload, the Observable a payoff is a pure
function of, and the four error categories fallible operations return.

The set of styles is closed (European, American, Asian, Barrier, Lookback,
Binary, Rainbow), so Contract is implemented as a single tagged union
rather than as an interface hierarchy: dispatch in a pricing model is then
an explicit match on the (OptionStyle, OptionType) pair instead of a type
switch or virtual call.
*/
package options

/*
OptionType distinguishes a call from a put.
*/
type OptionType int

const (
	Call OptionType = iota
	Put
)

func (t OptionType) String() string {
	switch t {
	case Call:
		return "Call"
	case Put:
		return "Put"
	default:
		return "Unknown"
	}
}

/*
OptionStyle is the style tag of the Contract tagged union. Styles that
carry a variant (Asian, Barrier, Lookback, Binary, Rainbow) store their
variant in the corresponding Contract field (AsianKind, BarrierDirection,
LookbackKind, BinaryKind, RainbowKind); OptionStyle itself only says
which of those fields is meaningful.
*/
type OptionStyle int

const (
	European OptionStyle = iota
	American
	Asian
	Barrier
	Lookback
	Binary
	Rainbow
)

func (s OptionStyle) String() string {
	switch s {
	case European:
		return "European"
	case American:
		return "American"
	case Asian:
		return "Asian"
	case Barrier:
		return "Barrier"
	case Lookback:
		return "Lookback"
	case Binary:
		return "Binary"
	case Rainbow:
		return "Rainbow"
	default:
		return "Unknown"
	}
}

/*
AsianKind distinguishes a fixed-strike Asian option (payoff compares the
path average to a strike) from a floating-strike one (payoff compares the
terminal spot to the path average).
*/
type AsianKind int

const (
	AsianFixed AsianKind = iota
	AsianFloating
)

/*
BarrierDirection is the activation rule of a Barrier option.
*/
type BarrierDirection int

const (
	DownAndIn BarrierDirection = iota
	DownAndOut
	UpAndIn
	UpAndOut
)

/*
LookbackKind distinguishes a fixed-strike lookback (payoff of a European
option on the terminal spot, strike fixed at inception) from a
floating-strike one (payoff compares the terminal spot to the path's
running extremum).
*/
type LookbackKind int

const (
	LookbackFixed LookbackKind = iota
	LookbackFloating
)

/*
BinaryKind distinguishes a cash-or-nothing binary (pays a fixed unit
amount) from an asset-or-nothing binary (pays the spot itself).
*/
type BinaryKind int

const (
	CashOrNothing BinaryKind = iota
	AssetOrNothing
)

/*
RainbowKind is the multi-asset payoff rule of a Rainbow option.
*/
type RainbowKind int

const (
	BestOf RainbowKind = iota
	WorstOf
	CallOnMax
	CallOnMin
	PutOnMax
	PutOnMin
)
