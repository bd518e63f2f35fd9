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

package strategy

import (
	"github.com/kervinlow/quantstruct/equity"
	"github.com/kervinlow/quantstruct/options"
	"github.com/kervinlow/quantstruct/options/models"
)

/*
NewCoveredCall holds the underlying and sells an OTM call against it.
*/
func NewCoveredCall(stock equity.Instrument, call options.Contract, callModel models.PricingModel) (Strategy, error) {
	if err := checkIsCall(call); err != nil {
		return Strategy{}, err
	}
	if !call.OTM() {
		return Strategy{}, options.StrategyInvariantViolationError("covered call requires an OTM call")
	}
	return Strategy{
		Legs:               []Leg{{Contract: call, Model: callModel, Quantity: -1}},
		Underlying:         &stock,
		UnderlyingQuantity: 1,
	}, nil
}

/*
NewProtectivePut holds the underlying and buys an OTM put against it.
*/
func NewProtectivePut(stock equity.Instrument, put options.Contract, putModel models.PricingModel) (Strategy, error) {
	if err := checkIsPut(put); err != nil {
		return Strategy{}, err
	}
	if !put.OTM() {
		return Strategy{}, options.StrategyInvariantViolationError("protective put requires an OTM put")
	}
	return Strategy{
		Legs:               []Leg{{Contract: put, Model: putModel, Quantity: 1}},
		Underlying:         &stock,
		UnderlyingQuantity: 1,
	}, nil
}

/*
NewStraddle buys an ATM put and an ATM call with the same expiration.
*/
func NewStraddle(put options.Contract, putModel models.PricingModel, call options.Contract, callModel models.PricingModel) (Strategy, error) {
	if err := checkIsPut(put); err != nil {
		return Strategy{}, err
	}
	if err := checkIsCall(call); err != nil {
		return Strategy{}, err
	}
	if err := checkSameExpiration(putModel, callModel); err != nil {
		return Strategy{}, err
	}
	if !put.ATM() || !call.ATM() {
		return Strategy{}, options.StrategyInvariantViolationError("straddle requires an ATM put and call")
	}
	return Strategy{Legs: []Leg{
		{Contract: put, Model: putModel, Quantity: 1},
		{Contract: call, Model: callModel, Quantity: 1},
	}}, nil
}

/*
NewStrangle buys an OTM put and an OTM call with the same expiration.
*/
func NewStrangle(put options.Contract, putModel models.PricingModel, call options.Contract, callModel models.PricingModel) (Strategy, error) {
	if err := checkIsPut(put); err != nil {
		return Strategy{}, err
	}
	if err := checkIsCall(call); err != nil {
		return Strategy{}, err
	}
	if err := checkSameExpiration(putModel, callModel); err != nil {
		return Strategy{}, err
	}
	if !put.OTM() || !call.OTM() {
		return Strategy{}, options.StrategyInvariantViolationError("strangle requires an OTM put and call")
	}
	return Strategy{Legs: []Leg{
		{Contract: put, Model: putModel, Quantity: 1},
		{Contract: call, Model: callModel, Quantity: 1},
	}}, nil
}

/*
NewGuts buys an ITM put and an ITM call with the same expiration.
*/
func NewGuts(put options.Contract, putModel models.PricingModel, call options.Contract, callModel models.PricingModel) (Strategy, error) {
	if err := checkIsPut(put); err != nil {
		return Strategy{}, err
	}
	if err := checkIsCall(call); err != nil {
		return Strategy{}, err
	}
	if err := checkSameExpiration(putModel, callModel); err != nil {
		return Strategy{}, err
	}
	if !put.ITM() || !call.ITM() {
		return Strategy{}, options.StrategyInvariantViolationError("guts requires an ITM put and call")
	}
	return Strategy{Legs: []Leg{
		{Contract: put, Model: putModel, Quantity: 1},
		{Contract: call, Model: callModel, Quantity: 1},
	}}, nil
}

/*
NewButterfly buys the low and high strikes and sells two of the middle
strike, all same type, same expiration, priced off a single model.
Strikes need not be equidistant; an uneven spacing just makes it a
skip-strike (broken wing) butterfly.
*/
func NewButterfly(lower, body, upper options.Contract, model models.PricingModel) (Strategy, error) {
	if lower.IsCall() {
		if !body.IsCall() || !upper.IsCall() {
			return Strategy{}, options.StrategyInvariantViolationError("call butterfly requires all legs to be calls")
		}
		if !(lower.Strike < body.Strike && body.Strike < upper.Strike) {
			return Strategy{}, options.StrategyInvariantViolationError("call butterfly requires ordered strikes: lower < body < upper")
		}
	} else {
		if !body.IsPut() || !upper.IsPut() {
			return Strategy{}, options.StrategyInvariantViolationError("put butterfly requires all legs to be puts")
		}
		if !(lower.Strike > body.Strike && body.Strike > upper.Strike) {
			return Strategy{}, options.StrategyInvariantViolationError("put butterfly requires ordered strikes: lower > body > upper")
		}
	}
	return Strategy{Legs: []Leg{
		{Contract: lower, Model: model, Quantity: 1},
		{Contract: body, Model: model, Quantity: -2},
		{Contract: upper, Model: model, Quantity: 1},
	}}, nil
}

/*
NewIronButterfly buys an ATM straddle and sells an OTM strangle around
it, all priced off a single model.
*/
func NewIronButterfly(otmPut, atmPut, atmCall, otmCall options.Contract, model models.PricingModel) (Strategy, error) {
	if err := checkIsPut(otmPut); err != nil {
		return Strategy{}, err
	}
	if err := checkIsPut(atmPut); err != nil {
		return Strategy{}, err
	}
	if err := checkIsCall(atmCall); err != nil {
		return Strategy{}, err
	}
	if err := checkIsCall(otmCall); err != nil {
		return Strategy{}, err
	}
	if !(otmPut.Strike < atmPut.Strike && atmPut.Strike == atmCall.Strike && atmCall.Strike < otmCall.Strike) {
		return Strategy{}, options.StrategyInvariantViolationError("iron butterfly requires ordered strikes: otm put < atm put == atm call < otm call")
	}
	return Strategy{Legs: []Leg{
		{Contract: otmPut, Model: model, Quantity: -1},
		{Contract: atmPut, Model: model, Quantity: 1},
		{Contract: atmCall, Model: model, Quantity: 1},
		{Contract: otmCall, Model: model, Quantity: -1},
	}}, nil
}

/*
NewCondor buys one ITM and one OTM leg and sells a less-ITM and
less-OTM leg between them, all the same type, priced off a single
model, with strikes ascending from itmLong to otmLong for calls and
descending for puts.
*/
func NewCondor(itmLong, itmShort, otmShort, otmLong options.Contract, model models.PricingModel) (Strategy, error) {
	if !itmLong.ITM() || !itmShort.ITM() {
		return Strategy{}, options.StrategyInvariantViolationError("condor requires the itmLong and itmShort legs to be ITM")
	}
	if !otmShort.OTM() || !otmLong.OTM() {
		return Strategy{}, options.StrategyInvariantViolationError("condor requires the otmShort and otmLong legs to be OTM")
	}
	if itmLong.IsCall() {
		if !itmShort.IsCall() || !otmShort.IsCall() || !otmLong.IsCall() {
			return Strategy{}, options.StrategyInvariantViolationError("call condor requires all legs to be calls")
		}
		if !(itmLong.Strike <= itmShort.Strike && itmShort.Strike <= otmShort.Strike && otmShort.Strike <= otmLong.Strike) {
			return Strategy{}, options.StrategyInvariantViolationError("call condor requires ascending strikes: itmLong <= itmShort <= otmShort <= otmLong")
		}
	} else {
		if !itmShort.IsPut() || !otmShort.IsPut() || !otmLong.IsPut() {
			return Strategy{}, options.StrategyInvariantViolationError("put condor requires all legs to be puts")
		}
		if !(itmLong.Strike >= itmShort.Strike && itmShort.Strike >= otmShort.Strike && otmShort.Strike >= otmLong.Strike) {
			return Strategy{}, options.StrategyInvariantViolationError("put condor requires descending strikes: itmLong >= itmShort >= otmShort >= otmLong")
		}
	}
	return Strategy{Legs: []Leg{
		{Contract: itmLong, Model: model, Quantity: 1},
		{Contract: itmShort, Model: model, Quantity: -1},
		{Contract: otmShort, Model: model, Quantity: -1},
		{Contract: otmLong, Model: model, Quantity: 1},
	}}, nil
}

/*
NewIronCondor buys an OTM put and an OTM call further from the money
than a sold OTM put and OTM call closer to it, priced off a single
model.
*/
func NewIronCondor(otmPutLong, otmPutShort, otmCallShort, otmCallLong options.Contract, model models.PricingModel) (Strategy, error) {
	if err := checkIsPut(otmPutLong); err != nil {
		return Strategy{}, err
	}
	if err := checkIsPut(otmPutShort); err != nil {
		return Strategy{}, err
	}
	if err := checkIsCall(otmCallShort); err != nil {
		return Strategy{}, err
	}
	if err := checkIsCall(otmCallLong); err != nil {
		return Strategy{}, err
	}
	if !otmPutLong.OTM() || !otmPutShort.OTM() || !otmCallShort.OTM() || !otmCallLong.OTM() {
		return Strategy{}, options.StrategyInvariantViolationError("iron condor requires every leg to be OTM")
	}
	if !(otmPutLong.Strike <= otmPutShort.Strike && otmPutShort.Strike <= otmCallShort.Strike && otmCallShort.Strike <= otmCallLong.Strike) {
		return Strategy{}, options.StrategyInvariantViolationError("iron condor requires ascending strikes: otmPutLong <= otmPutShort <= otmCallShort <= otmCallLong")
	}
	return Strategy{Legs: []Leg{
		{Contract: otmPutLong, Model: model, Quantity: 1},
		{Contract: otmPutShort, Model: model, Quantity: -1},
		{Contract: otmCallShort, Model: model, Quantity: -1},
		{Contract: otmCallLong, Model: model, Quantity: 1},
	}}, nil
}

/*
NewBackSpread sells a near-strike leg and buys a further-OTM leg of the
same type, priced off a single model.
*/
func NewBackSpread(short, long options.Contract, model models.PricingModel) (Strategy, error) {
	if long.IsCall() {
		if !short.IsCall() {
			return Strategy{}, options.StrategyInvariantViolationError("call back spread requires both legs to be calls")
		}
		if !(long.Strike > short.Strike) {
			return Strategy{}, options.StrategyInvariantViolationError("call back spread requires the long leg to have a higher strike")
		}
	} else {
		if !short.IsPut() {
			return Strategy{}, options.StrategyInvariantViolationError("put back spread requires both legs to be puts")
		}
		if !(long.Strike < short.Strike) {
			return Strategy{}, options.StrategyInvariantViolationError("put back spread requires the long leg to have a lower strike")
		}
	}
	return Strategy{Legs: []Leg{
		{Contract: long, Model: model, Quantity: 1},
		{Contract: short, Model: model, Quantity: -1},
	}}, nil
}

/*
NewCalendarSpread sells the front-month leg and buys the back-month leg
at the same strike. If the supplied "front" expires after the supplied
"back", the two are swapped rather than rejected.
*/
func NewCalendarSpread(front options.Contract, frontModel models.PricingModel, back options.Contract, backModel models.PricingModel) (Strategy, error) {
	frontT, frontOK := timeToMaturity(frontModel)
	backT, backOK := timeToMaturity(backModel)
	if frontOK && backOK && backT < frontT {
		front, frontModel, back, backModel = back, backModel, front, frontModel
	}
	return Strategy{Legs: []Leg{
		{Contract: back, Model: backModel, Quantity: 1},
		{Contract: front, Model: frontModel, Quantity: -1},
	}}, nil
}

/*
NewDiagonalSpread sells a front-month leg and a back-month leg further
OTM than a long back-month leg, all the same type.
*/
func NewDiagonalSpread(front options.Contract, frontModel models.PricingModel, backShort options.Contract, backShortModel models.PricingModel, backLong options.Contract, backLongModel models.PricingModel) (Strategy, error) {
	if front.IsCall() {
		if !backShort.IsCall() || !backLong.IsCall() {
			return Strategy{}, options.StrategyInvariantViolationError("call diagonal spread requires every leg to be a call")
		}
	} else {
		if !backShort.IsPut() || !backLong.IsPut() {
			return Strategy{}, options.StrategyInvariantViolationError("put diagonal spread requires every leg to be a put")
		}
	}
	return Strategy{Legs: []Leg{
		{Contract: backLong, Model: backLongModel, Quantity: 1},
		{Contract: front, Model: frontModel, Quantity: -1},
		{Contract: backShort, Model: backShortModel, Quantity: -1},
	}}, nil
}
