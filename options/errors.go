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

import "fmt"

/*
===============
Types of Errors
===============
*/

/*
The error InvalidParameterError is returned when a constructor or model
receives a parameter outside its valid domain: non-positive volatility,
non-positive time to maturity, a negative strike, a non-positive barrier
level, an empty rainbow basket, a non-positive step/path count, or a
missing random source. Dividend yields are not checked in this package;
equity.Instrument.Validate reports them with equity.ErrInvalidYield.
*/
type InvalidParameterError string

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("%s", string(e))
}

/*
The error UnsupportedContractError is returned when a pricing model does
not implement the requested (OptionStyle, OptionType) pair.
*/
type UnsupportedContractError string

func (e UnsupportedContractError) Error() string {
	return fmt.Sprintf("%s", string(e))
}

/*
The error NumericalInstabilityError is returned when a model's own
numerics break down for the given inputs, e.g. a binomial tree whose
risk-neutral probability falls outside (0,1).
*/
type NumericalInstabilityError string

func (e NumericalInstabilityError) Error() string {
	return fmt.Sprintf("%s", string(e))
}

/*
The error StrategyInvariantViolationError is returned when a multi-leg
strategy constructor's invariants are not met: mismatched expirations,
wrong call/put typing, or incorrectly ordered strikes.
*/
type StrategyInvariantViolationError string

func (e StrategyInvariantViolationError) Error() string {
	return fmt.Sprintf("%s", string(e))
}
