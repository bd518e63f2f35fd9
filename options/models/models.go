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
Package models provides the interchangeable numerical pricing models:
BlackScholesModel (closed-form), BinomialTreeModel (CRR lattice) and
MonteCarloModel (path simulation). Each implements PricingModel and
returns UnsupportedContractError for any (options.OptionStyle,
options.OptionType) pair it does not know how to price.
*/
package models

import "github.com/kervinlow/quantstruct/options"

/*
PricingModel is the common surface every concrete model implements:
price, implied volatility, and the five base Greeks. Higher-order Greeks
are exposed separately by models that support them (see
options/greeks.HigherOrderGreeks), since most (model, contract) pairs
only have the base five available analytically or by finite difference.
*/
type PricingModel interface {
	// Price returns the theoretical value of the contract.
	Price(c options.Contract) (float64, error)

	// ImpliedVolatility returns the sigma that reproduces marketPrice,
	// and whether the search converged within its iteration budget.
	ImpliedVolatility(c options.Contract, marketPrice float64) (sigma float64, converged bool, err error)

	Delta(c options.Contract) (float64, error)
	Gamma(c options.Contract) (float64, error)
	Theta(c options.Contract) (float64, error)
	Vega(c options.Contract) (float64, error)
	Rho(c options.Contract) (float64, error)
}

/*
unsupported builds the UnsupportedContractError for a given model name
and contract, so every model reports the same message shape.
*/
func unsupported(model string, c options.Contract) error {
	return options.UnsupportedContractError(
		model + " does not support " + c.Style.String() + " " + c.Type.String() + " contracts",
	)
}
