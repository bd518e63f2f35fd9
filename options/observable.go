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

/*
Observable is the terminal observable a Contract's payoff is a pure
function of. A model populates only the fields its contract's style
actually reads:

  - Terminal: the terminal spot (European, American, Asian floating,
    Lookback fixed, Binary, Barrier).
  - Average: the arithmetic or geometric path average (Asian).
  - Min, Max: the running minimum/maximum observed along the path
    (Lookback floating, and Barrier's activation/knock-out test).
  - Basket: the terminal spot of each asset in a basket/rainbow
    underlying.

A closed-form model (Black-Scholes) only ever needs Terminal, since it
has no path to observe; a path-simulating model (Monte Carlo) fills in
whichever of the other fields the contract it is pricing requires.
*/
type Observable struct {
	Terminal float64
	Average  float64
	Min      float64
	Max      float64
	Basket   []float64
}
