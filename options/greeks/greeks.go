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
Package greeks collects the Greeks of a (model, contract) pair into a
single record, computing the five base Greeks concurrently the way
kervinlow-quantstruct's GBSM computes value and Greeks one goroutine
per quantity.
*/
package greeks

import (
	"github.com/kervinlow/quantstruct/options"
	"github.com/kervinlow/quantstruct/options/models"
)

/*
Greeks is the aggregate record for a priced contract. The base five are
always populated; the higher-order fields are nil when the underlying
model doesn't implement them for that contract.
*/
type Greeks struct {
	Delta, Gamma, Theta, Vega, Rho float64

	Lambda *float64
	Vanna  *float64
	Charm  *float64
	Vomma  *float64
	Veta   *float64
	Speed  *float64
	Zomma  *float64
	Color  *float64
	Ultima *float64
}

/*
HigherOrderGreeks is satisfied by a PricingModel that can also compute
second- and third-order Greeks. Calculate detects this with a type
assertion rather than requiring it of every model.
*/
type HigherOrderGreeks interface {
	Lambda(c options.Contract) (float64, error)
	Vanna(c options.Contract) (float64, error)
	Charm(c options.Contract) (float64, error)
	Vomma(c options.Contract) (float64, error)
	Veta(c options.Contract) (float64, error)
	Speed(c options.Contract) (float64, error)
	Zomma(c options.Contract) (float64, error)
	Color(c options.Contract) (float64, error)
	Ultima(c options.Contract) (float64, error)
}

type baseGreekResult struct {
	name  string
	value float64
	err   error
}

/*
Calculate computes the aggregate Greeks of a (model, contract) pair.
The base five Greeks are computed by one goroutine each, fanned in over
a single channel; the first error received short-circuits the whole
call. Higher-order Greeks, when the model supports them, are computed
afterward and individually downgraded to "unsupported" (nil) rather
than failing the call.
*/
func Calculate(m models.PricingModel, c options.Contract) (Greeks, error) {
	jobs := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"delta", func() (float64, error) { return m.Delta(c) }},
		{"gamma", func() (float64, error) { return m.Gamma(c) }},
		{"theta", func() (float64, error) { return m.Theta(c) }},
		{"vega", func() (float64, error) { return m.Vega(c) }},
		{"rho", func() (float64, error) { return m.Rho(c) }},
	}

	results := make(chan baseGreekResult, len(jobs))
	for _, j := range jobs {
		go func(name string, fn func() (float64, error)) {
			v, err := fn()
			results <- baseGreekResult{name, v, err}
		}(j.name, j.fn)
	}

	var g Greeks
	for range jobs {
		r := <-results
		if r.err != nil {
			return Greeks{}, r.err
		}
		switch r.name {
		case "delta":
			g.Delta = r.value
		case "gamma":
			g.Gamma = r.value
		case "theta":
			g.Theta = r.value
		case "vega":
			g.Vega = r.value
		case "rho":
			g.Rho = r.value
		}
	}

	if hog, ok := m.(HigherOrderGreeks); ok {
		g.Lambda = optional(hog.Lambda, c)
		g.Vanna = optional(hog.Vanna, c)
		g.Charm = optional(hog.Charm, c)
		g.Vomma = optional(hog.Vomma, c)
		g.Veta = optional(hog.Veta, c)
		g.Speed = optional(hog.Speed, c)
		g.Zomma = optional(hog.Zomma, c)
		g.Color = optional(hog.Color, c)
		g.Ultima = optional(hog.Ultima, c)
	}
	return g, nil
}

func optional(fn func(options.Contract) (float64, error), c options.Contract) *float64 {
	v, err := fn(c)
	if err != nil {
		return nil
	}
	return &v
}
