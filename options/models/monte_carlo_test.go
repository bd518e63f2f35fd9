package models

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kervinlow/quantstruct/equity"
	"github.com/kervinlow/quantstruct/options"
)

func TestMonteCarloAgreesWithBlackScholesEuropean(t *testing.T) {
	mc, err := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 100000, 50, rand.NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bs, _ := NewBlackScholesModel(1, 0.05, 0.2)
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)

	mcPrice, err := mc.Price(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bsPrice, _ := bs.Price(c)

	// Standard error of a M=1e5-path MC estimate for this contract is on
	// the order of a few cents; allow a generous multiple of that.
	if math.Abs(mcPrice-bsPrice) > 0.5 {
		t.Errorf("monte carlo=%v bs=%v, want within a few standard errors", mcPrice, bsPrice)
	}
}

func TestMonteCarloRejectsInvalidParameters(t *testing.T) {
	if _, err := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 0, 10, rand.NewSource(1)); err == nil {
		t.Error("expected error for zero paths")
	}
	if _, err := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 100, 0, rand.NewSource(1)); err == nil {
		t.Error("expected error for zero steps")
	}
	if _, err := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 100, 10, nil); err == nil {
		t.Error("expected error for nil random source")
	}
}

func TestMonteCarloRejectsUnsupportedStyle(t *testing.T) {
	mc, _ := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 1000, 10, rand.NewSource(1))
	c, _ := options.NewAmericanOption(bsInst(100), 100, options.Call)
	if _, err := mc.Price(c); err == nil {
		t.Error("expected UnsupportedContractError for American option")
	}
}

func TestMonteCarloAsianFixedPrices(t *testing.T) {
	mc, _ := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 20000, 50, rand.NewSource(7))
	c, _ := options.NewAsianFixedOption(bsInst(100), 100, options.Call)
	price, err := mc.Price(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price <= 0 {
		t.Errorf("Asian fixed call price = %v, want > 0", price)
	}
}

func TestMonteCarloRainbowBestOfPrices(t *testing.T) {
	inst := bsInst(100).WithAssets([]equity.Asset{
		{Instrument: bsInst(95), Weight: 1},
		{Instrument: bsInst(105), Weight: 1},
	})
	mc, _ := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 20000, 20, rand.NewSource(3))
	c, err := options.NewRainbowBestOfOption(inst, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	price, err := mc.Price(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price < 90 {
		t.Errorf("discounted BestOf(90) price = %v, should not be far below the guaranteed floor", price)
	}
}

func TestMonteCarloGreeksComputeWithoutError(t *testing.T) {
	mc, _ := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 5000, 20, rand.NewSource(5))
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)
	for name, fn := range map[string]func(options.Contract) (float64, error){
		"delta": mc.Delta,
		"gamma": mc.Gamma,
		"theta": mc.Theta,
		"vega":  mc.Vega,
		"rho":   mc.Rho,
	} {
		if _, err := fn(c); err != nil {
			t.Errorf("%s returned error: %v", name, err)
		}
	}
}

func TestMonteCarloImpliedVolatilityShortCircuitsOnUnrealisticPrice(t *testing.T) {
	mc, _ := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 1000, 10, rand.NewSource(1))
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)

	iv, converged, err := mc.ImpliedVolatility(c, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !converged || iv != 0 {
		t.Errorf("non-positive market price should short-circuit to converged 0, got iv=%v converged=%v", iv, converged)
	}

	iv, converged, err = mc.ImpliedVolatility(c, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !converged || iv != 0 {
		t.Errorf("call price above spot should short-circuit to converged 0, got iv=%v converged=%v", iv, converged)
	}
}

func TestMonteCarloDistinctSourcesProduceDistinctPrices(t *testing.T) {
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)
	mc1, _ := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 2000, 10, rand.NewSource(1))
	mc2, _ := NewMonteCarloModelArithmetic(1, 0.05, 0.2, 2000, 10, rand.NewSource(2))

	p1, err := mc1.Price(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := mc2.Price(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1 == p2 {
		t.Error("two distinctly-seeded models produced identical prices; expected different path draws")
	}
}
