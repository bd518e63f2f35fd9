package models

import (
	"math"
	"testing"

	"github.com/kervinlow/quantstruct/equity"
	"github.com/kervinlow/quantstruct/options"
)

func bsInst(spot float64) equity.Instrument {
	return equity.NewInstrument(spot)
}

func TestBlackScholesEuroCallScenario(t *testing.T) {
	m, err := NewBlackScholesModel(1, 0.05, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)
	price, err := m.Price(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(price-10.4506) > 1e-3 {
		t.Errorf("euro call price = %v, want 10.4506", price)
	}
}

func TestBlackScholesEuroPutScenario(t *testing.T) {
	m, _ := NewBlackScholesModel(1, 0.05, 0.2)
	p, _ := options.NewEuropeanOption(bsInst(100), 100, options.Put)
	price, err := m.Price(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(price-5.5735) > 1e-3 {
		t.Errorf("euro put price = %v, want 5.5735", price)
	}
}

func TestBlackScholesCashOrNothingScenario(t *testing.T) {
	m, _ := NewBlackScholesModel(0.78, 0.05, 0.2)
	inst := bsInst(100).WithContinuousDividendYield(0.02)
	c, _ := options.NewBinaryCashOrNothingOption(inst, 85, options.Call)
	price, err := m.Price(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(price-0.8007) > 1e-3 {
		t.Errorf("cash-or-nothing call price = %v, want 0.8007", price)
	}
}

func TestBlackScholesPutCallParity(t *testing.T) {
	m, _ := NewBlackScholesModel(0.5, 0.03, 0.25)
	inst := bsInst(120)
	call, _ := options.NewEuropeanOption(inst, 100, options.Call)
	put, _ := options.NewEuropeanOption(inst, 100, options.Put)
	callPrice, _ := m.Price(call)
	putPrice, _ := m.Price(put)

	diff := callPrice - putPrice
	want := inst.Spot - 100*math.Exp(-0.03*0.5)
	if math.Abs(diff-want) > 1e-10 {
		t.Errorf("put-call parity: call-put = %v, want %v", diff, want)
	}
	if math.Abs(diff-21.4888) > 1e-3 {
		t.Errorf("put-call parity concrete scenario: call-put = %v, want 21.4888", diff)
	}
}

func TestBlackScholesDeepITMDeepOTMCall(t *testing.T) {
	m, _ := NewBlackScholesModel(1, 0.05, 0.2)
	inst := bsInst(100)

	deepITM, _ := options.NewEuropeanOption(inst, 1, options.Call)
	price, _ := m.Price(deepITM)
	want := inst.Spot - 1*math.Exp(-0.05)
	if math.Abs(price-want) > 1e-6 {
		t.Errorf("deep ITM call price = %v, want ~%v", price, want)
	}

	deepOTM, _ := options.NewEuropeanOption(inst, 1e6, options.Call)
	price, _ = m.Price(deepOTM)
	if price > 1e-6 {
		t.Errorf("deep OTM call price = %v, want ~0", price)
	}
}

func TestBlackScholesVegaMatchesNumericalDerivative(t *testing.T) {
	m, _ := NewBlackScholesModel(1, 0.05, 0.2)
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)

	analytic, err := m.Vega(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const h = 1e-5
	up := *m
	up.Volatility += h
	down := *m
	down.Volatility -= h
	pUp, _ := up.Price(c)
	pDown, _ := down.Price(c)
	numeric := (pUp - pDown) / (2 * h)

	if math.Abs(analytic-numeric) > 1e-4 {
		t.Errorf("vega analytic=%v numeric=%v, want within 1e-4", analytic, numeric)
	}
}

func TestBlackScholesImpliedVolatilityRoundTrip(t *testing.T) {
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)
	for _, sigma0 := range []float64{0.05, 0.2, 0.8} {
		m, _ := NewBlackScholesModel(1, 0.05, sigma0)
		price, err := m.Price(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		iv, converged, err := m.ImpliedVolatility(c, price)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !converged {
			t.Errorf("IV did not converge for sigma0=%v", sigma0)
		}
		if math.Abs(iv-sigma0) > 1e-4 {
			t.Errorf("IV round-trip sigma0=%v got=%v, want within 1e-4", sigma0, iv)
		}
	}
}

func TestBlackScholesUnsupportedContract(t *testing.T) {
	m, _ := NewBlackScholesModel(1, 0.05, 0.2)
	c, _ := options.NewAmericanOption(bsInst(100), 100, options.Call)
	if _, err := m.Price(c); err == nil {
		t.Error("expected UnsupportedContractError for American option")
	}
	if _, ok := mustErr(t, m, c).(options.UnsupportedContractError); !ok {
		t.Error("expected error to be UnsupportedContractError")
	}
}

func mustErr(t *testing.T, m *BlackScholesModel, c options.Contract) error {
	t.Helper()
	_, err := m.Price(c)
	if err == nil {
		t.Fatal("expected an error")
	}
	return err
}

func TestBlackScholesRejectsInvalidParameters(t *testing.T) {
	if _, err := NewBlackScholesModel(-1, 0.05, 0.2); err == nil {
		t.Error("expected error for negative time to maturity")
	}
	if _, err := NewBlackScholesModel(1, 0.05, -0.2); err == nil {
		t.Error("expected error for negative volatility")
	}
}

func TestBlackScholesHigherOrderGreeksUnsupportedForBinary(t *testing.T) {
	m, _ := NewBlackScholesModel(1, 0.05, 0.2)
	c, _ := options.NewBinaryCashOrNothingOption(bsInst(100), 100, options.Call)
	if _, err := m.Lambda(c); err == nil {
		t.Error("expected Lambda to be unsupported for Binary contracts")
	}
}

func TestBlackScholesLambdaElasticity(t *testing.T) {
	m, _ := NewBlackScholesModel(1, 0.05, 0.2)
	c, _ := options.NewEuropeanOption(bsInst(100), 100, options.Call)
	delta, _ := m.Delta(c)
	price, _ := m.Price(c)
	lambda, err := m.Lambda(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := delta * 100 / price
	if math.Abs(lambda-want) > 1e-9 {
		t.Errorf("lambda = %v, want %v", lambda, want)
	}
}
