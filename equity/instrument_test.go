package equity

import "testing"

func TestNewInstrumentDefaults(t *testing.T) {
	inst := NewInstrument(100.0)
	if inst.Spot != 100.0 {
		t.Errorf("Spot = %v, want 100", inst.Spot)
	}
	if inst.ContinuousDividendYield != 0 || inst.DiscreteDividendYield != 0 {
		t.Errorf("expected zero dividend yields by default, got %+v", inst)
	}
	if len(inst.DividendTimes) != 0 || len(inst.Assets) != 0 {
		t.Errorf("expected empty slices by default, got %+v", inst)
	}
}

func TestWithMethodsDoNotMutateReceiver(t *testing.T) {
	base := NewInstrument(100.0)
	withQ := base.WithContinuousDividendYield(0.03)
	if base.ContinuousDividendYield != 0 {
		t.Errorf("base instrument mutated: %v", base.ContinuousDividendYield)
	}
	if withQ.ContinuousDividendYield != 0.03 {
		t.Errorf("withQ.ContinuousDividendYield = %v, want 0.03", withQ.ContinuousDividendYield)
	}
}

func TestAdjustedSpotNoDividends(t *testing.T) {
	inst := NewInstrument(100.0)
	if got := inst.AdjustedSpot(1.0); got != 100.0 {
		t.Errorf("AdjustedSpot = %v, want 100", got)
	}
}

func TestAdjustedSpotCountsOnlyPastDividends(t *testing.T) {
	inst := NewInstrument(100.0).WithDiscreteDividends(0.05, []float64{0.25, 0.75, 1.25})
	got := inst.AdjustedSpot(1.0)
	want := 100.0 * 0.95 * 0.95 // only the two dividend times <= 1.0
	if diff := got - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("AdjustedSpot(1.0) = %v, want %v", got, want)
	}
}

func TestAdjustedSpotAtExactDividendTimeIsInclusive(t *testing.T) {
	inst := NewInstrument(100.0).WithDiscreteDividends(0.1, []float64{0.5})
	got := inst.AdjustedSpot(0.5)
	want := 90.0
	if diff := got - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("AdjustedSpot(0.5) = %v, want %v", got, want)
	}
}

func TestValidateRejectsNonPositiveSpot(t *testing.T) {
	inst := Instrument{Spot: 0}
	if err := inst.Validate(); err == nil {
		t.Error("expected error for zero spot")
	}
	if _, ok := (Instrument{Spot: -1}).Validate().(ErrNegativeSpot); !ok {
		t.Error("expected ErrNegativeSpot for negative spot")
	}
}

func TestValidateRejectsOutOfRangeDiscreteYield(t *testing.T) {
	inst := NewInstrument(100.0)
	inst.DiscreteDividendYield = 1.0
	if _, ok := inst.Validate().(ErrInvalidYield); !ok {
		t.Error("expected ErrInvalidYield for yield == 1")
	}
	inst.DiscreteDividendYield = -0.1
	if _, ok := inst.Validate().(ErrInvalidYield); !ok {
		t.Error("expected ErrInvalidYield for negative yield")
	}
}

func TestValidateRejectsNegativeDividendTimes(t *testing.T) {
	inst := NewInstrument(100.0).WithDiscreteDividends(0.05, []float64{-0.1})
	if err := inst.Validate(); err == nil {
		t.Error("expected error for negative dividend time")
	}
}

func TestValidateRejectsNonPositiveAssetWeight(t *testing.T) {
	inst := NewInstrument(100.0).WithAssets([]Asset{
		{Instrument: NewInstrument(50.0), Weight: 0},
	})
	if _, ok := inst.Validate().(ErrInvalidWeight); !ok {
		t.Error("expected ErrInvalidWeight for zero weight")
	}
}

func TestValidateAcceptsWellFormedInstrument(t *testing.T) {
	inst := NewInstrument(100.0).
		WithContinuousDividendYield(0.02).
		WithDiscreteDividends(0.01, []float64{0.25, 0.75}).
		WithAssets([]Asset{{Instrument: NewInstrument(50.0), Weight: 1.0}})
	if err := inst.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWithAssetsCopiesSlice(t *testing.T) {
	assets := []Asset{{Instrument: NewInstrument(50.0), Weight: 1.0}}
	inst := NewInstrument(100.0).WithAssets(assets)
	assets[0].Weight = 99.0
	if inst.Assets[0].Weight == 99.0 {
		t.Error("WithAssets aliased the input slice")
	}
}
