package options

import (
	"testing"

	"github.com/kervinlow/quantstruct/equity"
)

func inst(spot float64) equity.Instrument {
	return equity.NewInstrument(spot)
}

func TestNewEuropeanOptionRejectsNegativeStrike(t *testing.T) {
	if _, err := NewEuropeanOption(inst(100), -1, Call); err == nil {
		t.Error("expected error for negative strike")
	}
}

func TestVanillaPayoffCallPut(t *testing.T) {
	c, _ := NewEuropeanOption(inst(100), 100, Call)
	p, _ := NewEuropeanOption(inst(100), 100, Put)

	if got := c.Payoff(Observable{Terminal: 120}); got != 20 {
		t.Errorf("call ITM payoff = %v, want 20", got)
	}
	if got := c.Payoff(Observable{Terminal: 80}); got != 0 {
		t.Errorf("call OTM payoff = %v, want 0", got)
	}
	if got := p.Payoff(Observable{Terminal: 80}); got != 20 {
		t.Errorf("put ITM payoff = %v, want 20", got)
	}
	if got := p.Payoff(Observable{Terminal: 120}); got != 0 {
		t.Errorf("put OTM payoff = %v, want 0", got)
	}
}

func TestAsianFixedUsesAverage(t *testing.T) {
	c, _ := NewAsianFixedOption(inst(100), 100, Call)
	got := c.Payoff(Observable{Terminal: 150, Average: 110})
	if got != 10 {
		t.Errorf("Asian fixed payoff = %v, want 10 (average vs fixed strike)", got)
	}
}

func TestAsianFloatingComparesTerminalToAverage(t *testing.T) {
	c, _ := NewAsianFloatingOption(inst(100), Call)
	got := c.Payoff(Observable{Terminal: 120, Average: 100})
	if got != 20 {
		t.Errorf("Asian floating payoff = %v, want 20", got)
	}
}

func TestLookbackFloatingCall(t *testing.T) {
	c, _ := NewLookbackFloatingOption(inst(100), Call)
	got := c.Payoff(Observable{Terminal: 130, Min: 90, Max: 140})
	if got != 40 {
		t.Errorf("lookback floating call payoff = %v, want 40 (terminal - min)", got)
	}
}

func TestLookbackFloatingPut(t *testing.T) {
	p, _ := NewLookbackFloatingOption(inst(100), Put)
	got := p.Payoff(Observable{Terminal: 110, Min: 90, Max: 140})
	if got != 30 {
		t.Errorf("lookback floating put payoff = %v, want 30 (max - terminal)", got)
	}
}

func TestBarrierDownAndOutKnockedOut(t *testing.T) {
	c, _ := NewBarrierDownAndOutOption(inst(100), 100, 90, Call)
	got := c.Payoff(Observable{Terminal: 130, Min: 85, Max: 130})
	if got != 0 {
		t.Errorf("down-and-out payoff = %v, want 0 once knocked out", got)
	}
}

func TestBarrierDownAndInNotActivated(t *testing.T) {
	c, _ := NewBarrierDownAndInOption(inst(100), 100, 90, Call)
	got := c.Payoff(Observable{Terminal: 130, Min: 95, Max: 130})
	if got != 0 {
		t.Errorf("down-and-in payoff = %v, want 0 when never activated", got)
	}
}

func TestBarrierKnockInPlusKnockOutEqualsVanilla(t *testing.T) {
	knockedIn, _ := NewBarrierDownAndInOption(inst(100), 100, 90, Call)
	knockedOut, _ := NewBarrierDownAndOutOption(inst(100), 100, 90, Call)
	vanilla, _ := NewEuropeanOption(inst(100), 100, Call)

	ob := Observable{Terminal: 130, Min: 85, Max: 130}
	sum := knockedIn.Payoff(ob) + knockedOut.Payoff(ob)
	want := vanilla.Payoff(ob)
	if sum != want {
		t.Errorf("knock-in + knock-out = %v, want %v (vanilla)", sum, want)
	}
}

func TestBinaryCashOrNothing(t *testing.T) {
	c, _ := NewBinaryCashOrNothingOption(inst(100), 100, Call)
	if got := c.Payoff(Observable{Terminal: 120}); got != 1.0 {
		t.Errorf("cash-or-nothing ITM payoff = %v, want 1", got)
	}
	if got := c.Payoff(Observable{Terminal: 80}); got != 0 {
		t.Errorf("cash-or-nothing OTM payoff = %v, want 0", got)
	}
}

func TestBinaryAssetOrNothing(t *testing.T) {
	c, _ := NewBinaryAssetOrNothingOption(inst(100), 100, Call)
	if got := c.Payoff(Observable{Terminal: 120}); got != 120 {
		t.Errorf("asset-or-nothing ITM payoff = %v, want 120", got)
	}
}

func TestRainbowRequiresNonEmptyBasket(t *testing.T) {
	if _, err := NewRainbowBestOfOption(inst(100), 90); err == nil {
		t.Error("expected error for rainbow option with no basket assets")
	}
}

func basketInstrument() equity.Instrument {
	return inst(100).WithAssets([]equity.Asset{
		{Instrument: inst(90), Weight: 1},
		{Instrument: inst(110), Weight: 1},
	})
}

func TestRainbowBestOf(t *testing.T) {
	c, err := NewRainbowBestOfOption(basketInstrument(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Payoff(Observable{Basket: []float64{95, 130}})
	if got != 130 {
		t.Errorf("BestOf payoff = %v, want 130", got)
	}
}

func TestRainbowWorstOf(t *testing.T) {
	c, _ := NewRainbowWorstOfOption(basketInstrument(), 100)
	got := c.Payoff(Observable{Basket: []float64{95, 130}})
	if got != 95 {
		t.Errorf("WorstOf payoff = %v, want 95", got)
	}
}

func TestRainbowCallOnMaxMin(t *testing.T) {
	callOnMax, _ := NewRainbowCallOnMaxOption(basketInstrument(), 100)
	callOnMin, _ := NewRainbowCallOnMinOption(basketInstrument(), 100)
	ob := Observable{Basket: []float64{95, 130}}
	if got := callOnMax.Payoff(ob); got != 30 {
		t.Errorf("CallOnMax payoff = %v, want 30", got)
	}
	if got := callOnMin.Payoff(ob); got != 0 {
		t.Errorf("CallOnMin payoff = %v, want 0", got)
	}
}

func TestRainbowPayoffScenarios(t *testing.T) {
	basket := inst(100).WithAssets([]equity.Asset{
		{Instrument: inst(115), Weight: 1},
		{Instrument: inst(104), Weight: 1},
		{Instrument: inst(86), Weight: 1},
	})
	ob := Observable{Basket: []float64{115, 104, 86}}

	bestOf, _ := NewRainbowBestOfOption(basket, 105)
	if got := bestOf.Payoff(ob); got != 115 {
		t.Errorf("BestOf(105) payoff = %v, want 115", got)
	}
	callOnMin, _ := NewRainbowCallOnMinOption(basket, 80)
	if got := callOnMin.Payoff(ob); got != 6 {
		t.Errorf("CallOnMin(80) payoff = %v, want 6", got)
	}
	putOnMax, _ := NewRainbowPutOnMaxOption(basket, 120)
	if got := putOnMax.Payoff(ob); got != 5 {
		t.Errorf("PutOnMax(120) payoff = %v, want 5", got)
	}
}

func TestRainbowBestOfFloorWorstOfCap(t *testing.T) {
	bestOf, _ := NewRainbowBestOfOption(basketInstrument(), 100)
	worstOf, _ := NewRainbowWorstOfOption(basketInstrument(), 100)
	ob := Observable{Basket: []float64{50, 60}}
	if got := bestOf.Payoff(ob); got < 100 {
		t.Errorf("BestOf(100) payoff = %v, want >= 100", got)
	}
	if got := worstOf.Payoff(ob); got > 100 {
		t.Errorf("WorstOf(100) payoff = %v, want <= 100", got)
	}
}

func TestLookbackFloatingCallDominatesEuropeanCall(t *testing.T) {
	lookback, _ := NewLookbackFloatingOption(inst(100), Call)
	euro, _ := NewEuropeanOption(inst(100), 100, Call)
	for _, ob := range []Observable{
		{Terminal: 130, Min: 95, Max: 135},
		{Terminal: 90, Min: 80, Max: 110},
		{Terminal: 100, Min: 100, Max: 100},
	} {
		if lookback.Payoff(ob) < euro.Payoff(ob) {
			t.Errorf("lookback floating call payoff %v should dominate European payoff %v on the same path",
				lookback.Payoff(ob), euro.Payoff(ob))
		}
	}
}

func TestAsianFixedPayoffNonDecreasingInAverage(t *testing.T) {
	c, _ := NewAsianFixedOption(inst(100), 100, Call)
	prev := -1.0
	for _, avg := range []float64{80, 95, 100, 105, 120, 150} {
		got := c.Payoff(Observable{Terminal: 100, Average: avg})
		if got < prev {
			t.Errorf("Asian fixed call payoff decreased: payoff(%v) = %v < %v", avg, got, prev)
		}
		prev = got
	}
}

func TestFlipSwapsTypePreservesEverythingElse(t *testing.T) {
	c, _ := NewBarrierUpAndOutOption(inst(100), 100, 120, Call)
	flipped := c.Flip()
	if !flipped.IsPut() {
		t.Error("Flip did not change Call to Put")
	}
	if flipped.Strike != c.Strike || flipped.BarrierLevel != c.BarrierLevel || flipped.Style != c.Style {
		t.Error("Flip changed a field other than Type")
	}
	if flipped.Flip().Type != c.Type {
		t.Error("Flip should be its own inverse")
	}
}

func TestMoneyness(t *testing.T) {
	call, _ := NewEuropeanOption(inst(110), 100, Call)
	if !call.ITM() || call.OTM() || call.ATM() {
		t.Errorf("call spot 110 strike 100 should be ITM only")
	}
	put, _ := NewEuropeanOption(inst(110), 100, Put)
	if !put.OTM() || put.ITM() || put.ATM() {
		t.Errorf("put spot 110 strike 100 should be OTM only")
	}
	atm, _ := NewEuropeanOption(inst(100), 100, Call)
	if !atm.ATM() || atm.ITM() || atm.OTM() {
		t.Errorf("spot == strike should be ATM only")
	}
}

func TestOptionTypeAndStyleString(t *testing.T) {
	if Call.String() != "Call" || Put.String() != "Put" {
		t.Error("OptionType.String() mismatch")
	}
	if European.String() != "European" || Rainbow.String() != "Rainbow" {
		t.Error("OptionStyle.String() mismatch")
	}
}
