package wave

import (
	"testing"

	"siggen/config"
	"siggen/core"
	"siggen/param"
)

type recordOutput struct {
	levels []core.Level
}

func (o *recordOutput) SetLevel(value core.Level) {
	o.levels = append(o.levels, value)
}

func newRegistry(t *testing.T, rate float64, duty, low, high int) *param.Registry {
	t.Helper()

	cfg := config.DefaultConfig()
	for i := range cfg.Items {
		switch cfg.Items[i].Name {
		case cfg.Signal.Rate:
			cfg.Items[i].Value = rate
		case cfg.Signal.Duty:
			cfg.Items[i].Value = float64(duty)
		case cfg.Signal.Low:
			cfg.Items[i].Value = float64(low)
		case cfg.Signal.High:
			cfg.Items[i].Value = float64(high)
		}
	}

	reg, err := param.NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return reg
}

func TestGeneratorQuarterDuty(t *testing.T) {
	reg := newRegistry(t, 2, 25, 0, 100)
	out := &recordOutput{}
	gen := NewGenerator(reg.Signal(), out)

	for now := uint32(0); now < 2000; now++ {
		gen.Tick(now)

		want := core.Level(0)
		if now%500 < 125 {
			want = 100
		}
		got := out.levels[len(out.levels)-1]
		if got != want {
			t.Fatalf("t=%d: expected level %d, got %d", now, want, got)
		}
	}
}

func TestGeneratorEdges(t *testing.T) {
	reg := newRegistry(t, 2, 25, 0, 100)
	gen := NewGenerator(reg.Signal(), &recordOutput{})

	tests := []struct {
		now  uint32
		want core.Level
	}{
		{0, 100},
		{124, 100},
		{125, 0},
		{499, 0},
		{500, 100},
		{624, 100},
		{625, 0},
		{0xFFFFFFFF, 0}, // 4294967295 % 500 = 295
	}

	for _, tt := range tests {
		if got := gen.Level(tt.now); got != tt.want {
			t.Errorf("t=%d: expected %d, got %d", tt.now, tt.want, got)
		}
	}
}

func TestGeneratorDutyExtremes(t *testing.T) {
	low := newRegistry(t, 1, 0, 7, 90)
	gen := NewGenerator(low.Signal(), &recordOutput{})
	for now := uint32(0); now < 1000; now += 50 {
		if got := gen.Level(now); got != 7 {
			t.Fatalf("duty 0, t=%d: expected low level 7, got %d", now, got)
		}
	}

	full := newRegistry(t, 1, 100, 7, 90)
	gen = NewGenerator(full.Signal(), &recordOutput{})
	for now := uint32(0); now < 1000; now += 50 {
		if got := gen.Level(now); got != 90 {
			t.Fatalf("duty 100, t=%d: expected high level 90, got %d", now, got)
		}
	}
}

func TestGeneratorFollowsEdits(t *testing.T) {
	reg := newRegistry(t, 2, 25, 0, 100)
	gen := NewGenerator(reg.Signal(), &recordOutput{})

	// Duty Cycle is index 2 in the stock menu: 25 -> 50
	reg.ChangeValue(2, 25)
	if got := gen.Level(200); got != 100 {
		t.Errorf("after duty edit: expected 100 at t=200, got %d", got)
	}

	// Pulse/sec is index 1: 2 -> 4 pulses/sec, period 250ms
	reg.ChangeValue(1, 8)
	if got := reg.Signal().PeriodMs(); got != 250 {
		t.Fatalf("expected period 250ms, got %d", got)
	}
	if got := gen.Level(130); got != 0 {
		t.Errorf("after rate edit: expected 0 at t=130, got %d", got)
	}
}

func TestGeneratorPeriodRounding(t *testing.T) {
	// 1000/3 = 333.33 -> 333
	reg := newRegistry(t, 3, 50, 0, 100)
	if got := reg.Signal().PeriodMs(); got != 333 {
		t.Errorf("expected period 333ms, got %d", got)
	}

	// 1000/0.75 = 1333.33 -> 1333
	reg = newRegistry(t, 0.75, 50, 0, 100)
	if got := reg.Signal().PeriodMs(); got != 1333 {
		t.Errorf("expected period 1333ms, got %d", got)
	}

	// 1000/0.6 = 1666.67 -> 1667, not truncated to 1666
	reg = newRegistry(t, 0.6, 50, 0, 100)
	if got := reg.Signal().PeriodMs(); got != 1667 {
		t.Errorf("expected period 1667ms, got %d", got)
	}
	gen := NewGenerator(reg.Signal(), &recordOutput{})
	if got := gen.Level(1666); got != 0 {
		t.Errorf("expected low level at t=1666, got %d", got)
	}
	if got := gen.Level(1667); got != 100 {
		t.Errorf("expected a new period at t=1667, got %d", got)
	}
}
