package param

import (
	"fmt"
	"math"

	"siggen/config"
)

// Registry is the ordered, fixed menu of items. Order is display order.
// All mutation happens in the cooperative loop; the tick context only
// sees the published Signal.
type Registry struct {
	items     []Item
	nameWidth int
	alert     Alerter
	signal    Signal

	rate, duty, low, high int
}

// NewRegistry builds the arena described by cfg. cfg must pass Validate.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu config: %w", err)
	}

	r := &Registry{
		items:     make([]Item, len(cfg.Items)),
		nameWidth: cfg.Display.NameWidth,
		rate:      cfg.IndexOf(cfg.Signal.Rate),
		duty:      cfg.IndexOf(cfg.Signal.Duty),
		low:       cfg.IndexOf(cfg.Signal.Low),
		high:      cfg.IndexOf(cfg.Signal.High),
	}

	for i, it := range cfg.Items {
		switch it.Kind {
		case config.KindInt:
			r.items[i] = NewInt(it.Name, it.Unit, int(it.Value), int(it.Min), int(it.Max))
		case config.KindFraction:
			r.items[i] = NewFraction(it.Name, it.Unit, it.Value, it.Min, it.Max)
		case config.KindPeriod:
			r.items[i] = NewPeriod(it.Name, it.Unit, cfg.IndexOf(it.Ref), it.Min, it.Max)
		case config.KindLabel:
			r.items[i] = NewLabel(it.Name, it.Unit)
		}
	}

	r.publish()
	return r, nil
}

// SetAlerter installs the saturation signal sink
func (r *Registry) SetAlerter(a Alerter) {
	r.alert = a
}

// Len returns the number of items
func (r *Registry) Len() int {
	return len(r.items)
}

// Item returns the item at index i
func (r *Registry) Item(i int) Item {
	return r.items[i]
}

// ChangeValue applies an encoder delta to item i. If the item clamped,
// the alert fires before ChangeValue returns.
func (r *Registry) ChangeValue(i int, delta int) {
	saturated := r.items[i].changeValue(r.items, delta)
	r.publish()

	if saturated && r.alert != nil {
		r.alert.Flash()
	}
}

// AppendName renders the name field of item i into buf
func (r *Registry) AppendName(buf []byte, i int) []byte {
	return appendName(buf, r.items[i].Name(), r.nameWidth)
}

// AppendValue renders the value field of item i into buf
func (r *Registry) AppendValue(buf []byte, i int) []byte {
	return r.items[i].appendValue(buf, r.items)
}

// RenderName returns the name field of item i
func (r *Registry) RenderName(i int) string {
	var buf [32]byte
	return string(r.AppendName(buf[:0], i))
}

// RenderValue returns the value field of item i
func (r *Registry) RenderValue(i int) string {
	var buf [32]byte
	return string(r.AppendValue(buf[:0], i))
}

// Signal returns the read-only view used by the tick context
func (r *Registry) Signal() SignalView {
	return &r.signal
}

// publish recomputes the tick-side words. Only the word belonging to the
// edited item changes value.
func (r *Registry) publish() {
	rate := r.items[r.rate].(*FractionItem).Value()
	r.signal.periodMs.Store(uint32(math.Round(config.MillisPerSec / rate)))
	r.signal.duty.Store(uint32(r.items[r.duty].(*IntItem).Value()))
	r.signal.low.Store(uint32(r.items[r.low].(*IntItem).Value()))
	r.signal.high.Store(uint32(r.items[r.high].(*IntItem).Value()))
}
