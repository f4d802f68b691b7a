// Package param holds the editable parameters shown in the menu.
//
// Items live in a fixed arena owned by a Registry. A period item refers to
// its frequency item by arena index, never by pointer.
package param

import "siggen/core"

// Alerter receives the one-shot saturation signal
type Alerter interface {
	Flash()
}

// Item is one editable menu row. The set of implementations is closed:
// IntItem, FractionItem, PeriodItem and LabelItem.
type Item interface {
	Name() string
	Unit() string

	// changeValue applies an encoder delta and reports whether the
	// result had to be clamped
	changeValue(items []Item, delta int) (saturated bool)

	// appendValue renders the current value followed by the unit
	appendValue(buf []byte, items []Item) []byte
}

type base struct {
	name, unit string
}

func (b *base) Name() string { return b.name }
func (b *base) Unit() string { return b.unit }

// LabelItem is a row without a value. Any edit attempt saturates.
type LabelItem struct {
	base
}

// NewLabel creates a read-only row
func NewLabel(name, unit string) *LabelItem {
	return &LabelItem{base{name, unit}}
}

func (it *LabelItem) changeValue(items []Item, delta int) bool {
	return true
}

func (it *LabelItem) appendValue(buf []byte, items []Item) []byte {
	return append(buf, "<ERR>"...)
}

// IntItem holds an integer within inclusive bounds.
// Each encoder step changes it by one.
type IntItem struct {
	base
	value    int
	min, max int
}

// NewInt creates an integer item. value is clamped into [min, max].
func NewInt(name, unit string, value, min, max int) *IntItem {
	it := &IntItem{base: base{name, unit}, min: min, max: max}
	it.value, _ = clampInt(int64(value), min, max)
	return it
}

// Value returns the current value
func (it *IntItem) Value() int { return it.value }

func (it *IntItem) changeValue(items []Item, delta int) bool {
	var saturated bool
	it.value, saturated = clampInt(int64(it.value)+int64(delta), it.min, it.max)
	return saturated
}

func (it *IntItem) appendValue(buf []byte, items []Item) []byte {
	buf = core.AppendIntLeft(buf, it.value, 3)
	return append(buf, it.unit...)
}

// FractionItem holds a real value within inclusive bounds.
// Each encoder step changes it by a quarter.
type FractionItem struct {
	base
	value    float64
	min, max float64
}

// FractionStep is the value change per encoder step
const FractionStep = 0.25

// NewFraction creates a fractional item. value is clamped into [min, max].
func NewFraction(name, unit string, value, min, max float64) *FractionItem {
	it := &FractionItem{base: base{name, unit}, min: min, max: max}
	it.value, _ = clampFloat(value, min, max)
	return it
}

// Value returns the current value
func (it *FractionItem) Value() float64 { return it.value }

func (it *FractionItem) changeValue(items []Item, delta int) bool {
	var saturated bool
	it.value, saturated = clampFloat(it.value+float64(delta)*FractionStep, it.min, it.max)
	return saturated
}

func (it *FractionItem) appendValue(buf []byte, items []Item) []byte {
	buf = appendFixed(buf, it.value)
	return append(buf, it.unit...)
}

// PeriodItem shows and edits the reciprocal of a FractionItem.
// It owns no value of its own.
type PeriodItem struct {
	base
	ref      int // arena index of the frequency item
	min, max float64
}

// PeriodStep is the period change per encoder step
const PeriodStep = 0.1

// NewPeriod creates a period view over the frequency item at index ref
func NewPeriod(name, unit string, ref int, min, max float64) *PeriodItem {
	return &PeriodItem{base: base{name, unit}, ref: ref, min: min, max: max}
}

// Value returns 1/frequency
func (it *PeriodItem) Value(items []Item) float64 {
	return 1.0 / it.freq(items).value
}

// SetValue writes 1/period back into the frequency item
func (it *PeriodItem) SetValue(items []Item, period float64) {
	it.freq(items).value = 1.0 / period
}

func (it *PeriodItem) freq(items []Item) *FractionItem {
	return items[it.ref].(*FractionItem)
}

func (it *PeriodItem) changeValue(items []Item, delta int) bool {
	value, saturated := clampFloat(it.Value(items)+float64(delta)*PeriodStep, it.min, it.max)
	it.SetValue(items, value)
	return saturated
}

func (it *PeriodItem) appendValue(buf []byte, items []Item) []byte {
	buf = appendFixed(buf, it.Value(items))
	return append(buf, it.unit...)
}

func clampInt(v int64, min, max int) (int, bool) {
	if v > int64(max) {
		return max, true
	}
	if v < int64(min) {
		return min, true
	}
	return int(v), false
}

func clampFloat(v, min, max float64) (float64, bool) {
	if v > max {
		return max, true
	}
	if v < min {
		return min, true
	}
	return v, false
}
