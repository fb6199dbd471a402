package wizard

import (
	"errors"
	"strconv"
)

var (
	ErrZeroQuantity = errors.New("quantity must be greater than zero")
	ErrOverCeiling  = errors.New("quantity exceeds available count")
)

// QuantitySelector builds one validated integer in [0, max] from keypad
// input. The ceiling is snapshotted at creation and never changes for the
// lifetime of the selector.
//
// Digit entry clamps on every keystroke: once the typed value would exceed
// the ceiling, the clamped ceiling becomes both the stored quantity and the
// displayed text, and further digits are absorbed into it. With max=9,
// typing "1" then "5" shows 9, never 15. Deliberately kept from the
// original client; see DESIGN.md.
type QuantitySelector struct {
	max  int64
	text string
}

// NewQuantitySelector creates a selector with the given ceiling. A negative
// ceiling is treated as zero.
func NewQuantitySelector(max int64) *QuantitySelector {
	if max < 0 {
		max = 0
	}
	return &QuantitySelector{max: max, text: "0"}
}

// Max returns the ceiling.
func (q *QuantitySelector) Max() int64 { return q.max }

// Value returns the current quantity.
func (q *QuantitySelector) Value() int64 {
	n, _ := strconv.ParseInt(q.text, 10, 64)
	return n
}

// Text returns the canonical display text: decimal digits with no leading
// zeros except the literal "0".
func (q *QuantitySelector) Text() string { return q.text }

// PressDigit appends one decimal digit. Non-digit runes are ignored.
func (q *QuantitySelector) PressDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	text := q.text + string(d)
	if q.text == "0" {
		text = string(d)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n > q.max {
		// Clamp: ceiling becomes both value and display.
		q.text = strconv.FormatInt(q.max, 10)
		return
	}
	q.text = text
}

// PressDelete removes the last digit; an emptied field resets to "0".
func (q *QuantitySelector) PressDelete() {
	if len(q.text) > 1 {
		q.text = q.text[:len(q.text)-1]
		return
	}
	q.text = "0"
}

// PressClear resets to zero.
func (q *QuantitySelector) PressClear() {
	q.text = "0"
}

// PressIncrement adds one, clamped to the ceiling.
func (q *QuantitySelector) PressIncrement() {
	if v := q.Value(); v < q.max {
		q.text = strconv.FormatInt(v+1, 10)
	}
}

// PressDecrement subtracts one, floored at zero.
func (q *QuantitySelector) PressDecrement() {
	if v := q.Value(); v > 0 {
		q.text = strconv.FormatInt(v-1, 10)
	}
}

// PressMax sets the quantity to the ceiling.
func (q *QuantitySelector) PressMax() {
	q.text = strconv.FormatInt(q.max, 10)
}

// Confirm validates and yields the quantity. A zero quantity (or one above
// the ceiling, which digit clamping normally prevents) fails validation and
// leaves the selector untouched.
func (q *QuantitySelector) Confirm() (int64, error) {
	v := q.Value()
	if v <= 0 {
		return 0, ErrZeroQuantity
	}
	if v > q.max {
		return 0, ErrOverCeiling
	}
	return v, nil
}
