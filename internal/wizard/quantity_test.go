package wizard

import "testing"

func TestDigitEntryClampsToCeiling(t *testing.T) {
	q := NewQuantitySelector(100)

	q.PressDigit('1')
	if q.Value() != 1 {
		t.Errorf("after '1': expected 1, got %d", q.Value())
	}
	q.PressDigit('5')
	if q.Value() != 15 {
		t.Errorf("after '5': expected 15, got %d", q.Value())
	}
	q.PressDigit('0')
	// 150 > 100: clamped, not rejected, not wrapped.
	if q.Value() != 100 {
		t.Errorf("after '0': expected clamp to 100, got %d", q.Value())
	}
	if q.Text() != "100" {
		t.Errorf("clamped value must become the display text, got %q", q.Text())
	}
}

func TestDigitEntryAbsorbedAfterClamp(t *testing.T) {
	// With max=9, typing "1" then "5" never shows 15: the second keystroke
	// is absorbed into the already-clamped 9.
	q := NewQuantitySelector(9)
	q.PressDigit('1')
	q.PressDigit('5')
	if q.Value() != 9 || q.Text() != "9" {
		t.Errorf("expected 9/%q, got %d/%q", "9", q.Value(), q.Text())
	}
	q.PressDigit('3')
	if q.Value() != 9 {
		t.Errorf("further digits must be absorbed, got %d", q.Value())
	}
}

func TestIncrementDecrementBounds(t *testing.T) {
	q := NewQuantitySelector(2)

	q.PressDecrement()
	if q.Value() != 0 {
		t.Errorf("decrement below 0 must be a no-op, got %d", q.Value())
	}

	q.PressIncrement()
	q.PressIncrement()
	q.PressIncrement()
	if q.Value() != 2 {
		t.Errorf("increment past max must be a no-op, got %d", q.Value())
	}
}

func TestDeleteAndClear(t *testing.T) {
	q := NewQuantitySelector(1000)
	q.PressDigit('4')
	q.PressDigit('2')
	q.PressDelete()
	if q.Value() != 4 {
		t.Errorf("expected 4 after delete, got %d", q.Value())
	}
	q.PressDelete()
	if q.Text() != "0" {
		t.Errorf("emptied field must reset to \"0\", got %q", q.Text())
	}

	q.PressDigit('7')
	q.PressClear()
	if q.Value() != 0 || q.Text() != "0" {
		t.Errorf("clear must reset to zero, got %d/%q", q.Value(), q.Text())
	}
}

func TestLeadingZeroReplaced(t *testing.T) {
	q := NewQuantitySelector(50)
	q.PressDigit('0')
	if q.Text() != "0" {
		t.Errorf("expected %q, got %q", "0", q.Text())
	}
	q.PressDigit('7')
	if q.Text() != "7" {
		t.Errorf("leading zero must be replaced, got %q", q.Text())
	}
}

func TestPressMax(t *testing.T) {
	q := NewQuantitySelector(37)
	q.PressMax()
	if q.Value() != 37 || q.Text() != "37" {
		t.Errorf("expected 37, got %d/%q", q.Value(), q.Text())
	}
}

func TestConfirmValidation(t *testing.T) {
	q := NewQuantitySelector(5)

	if _, err := q.Confirm(); err != ErrZeroQuantity {
		t.Errorf("expected ErrZeroQuantity, got %v", err)
	}

	q.PressDigit('3')
	v, err := q.Confirm()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 3 {
		t.Errorf("expected 3, got %d", v)
	}
}

func TestConfirmedQuantityAlwaysInRange(t *testing.T) {
	// For any input sequence, a confirmed quantity stays in [1, max].
	seqs := [][]rune{
		{'9', '9', '9', '9'},
		{'0', '0', '1'},
		{'5', '0'},
		{'1'},
	}
	const max = 7
	for _, seq := range seqs {
		q := NewQuantitySelector(max)
		for _, d := range seq {
			q.PressDigit(d)
		}
		v, err := q.Confirm()
		if err != nil {
			continue
		}
		if v < 1 || v > max {
			t.Errorf("seq %q: confirmed %d outside [1, %d]", string(seq), v, max)
		}
	}
}

func TestNonDigitIgnored(t *testing.T) {
	q := NewQuantitySelector(10)
	q.PressDigit('a')
	q.PressDigit('-')
	if q.Value() != 0 {
		t.Errorf("non-digits must be ignored, got %d", q.Value())
	}
}
