package render

import "testing"

// TestIntensityBufferBounds verifies dimensions and out-of-range access
func TestIntensityBufferBounds(t *testing.T) {
	b := NewIntensityBuffer(4, 3)

	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", b.Width(), b.Height())
	}
	if len(b.Cells()) != 12 {
		t.Fatalf("Expected 12 cells, got %d", len(b.Cells()))
	}

	b.Set(3, 2, 0.5)
	if got := b.At(3, 2); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	if got := b.Cells()[2*4+3]; got != 0.5 {
		t.Errorf("Expected row-major storage, got %v at index 11", got)
	}

	// Out of range access is ignored
	b.Set(4, 0, 1)
	b.Set(-1, 0, 1)
	if got := b.At(4, 0); got != 0 {
		t.Errorf("Expected 0 for out of bounds read, got %v", got)
	}

	b.Reset()
	for i, v := range b.Cells() {
		if v != 0 {
			t.Errorf("Cell %d not cleared: %v", i, v)
		}
	}
}
