package variate

import "testing"

func TestUniformIntDefaultDrawsZeroOrOne(t *testing.T) {
	u := NewUniformInt()
	u.Src = NewSource(42)

	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		v := u.Next()
		if v != 0 && v != 1 {
			t.Fatalf("draw %d = %d, want 0 or 1", i, v)
		}
		seen[v] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("expected both endpoints in 1000 draws, saw %v", seen)
	}
}

func TestUniformIntTruncatesBounds(t *testing.T) {
	tests := []struct {
		name string
		gen  *UniformInt
		low  int64
		high int64
	}{
		{"default", NewUniformInt(), 0, 1},
		{"high truncated down", NewUniformIntHigh(5.9), 0, 5},
		{"negative high truncated toward zero", NewUniformIntHigh(-5.9), 0, -5},
		{"range truncated then sorted", NewUniformIntRange(4.7, 1.2), 1, 4},
		{"negative range", NewUniformIntRange(-1.5, -6.5), -6, -1},
		{"mixed signs", NewUniformIntRange(2.9, -2.9), -2, 2},
	}

	for _, tc := range tests {
		if tc.gen.Low() != tc.low || tc.gen.High() != tc.high {
			t.Errorf("%s: got [%d, %d], want [%d, %d]",
				tc.name, tc.gen.Low(), tc.gen.High(), tc.low, tc.high)
		}
	}
}

func TestUniformIntEndpointsReachable(t *testing.T) {
	u := NewUniformIntRange(1, 6)
	u.Src = NewSource(7)

	counts := map[int64]int{}
	for i := 0; i < 10000; i++ {
		v := u.Next()
		if v < 1 || v > 6 {
			t.Fatalf("draw %d = %d outside [1,6]", i, v)
		}
		counts[v]++
	}
	for face := int64(1); face <= 6; face++ {
		if counts[face] == 0 {
			t.Errorf("value %d never drawn in 10000 draws", face)
		}
	}
}

// A negative 1-arg bound is not sorted against the implicit 0, so the span
// runs downward from 0. The generator keeps that orientation: draws land in
// [-4, 0] for a bound of -5, with 0 itself only reachable on an exact-zero
// uniform draw.
func TestUniformIntNegativeHighOrientation(t *testing.T) {
	u := NewUniformIntHigh(-5)
	u.Src = NewSource(3)

	seen := map[int64]bool{}
	for i := 0; i < 10000; i++ {
		v := u.Next()
		if v > 0 || v < -4 {
			t.Fatalf("draw %d = %d outside the negative-oriented range [-4,0]", i, v)
		}
		seen[v] = true
	}
	for want := int64(-4); want <= -1; want++ {
		if !seen[want] {
			t.Errorf("value %d never drawn in 10000 draws, saw %v", want, seen)
		}
	}
}

func TestUniformIntSingleValueInterval(t *testing.T) {
	u := NewUniformIntRange(4, 4)
	u.Src = NewSource(1)

	for i := 0; i < 100; i++ {
		if v := u.Next(); v != 4 {
			t.Fatalf("single-value interval produced %d, want 4", v)
		}
	}
}

func TestUniformIntDeterminism(t *testing.T) {
	a := NewUniformIntRange(-10, 10)
	a.Src = NewSource(123)
	b := NewUniformIntRange(-10, 10)
	b.Src = NewSource(123)

	for i := 0; i < 50; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
	}
}
