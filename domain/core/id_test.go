package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseRunID tests run ID parsing
func TestParseRunID(t *testing.T) {
	valid := NewRunID()
	parsed, err := ParseRunID(valid.String())
	if err != nil {
		t.Errorf("Unexpected error for '%s': %v", valid, err)
	}
	if parsed != valid {
		t.Errorf("Expected %s, got %s", valid, parsed)
	}

	for _, input := range []string{"", "   ", "not-a-uuid", "run-123"} {
		if _, err := ParseRunID(input); err == nil {
			t.Errorf("Expected error for input '%s', but got none", input)
		}
	}
}

// TestHashDeterminism tests that identical input yields identical hashes
func TestHashDeterminism(t *testing.T) {
	a := NewHash([]byte("draw-run-fingerprint"))
	b := NewHash([]byte("draw-run-fingerprint"))
	if !a.Equals(b) {
		t.Errorf("Expected identical hashes, got %s and %s", a, b)
	}

	c := NewHash([]byte("different"))
	if a.Equals(c) {
		t.Error("Expected different inputs to hash differently")
	}
	if a.IsEmpty() {
		t.Error("Expected non-empty hash")
	}
}
