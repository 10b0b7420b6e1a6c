package uuid

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := New()

	if !IsValid(id) {
		t.Fatalf("expected valid uuid, got %q", id)
	}
	ts, err := Timestamp(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Before(before) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("embedded timestamp %s out of range", ts)
	}
}

func TestNew_Ordered(t *testing.T) {
	a := New()
	time.Sleep(2 * time.Millisecond)
	b := New()
	if a >= b {
		t.Errorf("expected %s < %s", a, b)
	}
}

func TestTimestamp_RejectsOtherVersions(t *testing.T) {
	if _, err := Timestamp("550e8400-e29b-41d4-a716-446655440000"); err == nil {
		t.Error("expected error for a version 4 uuid")
	}
	if _, err := Timestamp("not-a-uuid"); err == nil {
		t.Error("expected error for garbage input")
	}
}
