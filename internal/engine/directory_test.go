package engine

import (
	"testing"
	"time"
)

func TestDirectoryAppendOrderAndTimestamps(t *testing.T) {
	clock := time.Date(2025, 10, 4, 12, 0, 0, 0, time.UTC)
	d := NewDirectoryAt(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})
	d.Append("A", "first")
	d.Append("B", "second")
	d.Append("A", "duplicate titles allowed")
	entries := d.List()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Title != "A" || entries[1].Title != "B" || entries[2].Title != "A" {
		t.Fatalf("insertion order not preserved: %+v", entries)
	}
	if !entries[1].LoggedAt.After(entries[0].LoggedAt) {
		t.Fatal("timestamps must follow append order")
	}
}

func TestDirectoryClear(t *testing.T) {
	d := NewDirectory()
	d.Append("X", "y")
	d.Clear()
	if d.Len() != 0 {
		t.Fatalf("expected empty directory after clear, got %d", d.Len())
	}
}

func TestDirectoryListIsACopy(t *testing.T) {
	d := NewDirectory()
	d.Append("X", "y")
	list := d.List()
	list[0].Title = "mutated"
	if d.List()[0].Title != "X" {
		t.Fatal("List must not expose internal storage")
	}
}
