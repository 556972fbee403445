package search

import (
	"testing"
	"time"
)

func TestDebouncerCoalescesRapidUpdates(t *testing.T) {
	fired := make(chan string, 8)
	db := NewDebouncer(30*time.Millisecond, func(q string) { fired <- q })
	defer db.Stop()

	db.Update("c")
	db.Update("ca")
	db.Update("cat")

	select {
	case got := <-fired:
		if got != "cat" {
			t.Fatalf("debouncer fired with %q, want final value %q", got, "cat")
		}
	case <-time.After(time.Second):
		t.Fatal("debouncer never fired")
	}

	// No second firing for the coalesced updates.
	select {
	case got := <-fired:
		t.Fatalf("unexpected extra firing with %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerFiresAgainAfterQuiescence(t *testing.T) {
	fired := make(chan string, 2)
	db := NewDebouncer(20*time.Millisecond, func(q string) { fired <- q })
	defer db.Stop()

	db.Update("first")
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("first evaluation never fired")
	}

	db.Update("second")
	select {
	case got := <-fired:
		if got != "second" {
			t.Fatalf("second evaluation fired with %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("second evaluation never fired")
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	fired := make(chan string, 1)
	db := NewDebouncer(30*time.Millisecond, func(q string) { fired <- q })

	db.Update("pending")
	db.Stop()

	select {
	case got := <-fired:
		t.Fatalf("stopped debouncer fired with %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}
