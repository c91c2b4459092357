package inmemory

import (
	"fmt"
	"testing"
)

func TestRecentReturnsNewestFirst(t *testing.T) {
	n := NewNotifier()
	n.Show("first")
	n.Show("second")

	got := n.Recent()
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Message != "second" || got[1].Message != "first" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestRingDropsOldest(t *testing.T) {
	n := NewNotifier()
	n.cap = 3
	for i := 0; i < 5; i++ {
		n.Show(fmt.Sprintf("msg-%d", i))
	}

	got := n.Recent()
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0].Message != "msg-4" || got[2].Message != "msg-2" {
		t.Fatalf("unexpected window: %+v", got)
	}
}
