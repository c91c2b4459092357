package static

import "testing"

func TestAddress(t *testing.T) {
	addr, ok := Session{Addr: "0xabc"}.Address()
	if !ok || addr != "0xabc" {
		t.Fatalf("unexpected address: %q %v", addr, ok)
	}

	if _, ok := (Session{}).Address(); ok {
		t.Fatalf("empty session must report disconnected")
	}
}
