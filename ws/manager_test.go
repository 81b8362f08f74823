package ws

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestBroadcastWithoutSubscribers(t *testing.T) {
	m := NewManager(zerolog.Nop())
	m.Publish("user.created", 1, nil)
	if len(m.List()) != 0 {
		t.Fatalf("expected no subscribers")
	}
	if m.IsConnected("missing") {
		t.Fatalf("unknown subscriber reported as connected")
	}
	m.Unregister("missing")
}
