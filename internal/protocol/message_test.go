package protocol_test

import (
	"testing"

	"github.com/rescuegate/rescuegate/internal/protocol"
)

func TestIsNotificationOnlyWhenIDAbsent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"id absent", `{"jsonrpc":"2.0","method":"initialized"}`, true},
		{"id null", `{"jsonrpc":"2.0","method":"tools/list","id":null}`, false},
		{"id zero", `{"jsonrpc":"2.0","method":"tools/list","id":0}`, false},
		{"id string", `{"jsonrpc":"2.0","method":"tools/list","id":"abc"}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, parseErr := protocol.ParseRequest([]byte(tc.raw))
			if parseErr != nil {
				t.Fatalf("ParseRequest: %v", parseErr)
			}
			if got := req.IsNotification(); got != tc.want {
				t.Errorf("IsNotification() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResultEchoesNullID(t *testing.T) {
	req, parseErr := protocol.ParseRequest([]byte(`{"jsonrpc":"2.0","method":"tools/list","id":null}`))
	if parseErr != nil {
		t.Fatalf("ParseRequest: %v", parseErr)
	}
	resp := protocol.Result(req.ID, map[string]any{"ok": true})
	if string(resp.ID) != "null" {
		t.Errorf("ID = %s, want the literal null token echoed back", resp.ID)
	}
}
