package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"roomchat/internal/app/message"
	"roomchat/internal/pkg/errs"
)

// TestFullChatFlow walks the whole API the way a client would: register,
// log in again for a second independent token, create a room, hit the
// duplicate-name conflict, post with the second token, and read back the log.
func TestFullChatFlow(t *testing.T) {
	deps := newTestDeps()
	h := Router(deps)

	tokenA := registerUser(t, h, "alice", "pw1")

	status, env := doRequest(t, h, "POST", "/token", "", `{"username":"alice","password":"pw1"}`)
	if status != http.StatusOK {
		t.Fatalf("login: status = %d, want %d", status, http.StatusOK)
	}
	var tokenB Token
	if err := json.Unmarshal(env.Data, &tokenB); err != nil {
		t.Fatalf("login: bad token payload: %v", err)
	}

	// Both tokens are independently valid.
	for name, tok := range map[string]string{"registration token": tokenA.AccessToken, "login token": tokenB.AccessToken} {
		status, _ := doRequest(t, h, "GET", "/rooms", tok, "")
		if status != http.StatusOK {
			t.Fatalf("%s rejected: status = %d", name, status)
		}
	}

	rm := createRoom(t, h, tokenA.AccessToken, "general")

	status, env = doRequest(t, h, "POST", "/rooms", tokenA.AccessToken, `{"name":"general"}`)
	if status != http.StatusBadRequest || env.Code != errs.ErrRoomNameExists {
		t.Fatalf("duplicate room: status = %d code = %d, want %d/%d", status, env.Code, http.StatusBadRequest, errs.ErrRoomNameExists)
	}

	posted := postMessage(t, h, tokenB.AccessToken, rm.ID, "hi")

	alice, err := deps.Users.GetByUsername(t.Context(), "alice")
	if err != nil {
		t.Fatalf("alice vanished: %v", err)
	}
	if posted.UserID != alice.ID {
		t.Errorf("posted message user_id = %s, want alice's id %s", posted.UserID, alice.ID)
	}

	status, env = doRequest(t, h, "GET", "/rooms/"+rm.ID.String()+"/messages", tokenA.AccessToken, "")
	if status != http.StatusOK {
		t.Fatalf("list messages: status = %d, want %d", status, http.StatusOK)
	}

	var messages []message.Message
	if err := json.Unmarshal(env.Data, &messages); err != nil {
		t.Fatalf("list messages: bad payload: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want exactly 1", len(messages))
	}
	if messages[0].ID != posted.ID || messages[0].Content != "hi" {
		t.Errorf("listed message = %+v, want the posted one", messages[0])
	}
}
