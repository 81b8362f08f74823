package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"starwars-server/entities"
	"starwars-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func TestHandleEventsStreamsPublishedEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := ws.NewManager(zerolog.Nop())
	h := NewWSHandler(mgr, zerolog.Nop())

	r := gin.New()
	r.GET("/ws/events", h.HandleEvents)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for len(mgr.List()) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	mgr.Publish("character.created", 7, entities.Record{"name": "Luke"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev ws.Event
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Type != "character.created" || ev.ID != 7 || ev.Data["name"] != "Luke" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	deadline = time.Now().Add(2 * time.Second)
	for len(mgr.List()) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never unregistered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
