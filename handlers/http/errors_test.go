package httpHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"starwars-server/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestStatusFor(t *testing.T) {
	tests := map[entities.ErrorKind]int{
		entities.KindMissingField:        http.StatusBadRequest,
		entities.KindInvalidEnumValue:    http.StatusBadRequest,
		entities.KindInvalidField:        http.StatusBadRequest,
		entities.KindNotFound:            http.StatusNotFound,
		entities.KindUniquenessViolation: http.StatusConflict,
		entities.KindReferenced:          http.StatusConflict,
		entities.KindPersistence:         http.StatusInternalServerError,
	}
	for kind, want := range tests {
		if got := statusFor(kind); got != want {
			t.Errorf("%s: expected %d, got %d", kind, want, got)
		}
	}
}

func TestRespondErrorHidesStoreFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users", nil)

	respondError(c, zerolog.Nop(), entities.Persistence("list users", errors.New("connection refused")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "internal server error" || body["kind"] != "persistence" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/thing/:id", func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	tests := []struct {
		path   string
		status int
	}{
		{"/thing/12", http.StatusOK},
		{"/thing/abc", http.StatusBadRequest},
		{"/thing/-1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if w.Code != tt.status {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.status, w.Code)
		}
	}
}
