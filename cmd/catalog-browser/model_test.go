package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestMenuNavigation(t *testing.T) {
	m := initialModel(newAPIClient("http://example.invalid"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor moved above first entry")
	}
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(resources)-1 {
		t.Fatalf("expected cursor at last entry, got %d", m.cursor)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != stepLoading || cmd == nil {
		t.Fatalf("expected loading step with a command, got step %d", m.step)
	}
}

func TestItemsAndFavoritesFlow(t *testing.T) {
	m := initialModel(newAPIClient("http://example.invalid"))

	m, _ = update(t, m, itemsLoadedMsg{resource: "users", items: []item{{ID: 1, Label: "a@b.com"}}})
	if m.step != stepListing || len(m.items) != 1 {
		t.Fatalf("expected listing with one item, got step %d", m.step)
	}
	if !strings.Contains(m.View(), "a@b.com") {
		t.Fatalf("view does not show the user")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != stepLoading || cmd == nil {
		t.Fatalf("expected favorites to load")
	}

	m, _ = update(t, m, favoritesLoadedMsg{user: item{ID: 1, Label: "a@b.com"}, characters: []string{"Luke"}})
	if m.step != stepFavorites {
		t.Fatalf("expected favorites step, got %d", m.step)
	}
	view := m.View()
	if !strings.Contains(view, "Luke") || !strings.Contains(view, "none") {
		t.Fatalf("unexpected favorites view:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.step != stepListing {
		t.Fatalf("esc should return to listing, got %d", m.step)
	}
}

func TestErrorReturnsToMenu(t *testing.T) {
	m := initialModel(newAPIClient("http://example.invalid"))
	m.step = stepLoading

	m, _ = update(t, m, errMsg{errors.New("catalog not reachable")})
	if m.step != stepMenu || !strings.Contains(m.message, "catalog not reachable") {
		t.Fatalf("expected menu with error, got step %d message %q", m.step, m.message)
	}
}

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/characters":
			_, _ = w.Write([]byte(`{"characters":[{"id":1,"name":"Luke"},{"id":2,"name":"Leia"}]}`))
		case "/user/3/favorites/character":
			_, _ = w.Write([]byte(`[{"id":1,"character_name":"Luke"}]`))
		case "/user/3/favorites/planet":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL + "/")
	items, err := c.list("characters", "name")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[1].ID != 2 || items[1].Label != "Leia" {
		t.Fatalf("unexpected items: %+v", items)
	}

	chars, planets, err := c.favorites(3)
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(chars) != 1 || chars[0] != "Luke" || len(planets) != 0 {
		t.Fatalf("unexpected favorites: %v %v", chars, planets)
	}

	if _, err := c.list("films", "title"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}
