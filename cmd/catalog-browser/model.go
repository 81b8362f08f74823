package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepMenu step = iota
	stepLoading
	stepListing
	stepFavorites
)

type itemsLoadedMsg struct {
	resource string
	items    []item
}

type favoritesLoadedMsg struct {
	user       item
	characters []string
	planets    []string
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type model struct {
	client *apiClient

	step       step
	cursor     int
	resource   string
	items      []item
	user       item
	characters []string
	planets    []string
	message    string
	quitting   bool
}

func initialModel(client *apiClient) model {
	return model{client: client, step: stepMenu}
}

func (m model) Init() tea.Cmd {
	return nil
}

func loadItems(c *apiClient, resource, labelField string) tea.Cmd {
	return func() tea.Msg {
		items, err := c.list(resource, labelField)
		if err != nil {
			return errMsg{err}
		}
		return itemsLoadedMsg{resource: resource, items: items}
	}
}

func loadFavorites(c *apiClient, user item) tea.Cmd {
	return func() tea.Msg {
		chars, planets, err := c.favorites(user.ID)
		if err != nil {
			return errMsg{err}
		}
		return favoritesLoadedMsg{user: user, characters: chars, planets: planets}
	}
}

func (m model) maxCursor() int {
	switch m.step {
	case stepMenu:
		return len(resources) - 1
	case stepListing:
		return len(m.items) - 1
	}
	return 0
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < m.maxCursor() {
				m.cursor++
			}

		case "esc", "backspace":
			switch m.step {
			case stepListing:
				m.step = stepMenu
				m.cursor = 0
			case stepFavorites:
				m.step = stepListing
				m.cursor = 0
			}
			m.message = ""

		case "enter":
			switch m.step {
			case stepMenu:
				r := resources[m.cursor]
				m.step = stepLoading
				m.message = fmt.Sprintf("Loading %s...", r.Name)
				return m, loadItems(m.client, r.Name, r.Label)

			case stepListing:
				if m.resource == "users" && len(m.items) > 0 {
					user := m.items[m.cursor]
					m.step = stepLoading
					m.message = fmt.Sprintf("Loading favorites of %s...", user.Label)
					return m, loadFavorites(m.client, user)
				}
			}
		}

	case itemsLoadedMsg:
		m.resource = msg.resource
		m.items = msg.items
		m.cursor = 0
		m.step = stepListing
		m.message = ""

	case favoritesLoadedMsg:
		m.user = msg.user
		m.characters = msg.characters
		m.planets = msg.planets
		m.step = stepFavorites
		m.message = ""

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepMenu
		m.cursor = 0
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Star Wars Catalog") + "\n\n")

	switch m.step {
	case stepMenu:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Browse:") + "\n\n")
		for i, r := range resources {
			s.WriteString(renderRow(i == m.cursor, r.Name) + "\n")
		}
		s.WriteString(dimStyle.Render("\nUse ↑/↓, Enter to open, q to quit") + "\n")

	case stepLoading:
		s.WriteString(m.message + "\n")

	case stepListing:
		s.WriteString(promptStyle.Render(fmt.Sprintf("%s (%d)", m.resource, len(m.items))) + "\n\n")
		if len(m.items) == 0 {
			s.WriteString(normalStyle.Render("nothing here yet") + "\n")
		}
		for i, it := range m.items {
			s.WriteString(renderRow(i == m.cursor, fmt.Sprintf("#%d %s", it.ID, it.Label)) + "\n")
		}
		hint := "\nEsc to go back, q to quit"
		if m.resource == "users" {
			hint = "\nEnter to show favorites, Esc to go back, q to quit"
		}
		s.WriteString(dimStyle.Render(hint) + "\n")

	case stepFavorites:
		s.WriteString(promptStyle.Render("Favorites of "+m.user.Label) + "\n\n")
		s.WriteString("Characters:\n")
		writeNames(&s, m.characters)
		s.WriteString("\nPlanets:\n")
		writeNames(&s, m.planets)
		s.WriteString(dimStyle.Render("\nEsc to go back, q to quit") + "\n")
	}

	return s.String()
}

func renderRow(selected bool, text string) string {
	if selected {
		return "> " + selectedStyle.Render(text)
	}
	return "  " + normalStyle.Render(text)
}

func writeNames(s *strings.Builder, names []string) {
	if len(names) == 0 {
		s.WriteString(normalStyle.Render("none") + "\n")
		return
	}
	for _, n := range names {
		s.WriteString(normalStyle.Render("• "+n) + "\n")
	}
}
