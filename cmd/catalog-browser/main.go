package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultAPIURL = "http://localhost:3000"

func main() {
	baseURL := os.Getenv("CATALOG_API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	p := tea.NewProgram(initialModel(newAPIClient(baseURL)))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
