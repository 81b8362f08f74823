package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type item struct {
	ID    uint
	Label string
}

// resources maps each listable collection to the field used as its label.
var resources = []struct {
	Name  string
	Label string
}{
	{"users", "email"},
	{"characters", "name"},
	{"planets", "name"},
	{"films", "title"},
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *apiClient) getJSON(path string, dst any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("catalog not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("GET %s returned %d: %s", path, resp.StatusCode, body.Error)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// list fetches GET /<resource>, which wraps rows under the resource name.
func (c *apiClient) list(resource, labelField string) ([]item, error) {
	var body map[string][]map[string]any
	if err := c.getJSON("/"+resource, &body); err != nil {
		return nil, err
	}

	rows := body[resource]
	items := make([]item, 0, len(rows))
	for _, row := range rows {
		id, _ := row["id"].(float64)
		label, _ := row[labelField].(string)
		items = append(items, item{ID: uint(id), Label: label})
	}
	return items, nil
}

func (c *apiClient) favorites(userID uint) (characters, planets []string, err error) {
	var chars []map[string]any
	if err := c.getJSON(fmt.Sprintf("/user/%d/favorites/character", userID), &chars); err != nil {
		return nil, nil, err
	}
	var pls []map[string]any
	if err := c.getJSON(fmt.Sprintf("/user/%d/favorites/planet", userID), &pls); err != nil {
		return nil, nil, err
	}

	for _, f := range chars {
		name, _ := f["character_name"].(string)
		characters = append(characters, name)
	}
	for _, f := range pls {
		name, _ := f["planet_name"].(string)
		planets = append(planets, name)
	}
	return characters, planets, nil
}
