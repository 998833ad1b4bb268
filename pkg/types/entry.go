package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Entry is one visible item of a directory listing.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	IsDir       bool   `json:"is_dir"`
	ContentType string `json:"type"`
	Icon        string `json:"icon"`
}

// ToJSON converts the entry to a single-line JSON object
func (e Entry) ToJSON() (string, error) {
	jsonBytes, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}

// String returns a human-readable representation
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name: %s\n", e.Name))
	sb.WriteString(fmt.Sprintf("Path: %s\n", e.Path))
	sb.WriteString(fmt.Sprintf("Type: %s\n", e.ContentType))
	return sb.String()
}

// Names returns the entry names in listing order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
