// Package files wraps the native open/save dialogs and the JSON export that
// follows a save dialog.
package files

import (
    "encoding/json"
    "fmt"
    "os"
    "strings"
)

// Filter is a dialog filter as sent by the front end.
type Filter struct {
    Name       string   `json:"name"`
    Extensions []string `json:"extensions"`
}

// Pattern returns the filter as "*.pdf;*.md".
func (f Filter) Pattern() string {
    parts := make([]string, 0, len(f.Extensions))
    for _, e := range f.Extensions {
        e = strings.TrimPrefix(strings.TrimSpace(e), ".")
        if e == "" { continue }
        parts = append(parts, "*."+e)
    }
    return strings.Join(parts, ";")
}

type OpenOptions struct {
    Title   string
    Filters []Filter
}

type SaveOptions struct {
    Title           string
    DefaultFilename string
    Filters         []Filter
}

// Dialogs shows native file dialogs. An empty path with a nil error means the
// user closed the dialog without choosing.
type Dialogs interface {
    OpenFile(opts OpenOptions) (string, error)
    SaveFile(opts SaveOptions) (string, error)
}

type Service struct {
    dialogs Dialogs
}

func NewService(d Dialogs) *Service { return &Service{dialogs: d} }

// SelectFile asks the user for a file. ok is false when the dialog was cancelled.
func (s *Service) SelectFile(filters []Filter) (path string, ok bool, err error) {
    p, err := s.dialogs.OpenFile(OpenOptions{Filters: filters})
    if err != nil { return "", false, fmt.Errorf("file dialog: %w", err) }
    if p == "" { return "", false, nil }
    return p, true, nil
}

// SaveJSON asks for a destination and writes data there as indented JSON.
func (s *Service) SaveJSON(data any, filename string) (path string, ok bool, err error) {
    opts := SaveOptions{Filters: []Filter{{Name: "JSON", Extensions: []string{"json"}}}}
    if name := strings.TrimSpace(filename); name != "" {
        opts.DefaultFilename = EnsureJSONName(name)
    }
    p, err := s.dialogs.SaveFile(opts)
    if err != nil { return "", false, fmt.Errorf("save dialog: %w", err) }
    if p == "" { return "", false, nil }

    bt, err := json.MarshalIndent(data, "", "  ")
    if err != nil { return "", false, fmt.Errorf("encode json: %w", err) }
    if err := os.WriteFile(p, bt, 0o644); err != nil { return "", false, fmt.Errorf("write file: %w", err) }
    return p, true, nil
}

// EnsureJSONName appends ".json" unless the name already ends with it.
func EnsureJSONName(name string) string {
    if strings.HasSuffix(strings.ToLower(name), ".json") { return name }
    return name + ".json"
}
