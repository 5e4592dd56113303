package config

import (
    "encoding/json"
    "os"
    "path/filepath"
    "testing"
)

func TestStore_MissingFileIsEmpty(t *testing.T) {
    s := Open(filepath.Join(t.TempDir(), "config.json"))
    v, ok, err := s.Get("backend_url")
    if err != nil { t.Fatalf("Get error: %v", err) }
    if ok || v != nil { t.Fatalf("expected missing key, got %v", v) }
}

func TestStore_SaveAndReopen(t *testing.T) {
    path := filepath.Join(t.TempDir(), "nested", "config.json")
    s := Open(path)
    if err := s.Set("backend_url", "https://example.com"); err != nil { t.Fatal(err) }
    if err := s.Save(); err != nil { t.Fatalf("Save error: %v", err) }

    if _, err := os.Stat(path); err != nil { t.Fatalf("store file not written: %v", err) }

    again := Open(path)
    v, ok, err := again.Get("backend_url")
    if err != nil { t.Fatalf("Get error: %v", err) }
    if !ok || v != "https://example.com" { t.Fatalf("got %v (ok=%v)", v, ok) }
}

func TestStore_SetWithoutSaveIsNotDurable(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    s := Open(path)
    if err := s.Set("backend_url", "http://a"); err != nil { t.Fatal(err) }
    if _, ok, _ := Open(path).Get("backend_url"); ok { t.Fatalf("value visible before Save") }
}

func TestStore_KeepsOtherKeys(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    if err := os.WriteFile(path, []byte(`{"theme":"dark","backend_url":"http://old"}`), 0o644); err != nil { t.Fatal(err) }
    s := Open(path)
    if err := s.Set("backend_url", "http://new"); err != nil { t.Fatal(err) }
    if err := s.Save(); err != nil { t.Fatal(err) }

    again := Open(path)
    if v, _, _ := again.Get("theme"); v != "dark" { t.Fatalf("theme=%v", v) }
    if v, _, _ := again.Get("backend_url"); v != "http://new" { t.Fatalf("backend_url=%v", v) }
}

func TestStore_PreservesKeyCase(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    if err := os.WriteFile(path, []byte(`{"windowState":{"isMaximized":true},"backend_url":"http://old"}`), 0o644); err != nil { t.Fatal(err) }
    s := Open(path)
    if err := s.Set("backend_url", "http://new"); err != nil { t.Fatal(err) }
    if err := s.Save(); err != nil { t.Fatal(err) }

    bt, err := os.ReadFile(path)
    if err != nil { t.Fatal(err) }
    var raw map[string]any
    if err := json.Unmarshal(bt, &raw); err != nil { t.Fatal(err) }
    ws, ok := raw["windowState"].(map[string]any)
    if !ok { t.Fatalf("windowState lost: %s", bt) }
    if ws["isMaximized"] != true { t.Fatalf("isMaximized lost: %s", bt) }
    if _, ok := raw["windowstate"]; ok { t.Fatalf("key was lowercased: %s", bt) }
    if raw["backend_url"] != "http://new" { t.Fatalf("backend_url=%v", raw["backend_url"]) }
}

func TestStore_CorruptFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil { t.Fatal(err) }
    s := Open(path)
    if _, _, err := s.Get("backend_url"); err == nil { t.Fatalf("expected error for corrupt store") }
    if err := s.Set("backend_url", "http://x"); err == nil { t.Fatalf("expected Set error for corrupt store") }
}

func TestMemory(t *testing.T) {
    m := NewMemory()
    if _, ok, _ := m.Get("k"); ok { t.Fatalf("unexpected key") }
    _ = m.Set("k", 1)
    if v, ok, _ := m.Get("k"); !ok || v != 1 { t.Fatalf("got %v", v) }
    _ = m.Save()
    if m.Saves != 1 { t.Fatalf("saves=%d", m.Saves) }
}

func TestDir_EnvOverride(t *testing.T) {
    d := t.TempDir()
    t.Setenv("CHATDESK_CONFIG_DIR", d)
    got, err := Dir()
    if err != nil { t.Fatal(err) }
    if got != d { t.Fatalf("Dir()=%q; want %q", got, d) }
    p, err := DefaultPath()
    if err != nil { t.Fatal(err) }
    if p != filepath.Join(d, StoreFileName) { t.Fatalf("DefaultPath()=%q", p) }
}

func TestLoadOptions_Defaults(t *testing.T) {
    d := t.TempDir()
    t.Setenv("CHATDESK_CONFIG_DIR", d)
    o, err := LoadOptions(nil)
    if err != nil { t.Fatal(err) }
    if o.LogLevel != "info" { t.Fatalf("LogLevel=%q", o.LogLevel) }
    if o.StorePath != filepath.Join(d, "config.json") { t.Fatalf("StorePath=%q", o.StorePath) }
    if o.LogFile != filepath.Join(d, "logs", "chatdesk.log") { t.Fatalf("LogFile=%q", o.LogFile) }
}

func TestLoadOptions_EnvOverrides(t *testing.T) {
    d := t.TempDir()
    t.Setenv("CHATDESK_LOG_LEVEL", "DEBUG")
    t.Setenv("CHATDESK_LOG_PRETTY", "false")
    t.Setenv("CHATDESK_STORE_PATH", filepath.Join(d, "custom.json"))
    o, err := LoadOptions(NewViper())
    if err != nil { t.Fatal(err) }
    if o.LogLevel != "debug" { t.Fatalf("LogLevel=%q", o.LogLevel) }
    if o.LogPretty { t.Fatalf("LogPretty should be false") }
    if o.StorePath != filepath.Join(d, "custom.json") { t.Fatalf("StorePath=%q", o.StorePath) }
    if o.LogFile != filepath.Join(d, "logs", "chatdesk.log") { t.Fatalf("LogFile=%q", o.LogFile) }
}
