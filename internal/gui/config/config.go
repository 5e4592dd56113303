package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "sync"
)

const (
    // AppDirName は OS 既定の設定ディレクトリ配下に作るフォルダ名。
    AppDirName = "chatdesk"
    // StoreFileName は永続キー値ストアのファイル名。
    StoreFileName = "config.json"
)

// Dir は設定ディレクトリを返します（CHATDESK_CONFIG_DIR で上書き可）。
func Dir() (string, error) {
    if d := os.Getenv("CHATDESK_CONFIG_DIR"); d != "" { return d, nil }
    dir, err := os.UserConfigDir()
    if err != nil { return "", err }
    return filepath.Join(dir, AppDirName), nil
}

// DefaultPath は config.json の既定パスです。
func DefaultPath() (string, error) {
    d, err := Dir()
    if err != nil { return "", err }
    return filepath.Join(d, StoreFileName), nil
}

// Store は JSON ファイルに保存されるキー値ストアです。
// 初回アクセス時に読み込み、Save で書き出します。
// キーは大文字小文字を含めてそのまま保持し、知らないキーも書き戻します。
type Store struct {
    mu     sync.Mutex
    path   string
    values map[string]any
}

// Open はストアを作ります。ファイルはまだ読みません。
func Open(path string) *Store { return &Store{path: path} }

// Path は保存先のパスを返します。
func (s *Store) Path() string { return s.path }

// load はファイルが無ければ空として扱い、壊れていればエラーを返します。
func (s *Store) load() error {
    if s.values != nil { return nil }
    bt, err := os.ReadFile(s.path)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) { s.values = map[string]any{}; return nil }
        return err
    }
    var m map[string]any
    if err := json.Unmarshal(bt, &m); err != nil { return fmt.Errorf("read %s: %w", s.path, err) }
    if m == nil { m = map[string]any{} }
    s.values = m
    return nil
}

// Get はキーの値を返します。存在しなければ ok=false。
func (s *Store) Get(key string) (any, bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if err := s.load(); err != nil { return nil, false, err }
    v, ok := s.values[key]
    return v, ok, nil
}

// Set はメモリ上の値を更新します。ディスクへは Save で反映。
func (s *Store) Set(key string, value any) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if err := s.load(); err != nil { return err }
    s.values[key] = value
    return nil
}

// Save は現在の内容をファイルへ書き出します。
func (s *Store) Save() error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if err := s.load(); err != nil { return err }
    bt, err := json.MarshalIndent(s.values, "", "  ")
    if err != nil { return err }
    if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil { return err }
    return os.WriteFile(s.path, bt, 0o600)
}

// Memory はテスト用のインメモリ実装です。
type Memory struct {
    mu     sync.Mutex
    values map[string]any
    Saves  int
}

func NewMemory() *Memory { return &Memory{values: map[string]any{}} }

func (m *Memory) Get(key string) (any, bool, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    v, ok := m.values[key]
    return v, ok, nil
}

func (m *Memory) Set(key string, value any) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.values[key] = value
    return nil
}

func (m *Memory) Save() error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.Saves++
    return nil
}
