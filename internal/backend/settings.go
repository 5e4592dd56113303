package backend

import "fmt"

const (
    // BackendURLKey はストア内のキー名。
    BackendURLKey = "backend_url"
    // DefaultBackendURL は未設定時に返す既定アドレス。
    DefaultBackendURL = "http://192.168.50.50:5000"
)

// Store は永続キー値ストア。内部の排他は実装側で行う。
type Store interface {
    Get(key string) (any, bool, error)
    Set(key string, value any) error
    Save() error
}

// PersistError はストアの読み書き・保存に失敗したことを表す。
type PersistError struct {
    Op  string
    Err error
}

func (e *PersistError) Error() string { return fmt.Sprintf("settings %s failed: %v", e.Op, e.Err) }
func (e *PersistError) Unwrap() error { return e.Err }

// Settings はバックエンドURLの取得・保存を行う。
type Settings struct {
    store Store
}

func NewSettings(store Store) *Settings { return &Settings{store: store} }

// URL は保存済みのアドレスを返す。未設定や文字列以外の値なら既定値を返す。
// ストア自体が読めない場合だけエラーになる。
func (s *Settings) URL() (string, error) {
    v, ok, err := s.store.Get(BackendURLKey)
    if err != nil { return "", &PersistError{Op: "read", Err: err} }
    if ok {
        if u, isStr := v.(string); isStr { return u, nil }
    }
    return DefaultBackendURL, nil
}

// SetURL は正規化したアドレスを保存し、即座にディスクへ書き出す。
// 検証エラー時はストアに触れない。
func (s *Settings) SetURL(raw string) error {
    u, err := NormalizeBackendURL(raw)
    if err != nil { return err }
    if err := s.store.Set(BackendURLKey, u); err != nil { return &PersistError{Op: "write", Err: err} }
    if err := s.store.Save(); err != nil { return &PersistError{Op: "save", Err: err} }
    return nil
}
