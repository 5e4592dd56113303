package main

import (
    "context"
    "errors"
    "fmt"
    goruntime "runtime"
    "sync/atomic"
    "time"

    "chatdesk/internal/backend"
    "chatdesk/internal/files"
    "chatdesk/internal/reveal"
    "chatdesk/internal/tray"

    "github.com/google/uuid"
    "github.com/rs/zerolog/log"
    "github.com/wailsapp/wails/v2/pkg/runtime"
)

var errNoContext = errors.New("no context")

type App struct {
    ctx      context.Context
    settings *backend.Settings
    prober   *backend.Prober
    files    *files.Service
    revealer *reveal.Revealer
    tray     *tray.Tray
    quitting atomic.Bool
    ready    chan struct{} // startup 完了で close
}

// NewApp は永続ストアを受け取り、各コマンドの依存を組み立てる。
// dialogs が nil なら Wails のネイティブダイアログを使う。
func NewApp(store backend.Store, dialogs files.Dialogs, icon []byte) *App {
    a := &App{
        settings: backend.NewSettings(store),
        prober:   backend.NewProber(),
        revealer: reveal.New(),
        ready:    make(chan struct{}),
    }
    if dialogs == nil { dialogs = &wailsDialogs{app: a} }
    a.files = files.NewService(dialogs)
    a.tray = tray.New("chatdesk", icon, windowControl{app: a})
    return a
}

func (a *App) startup(ctx context.Context) {
    a.ctx = ctx
    close(a.ready)
    a.emitLog("info", "GUI 起動")
}

func (a *App) shutdown(ctx context.Context) { a.tray.Stop() }

// beforeClose: macOS 以外ではウィンドウを閉じずに隠す（トレイの「終了」で本当に終了）。
func (a *App) beforeClose(ctx context.Context) bool {
    if a.quitting.Load() || goruntime.GOOS == "darwin" { return false }
    runtime.WindowHide(ctx)
    return true
}

// --- 公開API（フロントから呼び出し） ---

// GetBackendURL は保存済みのバックエンドURLを返す（未設定なら既定値）。
func (a *App) GetBackendURL() (string, error) {
    u, err := a.settings.URL()
    if err != nil { a.emitLog("error", fmt.Sprintf("設定の読み込みに失敗: %v", err)); return "", err }
    return u, nil
}

// SetBackendURL は URL を正規化して保存する。
func (a *App) SetBackendURL(url string) error {
    if err := a.settings.SetURL(url); err != nil {
        a.emitLog("error", fmt.Sprintf("バックエンドURLの保存に失敗: %v", err))
        return err
    }
    a.emitLog("info", "バックエンドURLを保存しました")
    return nil
}

// TestBackendConnection は <url>/health に疎通確認する。
// 接続失敗はエラーではなく ok=false の結果で返る。
func (a *App) TestBackendConnection(url string) (backend.TestResult, error) {
    res, err := a.prober.Test(a.context(), url)
    if err != nil { return res, err }
    ev := log.Info().Str("url", url).Bool("ok", res.OK)
    if res.Status != nil { ev = ev.Int("status", *res.Status) }
    if res.Message != nil { ev = ev.Str("detail", *res.Message) }
    ev.Msg("backend connection test")
    return res, nil
}

// SelectFile はファイル選択ダイアログを表示する（キャンセル時は空文字）。
func (a *App) SelectFile(filters []files.Filter) (string, error) {
    p, _, err := a.files.SelectFile(filters)
    if err != nil { a.emitLog("error", fmt.Sprintf("ファイル選択に失敗: %v", err)) }
    return p, err
}

// SaveChatHistory は会話履歴を JSON で保存する（キャンセル時は空文字）。
func (a *App) SaveChatHistory(messages any, filename string) (string, error) {
    return a.saveJSON(messages, filename, "会話履歴")
}

// ExportToJSON は任意のデータを JSON で保存する（キャンセル時は空文字）。
func (a *App) ExportToJSON(data any, filename string) (string, error) {
    return a.saveJSON(data, filename, "エクスポート")
}

func (a *App) saveJSON(data any, filename, label string) (string, error) {
    p, ok, err := a.files.SaveJSON(data, filename)
    if err != nil { a.emitLog("error", fmt.Sprintf("%sの保存に失敗: %v", label, err)); return "", err }
    if ok { a.emitLog("info", fmt.Sprintf("%sを保存しました: %s", label, p)) }
    return p, nil
}

// ShowInFolder はファイルマネージャでパスを表示する。
func (a *App) ShowInFolder(path string) error {
    if err := a.revealer.Reveal(path); err != nil {
        a.emitLog("error", fmt.Sprintf("フォルダを開けません: %v", err))
        return err
    }
    return nil
}

// ShowWindow / HideWindow / QuitApp はトレイメニューからも呼ばれる。
func (a *App) ShowWindow() {
    if a.ctx == nil { return }
    runtime.WindowShow(a.ctx)
    if runtime.WindowIsMinimised(a.ctx) { runtime.WindowUnminimise(a.ctx) }
    // 前面に出してフォーカスを移す
    runtime.WindowSetAlwaysOnTop(a.ctx, true)
    runtime.WindowSetAlwaysOnTop(a.ctx, false)
}

func (a *App) HideWindow() { if a.ctx != nil { runtime.WindowHide(a.ctx) } }

func (a *App) QuitApp() {
    a.quitting.Store(true)
    if a.ctx != nil { runtime.Quit(a.ctx) }
}

func (a *App) context() context.Context {
    if a.ctx == nil { return context.Background() }
    return a.ctx
}

// ログイベント
func (a *App) emitLog(level, msg string) {
    switch level {
    case "error":
        log.Error().Msg(msg)
    case "warn":
        log.Warn().Msg(msg)
    default:
        log.Info().Msg(msg)
    }
    if a.ctx != nil {
        runtime.EventsEmit(a.ctx, "log", map[string]any{"id": uuid.NewString(), "level": level, "msg": msg, "time": time.Now().Format(time.RFC3339)})
    }
}

// windowControl はトレイメニューからウィンドウを操作する。
// トレイは Wails より先に起動するので、startup 完了まで待つ。
type windowControl struct{ app *App }

func (w windowControl) Show() { <-w.app.ready; w.app.ShowWindow() }
func (w windowControl) Hide() { <-w.app.ready; w.app.HideWindow() }
func (w windowControl) Quit() { <-w.app.ready; w.app.QuitApp() }
