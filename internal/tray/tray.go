//go:build !notray

package tray

import (
    "sync"

    "github.com/energye/systray"
    "github.com/rs/zerolog/log"
)

// Tray is the system tray icon and its show/hide/quit menu.
type Tray struct {
    title  string
    icon   []byte
    window Window
    once   sync.Once
    end    func()
}

func New(title string, icon []byte, w Window) *Tray {
    return &Tray{title: title, icon: icon, window: w}
}

// Start registers the tray on the external loop. Call it before wails.Run;
// the webview loop owns the main thread and drives the tray with it.
func (t *Tray) Start() {
    t.once.Do(func() {
        start, end := systray.RunWithExternalLoop(t.onReady, func() { log.Debug().Msg("tray stopped") })
        t.end = end
        start()
    })
}

// Stop removes the tray icon.
func (t *Tray) Stop() {
    if t.end != nil { t.end(); t.end = nil }
}

func (t *Tray) onReady() {
    if len(t.icon) > 0 { systray.SetIcon(t.icon) }
    systray.SetTitle("")
    systray.SetTooltip(t.title)

    systray.SetOnClick(func(menu systray.IMenu) { t.dispatch(iconClickAction) })
    systray.SetOnRClick(func(menu systray.IMenu) { menu.ShowMenu() })

    for i, it := range items {
        if it.action == ActionQuit && i > 0 { systray.AddSeparator() }
        a := it.action
        systray.AddMenuItem(it.title, it.tooltip).Click(func() { t.dispatch(a) })
    }
}

// dispatch never blocks the tray loop.
func (t *Tray) dispatch(a Action) {
    log.Debug().Str("action", string(a)).Msg("tray clicked")
    go Dispatch(t.window, a)
}

// IsSupported reports whether this build shows a tray icon.
func IsSupported() bool { return true }
