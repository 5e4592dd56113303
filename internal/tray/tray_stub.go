//go:build notray

package tray

// Tray is a no-op when built with -tags notray (headless CI, no cgo toolkit).
type Tray struct {
    window Window
}

func New(title string, icon []byte, w Window) *Tray { return &Tray{window: w} }

func (t *Tray) Start() {}

func (t *Tray) Stop() {}

func IsSupported() bool { return false }
