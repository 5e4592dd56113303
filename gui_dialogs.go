package main

import (
    "chatdesk/internal/files"

    "github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsDialogs は Wails のネイティブダイアログで files.Dialogs を実装する。
type wailsDialogs struct{ app *App }

func (d *wailsDialogs) OpenFile(o files.OpenOptions) (string, error) {
    if d.app.ctx == nil { return "", errNoContext }
    return runtime.OpenFileDialog(d.app.ctx, runtime.OpenDialogOptions{
        Title:                      o.Title,
        Filters:                    toFileFilters(o.Filters),
        ShowHiddenFiles:            false,
        TreatPackagesAsDirectories: false,
    })
}

func (d *wailsDialogs) SaveFile(o files.SaveOptions) (string, error) {
    if d.app.ctx == nil { return "", errNoContext }
    return runtime.SaveFileDialog(d.app.ctx, runtime.SaveDialogOptions{
        Title:                o.Title,
        DefaultFilename:      o.DefaultFilename,
        Filters:              toFileFilters(o.Filters),
        CanCreateDirectories: true,
    })
}

// toFileFilters は拡張子の無いフィルタを捨てる。
func toFileFilters(in []files.Filter) []runtime.FileFilter {
    out := make([]runtime.FileFilter, 0, len(in))
    for _, f := range in {
        p := f.Pattern()
        if p == "" { continue }
        name := f.Name
        if name == "" { name = p }
        out = append(out, runtime.FileFilter{DisplayName: name + " (" + p + ")", Pattern: p})
    }
    return out
}
