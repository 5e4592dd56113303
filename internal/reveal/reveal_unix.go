//go:build !windows && !darwin

package reveal

import (
    "os/exec"
    "path/filepath"
)

// xdg-open cannot select a file, so open the containing folder instead.
func command(path string, isDir bool) *exec.Cmd {
    folder := path
    if !isDir { folder = filepath.Dir(path) }
    return exec.Command("xdg-open", folder)
}
