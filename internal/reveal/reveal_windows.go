//go:build windows

package reveal

import "os/exec"

func command(path string, _ bool) *exec.Cmd {
    return exec.Command("explorer", "/select,", path)
}
