//go:build darwin

package reveal

import "os/exec"

func command(path string, _ bool) *exec.Cmd {
    return exec.Command("open", "-R", path)
}
