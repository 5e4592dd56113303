// Package reveal shows a path in the platform file manager.
package reveal

import (
    "errors"
    "os"
    "os/exec"
)

var ErrNotExist = errors.New("path does not exist")

// Revealer starts the platform file manager. The command is started, not waited on.
type Revealer struct {
    start func(*exec.Cmd) error
}

func New() *Revealer {
    return &Revealer{start: func(c *exec.Cmd) error { _, err := launch(c); return err }}
}

// launch starts c and reaps it in the background. The returned channel is
// closed once the child has exited.
func launch(c *exec.Cmd) (<-chan struct{}, error) {
    if err := c.Start(); err != nil { return nil, err }
    done := make(chan struct{})
    go func() { _ = c.Wait(); close(done) }()
    return done, nil
}

// Reveal opens the file manager at path, selecting it where the platform supports that.
func (r *Revealer) Reveal(path string) error {
    info, err := os.Stat(path)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) { return ErrNotExist }
        return err
    }
    return r.start(command(path, info.IsDir()))
}
