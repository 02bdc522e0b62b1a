// Package spawn launches configured commands detached from the window
// manager, so a crashing child or a closed session never takes the
// manager's own process state with it.
package spawn

import (
	"log"
	"os/exec"
	"syscall"
)

// Spawner starts commands in their own session.
type Spawner struct{}

func New() *Spawner { return &Spawner{} }

// Spawn starts argv in a new session and reaps it in the background. A
// failed start is logged and otherwise ignored; the manager must keep
// running no matter what the command does.
func (s *Spawner) Spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		log.Printf("spawn %q: %v", argv[0], err)
		return
	}
	go func() {
		cmd.Wait()
	}()
}
