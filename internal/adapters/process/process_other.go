//go:build !unix

package process

import "os/exec"

// Sin process groups fuera de unix: se señala solo al proceso líder.
// La garantía "ningún hijo sobrevive" requiere unix.

func setProcessGroup(cmd *exec.Cmd) {}

func terminateGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

func killGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
