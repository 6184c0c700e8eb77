//go:build unix

package process

import (
	"os/exec"
	"syscall"
)

// setProcessGroup configura el comando para arrancar en su propio
// process group, de forma que señalar al grupo alcance a todos los
// descendientes.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminateGroup envía SIGTERM al process group completo.
func terminateGroup(cmd *exec.Cmd) error {
	return signalGroup(cmd, syscall.SIGTERM)
}

// killGroup envía SIGKILL al process group completo.
func killGroup(cmd *exec.Cmd) error {
	return signalGroup(cmd, syscall.SIGKILL)
}

func signalGroup(cmd *exec.Cmd, sig syscall.Signal) error {
	if cmd.Process == nil {
		return nil
	}
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		// El grupo ya no existe; señala solo al líder si sigue vivo.
		return cmd.Process.Signal(sig)
	}
	return syscall.Kill(-pgid, sig)
}
