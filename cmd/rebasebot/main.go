// cmd/rebasebot/main.go

// rebasebot rebasa la rama de un PR sobre la rama base y reaplica el
// paso de formateo, commiteando el resultado si hubo cambios. Pensado
// para correr en CI con credenciales de push ya configuradas.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"docshot/internal/platform/logx"
)

const (
	botName  = "github-actions[bot]"
	botEmail = "41898282+github-actions[bot]@users.noreply.github.com"

	// defaultFormatCmd replica el paso de formateo original; se puede
	// sustituir vía FORMAT_CMD para otros toolchains.
	defaultFormatCmd = "cargo fmt"
)

func main() {
	base := os.Getenv("BASE_BRANCH")
	head := os.Getenv("HEAD_BRANCH")
	if base == "" || head == "" {
		fmt.Fprintln(os.Stderr, "Error: BASE_BRANCH and HEAD_BRANCH are required")
		fmt.Fprintln(os.Stderr, "Usage: BASE_BRANCH=main HEAD_BRANCH=feature rebasebot")
		os.Exit(2)
	}

	formatCmd := os.Getenv("FORMAT_CMD")
	if formatCmd == "" {
		formatCmd = defaultFormatCmd
	}

	logger := logx.New().With("component", "rebasebot")
	logger.Info("starting", "base", base, "head", head, "format", formatCmd)

	mustRun(logger, "git", "config", "user.name", botName)
	mustRun(logger, "git", "config", "user.email", botEmail)

	// Fetch base branch
	mustRun(logger, "git", "fetch", "origin", base)

	// Rebase; en conflicto se aborta y se deja el árbol limpio.
	if err := run(logger, "git", "rebase", "origin/"+base); err != nil {
		logger.Warn("rebase conflict, aborting", "base", base)
		mustRun(logger, "git", "rebase", "--abort")
		os.Exit(1)
	}

	// Formatting pass
	fields := strings.Fields(formatCmd)
	mustRun(logger, fields[0], fields[1:]...)

	// Commit format changes if any
	if workTreeDirty(logger) {
		mustRun(logger, "git", "add", ".")
		mustRun(logger, "git", "commit", "-m", "chore: apply formatting")
	} else {
		logger.Info("no formatting changes")
	}

	// Force push back to PR branch
	mustRun(logger, "git", "push", "origin", "HEAD:"+head, "--force-with-lease")

	logger.Info("rebase and format completed", "head", head)
}

// run ejecuta un comando heredando stdout/stderr.
func run(logger logx.Logger, name string, args ...string) error {
	logger.Info("exec", "cmd", name+" "+strings.Join(args, " "))
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// mustRun ejecuta un comando y corta el proceso si falla.
func mustRun(logger logx.Logger, name string, args ...string) {
	if err := run(logger, name, args...); err != nil {
		logger.Err(err, "cmd", name)
		os.Exit(1)
	}
}

// workTreeDirty informa si hay cambios sin commitear.
func workTreeDirty(logger logx.Logger) bool {
	out, err := exec.Command("git", "status", "--porcelain").Output()
	if err != nil {
		logger.Err(err, "cmd", "git status")
		os.Exit(1)
	}
	return strings.TrimSpace(string(out)) != ""
}
