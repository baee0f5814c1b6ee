package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Runner runs a command with dir as its working directory.
type Runner interface {
	Run(ctx context.Context, dir, command string) Result
}

// ShellRunner runs commands through the platform shell.
type ShellRunner struct {
	// Env is appended to the inherited environment.
	Env []string
}

// Run executes command via "sh -c" ("cmd /C" on Windows) in dir and waits for it.
// stdout and stderr are captured separately; stderr only surfaces in Result.Err.
func (r ShellRunner) Run(ctx context.Context, dir, command string) Result {
	name, args := shell(command)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := strings.TrimSpace(stdout.String())

	if err != nil {
		msg := err.Error()
		if errOut := strings.TrimSpace(stderr.String()); errOut != "" {
			msg = fmt.Sprintf("%s: %s", msg, errOut)
		}

		return Result{Output: output, Err: msg}
	}

	return Result{Success: true, Output: output}
}

func shell(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}

	return "sh", []string{"-c", command}
}
