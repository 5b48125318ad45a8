// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner implements subprocess invocation with redirected streams.
//
// The wrapper is policy-free: a child's exit status is returned as data in a
// Result, never as an error. Whether a non-zero exit matters is decided by
// the caller.
package runner

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Streams wires a child process's standard streams and environment.
// A nil writer discards that stream.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer

	// ExtraEnv entries ("KEY=value") are appended to the parent environment
	// for the child. Nil means inherit unchanged.
	ExtraEnv []string
}

// Result describes a finished invocation. Err is set only when the process
// could not be started at all (binary missing, not executable); once the
// child runs, its exit code lands in ExitCode and Err stays nil.
type Result struct {
	ExitCode int
	Err      error
}

// Started reports whether the child process actually ran.
func (r Result) Started() bool { return r.Err == nil }

// Success reports whether the child ran and exited zero.
func (r Result) Success() bool { return r.Err == nil && r.ExitCode == 0 }

// CommandRunner launches external commands and blocks until they exit.
type CommandRunner interface {
	// Run executes name with args. It returns only after the child
	// terminates; there is no timeout or cancellation.
	Run(name string, args []string, s Streams) Result
}

// execRunner is the production CommandRunner backed by os/exec.
type execRunner struct{}

// New returns the production CommandRunner.
func New() CommandRunner {
	return &execRunner{}
}

func (e *execRunner) Run(name string, args []string, s Streams) Result {
	cmd := exec.Command(name, args...)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if len(s.ExtraEnv) > 0 {
		cmd.Env = append(os.Environ(), s.ExtraEnv...)
	}

	err := cmd.Run()
	if err == nil {
		return Result{ExitCode: 0}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode()}
	}
	return Result{ExitCode: -1, Err: err}
}
