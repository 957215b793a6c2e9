// SPDX-License-Identifier: MIT
// Package solverrun scopes a single solver invocation: a temporary working
// directory is created, the LP file is written into it, the solver command
// runs against it, and the directory is removed on every exit path —
// success, solver failure, or context cancellation. This generalizes the
// source's tempfile.mkdtemp/try-finally pattern into the teacher's
// guarded-resource discipline (core.Graph's mutex unlocked via defer on
// every return) applied to a process instead of a lock.
package solverrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrSolverFailed indicates the solver process exited with a non-zero
// status. The process's stderr is included in the error text for
// diagnosis but is not itself a sentinel value to match on.
var ErrSolverFailed = errors.New("solverrun: solver process failed")

// Command describes how to invoke the solver. Path is the executable;
// BuildArgs receives the absolute paths of the generated problem file and
// the expected solution file, and returns the argument list to run with —
// e.g. SCIPCommand below builds SCIP's "-c read ... -c optimize ..." form.
type Command struct {
	Path      string
	BuildArgs func(problemPath, solutionPath string) []string
}

// SCIPCommand returns the Command the source hardcodes: SCIP's
// read/optimize/write solution/quit script form.
func SCIPCommand() Command {
	return Command{
		Path: "scip",
		BuildArgs: func(problemPath, solutionPath string) []string {
			return []string{
				"-c", "read " + problemPath,
				"-c", "optimize",
				"-c", "write solution " + solutionPath,
				"-c", "quit",
			}
		},
	}
}

// Run writes problem into a fresh temporary directory as "problem.lp",
// invokes cmd against it, and returns the contents of "solution.sol" once
// the process exits successfully. The temporary directory is always
// removed before Run returns, regardless of outcome.
func Run(ctx context.Context, cmd Command, problem string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "transit-map-*")
	if err != nil {
		return nil, fmt.Errorf("solverrun: create working directory: %w", err)
	}
	defer os.RemoveAll(dir)

	problemPath := filepath.Join(dir, "problem.lp")
	if err := os.WriteFile(problemPath, []byte(problem), 0o644); err != nil {
		return nil, fmt.Errorf("solverrun: write problem file: %w", err)
	}
	solutionPath := filepath.Join(dir, "solution.sol")

	var stderr bytes.Buffer
	proc := exec.CommandContext(ctx, cmd.Path, cmd.BuildArgs(problemPath, solutionPath)...)
	proc.Dir = dir
	proc.Stderr = &stderr

	if err := proc.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrSolverFailed, err, stderr.String())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := os.ReadFile(solutionPath)
	if err != nil {
		return nil, fmt.Errorf("solverrun: read solution file: %w", err)
	}
	return out, nil
}
