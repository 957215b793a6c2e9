// SPDX-License-Identifier: MIT
package solverrun_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weese/transit-map/solverrun"
)

func TestRun_ReturnsSolutionFileContents(t *testing.T) {
	cmd := solverrun.Command{
		Path: "/bin/sh",
		BuildArgs: func(problemPath, solutionPath string) []string {
			return []string{"-c", "echo 'vx0 10000' > " + solutionPath}
		},
	}

	out, err := solverrun.Run(context.Background(), cmd, "Minimize\n End\n")
	require.NoError(t, err)
	require.Equal(t, "vx0 10000\n", string(out))
}

func TestRun_NonZeroExitIsSolverFailed(t *testing.T) {
	cmd := solverrun.Command{
		Path: "/bin/sh",
		BuildArgs: func(problemPath, solutionPath string) []string {
			return []string{"-c", "echo boom >&2; exit 1"}
		},
	}

	_, err := solverrun.Run(context.Background(), cmd, "Minimize\n End\n")
	require.ErrorIs(t, err, solverrun.ErrSolverFailed)
}

func TestRun_MissingSolutionFileIsAnError(t *testing.T) {
	cmd := solverrun.Command{
		Path: "/bin/sh",
		BuildArgs: func(problemPath, solutionPath string) []string {
			return []string{"-c", "true"}
		},
	}

	_, err := solverrun.Run(context.Background(), cmd, "Minimize\n End\n")
	require.Error(t, err)
}
