package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
)

// ExecuteCommand runs a shell command and returns its combined output.
func ExecuteCommand(command string) (string, error) {
	var cmd *exec.Cmd

	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("empty command")
	}

	// Windows
	if runtime.GOOS == "windows" {
		// #nosec G204 - this tool exists to run build commands
		cmd = exec.Command("cmd", "/C", command)
	} else {
		// Linux && MacOsX
		// #nosec G204 - this tool exists to run build commands
		cmd = exec.Command("/bin/bash", "-c", command)
	}

	out, err := cmd.CombinedOutput()
	return string(out), err
}

// ExecuteCommandWithContext adds verbose echoing and dry-run short-circuit
// around ExecuteCommand.
func ExecuteCommandWithContext(command string, verbose, dryRun bool) (string, error) {
	if verbose {
		fmt.Printf("→ %s\n", command)
	}

	if dryRun {
		fmt.Printf("  [DRY RUN] Would execute: %s\n", command)
		return "", nil
	}

	return ExecuteCommand(command)
}

// RunShell executes one command table entry and streams its output. A
// failing command surfaces as an execution error named after the action.
func RunShell(action, command string, verbose, dryRun bool) error {
	out, err := ExecuteCommandWithContext(command, verbose, dryRun)
	if err != nil && !dryRun {
		return orpheus.ExecutionError(action, fmt.Sprintf("in %s -> \n%s%s", action, out, err.Error()))
	}
	if strings.TrimSpace(out) != "" && !dryRun {
		fmt.Print(out)
	}
	return nil
}

// RunTarget orders CMake to build a single named target. Targets not in
// the populated catalog are rejected before anything is spawned.
func RunTarget(cat *TargetCatalog, cmds Commands, id string, verbose, dryRun bool) error {
	if !cat.IsKnownTarget(id) {
		return orpheus.NotFoundError("target",
			fmt.Sprintf("target '%s' is not in the CMake cache; check the name or reconfigure the project", id))
	}
	return RunShell(id, cmds.BuildTarget+id, verbose, dryRun)
}
