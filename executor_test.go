package main

import (
	"runtime"
	"strings"
	"testing"
)

// ===== EXECUTOR.GO UNIT TESTS =====

func getTestCommand(kind string) string {
	if runtime.GOOS == "windows" {
		switch kind {
		case "version":
			return "ver"
		default:
			return "echo test"
		}
	}
	switch kind {
	case "version":
		return "uname -s"
	default:
		return "echo test"
	}
}

func TestExecuteCommand(t *testing.T) {
	tests := []struct {
		name         string
		command      string
		expectOutput bool
		expectError  bool
	}{
		{
			name:         "Simple echo command",
			command:      "echo hello",
			expectOutput: true,
			expectError:  false,
		},
		{
			name:         "Command with output",
			command:      getTestCommand("version"),
			expectOutput: true,
			expectError:  false,
		},
		{
			name:         "Invalid command",
			command:      "invalidcommand12345",
			expectOutput: false,
			expectError:  true,
		},
		{
			name:         "Empty command",
			command:      "",
			expectOutput: false,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := ExecuteCommand(tt.command)

			if tt.expectError && err == nil {
				t.Errorf("ExecuteCommand() expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("ExecuteCommand() unexpected error: %v", err)
			}
			if tt.expectOutput && output == "" && !tt.expectError {
				t.Errorf("ExecuteCommand() expected output but got none")
			}
		})
	}
}

func TestExecuteCommandWithContextDryRun(t *testing.T) {
	output, err := ExecuteCommandWithContext("echo should-not-run", true, true)
	if err != nil {
		t.Errorf("ExecuteCommandWithContext() dry run unexpected error: %v", err)
	}
	if output != "" {
		t.Errorf("ExecuteCommandWithContext() dry run produced output: %q", output)
	}
}

func TestRunShell(t *testing.T) {
	tests := []struct {
		name        string
		command     string
		dryRun      bool
		expectError bool
	}{
		{
			name:        "Successful command",
			command:     "echo ok",
			expectError: false,
		},
		{
			name:        "Failing command",
			command:     "exit 3",
			expectError: true,
		},
		{
			name:        "Failing command in dry run",
			command:     "exit 3",
			dryRun:      true,
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RunShell("test-action", tt.command, false, tt.dryRun)

			if tt.expectError && err == nil {
				t.Errorf("RunShell() expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("RunShell() unexpected error: %v", err)
			}
		})
	}
}

func TestRunTarget(t *testing.T) {
	cat, err := NewTargetCatalog("demo")
	if err != nil {
		t.Fatalf("NewTargetCatalog() unexpected error: %v", err)
	}
	cat.Classify([]string{"demo_app"})

	cmds := NewCommands(Params{
		ParamProjectName: "demo",
		ParamBuildType:   "Debug",
		ParamBuildTests:  Off,
		ParamUseConan:    Off,
	}, DefaultLayout(t.TempDir()))

	t.Run("Unknown target is rejected", func(t *testing.T) {
		err := RunTarget(cat, cmds, "ghost", false, true)
		if err == nil {
			t.Errorf("RunTarget() expected error for unknown target, got none")
		}
		if err != nil && !strings.Contains(err.Error(), "ghost") {
			t.Errorf("RunTarget() error %q does not name the target", err.Error())
		}
	})

	t.Run("Known target passes the catalog check", func(t *testing.T) {
		// Dry run: the catalog check happens, nothing is spawned.
		if err := RunTarget(cat, cmds, "demo_app", false, true); err != nil {
			t.Errorf("RunTarget() unexpected error: %v", err)
		}
	})
}
