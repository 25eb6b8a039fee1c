package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ===== MAIN.GO UNIT TESTS =====

func TestBuildApp(t *testing.T) {
	if app := buildApp(); app == nil {
		t.Fatalf("buildApp() returned nil")
	}
}

func TestNewInvocation(t *testing.T) {
	dir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change dir: %v", err)
	}

	t.Setenv(EnvProjectName, "demo")
	t.Setenv(EnvBuildType, "")
	t.Setenv(EnvBuildTests, "")
	t.Setenv(EnvUseConan, "")

	inv, err := newInvocation(GuardRequest{Release: true}, false)
	if err != nil {
		t.Fatalf("newInvocation() unexpected error: %v", err)
	}

	if inv.params[ParamProjectName] != "demo" {
		t.Errorf("params[project-name] = %q, want demo", inv.params[ParamProjectName])
	}
	if inv.params[ParamBuildType] != "Release" {
		t.Errorf("params[project-build-type] = %q, want Release", inv.params[ParamBuildType])
	}

	// The write-back must be visible to child processes.
	if got := os.Getenv(EnvBuildType); got != "Release" {
		t.Errorf("ENV:%s = %q after resolution, want Release", EnvBuildType, got)
	}

	if !strings.Contains(inv.cmds.CMakeConfigure, "-DCMAKE_BUILD_TYPE=Release") {
		t.Errorf("CMakeConfigure = %q, want Release build type", inv.cmds.CMakeConfigure)
	}
	if inv.cmds.ExecuteApp != filepath.Join(inv.layout.AppDir, "demo_run") {
		t.Errorf("ExecuteApp = %q, want demo_run under the app directory", inv.cmds.ExecuteApp)
	}
}

func TestNewInvocationReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change dir: %v", err)
	}

	content := "fallbacks:\n  project-name: \"urp\"\nbuild:\n  jobs: 2\n"
	if err := os.WriteFile(filepath.Join(dir, ProjectFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("writing project file: %v", err)
	}

	t.Setenv(EnvProjectName, "")
	t.Setenv(EnvBuildType, "")
	t.Setenv(EnvBuildTests, "")
	t.Setenv(EnvUseConan, "")

	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		t.Fatalf("newInvocation() unexpected error: %v", err)
	}

	if inv.params[ParamProjectName] != "urp" {
		t.Errorf("params[project-name] = %q, want project-file fallback urp", inv.params[ParamProjectName])
	}
	if !strings.Contains(inv.cmds.BuildDefault, "-j 2") {
		t.Errorf("BuildDefault = %q, want -j 2 from project file", inv.cmds.BuildDefault)
	}
}

// ===== CHECKS.GO UNIT TESTS =====

func TestIsProjectConfigured(t *testing.T) {
	lay := DefaultLayout(t.TempDir())

	if IsProjectConfigured(lay) {
		t.Errorf("IsProjectConfigured() = true without a cache file")
	}

	if err := os.MkdirAll(lay.BuildDir, 0o755); err != nil {
		t.Fatalf("creating build dir: %v", err)
	}
	if err := os.WriteFile(lay.CacheFile, []byte("CMAKE_BUILD_TYPE:STRING=Debug\n"), 0o644); err != nil {
		t.Fatalf("writing cache file: %v", err)
	}

	if !IsProjectConfigured(lay) {
		t.Errorf("IsProjectConfigured() = false with a cache file present")
	}
}

func TestLoadCatalogUnconfigured(t *testing.T) {
	lay := DefaultLayout(t.TempDir())
	cmds := NewCommands(Params{
		ParamProjectName: "demo",
		ParamBuildType:   "Debug",
		ParamBuildTests:  Off,
		ParamUseConan:    Off,
	}, lay)

	// Missing prerequisite is reported, not raised: the catalog comes
	// back defined but unpopulated.
	cat, err := LoadCatalog("demo", cmds, lay)
	if err != nil {
		t.Fatalf("LoadCatalog() unexpected error: %v", err)
	}
	for _, tt := range cat.Types {
		if len(tt.IDs) != 0 {
			t.Errorf("LoadCatalog() populated %q without a configured project", tt.Name)
		}
	}
}

func TestLoadCatalogUnresolvedProjectName(t *testing.T) {
	lay := DefaultLayout(t.TempDir())
	if _, err := LoadCatalog("", Commands{}, lay); err == nil {
		t.Errorf("LoadCatalog() expected error for empty project name, got none")
	}
}
