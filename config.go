package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables the guard reads and writes back. The names match
// what the project container sets and what CMake wrapper scripts expect.
const (
	EnvProjectName = "PROJECT_NAME"
	EnvBuildType   = "PROJECT_BUILD_TYPE"
	EnvBuildTests  = "PROJECT_BUILD_TESTS"
	EnvUseConan    = "PROJECT_USE_CONAN"
)

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = "actions.yaml"

// Layout fixes every path, postfix and build knob the command table
// depends on. Built once per invocation from the working directory, then
// optionally overlaid by the project file.
type Layout struct {
	BaseDir        string
	BuildDir       string
	DocsDir        string
	ThirdPartyDir  string
	ToolsDir       string
	ConanProfile   string
	ConanOutDir    string
	ConanToolchain string
	GraphInput     string
	GraphOutput    string
	CacheFile      string
	AppDir         string
	AppPostfix     string
	TestDir        string
	TestPostfix    string
	TidyPostfix    string
	Generator      string
	ParallelJobs   int
	CppStd         int
}

// DefaultFallbacks returns the static fallback table. Every guarded
// parameter must appear here with a non-empty value.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		ParamProjectName: "MISSING_PROJECT_NAME",
		ParamBuildType:   "Debug",
		ParamBuildTests:  Off,
		ParamUseConan:    On,
	}
}

// DefaultLayout returns the conventional project layout rooted at baseDir.
func DefaultLayout(baseDir string) Layout {
	buildDir := filepath.Join(baseDir, "build")
	return Layout{
		BaseDir:        baseDir,
		BuildDir:       buildDir,
		DocsDir:        filepath.Join(baseDir, "docs"),
		ThirdPartyDir:  filepath.Join(baseDir, "third_party"),
		ToolsDir:       filepath.Join(baseDir, "tools"),
		ConanProfile:   filepath.Join(homeDir(), ".conan2", "profiles", "default"),
		ConanOutDir:    filepath.Join(buildDir, "conan_deps"),
		ConanToolchain: filepath.Join(buildDir, "conan_deps", "conan_toolchain.cmake"),
		GraphInput:     filepath.Join(buildDir, "dependency_graph", "dependency_graph.dot"),
		GraphOutput:    filepath.Join(buildDir, "dependency_graph.png"),
		CacheFile:      filepath.Join(buildDir, "CMakeCache.txt"),
		AppDir:         filepath.Join(buildDir, "app"),
		AppPostfix:     "_run",
		TestDir:        filepath.Join(buildDir, "test"),
		TestPostfix:    "_test_run",
		TidyPostfix:    "_clangtidy",
		Generator:      "Unix Makefiles",
		ParallelJobs:   8,
		CppStd:         17,
	}
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "/root"
}

// ProjectFile is the optional actions.yaml overlay. Only the knobs that
// projects actually vary are exposed; everything else stays conventional.
type ProjectFile struct {
	Fallbacks map[string]string `yaml:"fallbacks"`
	Build     struct {
		Generator string `yaml:"generator"`
		Jobs      int    `yaml:"jobs"`
		CppStd    int    `yaml:"cppstd"`
	} `yaml:"build"`
}

// LoadProjectFile overlays fallback values and build knobs from the
// project file onto fb and lay. A missing file is not an error; a file
// that exists but cannot be decoded is.
func LoadProjectFile(path string, fb Fallbacks, lay *Layout) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var pf ProjectFile
	if err := yaml.NewDecoder(f).Decode(&pf); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	for name, value := range pf.Fallbacks {
		if _, known := fb[name]; !known {
			fmt.Fprintf(os.Stderr, "[warn] unknown parameter %q in %s\n", name, path)
			continue
		}
		if value == "" {
			// An empty fallback would break the resolution invariant.
			continue
		}
		fb[name] = value
	}

	if pf.Build.Generator != "" {
		lay.Generator = pf.Build.Generator
	}
	if pf.Build.Jobs > 0 {
		lay.ParallelJobs = pf.Build.Jobs
	}
	if pf.Build.CppStd > 0 {
		lay.CppStd = pf.Build.CppStd
	}
	return nil
}
