package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// editorConfig mirrors the c_cpp_properties.json schema the VS Code C++
// extension reads.
type editorConfig struct {
	Configurations []editorConfiguration `json:"configurations"`
	Version        int                   `json:"version"`
}

type editorConfiguration struct {
	Name             string   `json:"name"`
	IncludePath      []string `json:"includePath"`
	Defines          []string `json:"defines"`
	CompilerPath     string   `json:"compilerPath,omitempty"`
	CStandard        string   `json:"cStandard"`
	CppStandard      string   `json:"cppStandard"`
	IntelliSenseMode string   `json:"intelliSenseMode"`
}

// BuildEditorConfig composes the editor configuration from the project
// layout, the CMake cache (compiler path) and, when Conan is in play, the
// include paths its toolchain file prepends.
func BuildEditorConfig(lay Layout, useConan bool) (*editorConfig, error) {
	includes := []string{
		"${workspaceFolder}/**",
		filepath.Join(lay.BaseDir, "src", "include"),
	}

	if useConan {
		paths, err := ConanIncludePaths(lay.ConanToolchain)
		if err != nil {
			return nil, err
		}
		includes = append(includes, paths...)
	}

	cache, err := ReadCMakeCache(lay.CacheFile)
	if err != nil {
		return nil, err
	}
	compiler, _ := cache.Get("CMAKE_CXX_COMPILER")

	return &editorConfig{
		Version: 4,
		Configurations: []editorConfiguration{{
			Name:             "Linux",
			IncludePath:      includes,
			Defines:          []string{},
			CompilerPath:     compiler,
			CStandard:        "c17",
			CppStandard:      fmt.Sprintf("c++%d", lay.CppStd),
			IntelliSenseMode: "linux-gcc-x64",
		}},
	}, nil
}

// WriteEditorConfig writes .vscode/c_cpp_properties.json under the project
// base directory, creating the directory as needed.
func WriteEditorConfig(lay Layout, useConan bool) error {
	cfg, err := BuildEditorConfig(lay, useConan)
	if err != nil {
		return err
	}

	dir := filepath.Join(lay.BaseDir, ".vscode")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, "c_cpp_properties.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
