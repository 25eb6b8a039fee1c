package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// includePathsPrefix locates the toolchain line
//
//	list(PREPEND CMAKE_INCLUDE_PATH "path1" "path2" ...)
//
// which carries the include directories Conan installed for the project.
const includePathsPrefix = "list(PREPEND CMAKE_INCLUDE_PATH "

// ConanIncludePaths extracts the include paths the Conan toolchain file
// prepends to CMAKE_INCLUDE_PATH. A missing file or a toolchain without
// the expected line is a visible error.
func ConanIncludePaths(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading Conan toolchain: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, includePathsPrefix) {
			continue
		}

		quoted := strings.TrimPrefix(line, includePathsPrefix)
		quoted = strings.TrimRight(quoted, ")")
		quoted = strings.ReplaceAll(quoted, `"`, "")

		var paths []string
		for _, p := range strings.Split(quoted, " ") {
			if p != "" {
				paths = append(paths, p)
			}
		}
		return paths, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading Conan toolchain: %w", err)
	}

	return nil, fmt.Errorf("no CMAKE_INCLUDE_PATH entry in %s", path)
}
