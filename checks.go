package main

import (
	"fmt"
	"os"
)

const msgNotConfigured = "Project not configured. Run 'actions configure' first, then retry."

// IsProjectConfigured reports whether CMake has configured the project.
// Existence of the cache file is proof of configuration, stale or not.
func IsProjectConfigured(lay Layout) bool {
	info, err := os.Stat(lay.CacheFile)
	return err == nil && !info.IsDir()
}

// IsConanConfigured reports whether Conan has a default profile.
func IsConanConfigured(lay Layout) bool {
	info, err := os.Stat(lay.ConanProfile)
	return err == nil && !info.IsDir()
}

// LoadCatalog builds the target catalog and fills it from the current
// CMake cache. Without a configured project it explains the missing
// prerequisite and returns the catalog unpopulated rather than failing.
func LoadCatalog(projectName string, cmds Commands, lay Layout) (*TargetCatalog, error) {
	cat, err := NewTargetCatalog(projectName)
	if err != nil {
		return nil, err
	}

	if !IsProjectConfigured(lay) {
		fmt.Println(msgNotConfigured)
		return cat, nil
	}

	raw, err := QueryTargets(cmds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[warn] %v\n", err)
		return cat, nil
	}

	cat.Classify(raw)
	return cat, nil
}
