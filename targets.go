package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
)

// Target type names, in classification priority order. Build is last on
// purpose: its pattern is broad enough to swallow test and coverage
// targets if it ran first.
const (
	TypeCoverage  = "coverage"
	TypeDocs      = "docs"
	TypeClangTidy = "clang-tidy"
	TypeTest      = "test"
	TypeInstall   = "install"
	TypeBuild     = "build"
)

// targetLinePrefix marks target lines in `cmake --build <dir> --target help`
// output. The full prefix including the separating space is 4 bytes.
const targetLinePrefix = "..."

// NewTargetCatalog builds the ordered category list for a project. The
// build pattern is parameterized by the project name; with an empty name
// it would degenerate to matching any identifier with a leading
// underscore, so an unresolved name is rejected up front.
func NewTargetCatalog(projectName string) (*TargetCatalog, error) {
	if projectName == "" {
		return nil, orpheus.ValidationError("targets",
			"project name is unresolved; run parameter resolution before classifying targets")
	}

	return &TargetCatalog{Types: []*TargetType{
		{Name: TypeCoverage, Pattern: regexp.MustCompile(`^coverage$`)},
		{Name: TypeDocs, Pattern: regexp.MustCompile(`^docs$`)},
		{Name: TypeClangTidy, Pattern: regexp.MustCompile(`.*_clangtidy$`)},
		{Name: TypeTest, Pattern: regexp.MustCompile(`.*_test_run$`)},
		{Name: TypeInstall, Pattern: regexp.MustCompile(`^install.*`)},
		{Name: TypeBuild, Pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(projectName) + `_.*`)},
	}}, nil
}

// Classify partitions raw target identifiers into the catalog's types.
// Each identifier goes to the first type whose pattern matches and is
// never reconsidered; identifiers matching no pattern are dropped.
// Every run is a full rebuild: previous assignments are cleared first.
func (c *TargetCatalog) Classify(raw []string) {
	for _, tt := range c.Types {
		tt.IDs = nil
	}
	for _, id := range raw {
		for _, tt := range c.Types {
			if tt.Pattern.MatchString(id) {
				tt.IDs = append(tt.IDs, id)
				break
			}
		}
	}
}

// TargetsOfType returns the identifiers assigned to one type. Unknown
// type names yield nil, same as an empty type.
func (c *TargetCatalog) TargetsOfType(name string) []string {
	for _, tt := range c.Types {
		if tt.Name == name {
			return tt.IDs
		}
	}
	return nil
}

// IsKnownTargetOfType reports whether id was assigned to the named type.
func (c *TargetCatalog) IsKnownTargetOfType(name, id string) bool {
	for _, known := range c.TargetsOfType(name) {
		if known == id {
			return true
		}
	}
	return false
}

// IsKnownTarget reports whether id was assigned to any type.
func (c *TargetCatalog) IsKnownTarget(id string) bool {
	for _, tt := range c.Types {
		if c.IsKnownTargetOfType(tt.Name, id) {
			return true
		}
	}
	return false
}

// HasType reports whether the catalog defines the named type.
func (c *TargetCatalog) HasType(name string) bool {
	for _, tt := range c.Types {
		if tt.Name == name {
			return true
		}
	}
	return false
}

// TypeNames returns the type names in classification priority order.
func (c *TargetCatalog) TypeNames() []string {
	names := make([]string, 0, len(c.Types))
	for _, tt := range c.Types {
		names = append(names, tt.Name)
	}
	return names
}

// ParseTargetLines reduces raw `--target help` output to bare target
// identifiers. Only lines carrying the "... " prefix are targets;
// everything else is ignored, not errored.
func ParseTargetLines(out string) []string {
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, targetLinePrefix) || len(line) < len(targetLinePrefix)+1 {
			continue
		}
		ids = append(ids, line[len(targetLinePrefix)+1:])
	}
	return ids
}

// QueryTargets asks CMake for the full target list of the current cache.
func QueryTargets(cmds Commands) ([]string, error) {
	out, err := ExecuteCommand(cmds.BuildTarget + "help")
	if err != nil {
		return nil, fmt.Errorf("querying CMake targets: %w", err)
	}
	return ParseTargetLines(out), nil
}
