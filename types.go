package main

import "regexp"

// Guarded parameter names. Every one of these must have a resolved,
// non-empty value before any command template is built.
const (
	ParamProjectName = "project-name"
	ParamBuildType   = "project-build-type"
	ParamBuildTests  = "project-build-tests"
	ParamUseConan    = "project-use-conan"
)

// Canonical on/off tokens, as CMake expects them in -D definitions.
const (
	On  = "ON"
	Off = "OFF"
)

// Params maps guarded parameter names to their resolved values for one
// invocation. Built fresh by GuardAll and not modified afterwards.
type Params map[string]string

// Fallbacks maps each guarded parameter to its last-resort value. A
// recognized parameter without a fallback entry is a programming error.
type Fallbacks map[string]string

// EnvAssignment records an environment write-back decided by the guard.
// Assignments are a declared output of resolution; ApplyEnv performs them
// before any child process is spawned.
type EnvAssignment struct {
	Name  string
	Value string
}

// Override is a flag-driven override request for a single parameter.
type Override struct {
	Set   bool
	Value string
}

// TargetType is one semantic category of CMake targets: a name, the
// pattern that claims identifiers for it, and the identifiers assigned
// by the last classification run.
type TargetType struct {
	Name    string
	Pattern *regexp.Regexp
	IDs     []string
}

// TargetCatalog holds the category list in classification priority order.
// The order matters: patterns overlap, and the first match wins.
type TargetCatalog struct {
	Types []*TargetType
}
