package main

import (
	"fmt"
	"os"
	"strings"
)

// OnOff normalizes common truthy spellings ("true", "on" in any case) to
// ON. Everything else, including the empty string, normalizes to OFF.
func OnOff(text string) string {
	switch strings.ToUpper(text) {
	case "TRUE", "ON":
		return On
	default:
		return Off
	}
}

// GuardRequest carries the CLI flags that may override guarded parameters
// for the current invocation.
type GuardRequest struct {
	Debug        bool
	Release      bool
	WithTests    bool
	RunTests     bool
	ConanInstall bool
	UseConan     bool
}

// resolveBuildType maps the two build-type flags onto an override request.
// Neither flag, both flags (a contradictory request), or --debug all give
// Debug; only a lone --release gives Release. The contradiction is not an
// error: the caller asked for everything, so the safe default wins.
func resolveBuildType(debug, release bool) Override {
	if !debug && !release {
		return Override{}
	}
	if release && !debug {
		return Override{Set: true, Value: "Release"}
	}
	return Override{Set: true, Value: "Debug"}
}

// guardSingle resolves one guarded parameter through the precedence chain
// (flag override > environment > fallback) and writes the result into
// params. envValue must be empty when the variable is absent. The returned
// assignment, when ok, must reach the process environment before any child
// process spawns so the value is inherited.
func guardSingle(params Params, fb Fallbacks, envVar, paramName, envValue string, ov Override) (EnvAssignment, bool) {
	fallbackValue, known := fb[paramName]
	if !known || fallbackValue == "" {
		panic(fmt.Sprintf("guard: no fallback defined for parameter %q", paramName))
	}

	switch {
	case ov.Set:
		params[paramName] = ov.Value
		return EnvAssignment{Name: envVar, Value: ov.Value}, true
	case envValue != "":
		params[paramName] = envValue
		return EnvAssignment{}, false
	default:
		params[paramName] = fallbackValue
		return EnvAssignment{Name: envVar, Value: fallbackValue}, true
	}
}

// GuardAll resolves every guarded parameter for this invocation and
// returns the parameter set together with the environment assignments to
// apply before spawning any child process. Boolean parameters are
// normalized before resolution; emptiness is judged on the raw variable so
// an absent boolean still falls through to its fallback.
func GuardAll(req GuardRequest, fb Fallbacks, verbose bool) (Params, []EnvAssignment) {
	if verbose {
		fmt.Println("Resolving required parameters... These may differ from the current CMake configuration.")
	}

	params := Params{}
	var assigns []EnvAssignment

	resolve := func(envVar, paramName, envValue string, ov Override) {
		old := os.Getenv(envVar)
		if a, ok := guardSingle(params, fb, envVar, paramName, envValue, ov); ok {
			assigns = append(assigns, a)
		}
		if verbose {
			fmt.Printf("Using value %s for ENV:%s (was %q).\n", params[paramName], envVar, old)
		}
	}

	normalized := func(envVar string) string {
		raw := os.Getenv(envVar)
		if raw == "" {
			return ""
		}
		return OnOff(raw)
	}

	// Project name has no flag; it comes from the environment or not at all.
	resolve(EnvProjectName, ParamProjectName, os.Getenv(EnvProjectName), Override{})

	resolve(EnvBuildType, ParamBuildType, os.Getenv(EnvBuildType),
		resolveBuildType(req.Debug, req.Release))

	resolve(EnvBuildTests, ParamBuildTests, normalized(EnvBuildTests),
		Override{Set: req.WithTests || req.RunTests, Value: On})

	resolve(EnvUseConan, ParamUseConan, normalized(EnvUseConan),
		Override{Set: req.ConanInstall || req.UseConan, Value: On})

	return params, assigns
}

// ApplyEnv performs the environment write-backs the guard decided on.
// Child processes inherit these; the calling shell does not.
func ApplyEnv(assigns []EnvAssignment) error {
	for _, a := range assigns {
		if err := os.Setenv(a.Name, a.Value); err != nil {
			return fmt.Errorf("setting %s: %w", a.Name, err)
		}
	}
	return nil
}
