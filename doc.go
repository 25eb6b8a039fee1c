/*
Package main implements actions, command-line automation for a CMake/Conan
C++ project.

The tool shells out to CMake and Conan, parses their generated cache and
toolchain files, and emits editor configuration. It replaces a pile of
hand-typed invocations with short commands that agree on one resolved
parameter set.

# Parameter resolution

Four guarded parameters drive every generated command:

	Guarded param.          Env. var.               Flag/option
	-------------           --------------          -----------------------
	project-name            $PROJECT_NAME           (env only)
	project-build-type      $PROJECT_BUILD_TYPE     --debug, --release
	project-build-tests     $PROJECT_BUILD_TESTS    --with-tests, test cmd
	project-use-conan       $PROJECT_USE_CONAN      --use-conan, conan cmd

Flags override environment variables; missing values fall back to built-in
defaults. Resolved values are written back into the process environment so
spawned build commands inherit them. Boolean parameters accept "true" and
"on" in any case as enabled; everything else is disabled.

# Target classification

Targets reported by `cmake --build <dir> --target help` are bucketed into
types (coverage, docs, clang-tidy, test, install, build) by ordered
pattern matching; the first matching type claims the target. The build
pattern is derived from the project name.

# CLI Commands

	configure   (Re-)configure the CMake project
	conan       Detect a Conan profile and install dependencies
	build       Build the project or a single target, optionally run the app
	test        Build with unit tests, then run them
	list        List known targets of a type (table, json or yaml)
	coverage    Run the coverage target
	tidy        Run clang-tidy targets
	docs        Compile Doxygen documentation
	graph       Render the dependency graph to PNG
	clean       Delete all build files
	editor      Emit .vscode/c_cpp_properties.json
	new         Scaffold a component (header, source, test stubs)

# Usage Examples

Install dependencies with Conan and configure the project:

	actions conan
	actions configure --use-conan --with-tests --debug

Build and run the app, then run the unit tests:

	actions build --run
	actions test

See available targets after configuration:

	actions list build
	actions list test --format json

# Configuration

An optional actions.yaml in the project root overrides fallback values and
build knobs:

	fallbacks:
	  project-name: "urp"
	  project-build-type: "Release"

	build:
	  generator: "Ninja"
	  jobs: 16
	  cppstd: 17

# Dependencies

The CLI surface and error handling are built on the Orpheus framework:
- github.com/agilira/orpheus: Modern CLI framework
- gopkg.in/yaml.v3: YAML parsing and processing
*/
package main
