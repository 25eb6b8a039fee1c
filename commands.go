package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Command templates. References like ${name} are substituted from the
// resolved parameters and the layout by expandParams. Keeping the shell
// text here, rather than scattered over the handlers, mirrors how the
// whole table is derived from one resolution pass.
const (
	tmplConanProfile = "conan profile detect --force"

	tmplConanInstall = "conan install ${third-party-directory} " +
		"-s build_type=${project-build-type} " +
		"--output-folder=${conan-output-directory} " +
		"--build missing " +
		"-s compiler.cppstd=${cppstd}"

	tmplCMakeConfigure = "cmake -S ${base-directory} " +
		"-B ${build-directory} " +
		`-G "${generator}" ` +
		"-DCMAKE_BUILD_TYPE=${project-build-type} " +
		"-DBUILD_TESTS=${project-build-tests} " +
		"--graphviz=${dependency-graph-input} " +
		"-DUSE_CONAN=${project-use-conan}"

	tmplCMakeConanAdd = " -DCMAKE_TOOLCHAIN_FILE=${conan-output-toolchain} " +
		"-DCMAKE_POLICY_DEFAULT_CMP0091=NEW"

	tmplBuildTarget  = "cmake --build ${build-directory} --target " // + <target-id>
	tmplBuildDefault = "cmake --build ${build-directory} -j ${jobs}"

	tmplClean = `rm -rf "${build-directory}"/* && touch "${build-directory}/.gitkeep"`

	tmplGraph = "dot -Tpng ${dependency-graph-input} -o ${dependency-graph-output}"
)

// Commands is the shell-command table for one resolved invocation.
type Commands struct {
	ConanProfile    string
	ConanInstall    string
	CMakeConfigure  string
	CMakeConanAdd   string
	BuildTarget     string
	BuildDefault    string
	ExecuteApp      string
	ExecuteTests    string
	Clean           string
	DependencyGraph string
}

// NewCommands fills the command table from resolved parameters and the
// project layout. GuardAll must have run first: every template reference
// must resolve.
func NewCommands(params Params, lay Layout) Commands {
	vars := templateVars(params, lay)
	expand := func(tmpl string) string { return expandParams(tmpl, vars) }

	return Commands{
		ConanProfile:    expand(tmplConanProfile),
		ConanInstall:    expand(tmplConanInstall),
		CMakeConfigure:  expand(tmplCMakeConfigure),
		CMakeConanAdd:   expand(tmplCMakeConanAdd),
		BuildTarget:     expand(tmplBuildTarget),
		BuildDefault:    expand(tmplBuildDefault),
		ExecuteApp:      filepath.Join(lay.AppDir, params[ParamProjectName]+lay.AppPostfix),
		ExecuteTests:    filepath.Join(lay.TestDir, params[ParamProjectName]+lay.TestPostfix),
		Clean:           expand(tmplClean),
		DependencyGraph: expand(tmplGraph),
	}
}

// templateVars flattens parameters and layout into one substitution map.
func templateVars(params Params, lay Layout) map[string]string {
	vars := map[string]string{
		"base-directory":          lay.BaseDir,
		"build-directory":         lay.BuildDir,
		"docs-directory":          lay.DocsDir,
		"third-party-directory":   lay.ThirdPartyDir,
		"tools-directory":         lay.ToolsDir,
		"conan-output-directory":  lay.ConanOutDir,
		"conan-output-toolchain":  lay.ConanToolchain,
		"dependency-graph-input":  lay.GraphInput,
		"dependency-graph-output": lay.GraphOutput,
		"generator":               lay.Generator,
		"jobs":                    strconv.Itoa(lay.ParallelJobs),
		"cppstd":                  strconv.Itoa(lay.CppStd),
	}
	for name, value := range params {
		vars[name] = value
	}
	return vars
}

// paramRef matches $name or ${name} references in command templates.
var paramRef = regexp.MustCompile(`\$\{[^}]+\}|\$\w+`)

// expandParams substitutes ${name} references from vars, falling back to
// the process environment for names the table does not define. Unknown
// references are left in place and warned about rather than erased, so a
// broken template is visible in the command it produces.
func expandParams(text string, vars map[string]string) string {
	for _, m := range paramRef.FindAllString(text, -1) {
		name := strings.TrimPrefix(m, "$")
		name = strings.Trim(name, "{}")

		val, ok := vars[name]
		if !ok {
			val = os.Getenv(name)
		}
		if val == "" {
			fmt.Fprintf(os.Stderr, "[warn] undefined reference %s in command template\n", m)
			continue
		}

		text = strings.Replace(text, m, val, 1)
	}
	return text
}
