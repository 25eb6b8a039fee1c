package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
)

const version = "0.8.0"

// invocation bundles everything a command handler needs for one run: the
// resolved parameters, the command table and the project layout. Each
// handler constructs its own; nothing lives in package globals.
type invocation struct {
	params Params
	cmds   Commands
	layout Layout
}

// newInvocation runs the full resolution pass for one command: layout and
// fallbacks, project-file overlay, guard, environment write-back, command
// table. verbose controls the guard's per-parameter reporting; actions
// that trigger a (re)configuration report, the read-only ones stay quiet.
func newInvocation(req GuardRequest, verbose bool) (*invocation, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	lay := DefaultLayout(base)
	fb := DefaultFallbacks()
	if err := LoadProjectFile(filepath.Join(base, ProjectFileName), fb, &lay); err != nil {
		return nil, err
	}

	params, assigns := GuardAll(req, fb, verbose)
	if err := ApplyEnv(assigns); err != nil {
		return nil, err
	}

	return &invocation{
		params: params,
		cmds:   NewCommands(params, lay),
		layout: lay,
	}, nil
}

// catalog loads and classifies the current target list for this invocation.
func (inv *invocation) catalog() (*TargetCatalog, error) {
	return LoadCatalog(inv.params[ParamProjectName], inv.cmds, inv.layout)
}

func main() {
	app := buildApp()
	if err := app.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildApp() *orpheus.App {
	app := orpheus.New("actions").
		SetDescription("Development, test and tooling actions: command-line automation for the CMake/Conan project").
		SetVersion(version)

	configureCmd := orpheus.NewCommand("configure", "(Re-)configure the CMake project").
		SetHandler(configureCommand).
		AddBoolFlag("debug", "d", false, "Force a Debug build").
		AddBoolFlag("release", "r", false, "Force a Release build").
		AddBoolFlag("with-tests", "t", false, "Also build unit tests").
		AddBoolFlag("use-conan", "c", false, "Configure with the Conan toolchain (run 'actions conan' first)").
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	conanCmd := orpheus.NewCommand("conan", "Install third-party dependencies with Conan").
		SetHandler(conanCommand).
		AddBoolFlag("profile", "p", false, "Only detect system capabilities and compiler versions").
		AddBoolFlag("debug", "d", false, "Install dependencies for a Debug build").
		AddBoolFlag("release", "r", false, "Install dependencies for a Release build").
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	buildCmd := orpheus.NewCommand("build", "(Re-)build the project from the current configuration").
		SetHandler(buildCommand).
		AddFlag("target", "t", "", "Build a single named target instead of the default build").
		AddBoolFlag("run", "x", false, "Run the app binary after building").
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	testCmd := orpheus.NewCommand("test", "Build the project with unit tests, then run them").
		SetHandler(testCommand).
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	listCmd := orpheus.NewCommand("list", "List known targets of a type (build, test, coverage, clang-tidy, docs, install)").
		SetHandler(listCommand).
		AddFlag("format", "f", "table", "Output format: table, json or yaml")

	coverageCmd := orpheus.NewCommand("coverage", "Run coverage analysis on current artifacts").
		SetHandler(coverageCommand).
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	tidyCmd := orpheus.NewCommand("tidy", "Run clang-tidy targets").
		SetHandler(tidyCommand).
		AddBoolFlag("all", "a", false, "Run every clang-tidy target").
		AddFlag("target", "t", "", "Run one specific clang-tidy target").
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	docsCmd := orpheus.NewCommand("docs", "Compile Doxygen documentation").
		SetHandler(docsCommand).
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	graphCmd := orpheus.NewCommand("graph", "Render the dependency graph to PNG").
		SetHandler(graphCommand).
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	cleanCmd := orpheus.NewCommand("clean", "Delete all build files").
		SetHandler(cleanCommand).
		AddBoolFlag("verbose", "v", false, "Echo commands before running them").
		AddBoolFlag("dry-run", "n", false, "Print commands without running them")

	editorCmd := orpheus.NewCommand("editor", "Emit editor configuration (c_cpp_properties.json)").
		SetHandler(editorCommand)

	newCmd := orpheus.NewCommand("new", "Scaffold a component: new <group> <longname>").
		SetHandler(newCommand)

	app.AddCommand(configureCmd)
	app.AddCommand(conanCmd)
	app.AddCommand(buildCmd)
	app.AddCommand(testCmd)
	app.AddCommand(listCmd)
	app.AddCommand(coverageCmd)
	app.AddCommand(tidyCmd)
	app.AddCommand(docsCmd)
	app.AddCommand(graphCmd)
	app.AddCommand(cleanCmd)
	app.AddCommand(editorCmd)
	app.AddCommand(newCmd)

	return app
}

// ===== COMMAND HANDLERS =====

func configureCommand(ctx *orpheus.Context) error {
	inv, err := newInvocation(GuardRequest{
		Debug:     ctx.GetFlagBool("debug"),
		Release:   ctx.GetFlagBool("release"),
		WithTests: ctx.GetFlagBool("with-tests"),
		UseConan:  ctx.GetFlagBool("use-conan"),
	}, true)
	if err != nil {
		return err
	}

	cmd := inv.cmds.CMakeConfigure
	if inv.params[ParamUseConan] == On {
		cmd += inv.cmds.CMakeConanAdd
	}

	fmt.Printf("CMake configuration call: %s\n", cmd)
	return RunShell("configure", cmd, ctx.GetFlagBool("verbose"), ctx.GetFlagBool("dry-run"))
}

func conanCommand(ctx *orpheus.Context) error {
	verbose := ctx.GetFlagBool("verbose")
	dryRun := ctx.GetFlagBool("dry-run")

	inv, err := newInvocation(GuardRequest{
		Debug:        ctx.GetFlagBool("debug"),
		Release:      ctx.GetFlagBool("release"),
		ConanInstall: true,
	}, true)
	if err != nil {
		return err
	}

	if ctx.GetFlagBool("profile") {
		return RunShell("conan", inv.cmds.ConanProfile, verbose, dryRun)
	}

	if !IsConanConfigured(inv.layout) {
		// No default profile yet; detect one first so the install succeeds.
		if err := RunShell("conan", inv.cmds.ConanProfile, verbose, dryRun); err != nil {
			return err
		}
	}
	return RunShell("conan", inv.cmds.ConanInstall, verbose, dryRun)
}

func buildCommand(ctx *orpheus.Context) error {
	verbose := ctx.GetFlagBool("verbose")
	dryRun := ctx.GetFlagBool("dry-run")

	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}

	if !IsProjectConfigured(inv.layout) {
		fmt.Println(msgNotConfigured)
		return nil
	}

	if target := ctx.GetFlagString("target"); target != "" {
		cat, err := inv.catalog()
		if err != nil {
			return err
		}
		return RunTarget(cat, inv.cmds, target, verbose, dryRun)
	}

	if err := RunShell("build", inv.cmds.BuildDefault, verbose, dryRun); err != nil {
		return err
	}
	if ctx.GetFlagBool("run") {
		return RunShell("run", inv.cmds.ExecuteApp, verbose, dryRun)
	}
	return nil
}

func testCommand(ctx *orpheus.Context) error {
	verbose := ctx.GetFlagBool("verbose")
	dryRun := ctx.GetFlagBool("dry-run")

	inv, err := newInvocation(GuardRequest{RunTests: true}, true)
	if err != nil {
		return err
	}

	if !IsProjectConfigured(inv.layout) {
		fmt.Println(msgNotConfigured)
		return nil
	}

	if err := RunShell("test", inv.cmds.BuildDefault, verbose, dryRun); err != nil {
		return err
	}
	return RunShell("test", inv.cmds.ExecuteTests, verbose, dryRun)
}

func listCommand(ctx *orpheus.Context) error {
	typeName := TypeBuild
	if len(ctx.Args) > 0 {
		typeName = ctx.Args[0]
	}

	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}

	cat, err := inv.catalog()
	if err != nil {
		return err
	}
	return ListTargets(cat, typeName, ctx.GetFlagString("format"))
}

func coverageCommand(ctx *orpheus.Context) error {
	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}

	cat, err := inv.catalog()
	if err != nil {
		return err
	}

	if !cat.IsKnownTargetOfType(TypeCoverage, TypeCoverage) {
		fmt.Println("Project not configured for coverage. Check ENABLE_COVERAGE in CMakeLists.txt and further settings in test/CMakeLists.txt")
		return nil
	}
	return RunTarget(cat, inv.cmds, TypeCoverage, ctx.GetFlagBool("verbose"), ctx.GetFlagBool("dry-run"))
}

func tidyCommand(ctx *orpheus.Context) error {
	verbose := ctx.GetFlagBool("verbose")
	dryRun := ctx.GetFlagBool("dry-run")

	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}

	cat, err := inv.catalog()
	if err != nil {
		return err
	}

	if ctx.GetFlagBool("all") {
		for _, id := range cat.TargetsOfType(TypeClangTidy) {
			if err := RunTarget(cat, inv.cmds, id, verbose, dryRun); err != nil {
				return err
			}
		}
		return nil
	}

	target := ctx.GetFlagString("target")
	if target == "" {
		return orpheus.ValidationError("tidy", "nothing to do: pass --all or --target <name>")
	}
	if !cat.IsKnownTargetOfType(TypeClangTidy, target) {
		fmt.Printf("%s is not a valid clang-tidy target (possible targets: %s).\n",
			target, strings.Join(cat.TargetsOfType(TypeClangTidy), ", "))
		return nil
	}
	return RunTarget(cat, inv.cmds, target, verbose, dryRun)
}

func docsCommand(ctx *orpheus.Context) error {
	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}

	cat, err := inv.catalog()
	if err != nil {
		return err
	}

	if !cat.IsKnownTargetOfType(TypeDocs, TypeDocs) {
		fmt.Println("Project has no docs target. Check the Doxygen settings in docs/CMakeLists.txt")
		return nil
	}
	return RunTarget(cat, inv.cmds, TypeDocs, ctx.GetFlagBool("verbose"), ctx.GetFlagBool("dry-run"))
}

func graphCommand(ctx *orpheus.Context) error {
	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}

	if !IsProjectConfigured(inv.layout) {
		fmt.Println(msgNotConfigured)
		return nil
	}
	return RunShell("graph", inv.cmds.DependencyGraph, ctx.GetFlagBool("verbose"), ctx.GetFlagBool("dry-run"))
}

func cleanCommand(ctx *orpheus.Context) error {
	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}
	return RunShell("clean", inv.cmds.Clean, ctx.GetFlagBool("verbose"), ctx.GetFlagBool("dry-run"))
}

func editorCommand(ctx *orpheus.Context) error {
	inv, err := newInvocation(GuardRequest{}, false)
	if err != nil {
		return err
	}

	if !IsProjectConfigured(inv.layout) {
		fmt.Println(msgNotConfigured)
		return nil
	}
	return WriteEditorConfig(inv.layout, inv.params[ParamUseConan] == On)
}

func newCommand(ctx *orpheus.Context) error {
	if len(ctx.Args) < 2 {
		return orpheus.ValidationError("new", "usage: actions new <group> <longname>")
	}

	base, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	return ScaffoldComponent(base, Component{Group: ctx.Args[0], Longname: ctx.Args[1]})
}
