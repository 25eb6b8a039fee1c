package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

// C++ source extensions used by the scaffolding.
const (
	headerExt = ".hpp"
	sourceExt = ".cpp"
)

// Component describes one scaffolded source/test unit: a group (the
// library subdirectory and namespace) and a snake_case long name.
type Component struct {
	Group    string
	Longname string
}

// ClearText turns merge_sort into "Merge sort".
func (c Component) ClearText() string {
	text := strings.ReplaceAll(c.Longname, "_", " ")
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}

// HeaderFile returns src/include/<group>/<longname>.hpp.
func (c Component) HeaderFile() string {
	return filepath.Join("src", "include", c.Group, c.Longname+headerExt)
}

// SourceFile returns src/<group>_<longname>.cpp.
func (c Component) SourceFile() string {
	return filepath.Join("src", c.Group+"_"+c.Longname+sourceExt)
}

// TestFile returns test/testcases/<group>/test_<longname>.cpp.
func (c Component) TestFile() string {
	return filepath.Join("test", "testcases", c.Group, "test_"+c.Longname+sourceExt)
}

// IncludeHeader returns the include form, <group>/<longname>.hpp.
func (c Component) IncludeHeader() string {
	return c.Group + "/" + c.Longname + headerExt
}

// Guard returns the header include guard, GROUP_LONGNAME_HPP.
func (c Component) Guard() string {
	return strings.ToUpper(c.Group + "_" + c.Longname + "_HPP")
}

// Namespace returns the C++ namespace, which is the group.
func (c Component) Namespace() string {
	return c.Group
}

// scaffoldVars is the render context shared by the three stub templates.
type scaffoldVars struct {
	Component
	Date string
	Year int
}

const headerStub = `/**
 * @file {{.HeaderFile}}
 * @brief {{.ClearText}}.
 * @date {{.Date}}
 */

#ifndef {{.Guard}}
#define {{.Guard}}

namespace {{.Namespace}} {

} // namespace {{.Namespace}}

#endif // {{.Guard}}
`

const sourceStub = `/**
 * @file {{.SourceFile}}
 * @brief {{.ClearText}}.
 * @date {{.Date}}
 */

#include <{{.IncludeHeader}}>

namespace {{.Namespace}} {

} // namespace {{.Namespace}}
`

const testStub = `/**
 * @file {{.TestFile}}
 * @brief Tests for {{.ClearText}}.
 * @date {{.Date}}
 */

#include <gtest/gtest.h>

#include <{{.IncludeHeader}}>

TEST({{.Namespace}}_{{.Longname}}, is_implemented)
{
    GTEST_SKIP() << "{{.ClearText}} has no tests yet";
}
`

var scaffoldTemplates = template.Must(template.New("header").Parse(headerStub))

func init() {
	template.Must(scaffoldTemplates.New("source").Parse(sourceStub))
	template.Must(scaffoldTemplates.New("test").Parse(testStub))
}

// ScaffoldComponent renders the header, source and test stubs for the
// component under baseDir. Existing files are never overwritten. After
// writing it prints the CMakeLists edits the user still has to make.
func ScaffoldComponent(baseDir string, c Component) error {
	now := time.Now()
	vars := scaffoldVars{Component: c, Date: now.Format("2006-01-02"), Year: now.Year()}

	stubs := []struct {
		template string
		relPath  string
	}{
		{"header", c.HeaderFile()},
		{"source", c.SourceFile()},
		{"test", c.TestFile()},
	}

	for _, stub := range stubs {
		var rendered strings.Builder
		if err := scaffoldTemplates.ExecuteTemplate(&rendered, stub.template, vars); err != nil {
			return fmt.Errorf("rendering %s stub: %w", stub.template, err)
		}
		if err := writeFileNoClobber(filepath.Join(baseDir, stub.relPath), rendered.String()); err != nil {
			return err
		}
	}

	printCMakeEdits(c)
	return nil
}

// writeFileNoClobber creates the parent directory as needed and writes the
// file only if it does not exist yet.
func writeFileNoClobber(path, content string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Printf("Making path: %s\n", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("File already exists: %s\n", path)
		return nil
	}

	fmt.Printf("Making file: %s\n", path)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// printCMakeEdits lists the manual CMakeLists.txt additions for the new
// component; the build files are not rewritten automatically.
func printCMakeEdits(c Component) {
	fmt.Println("\nManual edit required: src/CMakeLists.txt ->")
	fmt.Println("LIB_SOURCES: " + filepath.Base(c.SourceFile()))
	fmt.Println("LIB_HEADERS: " + "include/" + c.IncludeHeader())

	fmt.Println("\nManual edit required: test/CMakeLists.txt ->")
	fmt.Println("TEST_FILES: ${TEST_DIR}/" + c.Group + "/" + filepath.Base(c.TestFile()))
}
