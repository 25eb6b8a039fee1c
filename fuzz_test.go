//go:build go1.18
// +build go1.18

package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// ===== FUZZ TESTS FOR INPUT-PROCESSING FUNCTIONS =====

// FuzzOnOff tests boolean normalization with arbitrary inputs. Whatever
// comes in, exactly one of the two canonical tokens must come out.
func FuzzOnOff(f *testing.F) {
	f.Add("true")
	f.Add("TRUE")
	f.Add("On")
	f.Add("ON")
	f.Add("")
	f.Add("no")
	f.Add("random")
	f.Add("0")
	f.Add(strings.Repeat("on", 100))

	f.Fuzz(func(t *testing.T, text string) {
		if !utf8.ValidString(text) {
			t.Skip("Invalid UTF-8 input")
		}

		result := OnOff(text)
		if result != On && result != Off {
			t.Errorf("OnOff(%q) = %q, want one of %q/%q", text, result, On, Off)
		}
	})
}

// FuzzParseTargetLines tests raw target-line reduction with arbitrary
// command output. It must never panic and never invent identifiers.
func FuzzParseTargetLines(f *testing.F) {
	f.Add("... demo_app\n... install\n")
	f.Add("header\n... a\n")
	f.Add("...\n")
	f.Add("")
	f.Add("... \n")
	f.Add("....\n")
	f.Add("... demo_app\r\n")
	f.Add(strings.Repeat("... x\n", 50))

	f.Fuzz(func(t *testing.T, out string) {
		if !utf8.ValidString(out) {
			t.Skip("Invalid UTF-8 input")
		}
		if len(out) > 100000 {
			t.Skip("Input too long")
		}

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseTargetLines panicked with input %q: %v", out, r)
			}
		}()

		ids := ParseTargetLines(out)

		lines := strings.Count(out, "\n") + 1
		if len(ids) > lines {
			t.Errorf("ParseTargetLines produced %d ids from %d lines", len(ids), lines)
		}
		for _, id := range ids {
			if !strings.Contains(out, id) {
				t.Errorf("ParseTargetLines invented identifier %q", id)
			}
		}
	})
}

// FuzzClassify tests the classifier with arbitrary identifiers. No input
// may panic it, and it never assigns more identifiers than it was given.
func FuzzClassify(f *testing.F) {
	f.Add("demo_app", "coverage")
	f.Add("", "")
	f.Add("demo_app_test_run", "demo_app")
	f.Add("???unmatched", "install")
	f.Add("_", "docs")
	f.Add(strings.Repeat("a", 500), "demo_"+strings.Repeat("b", 500))

	f.Fuzz(func(t *testing.T, id1 string, id2 string) {
		if !utf8.ValidString(id1) || !utf8.ValidString(id2) {
			t.Skip("Invalid UTF-8 input")
		}

		cat, err := NewTargetCatalog("demo")
		if err != nil {
			t.Fatalf("NewTargetCatalog() unexpected error: %v", err)
		}

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Classify panicked with ids %q, %q: %v", id1, id2, r)
			}
		}()

		raw := []string{id1, id2}
		cat.Classify(raw)

		assigned := 0
		for _, tt := range cat.Types {
			assigned += len(tt.IDs)
		}
		if assigned > len(raw) {
			t.Errorf("Classify assigned %d ids from %d inputs", assigned, len(raw))
		}
	})
}
