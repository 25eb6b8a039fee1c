package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

// CMakeCache line grammar, after whitespace removal:
//
//	// CXX compiler
//	CMAKE_CXX_COMPILER:FILEPATH=/usr/bin/c++
var (
	cacheWhitespace = regexp.MustCompile(`\s`)
	cacheComment    = regexp.MustCompile(`^(#|//)`)
	cacheEntry      = regexp.MustCompile(`^(\w+)(-ADVANCED)?:(\w+)=(.*)$`)
)

// CMakeCache is the parsed key/value view of a CMakeCache.txt file.
// Comment lines carry no semantic value and are dropped; -ADVANCED
// variants are stored under a _ADVANCED key suffix.
type CMakeCache struct {
	entries map[string]string
}

// ReadCMakeCache parses the cache file at path. A missing file is a hard
// error: it means the external prerequisite (a configured project) truly
// is absent.
func ReadCMakeCache(path string) (*CMakeCache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading CMake cache: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parseCMakeCache(f)
}

func parseCMakeCache(r io.Reader) (*CMakeCache, error) {
	cache := &CMakeCache{entries: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := cacheWhitespace.ReplaceAllString(scanner.Text(), "")
		if line == "" || cacheComment.MatchString(line) {
			continue
		}

		m := cacheEntry.FindStringSubmatch(line)
		if m == nil {
			// Not an entry line; no semantic value.
			continue
		}

		key := m[1]
		if m[2] != "" {
			key += "_ADVANCED"
		}
		cache.entries[key] = m[4]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading CMake cache: %w", err)
	}

	return cache, nil
}

// Get returns the value stored under key.
func (c *CMakeCache) Get(key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

// Len returns the number of parsed entries.
func (c *CMakeCache) Len() int {
	return len(c.entries)
}
