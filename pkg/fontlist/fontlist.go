// Package fontlist derives the set of font names available for previewing.
//
// A raw list pasted by the user (one name per line, or comma separated) is
// parsed into individual names, merged with a fixed built-in set of widely
// installed families, deduplicated, and sorted. The package never touches
// font files; names are opaque strings resolved by whatever renders them.
package fontlist

import (
	"sort"
	"strings"
)

// Builtin is the fixed set of font families every preview session starts
// with. It is merged with user-supplied names and must never be mutated.
var Builtin = []string{
	"Arial",
	"Courier New",
	"Garamond",
	"Georgia",
	"Helvetica",
	"Impact",
	"Palatino",
	"Tahoma",
	"Times New Roman",
	"Trebuchet MS",
	"Verdana",
}

// Parse splits raw input into font names. Names are separated by newlines
// or commas, surrounding whitespace is trimmed, and empty entries are
// dropped. Input order is preserved; Parse never deduplicates.
func Parse(raw string) []string {
	if raw == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})

	var names []string
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Merge returns the union of the built-in set and the given user names,
// deduplicated by exact string equality and sorted ascending. The result is
// a fresh slice; neither input is modified.
func Merge(user []string) []string {
	return MergeInto(Builtin, user)
}

// MergeInto unions base and user, deduplicates, and sorts. It is split out
// from Merge so callers with extra configured names can extend the base set.
func MergeInto(base, user []string) []string {
	seen := make(map[string]bool, len(base)+len(user))
	merged := make([]string, 0, len(base)+len(user))

	for _, list := range [][]string{base, user} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				merged = append(merged, name)
			}
		}
	}

	sort.Strings(merged)
	return merged
}
