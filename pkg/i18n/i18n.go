// Package i18n resolves multilingual record fields (menu item names,
// descriptions, ingredient lists) for a requested language.
package i18n

import "sort"

// Placeholder is returned when a map has no usable value at all.
const Placeholder = "Unnamed item"

// Resolve picks the display string for lang out of m:
//
//  1. the requested language, if present and non-empty,
//  2. else English,
//  3. else the first non-empty value (English first, then remaining
//     keys in sorted order, so the choice is deterministic),
//  4. else a generic placeholder.
func Resolve(m map[string]string, lang string) string {
	if v := m[lang]; v != "" {
		return v
	}
	if v := m["en"]; v != "" {
		return v
	}
	for _, k := range sortedKeys(m) {
		if v := m[k]; v != "" {
			return v
		}
	}
	return Placeholder
}

// ResolveList is Resolve for per-language string lists (ingredients).
// With no usable value it returns nil rather than a placeholder.
func ResolveList(m map[string][]string, lang string) []string {
	if v := m[lang]; len(v) > 0 {
		return v
	}
	if v := m["en"]; len(v) > 0 {
		return v
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != "en" && k != lang {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := m[k]; len(v) > 0 {
			return v
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != "en" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
