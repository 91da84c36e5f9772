package service

import "strings"

// The form check and the table decoration both answer "is this key shared",
// so they run through the same helpers against the same snapshot instead of
// each recomputing their own notion of uniqueness.

// duplicateKeyCounts counts occurrences of each normalized key.
func duplicateKeyCounts[T any](items []T, keyOf func(T) string) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[keyOf(item)]++
	}
	return counts
}

// hasDuplicateKey reports whether key matches any record other than the one
// at excludeIndex. Pass excludeIndex -1 when nothing is being edited.
func hasDuplicateKey[T any](items []T, keyOf func(T) string, key string, excludeIndex int) bool {
	for i, item := range items {
		if i == excludeIndex {
			continue
		}
		if keyOf(item) == key {
			return true
		}
	}
	return false
}

// userPhoneKey is the uniqueness key for users: exact phone match.
func userPhoneKey(phone string) string { return phone }

// employeeCodeKey is the uniqueness key for employees: code compared
// case-insensitively, ignoring surrounding whitespace.
func employeeCodeKey(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
