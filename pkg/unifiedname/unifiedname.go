// Package unifiedname derives the deduplication key used to recognize the
// same real-world person (or organisation) across catalogue entries.
package unifiedname

import (
	"strings"
)

// SinglePrefix marks keys derived from a single or organisation name.
const SinglePrefix = "single_"

var whitespace = strings.Fields

// ForSingleName derives the unified id for an organisation or a person known
// by a single name.
func ForSingleName(name string) string {
	return SinglePrefix + collapse(name)
}

// ForPersonName derives the unified id from family and given names. Only the
// first given name participates, so "Johann Wolfgang" and "Johann" collide on
// purpose.
func ForPersonName(familyName, givenNames string) string {
	family := collapse(familyName)
	given := ""
	if parts := whitespace(givenNames); len(parts) > 0 {
		given = strings.ToLower(parts[0])
	}
	return family + "_" + given
}

// Derive picks the right derivation for a set of name parts. A non-empty
// single name wins over family/given parts.
func Derive(familyName, givenNames, singleName string) string {
	if strings.TrimSpace(singleName) != "" {
		return ForSingleName(singleName)
	}
	return ForPersonName(familyName, givenNames)
}

// collapse lower-cases the name and joins its whitespace-separated parts with
// underscores.
func collapse(name string) string {
	return strings.Join(whitespace(strings.ToLower(name)), "_")
}
