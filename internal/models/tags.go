package models

import (
	"strings"

	"github.com/samber/lo"
)

// AddTag appends candidate to tags when it is non-empty after trimming and
// not already present. Comparison is case-sensitive and no other
// normalization is applied. The returned bool reports whether a tag was added.
func AddTag(tags []string, candidate string) ([]string, bool) {
	tag := strings.TrimSpace(candidate)
	if tag == "" || HasTag(tags, tag) {
		return tags, false
	}
	return append(tags, tag), true
}

// RemoveTag returns tags without the exact match of tag.
func RemoveTag(tags []string, tag string) []string {
	return lo.Without(tags, tag)
}

// HasTag reports whether tags contains tag exactly.
func HasTag(tags []string, tag string) bool {
	return lo.Contains(tags, tag)
}

// NormalizeTags runs every candidate through AddTag, dropping blanks and
// duplicates while keeping first-seen order.
func NormalizeTags(candidates []string) []string {
	tags := make([]string, 0, len(candidates))
	for _, c := range candidates {
		tags, _ = AddTag(tags, c)
	}
	return tags
}
