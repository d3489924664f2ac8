package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddTag(t *testing.T) {
	tests := []struct {
		name      string
		tags      []string
		candidate string
		want      []string
		added     bool
	}{
		{"append to empty", nil, "funny", []string{"funny"}, true},
		{"trims whitespace", []string{"a"}, "  trend  ", []string{"a", "trend"}, true},
		{"rejects empty", []string{"a"}, "", []string{"a"}, false},
		{"rejects whitespace only", []string{"a"}, "   ", []string{"a"}, false},
		{"rejects exact duplicate", []string{"trend"}, "trend", []string{"trend"}, false},
		{"rejects duplicate after trim", []string{"trend"}, " trend ", []string{"trend"}, false},
		{"case sensitive", []string{"trend"}, "Trend", []string{"trend", "Trend"}, true},
		{"no pluralization", []string{"trend"}, "trends", []string{"trend", "trends"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, added := AddTag(tt.tags, tt.candidate)
			assert.Equal(t, tt.added, added)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoveTag(t *testing.T) {
	tags := []string{"funny", "trend", "Funny"}

	assert.Equal(t, []string{"trend", "Funny"}, RemoveTag(tags, "funny"))
	assert.Equal(t, []string{"funny", "trend", "Funny"}, RemoveTag(tags, "missing"))
	assert.Equal(t, []string{"funny", "trend", "Funny"}, tags, "input must not be modified")
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" funny", "", "trend", "funny", "Trend", "  "})
	assert.Equal(t, []string{"funny", "trend", "Trend"}, got)
}
