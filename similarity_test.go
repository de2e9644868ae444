/*
Copyright 2025 Moneymapper Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package moneymapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "walmart", "walmart", 1.0},
		{"case insensitive", "WALMART", "walmart", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "walmart", "", 0.0},
		{"classic edit distance", "kitten", "sitting", 1.0 - 3.0/7.0},
		{"substitutions cost one edit each", "walmrat", "walmart", 1.0 - 2.0/7.0},
		{"nothing in common bottoms out at zero", "ab", "cd", 0.0},
		{"store number variant", "tractor supply co", "tractor supply co #204", 1.0 - 5.0/22.0},
		{"short tokens stay risky", "cvs", "avs", 1.0 - 1.0/3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Similarity(tt.b, tt.a), 1e-9, "similarity must be symmetric")
		})
	}
}

func TestDescriptionSimilarity(t *testing.T) {
	// A short pattern must not be punished for trailing noise in a long
	// description; the best word window wins.
	score := DescriptionSimilarity("local coffee shoppe downtown #123", "local coffee shop")
	assert.InDelta(t, 1.0-2.0/19.0, score, 1e-9)

	// An exact window scores 1.0 even with noise on both sides.
	assert.InDelta(t, 1.0, DescriptionSimilarity("pos debit local coffee shop downtown", "local coffee shop"), 1e-9)

	assert.Zero(t, DescriptionSimilarity("anything", ""))
	assert.Zero(t, DescriptionSimilarity("", "pattern"))
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern     string
		description string
		want        bool
	}{
		{"tractor supply*", "tractor supply co #204", true},
		{"tractor supply*", "TRACTOR SUPPLY CO NORTH", true},
		{"tractor supply*", "supply tractor", false},
		{"*coffee*", "pos debit local coffee shop", true},
		{"sh?ll", "shell", true},
		{"sh?ll", "shll", false},
		{"*", "anything at all", true},
		{"", "", true},
		{"", "nonempty", false},
		{"exact words", "exact words", true},
		{"exact words", "exact words plus", false},
		{"a*b*c", "a xx b yy c", true},
		{"a*b*c", "a xx c yy b", false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, MatchGlob(tt.pattern, tt.description), "pattern %q vs %q", tt.pattern, tt.description)
	}
}
