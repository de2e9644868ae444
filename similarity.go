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
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Similarity computes a normalized similarity ratio between two strings
// using Levenshtein distance: 1 - distance/maxLen, case-insensitive.
// Every edit costs one, substitutions included; DefaultOptions prices a
// substitution as a delete plus an insert, which would halve the score of
// substitution-heavy variants. With unit costs the distance never exceeds
// maxLen, so the result stays in [0,1]. Two empty strings are identical
// (1.0).
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptionsWithSub)
	return 1.0 - float64(distance)/float64(maxLen)
}

// DescriptionSimilarity scores how well a short pattern matches anywhere
// inside a longer transaction description. The description is scanned with
// a sliding window of as many words as the pattern has, and the best
// window score wins. A plain ratio would punish a three-word pattern for
// everything else on the line.
func DescriptionSimilarity(description, pattern string) float64 {
	pattern = strings.TrimSpace(pattern)
	words := strings.Fields(description)
	patternWords := len(strings.Fields(pattern))
	if patternWords == 0 || len(words) == 0 {
		return 0
	}
	if patternWords >= len(words) {
		return Similarity(strings.Join(words, " "), pattern)
	}
	best := 0.0
	for i := 0; i+patternWords <= len(words); i++ {
		window := strings.Join(words[i:i+patternWords], " ")
		if score := Similarity(window, pattern); score > best {
			best = score
		}
	}
	return best
}

// MatchGlob reports whether a description matches a glob pattern where '*'
// matches any run of characters and '?' matches exactly one. Matching is
// case-insensitive and spans the full description. path.Match is not used
// because its '*' stops at separators and its syntax errors are unwanted
// here.
func MatchGlob(pattern, description string) bool {
	p := []rune(strings.ToLower(pattern))
	s := []rune(strings.ToLower(description))

	var pi, si int
	starIdx, matchIdx := -1, 0
	for si < len(s) {
		switch {
		case pi < len(p) && (p[pi] == '?' || p[pi] == s[si]):
			pi++
			si++
		case pi < len(p) && p[pi] == '*':
			starIdx = pi
			matchIdx = si
			pi++
		case starIdx != -1:
			pi = starIdx + 1
			matchIdx++
			si = matchIdx
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
