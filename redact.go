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
	"regexp"
	"sort"
	"strings"
)

// Structural redaction rules, applied in a fixed order so a token is always
// claimed by its most specific rule first. Bank lines tag payee names and
// company identifiers with INDN: and ID: prefixes; those fields, reference
// numbers, account numbers and contact details are all replaced with stable
// placeholders so descriptions can be shared and matched safely.
var redactionRules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bINDN:\s*[A-Za-z][A-Za-z .,'-]*?(?:\s{2,}|\s+CO\b|\s+ID:|$)`), "[NAME] "},
	{regexp.MustCompile(`(?i)\bCO\s+ID:\s*\S+`), "[ID]"},
	{regexp.MustCompile(`(?i)\bID:\s*\S+`), "[ID]"},
	{regexp.MustCompile(`(?i)\b(?:confirmation|conf|ref|reference)#?\s*[:#]?\s*\d{6,}\b`), "[REF]"},
	{regexp.MustCompile(`(?i)\btransaction#:\s*\d+`), "[REF]"},
	{regexp.MustCompile(`\b\d{10,17}\b`), "[ACCOUNT]"},
	{regexp.MustCompile(`\(?\b\d{3}\)?[-. ]\d{3}[-.]\d{4}\b`), "[PHONE]"},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[EMAIL]"},
}

var whitespaceRe = regexp.MustCompile(`\s{2,}`)

// RedactStructural removes personally identifying fields from a description
// using positional rules only, no merchant knowledge. Safe to run on every
// record during extraction.
func RedactStructural(description string) string {
	out := description
	for _, rule := range redactionRules {
		out = rule.re.ReplaceAllString(out, rule.replacement)
	}
	out = whitespaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// MaskAccountNumber keeps the last four digits of an account number and
// replaces the rest with asterisks. Short tokens are returned unchanged.
func MaskAccountNumber(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) <= 4 {
		return number
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// KeywordRedactor replaces user-supplied sensitive phrases (names,
// employers, locations) with placeholders. Matching is fuzzy so statement
// abbreviations of a known phrase are still caught, gated by a similarity
// threshold.
type KeywordRedactor struct {
	keywords  map[string]string
	threshold float64
}

// NewKeywordRedactor builds a redactor from phrase -> placeholder pairs.
// A placeholder without brackets is wrapped, so "NAME" becomes "[NAME]".
func NewKeywordRedactor(keywords map[string]string, threshold float64) *KeywordRedactor {
	normalized := make(map[string]string, len(keywords))
	for phrase, placeholder := range keywords {
		if !strings.HasPrefix(placeholder, "[") {
			placeholder = "[" + strings.ToUpper(placeholder) + "]"
		}
		normalized[strings.ToLower(strings.TrimSpace(phrase))] = placeholder
	}
	return &KeywordRedactor{keywords: normalized, threshold: threshold}
}

// Redact scans the description for each keyword phrase with a sliding
// word window and replaces the best-matching window when its similarity
// clears the threshold. Phrases apply in sorted order so overlapping
// keywords always resolve the same way.
func (r *KeywordRedactor) Redact(description string) string {
	if len(r.keywords) == 0 {
		return description
	}
	phrases := make([]string, 0, len(r.keywords))
	for phrase := range r.keywords {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)

	words := strings.Fields(description)
	for _, phrase := range phrases {
		placeholder := r.keywords[phrase]
		phraseWords := len(strings.Fields(phrase))
		if phraseWords == 0 || phraseWords > len(words) {
			continue
		}
		bestScore, bestIdx := 0.0, -1
		for i := 0; i+phraseWords <= len(words); i++ {
			window := strings.Join(words[i:i+phraseWords], " ")
			if score := Similarity(window, phrase); score > bestScore {
				bestScore, bestIdx = score, i
			}
		}
		if bestIdx >= 0 && bestScore >= r.threshold {
			replaced := append([]string{}, words[:bestIdx]...)
			replaced = append(replaced, placeholder)
			replaced = append(replaced, words[bestIdx+phraseWords:]...)
			words = replaced
		}
	}
	return strings.Join(words, " ")
}
