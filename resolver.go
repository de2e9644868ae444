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
	"sort"
	"strings"

	"github.com/moneymapper/moneymapper/model"
)

// taxonomyConfidence is the fixed confidence of a taxonomy-name fallback
// match. The tier is deterministic but carries the weakest signal in the
// cascade, so it sits well below the fuzzy threshold range.
const taxonomyConfidence = 0.5

// Resolver maps a transaction description to a canonical merchant and
// category through a fixed cascade: private exact, public exact, private
// wildcard, public wildcard, fuzzy, taxonomy-name fallback. Private data
// always overrides public knowledge and exact always overrides approximate.
// Tables are read-only during a pass, so one Resolver is safe for
// concurrent use.
type Resolver struct {
	private        *model.MappingTable
	public         *model.MappingTable
	fuzzyThreshold float64
}

// NewResolver builds a resolver over one private and one public table.
// Either table may be nil. threshold gates the fuzzy tier.
func NewResolver(private, public *model.MappingTable, threshold float64) *Resolver {
	if private == nil {
		private = &model.MappingTable{Scope: model.ScopePrivate}
	}
	if public == nil {
		public = &model.MappingTable{Scope: model.ScopePublic}
	}
	return &Resolver{private: private, public: public, fuzzyThreshold: threshold}
}

// Resolve runs the cascade and returns the first tier that produces a
// match. A description no tier can place returns the none result with
// zero confidence and empty fields.
func (r *Resolver) Resolve(description string) model.CategorizationResult {
	if strings.TrimSpace(description) == "" {
		return model.NoMatch()
	}
	if entry, ok := matchExact(description, r.private.Exact); ok {
		return deterministic(entry, model.MethodPrivateExact)
	}
	if entry, ok := matchExact(description, r.public.Exact); ok {
		return deterministic(entry, model.MethodPublicExact)
	}
	if entry, ok := matchWildcard(description, r.private.Wildcard); ok {
		return deterministic(entry, model.MethodPrivateWildcard)
	}
	if entry, ok := matchWildcard(description, r.public.Wildcard); ok {
		return deterministic(entry, model.MethodPublicWildcard)
	}
	if result, ok := r.matchFuzzy(description); ok {
		return result
	}
	if result, ok := matchTaxonomyName(description); ok {
		return result
	}
	return model.NoMatch()
}

func deterministic(entry model.MappingEntry, method model.Method) model.CategorizationResult {
	return model.CategorizationResult{
		MerchantName: entry.Name,
		Category:     entry.Category,
		Subcategory:  entry.Subcategory,
		Confidence:   1.0,
		Method:       method,
	}
}

// matchExact finds entries whose pattern appears inside the description,
// case-insensitive. Longer patterns win over shorter ones, then lexical
// order, so resolution is stable regardless of table ordering.
func matchExact(description string, entries []model.MappingEntry) (model.MappingEntry, bool) {
	lower := strings.ToLower(description)
	var best model.MappingEntry
	found := false
	for _, entry := range entries {
		if !strings.Contains(lower, strings.ToLower(entry.Pattern)) {
			continue
		}
		if !found || betterPattern(entry.Pattern, best.Pattern) {
			best = entry
			found = true
		}
	}
	return best, found
}

// matchWildcard applies glob patterns over the full description with the
// same tie-breaking as matchExact.
func matchWildcard(description string, entries []model.MappingEntry) (model.MappingEntry, bool) {
	var best model.MappingEntry
	found := false
	for _, entry := range entries {
		if !MatchGlob(entry.Pattern, description) {
			continue
		}
		if !found || betterPattern(entry.Pattern, best.Pattern) {
			best = entry
			found = true
		}
	}
	return best, found
}

func betterPattern(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

// matchFuzzy scores the description against every exact-pattern key of
// both tables and accepts the best candidate at or above the threshold.
// Ties break private first, then longer pattern, then lexical order. The
// reported confidence is the similarity itself, capped just under 1 so
// only deterministic tiers ever claim full confidence.
func (r *Resolver) matchFuzzy(description string) (model.CategorizationResult, bool) {
	type candidate struct {
		entry   model.MappingEntry
		score   float64
		private bool
	}
	var best candidate
	found := false

	consider := func(entries []model.MappingEntry, private bool) {
		for _, entry := range entries {
			score := DescriptionSimilarity(description, entry.Pattern)
			if score < r.fuzzyThreshold {
				continue
			}
			c := candidate{entry: entry, score: score, private: private}
			if !found || fuzzyBetter(c.score, c.private, c.entry.Pattern, best.score, best.private, best.entry.Pattern) {
				best = c
				found = true
			}
		}
	}
	consider(r.private.Exact, true)
	consider(r.public.Exact, false)

	if !found {
		return model.CategorizationResult{}, false
	}
	confidence := best.score
	if confidence >= 1.0 {
		confidence = 0.99
	}
	return model.CategorizationResult{
		MerchantName: best.entry.Name,
		Category:     best.entry.Category,
		Subcategory:  best.entry.Subcategory,
		Confidence:   confidence,
		Method:       model.MethodFuzzy,
	}, true
}

func fuzzyBetter(score float64, private bool, pattern string, bestScore float64, bestPrivate bool, bestPattern string) bool {
	if score != bestScore {
		return score > bestScore
	}
	if private != bestPrivate {
		return private
	}
	return betterPattern(pattern, bestPattern)
}

// matchTaxonomyName is the last-resort tier: the description is searched
// for the human-readable form of subcategory names, then category names.
// Deterministic but weak, so the confidence is a fixed low value.
func matchTaxonomyName(description string) (model.CategorizationResult, bool) {
	lower := strings.ToLower(description)

	categories := model.Categories()
	var subMatches []model.CategorizationResult
	for _, category := range categories {
		for _, sub := range model.Taxonomy[category] {
			phrase := humanizeTaxonomyName(strings.TrimPrefix(sub, category+"_"))
			if phrase != "" && strings.Contains(lower, phrase) {
				subMatches = append(subMatches, model.CategorizationResult{
					Category:    category,
					Subcategory: sub,
					Confidence:  taxonomyConfidence,
					Method:      model.MethodTaxonomy,
				})
			}
		}
	}
	if len(subMatches) > 0 {
		sort.Slice(subMatches, func(i, j int) bool {
			if len(subMatches[i].Subcategory) != len(subMatches[j].Subcategory) {
				return len(subMatches[i].Subcategory) > len(subMatches[j].Subcategory)
			}
			return subMatches[i].Subcategory < subMatches[j].Subcategory
		})
		return subMatches[0], true
	}

	for _, category := range categories {
		if strings.Contains(lower, humanizeTaxonomyName(category)) {
			return model.CategorizationResult{
				Category:   category,
				Confidence: taxonomyConfidence,
				Method:     model.MethodTaxonomy,
			}, true
		}
	}
	return model.CategorizationResult{}, false
}

func humanizeTaxonomyName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}
