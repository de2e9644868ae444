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

// minAffixLen is the shortest common prefix or suffix worth turning into a
// wildcard; anything shorter falls back to the most common word.
const minAffixLen = 3

// Proposal suggests replacing a group of exact mapping entries with one
// wildcard entry. Name, category, subcategory and scope are carried from
// the group members, which are guaranteed to agree.
type Proposal struct {
	ProposedPattern string      `json:"proposed_pattern"`
	Covered         []string    `json:"covered"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	Subcategory     string      `json:"subcategory"`
	Scope           model.Scope `json:"scope"`
	ReductionPct    float64     `json:"reduction_pct"`
}

// Consolidator groups similar exact patterns within a single mapping table
// and proposes wildcard replacements. It never merges across scopes; the
// table's scope rides along on every proposal by construction.
type Consolidator struct {
	threshold float64
}

func NewConsolidator(threshold float64) *Consolidator {
	return &Consolidator{threshold: threshold}
}

// Analyze inspects one table's exact entries. Each group of two or more
// mutually similar patterns yields either a Proposal, when all members
// agree on canonical name, category and subcategory, or an
// AmbiguousConsolidationError when they do not. Conflicting groups are
// never merged.
func (c *Consolidator) Analyze(table *model.MappingTable) ([]Proposal, []*AmbiguousConsolidationError) {
	var proposals []Proposal
	var conflicts []*AmbiguousConsolidationError

	for _, group := range c.groupEntries(table.Exact) {
		if len(group) < 2 {
			continue
		}
		if conflict := groupConflict(group); conflict != nil {
			conflicts = append(conflicts, conflict)
			continue
		}
		covered := make([]string, len(group))
		for i, entry := range group {
			covered[i] = entry.Pattern
		}
		proposals = append(proposals, Proposal{
			ProposedPattern: suggestWildcard(covered),
			Covered:         covered,
			Name:            group[0].Name,
			Category:        group[0].Category,
			Subcategory:     group[0].Subcategory,
			Scope:           table.Scope,
			ReductionPct:    1.0 - 1.0/float64(len(group)),
		})
	}
	return proposals, conflicts
}

// groupEntries partitions entries by similarity: each ungrouped entry seeds
// a group, and every later entry within the threshold of the seed joins it.
// Seeding follows table order so results are stable run to run.
func (c *Consolidator) groupEntries(entries []model.MappingEntry) [][]model.MappingEntry {
	var groups [][]model.MappingEntry
	used := make([]bool, len(entries))
	for i := range entries {
		if used[i] {
			continue
		}
		group := []model.MappingEntry{entries[i]}
		used[i] = true
		for j := i + 1; j < len(entries); j++ {
			if used[j] {
				continue
			}
			if Similarity(entries[i].Pattern, entries[j].Pattern) >= c.threshold {
				group = append(group, entries[j])
				used[j] = true
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// groupConflict returns the conflict record for a group whose members
// disagree on canonical name, category or subcategory, or nil when they
// agree. A name disagreement alone is enough; merging it would silently
// fold one merchant's entries into another's identity.
func groupConflict(group []model.MappingEntry) *AmbiguousConsolidationError {
	seen := map[string]bool{}
	var patterns, assignments []string
	for _, entry := range group {
		patterns = append(patterns, entry.Pattern)
		assignment := entry.Name + " (" + entry.Category + "/" + entry.Subcategory + ")"
		if !seen[assignment] {
			seen[assignment] = true
			assignments = append(assignments, assignment)
		}
	}
	if len(assignments) <= 1 {
		return nil
	}
	sort.Strings(assignments)
	return &AmbiguousConsolidationError{Patterns: patterns, Assignments: assignments}
}

// suggestWildcard derives one glob covering all the patterns: the common
// prefix if long enough, else the common suffix, else the most frequent
// word wrapped in stars. Affixes are trimmed back to whole words so a
// suggestion never splits a merchant token. Proposals are suggestions for
// review, not auto-applied merges.
func suggestWildcard(patterns []string) string {
	if prefix := strings.TrimSpace(wholeWordPrefix(patterns)); len(prefix) >= minAffixLen {
		return prefix + "*"
	}
	if suffix := strings.TrimSpace(wholeWordSuffix(patterns)); len(suffix) >= minAffixLen {
		return "*" + suffix
	}
	return "*" + mostCommonWord(patterns) + "*"
}

// wholeWordPrefix cuts the character-level common prefix back to the last
// word boundary unless it already ends on one in every pattern.
func wholeWordPrefix(patterns []string) string {
	prefix := commonPrefix(patterns)
	if prefixEndsOnBoundary(prefix, patterns) {
		return prefix
	}
	if i := strings.LastIndex(prefix, " "); i >= 0 {
		return prefix[:i]
	}
	return ""
}

func prefixEndsOnBoundary(prefix string, patterns []string) bool {
	if prefix == "" || strings.HasSuffix(prefix, " ") {
		return prefix != ""
	}
	for _, p := range patterns {
		if len(p) > len(prefix) && p[len(prefix)] != ' ' {
			return false
		}
	}
	return true
}

// wholeWordSuffix mirrors wholeWordPrefix from the right edge.
func wholeWordSuffix(patterns []string) string {
	suffix := commonSuffix(patterns)
	if suffixStartsOnBoundary(suffix, patterns) {
		return suffix
	}
	if i := strings.Index(suffix, " "); i >= 0 {
		return suffix[i+1:]
	}
	return ""
}

func suffixStartsOnBoundary(suffix string, patterns []string) bool {
	if suffix == "" || strings.HasPrefix(suffix, " ") {
		return suffix != ""
	}
	for _, p := range patterns {
		if len(p) > len(suffix) && p[len(p)-len(suffix)-1] != ' ' {
			return false
		}
	}
	return true
}

func commonPrefix(patterns []string) string {
	prefix := patterns[0]
	for _, p := range patterns[1:] {
		for !strings.HasPrefix(p, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

func commonSuffix(patterns []string) string {
	suffix := patterns[0]
	for _, p := range patterns[1:] {
		for !strings.HasSuffix(p, suffix) {
			suffix = suffix[1:]
			if suffix == "" {
				return ""
			}
		}
	}
	return suffix
}

func mostCommonWord(patterns []string) string {
	counts := map[string]int{}
	for _, p := range patterns {
		for _, word := range strings.Fields(strings.ToLower(p)) {
			if len(word) >= minAffixLen {
				counts[word]++
			}
		}
	}
	best, bestCount := "", 0
	for word, count := range counts {
		if count > bestCount || (count == bestCount && word < best) {
			best, bestCount = word, count
		}
	}
	if best == "" {
		return strings.ToLower(patterns[0])
	}
	return best
}
