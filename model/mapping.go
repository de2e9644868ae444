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

package model

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Scope partitions mapping tables into the shareable public set (national
// chains) and the personal private set (local merchants, employers). Private
// entries always take priority over public ones during resolution.
type Scope string

const (
	ScopePublic  Scope = "public"
	ScopePrivate Scope = "private"
)

// PatternKind tags how a mapping pattern is matched. The kind is decided once
// when the entry is created and is never re-derived from the pattern text at
// match time.
type PatternKind string

const (
	KindExact    PatternKind = "exact"    // case-insensitive substring containment
	KindWildcard PatternKind = "wildcard" // glob over the full description ('*', '?')
)

// DetectPatternKind classifies a pattern string at load time. Patterns
// carrying '*' or '?' are wildcard globs; everything else is an exact keyword.
func DetectPatternKind(pattern string) PatternKind {
	if strings.ContainsAny(pattern, "*?") {
		return KindWildcard
	}
	return KindExact
}

// MappingEntry maps a merchant pattern to a canonical merchant name and a
// category/subcategory pair from the fixed taxonomy.
type MappingEntry struct {
	Pattern     string      `json:"pattern" toml:"pattern"`
	Kind        PatternKind `json:"kind" toml:"kind"`
	Name        string      `json:"name" toml:"name"`
	Category    string      `json:"category" toml:"category"`
	Subcategory string      `json:"subcategory" toml:"subcategory"`
	Scope       Scope       `json:"scope" toml:"scope"`
}

// Validate checks structural requirements and taxonomy subordination.
// A subcategory that does not belong to the declared category is a
// TaxonomyViolation; these are collected per entry so a caller can fix
// many at once.
func (e MappingEntry) Validate() error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Pattern, validation.Required),
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Category, validation.Required),
		validation.Field(&e.Subcategory, validation.Required),
		validation.Field(&e.Scope, validation.Required, validation.In(ScopePublic, ScopePrivate)),
		validation.Field(&e.Kind, validation.Required, validation.In(KindExact, KindWildcard)),
	)
	if err != nil {
		return err
	}
	if !ValidPair(e.Category, e.Subcategory) {
		return &TaxonomyViolation{
			Pattern:     e.Pattern,
			Category:    e.Category,
			Subcategory: e.Subcategory,
		}
	}
	return nil
}

// TaxonomyViolation reports a mapping entry whose subcategory is not
// subordinate to its declared category. Fatal for that entry only.
type TaxonomyViolation struct {
	Pattern     string `json:"pattern"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

func (v *TaxonomyViolation) Error() string {
	return fmt.Sprintf("taxonomy violation: subcategory %q is not subordinate to category %q (pattern %q)",
		v.Subcategory, v.Category, v.Pattern)
}

// MappingTable holds the entries of one scope, partitioned into exact and
// wildcard subsets. Tables are read-only during a resolution pass.
type MappingTable struct {
	Scope    Scope
	Exact    []MappingEntry
	Wildcard []MappingEntry
}

// NewMappingTable builds a table from validated entries of a single scope.
// Entries failing validation are skipped and returned as violations, one per
// entry; duplicate patterns within one kind bucket are rejected the same way.
func NewMappingTable(scope Scope, entries []MappingEntry) (*MappingTable, []error) {
	table := &MappingTable{Scope: scope}
	var violations []error
	seen := map[PatternKind]map[string]bool{
		KindExact:    {},
		KindWildcard: {},
	}

	for _, entry := range entries {
		if entry.Kind == "" {
			entry.Kind = DetectPatternKind(entry.Pattern)
		}
		if entry.Scope == "" {
			entry.Scope = scope
		}
		if entry.Scope != scope {
			violations = append(violations, fmt.Errorf("entry %q declares scope %q but was loaded into the %s table",
				entry.Pattern, entry.Scope, scope))
			continue
		}
		if err := entry.Validate(); err != nil {
			violations = append(violations, err)
			continue
		}
		key := strings.ToLower(entry.Pattern)
		if seen[entry.Kind][key] {
			violations = append(violations, fmt.Errorf("duplicate %s pattern %q in %s table", entry.Kind, entry.Pattern, scope))
			continue
		}
		seen[entry.Kind][key] = true
		switch entry.Kind {
		case KindExact:
			table.Exact = append(table.Exact, entry)
		case KindWildcard:
			table.Wildcard = append(table.Wildcard, entry)
		}
	}
	return table, violations
}

// Len returns the total number of entries in the table.
func (t *MappingTable) Len() int {
	return len(t.Exact) + len(t.Wildcard)
}
