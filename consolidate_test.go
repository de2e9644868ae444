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
	"github.com/stretchr/testify/require"

	"github.com/moneymapper/moneymapper/model"
)

func TestConsolidateTractorSupplyGroup(t *testing.T) {
	table := buildTable(t, model.ScopePublic, []model.MappingEntry{
		{Pattern: "tractor supply co", Name: "Tractor Supply", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
		{Pattern: "tractor supply north", Name: "Tractor Supply", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
		{Pattern: "tractor supply #204", Name: "Tractor Supply", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
	})

	proposals, conflicts := NewConsolidator(0.60).Analyze(table)
	require.Empty(t, conflicts)
	require.Len(t, proposals, 1)

	p := proposals[0]
	assert.Equal(t, "tractor supply*", p.ProposedPattern)
	assert.Len(t, p.Covered, 3)
	assert.Equal(t, model.ScopePublic, p.Scope)
	assert.Equal(t, "HOME_IMPROVEMENT", p.Category)
	assert.Equal(t, "HOME_IMPROVEMENT_HARDWARE", p.Subcategory)
	assert.InDelta(t, 1.0-1.0/3.0, p.ReductionPct, 1e-9)

	// The proposal must cover every retired pattern.
	for _, covered := range p.Covered {
		assert.Truef(t, MatchGlob(p.ProposedPattern, covered), "%q should match %q", p.ProposedPattern, covered)
	}
}

func TestConsolidateConflictNeverMerges(t *testing.T) {
	table := buildTable(t, model.ScopePublic, []model.MappingEntry{
		{Pattern: "corner market", Name: "Corner Market", Category: "FOOD_AND_DRINK", Subcategory: "FOOD_AND_DRINK_GROCERIES"},
		{Pattern: "corner market cafe", Name: "Corner Market Cafe", Category: "FOOD_AND_DRINK", Subcategory: "FOOD_AND_DRINK_RESTAURANT"},
	})

	proposals, conflicts := NewConsolidator(0.60).Analyze(table)
	assert.Empty(t, proposals)
	require.Len(t, conflicts, 1)

	conflict := conflicts[0]
	assert.ElementsMatch(t, []string{"corner market", "corner market cafe"}, conflict.Patterns)
	assert.Len(t, conflict.Assignments, 2, "both differing assignments are reported")
	assert.Contains(t, conflict.Error(), "FOOD_AND_DRINK_GROCERIES")
	assert.Contains(t, conflict.Error(), "FOOD_AND_DRINK_RESTAURANT")
}

func TestConsolidateNameDisagreementNeverMerges(t *testing.T) {
	// Same category pair, different merchants. Folding both under one
	// canonical name would erase the second merchant's identity.
	table := buildTable(t, model.ScopePublic, []model.MappingEntry{
		{Pattern: "tractor supply co", Name: "Tractor Supply", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
		{Pattern: "tractor supply town", Name: "Supply Town Hardware", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
	})

	proposals, conflicts := NewConsolidator(0.60).Analyze(table)
	assert.Empty(t, proposals)
	require.Len(t, conflicts, 1)

	conflict := conflicts[0]
	assert.ElementsMatch(t, []string{"tractor supply co", "tractor supply town"}, conflict.Patterns)
	assert.Contains(t, conflict.Error(), "Tractor Supply")
	assert.Contains(t, conflict.Error(), "Supply Town Hardware")
}

func TestConsolidateDissimilarEntriesUntouched(t *testing.T) {
	table := buildTable(t, model.ScopePublic, []model.MappingEntry{
		{Pattern: "walmart.com", Name: "Walmart", Category: "GENERAL_MERCHANDISE", Subcategory: "GENERAL_MERCHANDISE_SUPERSTORES"},
		{Pattern: "local coffee shop", Name: "Local Coffee Shop", Category: "FOOD_AND_DRINK", Subcategory: "FOOD_AND_DRINK_COFFEE"},
	})

	proposals, conflicts := NewConsolidator(0.60).Analyze(table)
	assert.Empty(t, proposals)
	assert.Empty(t, conflicts)
}

func TestConsolidateWildcardEntriesIgnored(t *testing.T) {
	// Only exact entries are candidates; existing wildcards stay as-is.
	table := buildTable(t, model.ScopePublic, []model.MappingEntry{
		{Pattern: "tractor supply*", Name: "Tractor Supply", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
		{Pattern: "tractor supply?", Name: "Tractor Supply", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
	})

	proposals, conflicts := NewConsolidator(0.60).Analyze(table)
	assert.Empty(t, proposals)
	assert.Empty(t, conflicts)
}

func TestSuggestWildcard(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     string
	}{
		{"common prefix", []string{"tractor supply co", "tractor supply north"}, "tractor supply*"},
		{"common suffix", []string{"north hardware", "south hardware"}, "*hardware"},
		{"partial word prefix is discarded", []string{"north hardware", "northern hardware"}, "*hardware"},
		{"common word only", []string{"alpha store one", "two store beta"}, "*store*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestWildcard(tt.patterns))
		})
	}
}
