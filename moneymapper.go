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
	"context"
	"strings"

	"github.com/moneymapper/moneymapper/config"
	"github.com/moneymapper/moneymapper/datasources"
	"github.com/moneymapper/moneymapper/model"
)

// Moneymapper wires the extraction and categorization engine to its
// configuration and mapping tables. The engine core stays pure; this is
// the one place mapping files are read.
type Moneymapper struct {
	extractor    *Extractor
	enricher     *Enricher
	consolidator *Consolidator
	private      *model.MappingTable
	public       *model.MappingTable
	loadIssues   []error
}

// NewMoneymapper initializes the engine from the loaded configuration:
// mapping tables from their configured paths, thresholds into the
// resolver, redactor and consolidator, and the default pattern library.
//
// Returns:
// - *Moneymapper: A pointer to the newly created Moneymapper instance.
// - error: An error if configuration or mapping files cannot be read.
func NewMoneymapper() (*Moneymapper, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}

	private, privateIssues, err := datasources.LoadMappingTable(configuration.Mappings.PrivatePath, model.ScopePrivate)
	if err != nil {
		return nil, err
	}
	public, publicIssues, err := datasources.LoadMappingTable(configuration.Mappings.PublicPath, model.ScopePublic)
	if err != nil {
		return nil, err
	}

	resolver := NewResolver(private, public, *configuration.Thresholds.Enrichment)
	var redactor *KeywordRedactor
	if len(configuration.Redaction.Keywords) > 0 {
		redactor = NewKeywordRedactor(configuration.Redaction.Keywords, *configuration.Thresholds.Redaction)
	}

	return &Moneymapper{
		extractor:    NewExtractor(DefaultLibrary()),
		enricher:     NewEnricher(resolver, redactor, configuration.Workers),
		consolidator: NewConsolidator(*configuration.Thresholds.Consolidation),
		private:      private,
		public:       public,
		loadIssues:   append(privateIssues, publicIssues...),
	}, nil
}

// MappingIssues returns the per-entry validation failures collected while
// loading the mapping tables.
func (m *Moneymapper) MappingIssues() []error {
	return m.loadIssues
}

// MappingOverlaps returns the patterns defined in both tables. Overlaps
// are legal, the private entry shadows the public one, but they usually
// mean a stale public entry worth cleaning up.
func (m *Moneymapper) MappingOverlaps() []string {
	privatePatterns := make(map[string]bool)
	for _, entry := range append(m.private.Exact, m.private.Wildcard...) {
		privatePatterns[strings.ToLower(entry.Pattern)] = true
	}
	var overlaps []string
	for _, entry := range append(m.public.Exact, m.public.Wildcard...) {
		if privatePatterns[strings.ToLower(entry.Pattern)] {
			overlaps = append(overlaps, entry.Pattern)
		}
	}
	return overlaps
}

// ExtractDocument runs classification and extraction over one statement's
// text.
func (m *Moneymapper) ExtractDocument(text string, period Period) ExtractionResult {
	return m.extractor.ExtractDocument(text, period)
}

// EnrichTransactions categorizes a batch of raw records, preserving input
// order in the output.
func (m *Moneymapper) EnrichTransactions(ctx context.Context, txns []model.RawTransaction) []model.EnrichedTransaction {
	return m.enricher.EnrichAll(ctx, txns)
}

// AnalyzeConsolidation runs the analyzer over each table separately.
// Proposals never span scopes.
func (m *Moneymapper) AnalyzeConsolidation() ([]Proposal, []*AmbiguousConsolidationError) {
	proposals, conflicts := m.consolidator.Analyze(m.private)
	publicProposals, publicConflicts := m.consolidator.Analyze(m.public)
	return append(proposals, publicProposals...), append(conflicts, publicConflicts...)
}
