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
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/moneymapper/moneymapper/model"
)

// Extractor applies the pattern library to classified blocks and produces
// raw transaction records. It holds no per-document state; one Extractor is
// safe for concurrent use across documents.
type Extractor struct {
	library *Library
}

// ExtractionResult is the outcome of one document pass. Per-record failures
// are collected in Issues and never abort the pass; blocks the classifier
// could not type are counted, not raised.
type ExtractionResult struct {
	Transactions  []model.RawTransaction
	Issues        []ExtractionIssue
	UnknownBlocks int
}

func NewExtractor(library *Library) *Extractor {
	if library == nil {
		library = DefaultLibrary()
	}
	return &Extractor{library: library}
}

// ExtractDocument classifies the text into blocks and extracts each one
// against the statement period.
func (e *Extractor) ExtractDocument(text string, period Period) ExtractionResult {
	var result ExtractionResult
	for _, block := range ClassifyDocument(text) {
		if block.Account == model.AccountUnknown {
			result.UnknownBlocks++
			logrus.WithField("block", block.ID).Debug("no account anchors found, skipping block")
			continue
		}
		txns, issues := e.ExtractBlock(block, period)
		result.Transactions = append(result.Transactions, txns...)
		result.Issues = append(result.Issues, issues...)
	}
	return result
}

// ExtractBlock runs the ordered templates for the block's account type over
// its lines. A line is claimed by at most one template; continuation lines
// with no leading date are joined to the preceding record's description.
func (e *Extractor) ExtractBlock(block Block, period Period) ([]model.RawTransaction, []ExtractionIssue) {
	switch block.Account {
	case model.AccountCredit:
		return e.extractLines(block, block.Text, block.StartLine, e.library.Credit, 0, period)
	case model.AccountChecking, model.AccountSavings:
		return e.extractSections(block, period)
	default:
		return nil, nil
	}
}

// extractSections locates each anchored section of a deposit-account block
// and extracts its lines with the section's template and sign.
func (e *Extractor) extractSections(block Block, period Period) ([]model.RawTransaction, []ExtractionIssue) {
	var txns []model.RawTransaction
	var issues []ExtractionIssue

	lines := strings.Split(block.Text, "\n")
	for _, rule := range e.library.Sections {
		start := -1
		for i, line := range lines {
			if rule.Start.MatchString(line) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			continue
		}
		end := len(lines)
		for i := start; i < len(lines); i++ {
			if rule.End.MatchString(lines[i]) {
				end = i
				break
			}
		}
		section := strings.Join(lines[start:end], "\n")
		sectionTxns, sectionIssues := e.extractLines(block, section, block.StartLine+start, []*Template{rule.Template}, rule.Template.Sign, period)
		txns = append(txns, sectionTxns...)
		issues = append(issues, sectionIssues...)
	}
	return txns, issues
}

var leadingDateRe = regexp.MustCompile(`^\s*\d{1,2}/\d{1,2}`)

// pendingRecord accumulates one transaction across its wrapped lines until
// the next dated line finalizes it.
type pendingRecord struct {
	groups   map[string]string
	sign     int
	dualDate bool
	line     int
}

// extractLines is the shared line loop. sign overrides the template sign
// when nonzero, so section rules control the sign of their records.
func (e *Extractor) extractLines(block Block, text string, firstLine int, templates []*Template, sign int, period Period) ([]model.RawTransaction, []ExtractionIssue) {
	var txns []model.RawTransaction
	var issues []ExtractionIssue
	var pending *pendingRecord

	finalize := func() {
		if pending == nil {
			return
		}
		txn, err := buildRecord(block, pending, period)
		if err != nil {
			issues = append(issues, ExtractionIssue{
				BlockID: block.ID,
				Line:    pending.line,
				Text:    pending.groups[groupDesc],
				Err:     err,
			})
		} else {
			txns = append(txns, txn)
		}
		pending = nil
	}

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		claimed := false
		for _, tmpl := range templates {
			groups, ok := tmpl.matchLine(trimmed)
			if !ok {
				continue
			}
			finalize()
			effectiveSign := tmpl.Sign
			if sign != 0 {
				effectiveSign = sign
			}
			pending = &pendingRecord{
				groups:   groups,
				sign:     effectiveSign,
				dualDate: tmpl.DualDate,
				line:     firstLine + i,
			}
			claimed = true
			break
		}
		if claimed {
			continue
		}
		if pending != nil && !leadingDateRe.MatchString(trimmed) {
			pending.groups[groupDesc] += " " + trimmed
		}
	}
	finalize()
	return txns, issues
}

// buildRecord turns captured groups into an immutable RawTransaction:
// dates resolved against the statement period, amount signed by the
// claiming template, suffix and reference moved out of the description,
// then structural redaction and whitespace normalization.
func buildRecord(block Block, p *pendingRecord, period Period) (model.RawTransaction, error) {
	var txn model.RawTransaction
	txn.AccountType = block.Account
	txn.SourceBlockID = block.ID
	txn.ReferenceNumber = p.groups[groupRef]
	txn.AccountSuffix = p.groups[groupSuffix]

	if p.dualDate {
		txnDate, err := ResolveDate(p.groups[groupTxnDate], period)
		if err != nil {
			return txn, err
		}
		postDate, err := ResolveDate(p.groups[groupPostDate], period)
		if err != nil {
			return txn, err
		}
		txn.Date = txnDate
		txn.TransactionDate = &txnDate
		txn.PostingDate = &postDate
	} else {
		date, err := ResolveDate(p.groups[groupDate], period)
		if err != nil {
			return txn, err
		}
		txn.Date = date
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(p.groups[groupAmount], ",", ""))
	if err != nil {
		return txn, err
	}
	txn.Amount = amount.Abs()
	if p.sign < 0 {
		txn.Amount = txn.Amount.Neg()
	}

	txn.Description = RedactStructural(p.groups[groupDesc])
	return txn, nil
}
