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
	"fmt"
	"sort"
	"strings"

	"github.com/moneymapper/moneymapper/model"
)

// Block is one contiguous slice of statement text attributed to a single
// account type. IDs are deterministic ("checking-01") so re-running a
// document yields identical block identities.
type Block struct {
	ID      string
	Account model.AccountType
	Text    string
	// StartLine is the 1-based line offset of the block within the
	// document, used when reporting extraction issues.
	StartLine int
}

// detectionProfile scores one account type. Indicators add the base weight
// when present; strong indicators carry their own weights. Anchors mark
// where a block of this type begins inside a multi-account document.
type detectionProfile struct {
	account          model.AccountType
	weight           int
	indicators       []string
	strongIndicators map[string]int
	anchors          []string
}

var detectionProfiles = []detectionProfile{
	{
		account:    model.AccountChecking,
		weight:     1,
		indicators: []string{"checking", "debit card", "check card"},
		strongIndicators: map[string]int{
			"adv plus banking":                   5,
			"advantage plus banking":             5,
			"deposits and other additions":       3,
			"withdrawals and other subtractions": 3,
			"atm and debit card subtractions":    3,
			"checks":                             1,
		},
		anchors: []string{"adv plus banking", "advantage plus banking", "your checking account"},
	},
	{
		account:    model.AccountSavings,
		weight:     1,
		indicators: []string{"savings", "interest earned"},
		strongIndicators: map[string]int{
			"advantage savings":       5,
			"annual percentage yield": 3,
			"interest rate":           2,
		},
		anchors: []string{"advantage savings", "your savings account"},
	},
	{
		account:    model.AccountCredit,
		weight:     1,
		indicators: []string{"credit card", "minimum payment", "credit line"},
		strongIndicators: map[string]int{
			"customized cash rewards":       5,
			"payments and other credits":    3,
			"purchases and adjustments":     3,
			"transaction date posting date": 3,
			"interest charged":              2,
		},
		anchors: []string{"customized cash rewards", "credit card account summary"},
	},
}

// DetectAccountType scores the whole text against each profile and returns
// the highest-scoring account type, or AccountUnknown when nothing scores.
func DetectAccountType(text string) model.AccountType {
	lower := strings.ToLower(text)
	best, bestScore := model.AccountUnknown, 0
	for _, profile := range detectionProfiles {
		score := 0
		for _, indicator := range profile.indicators {
			if strings.Contains(lower, indicator) {
				score += profile.weight
			}
		}
		for indicator, weight := range profile.strongIndicators {
			if strings.Contains(lower, indicator) {
				score += weight
			}
		}
		if score > bestScore {
			best, bestScore = profile.account, score
		}
	}
	return best
}

// ClassifyDocument cuts statement text into typed blocks. Anchor phrases
// mark where each account's section begins; text before the first anchor
// belongs to the first block found. A document with no anchors becomes a
// single block whose type is scored over the whole text, falling back to
// "unknown" when nothing matches, which extracts as zero transactions.
func ClassifyDocument(text string) []Block {
	lines := strings.Split(text, "\n")

	type cut struct {
		line    int
		account model.AccountType
	}
	var cuts []cut
	seen := map[model.AccountType]bool{}
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, profile := range detectionProfiles {
			if seen[profile.account] {
				continue
			}
			for _, anchor := range profile.anchors {
				if strings.Contains(lower, anchor) {
					cuts = append(cuts, cut{line: i, account: profile.account})
					seen[profile.account] = true
					break
				}
			}
		}
	}

	if len(cuts) == 0 {
		return []Block{{
			ID:        blockID(DetectAccountType(text), 1),
			Account:   DetectAccountType(text),
			Text:      text,
			StartLine: 1,
		}}
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].line < cuts[j].line })

	counts := map[model.AccountType]int{}
	blocks := make([]Block, 0, len(cuts))
	for i, c := range cuts {
		start := c.line
		if i == 0 {
			start = 0
		}
		end := len(lines)
		if i+1 < len(cuts) {
			end = cuts[i+1].line
		}
		counts[c.account]++
		blocks = append(blocks, Block{
			ID:        blockID(c.account, counts[c.account]),
			Account:   c.account,
			Text:      strings.Join(lines[start:end], "\n"),
			StartLine: start + 1,
		})
	}
	return blocks
}

func blockID(account model.AccountType, n int) string {
	return fmt.Sprintf("%s-%02d", account, n)
}
