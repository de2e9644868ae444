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
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType labels which statement section a transaction came from.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountCredit   AccountType = "credit"
	AccountUnknown  AccountType = "unknown"
)

// RawTransaction is one extracted statement line, fully resolved and
// redacted. Records are immutable after extraction: enrichment always derives
// a new EnrichedTransaction and never mutates the raw record, so the raw
// sequence stays usable for audit and reprocessing.
//
// Amount follows one sign convention across all account types:
// negative = debit/expense, positive = credit/income.
type RawTransaction struct {
	Date            time.Time       `json:"date"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
	PostingDate     *time.Time      `json:"posting_date,omitempty"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	AccountType     AccountType     `json:"account_type"`
	AccountSuffix   string          `json:"account_suffix,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	SourceBlockID   string          `json:"source_block_id"`
}

func (t *RawTransaction) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

// EnrichedTransaction is a RawTransaction plus its categorization. The raw
// record is embedded by value; building one never touches the original.
type EnrichedTransaction struct {
	RawTransaction
	MerchantName string  `json:"merchant_name,omitempty"`
	Category     string  `json:"category,omitempty"`
	Subcategory  string  `json:"subcategory,omitempty"`
	Confidence   float64 `json:"confidence"`
	Method       Method  `json:"categorization_method"`
}

// Enrich derives an EnrichedTransaction from a raw record and a
// categorization result, optionally swapping in a further-redacted
// description for the stored copy.
func (t RawTransaction) Enrich(result CategorizationResult, redactedDescription string) EnrichedTransaction {
	enriched := EnrichedTransaction{
		RawTransaction: t,
		MerchantName:   result.MerchantName,
		Category:       result.Category,
		Subcategory:    result.Subcategory,
		Confidence:     result.Confidence,
		Method:         result.Method,
	}
	if redactedDescription != "" {
		enriched.Description = redactedDescription
	}
	return enriched
}
