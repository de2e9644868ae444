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

	"github.com/moneymapper/moneymapper/model"
)

// Template is one line-level extraction pattern. Templates for an account
// type are tried in declaration order, most field-rich first, and the first
// template that matches a line claims it. Exactly one template per account
// type may set DualDate; it captures both the transaction date and the
// posting date from credit statement lines and must precede every
// single-date template so a looser pattern never re-extracts the same line.
type Template struct {
	Name     string
	Account  model.AccountType
	DualDate bool
	// Sign multiplies the captured amount. Deposit and payment templates
	// carry +1, withdrawal and purchase templates -1. For templates used
	// inside anchored sections the section's sign wins.
	Sign int
	Line *regexp.Regexp
}

// Capture group names shared by all templates.
const (
	groupDate     = "date"
	groupTxnDate  = "txndate"
	groupPostDate = "postdate"
	groupDesc     = "desc"
	groupRef      = "ref"
	groupSuffix   = "suffix"
	groupAmount   = "amount"
)

const (
	datePart   = `\d{1,2}/\d{1,2}(?:/\d{2,4})?`
	amountPart = `-?\d{1,3}(?:,\d{3})*\.\d{2}`
)

// creditDualDateTemplate is the only dual-date template in the library.
// Credit purchase lines carry transaction date, posting date, description,
// a reference number, the card's last four digits and the amount.
var creditDualDateTemplate = &Template{
	Name:     "credit-purchase",
	Account:  model.AccountCredit,
	DualDate: true,
	Sign:     -1,
	Line: regexp.MustCompile(
		`^(?P<txndate>` + datePart + `)\s+(?P<postdate>` + datePart + `)\s+` +
			`(?P<desc>.+?)\s+(?P<ref>\d{4})\s+(?P<suffix>\d{4})\s+(?P<amount>` + amountPart + `)$`),
}

// creditPaymentTemplate matches single-date payment and credit lines on
// credit statements. It runs after the dual-date template so a purchase
// line is never claimed twice.
var creditPaymentTemplate = &Template{
	Name:    "credit-payment",
	Account: model.AccountCredit,
	Sign:    1,
	Line: regexp.MustCompile(
		`^(?P<date>` + datePart + `)\s+(?P<desc>.+?)\s+(?P<amount>` + amountPart + `)$`),
}

// depositTemplate matches deposit section lines on checking and savings
// statements. Sign is supplied by the section.
var depositTemplate = &Template{
	Name: "deposit-line",
	Sign: 1,
	Line: regexp.MustCompile(
		`^(?P<date>` + datePart + `)\s+(?P<desc>.+?)\s+(?P<amount>` + amountPart + `)$`),
}

// withdrawalTemplate mirrors depositTemplate for withdrawal sections.
var withdrawalTemplate = &Template{
	Name: "withdrawal-line",
	Sign: -1,
	Line: regexp.MustCompile(
		`^(?P<date>` + datePart + `)\s+(?P<desc>.+?)\s+(?P<amount>` + amountPart + `)$`),
}

// SectionRule anchors one transaction section inside a checking or savings
// block and fixes the sign of every record extracted from it.
type SectionRule struct {
	Name     string
	Start    *regexp.Regexp
	End      *regexp.Regexp
	Template *Template
}

// Library is the ordered pattern set for every account type.
type Library struct {
	// Credit templates apply to the whole credit block, in order.
	Credit []*Template
	// Sections partition checking and savings blocks before line
	// templates run.
	Sections []SectionRule
}

// DefaultLibrary returns the built-in pattern library for Bank of America
// statement layouts.
func DefaultLibrary() *Library {
	sectionEnd := regexp.MustCompile(`(?i)^\s*(total|subtotal|ending balance|service fees)`)
	return &Library{
		Credit: []*Template{creditDualDateTemplate, creditPaymentTemplate},
		Sections: []SectionRule{
			{
				Name:     "deposits",
				Start:    regexp.MustCompile(`(?i)^\s*deposits and other additions`),
				End:      sectionEnd,
				Template: depositTemplate,
			},
			{
				Name:     "withdrawals",
				Start:    regexp.MustCompile(`(?i)^\s*(withdrawals and other subtractions|atm and debit card subtractions)`),
				End:      sectionEnd,
				Template: withdrawalTemplate,
			},
		},
	}
}

// matchLine applies the template to one line and returns the named captures.
func (t *Template) matchLine(line string) (map[string]string, bool) {
	m := t.Line.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	groups := make(map[string]string)
	for i, name := range t.Line.SubexpNames() {
		if name != "" && m[i] != "" {
			groups[name] = m[i]
		}
	}
	return groups, true
}
