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
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneymapper/moneymapper/model"
)

func statementPeriod() Period {
	return Period{
		Start: date(2024, time.December, 15),
		End:   date(2025, time.January, 14),
	}
}

func amountsByDescription(txns []model.RawTransaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(txns))
	for _, txn := range txns {
		out[txn.Description] = txn.Amount
	}
	return out
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "expected amount %s, got %s", want, got)
}

func TestExtractCheckingStatement(t *testing.T) {
	e := NewExtractor(nil)
	result := e.ExtractDocument(checkingStatement, statementPeriod())

	require.Empty(t, result.Issues)
	require.Len(t, result.Transactions, 4)

	amounts := amountsByDescription(result.Transactions)
	// Deposits are positive, withdrawals negative.
	assertAmount(t, "2500.00", amounts["ACH DEPOSIT EMPLOYER PAYROLL"])
	assertAmount(t, "150.00", amounts["MOBILE CHECK DEPOSIT"])
	assertAmount(t, "-85.12", amounts["POS DEBIT GROCERY STORE"])
	assertAmount(t, "-200.00", amounts["ONLINE PAYMENT TO CREDIT CARD"])

	for _, txn := range result.Transactions {
		assert.Equal(t, model.AccountChecking, txn.AccountType)
		assert.Equal(t, "checking-01", txn.SourceBlockID)
		assert.Nil(t, txn.TransactionDate)
		assert.Nil(t, txn.PostingDate)
	}
}

func TestExtractCreditStatement(t *testing.T) {
	e := NewExtractor(nil)
	result := e.ExtractDocument(creditStatement, statementPeriod())

	require.Empty(t, result.Issues)
	require.Len(t, result.Transactions, 3)

	tractor := result.Transactions[0]
	assert.Equal(t, "TRACTOR SUPPLY CO #204", tractor.Description)
	assert.True(t, tractor.Amount.Equal(decimal.RequireFromString("-89.50")), "purchases are negative")
	assert.Equal(t, "1234", tractor.ReferenceNumber)
	assert.Equal(t, "5678", tractor.AccountSuffix)
	require.NotNil(t, tractor.TransactionDate)
	require.NotNil(t, tractor.PostingDate)
	assert.Equal(t, date(2024, time.December, 25), *tractor.TransactionDate)
	assert.Equal(t, date(2024, time.December, 26), *tractor.PostingDate)
	assert.Equal(t, tractor.Date, *tractor.TransactionDate)

	walmart := result.Transactions[1]
	assert.Equal(t, "WALMART.COM [PHONE] AR", walmart.Description, "structural redaction runs at extraction")
	assert.Equal(t, date(2025, time.January, 5), walmart.Date, "January resolves into the period's end year")

	payment := result.Transactions[2]
	assert.Equal(t, "ONLINE PAYMENT ELECTRONIC", payment.Description)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("450.00")), "payments are positive")
	assert.Nil(t, payment.TransactionDate, "single-date lines carry no dual dates")
}

func TestExtractNoDuplicateFromDualDateLine(t *testing.T) {
	// The dual-date template claims the line; the looser single-date
	// template must never produce a second record from the same text.
	e := NewExtractor(nil)
	block := Block{ID: "credit-01", Account: model.AccountCredit, StartLine: 1,
		Text: "12/25 12/26 TRACTOR SUPPLY CO #204 1234 5678 89.50"}

	txns, issues := e.ExtractBlock(block, statementPeriod())
	require.Empty(t, issues)
	require.Len(t, txns, 1)
	assert.Equal(t, "TRACTOR SUPPLY CO #204", txns[0].Description)
}

func TestExtractMultilineDescription(t *testing.T) {
	e := NewExtractor(nil)
	block := Block{ID: "credit-01", Account: model.AccountCredit, StartLine: 1,
		Text: "01/05 01/06 AMAZON MKTPL 1111 5678 12.34\nAMZN.COM/BILL WA\n01/08 ONLINE PAYMENT ELECTRONIC 450.00"}

	txns, issues := e.ExtractBlock(block, statementPeriod())
	require.Empty(t, issues)
	require.Len(t, txns, 2)
	assert.Equal(t, "AMAZON MKTPL AMZN.COM/BILL WA", txns[0].Description)
	assert.Equal(t, "ONLINE PAYMENT ELECTRONIC", txns[1].Description)
}

func TestExtractCollectsDateIssues(t *testing.T) {
	e := NewExtractor(nil)
	block := Block{ID: "credit-01", Account: model.AccountCredit, StartLine: 10,
		Text: "02/30 02/31 BAD DATE MERCHANT 1111 2222 10.00\n01/05 01/06 GOOD MERCHANT 3333 4444 20.00"}

	txns, issues := e.ExtractBlock(block, statementPeriod())
	require.Len(t, txns, 1, "the bad record is dropped, the rest continue")
	assert.Equal(t, "GOOD MERCHANT", txns[0].Description)

	require.Len(t, issues, 1)
	assert.Equal(t, "credit-01", issues[0].BlockID)
	assert.Equal(t, 10, issues[0].Line)
	var dre *DateResolutionError
	assert.ErrorAs(t, issues[0], &dre)
}

func TestExtractUnknownBlockYieldsNothing(t *testing.T) {
	e := NewExtractor(nil)
	result := e.ExtractDocument("nothing recognizable here", statementPeriod())
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 1, result.UnknownBlocks)
}

func TestExtractIsDeterministic(t *testing.T) {
	e := NewExtractor(nil)
	combined := checkingStatement + "\n" + creditStatement

	first := e.ExtractDocument(combined, statementPeriod())
	second := e.ExtractDocument(combined, statementPeriod())
	require.Equal(t, len(first.Transactions), len(second.Transactions))
	for i := range first.Transactions {
		assert.Equal(t, first.Transactions[i], second.Transactions[i])
	}
	assert.Len(t, first.Transactions, 7)
}
