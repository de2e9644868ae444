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
	"regexp"
	"strconv"
	"time"
)

// Period is the statement period parsed from the document header. It anchors
// year inference for partial transaction dates.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

var (
	partialDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	fullDateRe    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)

	// Statement headers carry the period as either
	// "for January 15, 2025 to February 14, 2025" or "12/15/2024 - 01/14/2025".
	periodTextRe    = regexp.MustCompile(`([A-Z][a-z]+ \d{1,2}, \d{4})\s*(?:to|through|-)\s*([A-Z][a-z]+ \d{1,2}, \d{4})`)
	periodNumericRe = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s*(?:to|through|-)\s*(\d{1,2}/\d{1,2}/\d{4})`)
)

// ParsePeriod scans header text for a statement period in either prose or
// numeric form. The first complete range found wins.
func ParsePeriod(text string) (Period, error) {
	if m := periodTextRe.FindStringSubmatch(text); m != nil {
		start, err1 := time.Parse("January 2, 2006", m[1])
		end, err2 := time.Parse("January 2, 2006", m[2])
		if err1 == nil && err2 == nil {
			return Period{Start: start, End: end}, nil
		}
	}
	if m := periodNumericRe.FindStringSubmatch(text); m != nil {
		start, err1 := time.Parse("1/2/2006", m[1])
		end, err2 := time.Parse("1/2/2006", m[2])
		if err1 == nil && err2 == nil {
			return Period{Start: start, End: end}, nil
		}
	}
	return Period{}, fmt.Errorf("no statement period found in header text")
}

// ResolveDate turns a raw transaction date token into a full date. Partial
// MM/DD tokens take their year from the statement period: the period's end
// year, unless the month is more than one month past the period's end month,
// in which case the transaction belongs to the previous year. Full dates are
// validated and passed through.
func ResolveDate(token string, period Period) (time.Time, error) {
	if m := partialDateRe.FindStringSubmatch(token); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := period.End.Year()
		if month > int(period.End.Month())+1 {
			year--
		}
		return makeDate(year, month, day, token)
	}
	if m := fullDateRe.FindStringSubmatch(token); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			if year < 50 {
				year += 2000
			} else {
				year += 1900
			}
		}
		return makeDate(year, month, day, token)
	}
	return time.Time{}, &DateResolutionError{Token: token, Reason: "unrecognized date format"}
}

// makeDate builds a date and rejects impossible month/day combinations.
// time.Date normalizes overflow (Feb 30 -> Mar 2) so the round trip is
// checked instead.
func makeDate(year, month, day int, token string) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, &DateResolutionError{Token: token, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, &DateResolutionError{Token: token, Reason: fmt.Sprintf("day %d invalid for %d/%d", day, month, year)}
	}
	return d, nil
}
