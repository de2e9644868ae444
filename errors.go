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

import "fmt"

// DateResolutionError reports a transaction date token that could not be
// resolved against the statement period. It is collected per record; a bad
// date never aborts the extraction pass.
type DateResolutionError struct {
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

func (e *DateResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve date %q: %s", e.Token, e.Reason)
}

// AmbiguousConsolidationError reports a candidate consolidation group whose
// members disagree on canonical name, category or subcategory. The group is
// surfaced for review instead of being merged.
type AmbiguousConsolidationError struct {
	Patterns    []string `json:"patterns"`
	Assignments []string `json:"assignments"`
}

func (e *AmbiguousConsolidationError) Error() string {
	return fmt.Sprintf("consolidation group %v spans conflicting assignments %v", e.Patterns, e.Assignments)
}

// ExtractionIssue carries a non-fatal problem found while extracting one
// block, with enough source context to locate the offending line.
type ExtractionIssue struct {
	BlockID string `json:"block_id"`
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Err     error  `json:"-"`
}

func (i ExtractionIssue) Error() string {
	return fmt.Sprintf("%s line %d: %v (%q)", i.BlockID, i.Line, i.Err, i.Text)
}

func (i ExtractionIssue) Unwrap() error {
	return i.Err
}
