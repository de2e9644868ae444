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

// Method names the matching tier that produced a categorization result.
// The order of the tiers is a correctness contract: private data overrides
// public knowledge, exact overrides approximate.
type Method string

const (
	MethodPrivateExact    Method = "private_exact"
	MethodPublicExact     Method = "public_exact"
	MethodPrivateWildcard Method = "private_wildcard"
	MethodPublicWildcard  Method = "public_wildcard"
	MethodFuzzy           Method = "fuzzy"
	MethodTaxonomy        Method = "taxonomy"
	MethodNone            Method = "none"
)

// CategorizationResult is the outcome of resolving one description.
//
// Invariants: Method == MethodNone implies every other field is empty and
// Confidence == 0. Deterministic tiers (exact, wildcard) always report
// Confidence 1.0; only the fuzzy tier produces a confidence strictly
// between 0 and 1.
type CategorizationResult struct {
	MerchantName string  `json:"merchant_name,omitempty"`
	Category     string  `json:"category,omitempty"`
	Subcategory  string  `json:"subcategory,omitempty"`
	Confidence   float64 `json:"confidence"`
	Method       Method  `json:"method"`
}

// NoMatch is the empty result returned when every tier misses.
func NoMatch() CategorizationResult {
	return CategorizationResult{Method: MethodNone}
}

// Matched reports whether any tier produced a result.
func (r CategorizationResult) Matched() bool {
	return r.Method != MethodNone && r.Method != ""
}
