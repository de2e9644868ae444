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

// Package datasources loads and persists mapping tables and statement
// documents. All file formats live here; the engine core never touches
// the filesystem.
package datasources

import (
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/moneymapper/moneymapper/model"
)

// mappingValue is the TOML shape of one pattern entry. Category and
// subcategory come from the enclosing table path, not the value.
type mappingValue struct {
	Name string `toml:"name"`
}

// mappingFile mirrors the on-disk layout:
//
//	[FOOD_AND_DRINK.FOOD_AND_DRINK_GROCERIES]
//	"walmart.com" = { name = "Walmart" }
//	"tractor supply*" = { name = "Tractor Supply" }
type mappingFile map[string]map[string]map[string]mappingValue

// LoadMappingTable reads one scope's mapping file and builds a validated
// table. Entries that fail validation are returned alongside the table,
// never aborting the load. A missing file yields an empty table, since
// private mappings are optional.
func LoadMappingTable(path string, scope model.Scope) (*model.MappingTable, []error, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		table, _ := model.NewMappingTable(scope, nil)
		return table, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading %s mappings from %s", scope, path)
	}

	var file mappingFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, nil, errors.Wrapf(err, "parsing %s mappings from %s", scope, path)
	}

	table, violations := model.NewMappingTable(scope, flatten(file, scope))
	return table, violations, nil
}

// SaveMappingTable writes a table back in the nested TOML layout. Entries
// are grouped by category and subcategory; both kinds share one file.
func SaveMappingTable(path string, table *model.MappingTable) error {
	file := mappingFile{}
	add := func(entries []model.MappingEntry) {
		for _, entry := range entries {
			if file[entry.Category] == nil {
				file[entry.Category] = map[string]map[string]mappingValue{}
			}
			if file[entry.Category][entry.Subcategory] == nil {
				file[entry.Category][entry.Subcategory] = map[string]mappingValue{}
			}
			file[entry.Category][entry.Subcategory][entry.Pattern] = mappingValue{Name: entry.Name}
		}
	}
	add(table.Exact)
	add(table.Wildcard)

	raw, err := toml.Marshal(file)
	if err != nil {
		return errors.Wrapf(err, "encoding %s mappings", table.Scope)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s mappings to %s", table.Scope, path)
	}
	return nil
}

// flatten walks the nested file shape into entries in a deterministic
// order so validation errors read the same run to run.
func flatten(file mappingFile, scope model.Scope) []model.MappingEntry {
	var entries []model.MappingEntry
	for _, category := range sortedKeys(file) {
		subs := file[category]
		for _, subcategory := range sortedKeys(subs) {
			patterns := subs[subcategory]
			for _, pattern := range sortedKeys(patterns) {
				entries = append(entries, model.MappingEntry{
					Pattern:     pattern,
					Name:        patterns[pattern].Name,
					Category:    category,
					Subcategory: subcategory,
					Scope:       scope,
				})
			}
		}
	}
	return entries
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
