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

package datasources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneymapper/moneymapper/model"
)

const sampleMappings = `
[FOOD_AND_DRINK.FOOD_AND_DRINK_GROCERIES]
"walmart.com" = { name = "Walmart" }
"kroger" = { name = "Kroger" }

[HOME_IMPROVEMENT.HOME_IMPROVEMENT_HARDWARE]
"tractor supply*" = { name = "Tractor Supply" }
`

func TestLoadMappingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleMappings), 0o644))

	table, violations, err := LoadMappingTable(path, model.ScopePublic)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, model.ScopePublic, table.Scope)
	assert.Len(t, table.Exact, 2)
	assert.Len(t, table.Wildcard, 1)
	assert.Equal(t, "tractor supply*", table.Wildcard[0].Pattern)
	assert.Equal(t, model.KindWildcard, table.Wildcard[0].Kind)
	assert.Equal(t, "HOME_IMPROVEMENT", table.Wildcard[0].Category)
}

func TestLoadMappingTableMissingFile(t *testing.T) {
	table, violations, err := LoadMappingTable(filepath.Join(t.TempDir(), "absent.toml"), model.ScopePrivate)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, 0, table.Len())
}

func TestLoadMappingTableCollectsViolations(t *testing.T) {
	bad := `
[FOOD_AND_DRINK.TRAVEL_FLIGHTS]
"oops" = { name = "Oops" }

[FOOD_AND_DRINK.FOOD_AND_DRINK_COFFEE]
"good coffee" = { name = "Good Coffee" }
`
	path := filepath.Join(t.TempDir(), "public.toml")
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	table, violations, err := LoadMappingTable(path, model.ScopePublic)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Error(), "TRAVEL_FLIGHTS")
	assert.Equal(t, 1, table.Len(), "valid entry still loads")
}

func TestSaveMappingTableRoundTrip(t *testing.T) {
	entries := []model.MappingEntry{
		{Pattern: "walmart.com", Name: "Walmart", Category: "FOOD_AND_DRINK", Subcategory: "FOOD_AND_DRINK_GROCERIES"},
		{Pattern: "tractor supply*", Name: "Tractor Supply", Category: "HOME_IMPROVEMENT", Subcategory: "HOME_IMPROVEMENT_HARDWARE"},
	}
	table, violations := model.NewMappingTable(model.ScopePublic, entries)
	require.Empty(t, violations)

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, SaveMappingTable(path, table))

	loaded, violations, err := LoadMappingTable(path, model.ScopePublic)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, table.Len(), loaded.Len())
	require.Len(t, loaded.Wildcard, 1)
	assert.Equal(t, "tractor supply*", loaded.Wildcard[0].Pattern)
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.pdf"), []byte("skip"), 0o644))

	docs, err := ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].Name)
	assert.Equal(t, "first", docs[0].Text)
	assert.Equal(t, "b.txt", docs[1].Name)
}
