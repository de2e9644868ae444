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
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/moneymapper/moneymapper/model"
)

// Document is one statement text file queued for extraction.
type Document struct {
	Name string
	Text string
}

// ListDocuments reads every .txt statement under dir, sorted by name so
// batch runs process files in a stable order.
func ListDocuments(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing statement documents in %s", dir)
	}
	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "reading statement document %s", entry.Name())
		}
		docs = append(docs, Document{Name: entry.Name(), Text: string(raw)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// WriteTransactionsJSON persists extracted or enriched records as a JSON
// array, one file per run.
func WriteTransactionsJSON(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding transactions")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "writing transactions to %s", path)
	}
	return nil
}

// ReadRawTransactionsJSON loads a previously extracted batch for
// enrichment.
func ReadRawTransactionsJSON(path string) ([]model.RawTransaction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading transactions from %s", path)
	}
	var txns []model.RawTransaction
	if err := json.Unmarshal(raw, &txns); err != nil {
		return nil, errors.Wrapf(err, "decoding transactions from %s", path)
	}
	return txns, nil
}
