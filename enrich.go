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
	"context"
	"runtime"
	"sync"

	"github.com/moneymapper/moneymapper/model"
)

// Enricher categorizes batches of raw transactions. Resolution is pure and
// per-record, so batches are fanned out across workers; results are keyed
// by input index, never by completion order, so output is deterministic
// run to run.
type Enricher struct {
	resolver *Resolver
	redactor *KeywordRedactor
	workers  int
}

// NewEnricher wires a resolver and an optional keyword redactor. workers
// <= 0 means one worker per CPU.
func NewEnricher(resolver *Resolver, redactor *KeywordRedactor, workers int) *Enricher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Enricher{resolver: resolver, redactor: redactor, workers: workers}
}

// Enrich categorizes one transaction and applies keyword redaction to its
// description. The raw record is never mutated; the enriched record is a
// new derived value.
func (e *Enricher) Enrich(txn model.RawTransaction) model.EnrichedTransaction {
	result := e.resolver.Resolve(txn.Description)
	description := txn.Description
	if e.redactor != nil {
		description = e.redactor.Redact(description)
	}
	return txn.Enrich(result, description)
}

// EnrichAll processes a batch in parallel. Cancelling the context stops
// feeding workers; records not yet processed come back enriched with the
// none result so output length always equals input length.
func (e *Enricher) EnrichAll(ctx context.Context, txns []model.RawTransaction) []model.EnrichedTransaction {
	out := make([]model.EnrichedTransaction, len(txns))
	for i := range out {
		out[i] = txns[i].Enrich(model.NoMatch(), txns[i].Description)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				out[i] = e.Enrich(txns[i])
			}
		}()
	}

feed:
	for i := range txns {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()
	return out
}
