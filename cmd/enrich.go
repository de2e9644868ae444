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

package main

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moneymapper/moneymapper/datasources"
	"github.com/moneymapper/moneymapper/model"
)

// enrichCommands categorizes a previously extracted transaction batch.
func enrichCommands(b *mapperInstance) *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Categorize extracted transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				input = filepath.Join(b.cnf.OutputDir, "transactions.json")
			}
			txns, err := datasources.ReadRawTransactionsJSON(input)
			if err != nil {
				return err
			}

			enriched := b.mapper.EnrichTransactions(cmd.Context(), txns)

			counts := map[model.Method]int{}
			var highConfidence, lowConfidence int
			for _, txn := range enriched {
				counts[txn.Method]++
				switch {
				case txn.Confidence >= 0.9:
					highConfidence++
				case txn.Confidence > 0:
					lowConfidence++
				}
			}
			logrus.WithFields(logrus.Fields{
				"total":           len(enriched),
				"no_match":        counts[model.MethodNone],
				"fuzzy":           counts[model.MethodFuzzy],
				"exact":           counts[model.MethodPrivateExact] + counts[model.MethodPublicExact],
				"wildcard":        counts[model.MethodPrivateWildcard] + counts[model.MethodPublicWildcard],
				"taxonomy":        counts[model.MethodTaxonomy],
				"high_confidence": highConfidence,
				"low_confidence":  lowConfidence,
			}).Info("enrichment complete")

			if output == "" {
				output = filepath.Join(b.cnf.OutputDir, "enriched.json")
			}
			if err := datasources.WriteTransactionsJSON(output, enriched); err != nil {
				return err
			}
			fmt.Printf("enriched %d transactions, %d uncategorized\n", len(enriched), counts[model.MethodNone])
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Raw transaction JSON file (default <output_dir>/transactions.json)")
	cmd.Flags().StringVar(&output, "output", "", "Output JSON file (default <output_dir>/enriched.json)")
	return cmd
}
