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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	moneymapper "github.com/moneymapper/moneymapper"
	"github.com/moneymapper/moneymapper/datasources"
	"github.com/moneymapper/moneymapper/model"
)

// parseCommands extracts transactions from statement text files into a raw
// transaction JSON batch.
func parseCommands(b *mapperInstance) *cobra.Command {
	var inputDir string
	var output string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract transactions from statement text files",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()
			docs, err := datasources.ListDocuments(inputDir)
			if err != nil {
				return err
			}

			var all []model.RawTransaction
			issueCount := 0
			skipped := 0
			for _, doc := range docs {
				period, err := moneymapper.ParsePeriod(doc.Text)
				if err != nil {
					logrus.WithField("document", doc.Name).Warn("no statement period found, skipping document")
					skipped++
					continue
				}
				result := b.mapper.ExtractDocument(doc.Text, period)
				logrus.WithFields(logrus.Fields{
					"run_id":         runID,
					"document":       doc.Name,
					"transactions":   len(result.Transactions),
					"issues":         len(result.Issues),
					"unknown_blocks": result.UnknownBlocks,
				}).Info("parsed statement")
				for _, issue := range result.Issues {
					logrus.WithField("document", doc.Name).Warn(issue.Error())
				}
				issueCount += len(result.Issues)
				all = append(all, result.Transactions...)
			}

			if output == "" {
				output = filepath.Join(b.cnf.OutputDir, "transactions.json")
			}
			if err := datasources.WriteTransactionsJSON(output, all); err != nil {
				return err
			}
			fmt.Printf("extracted %d transactions from %d documents (%d records skipped, %d documents without a period)\n",
				len(all), len(docs)-skipped, issueCount, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "statements", "Directory of statement text files")
	cmd.Flags().StringVar(&output, "output", "", "Output JSON file (default <output_dir>/transactions.json)")
	return cmd
}
