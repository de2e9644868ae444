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
	"strings"

	"github.com/spf13/cobra"
)

// consolidateCommands reports wildcard consolidation opportunities in the
// mapping tables. Proposals are printed for review, never auto-applied.
func consolidateCommands(b *mapperInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Suggest wildcard patterns that replace groups of exact mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			proposals, conflicts := b.mapper.AnalyzeConsolidation()

			if len(proposals) == 0 && len(conflicts) == 0 {
				fmt.Println("no consolidation opportunities found")
				return nil
			}

			for _, p := range proposals {
				fmt.Printf("%s scope: %q replaces %d entries (%.0f%% reduction)\n",
					p.Scope, p.ProposedPattern, len(p.Covered), p.ReductionPct*100)
				fmt.Printf("  covers: %s\n", strings.Join(p.Covered, ", "))
				fmt.Printf("  category: %s / %s\n", p.Category, p.Subcategory)
			}
			for _, c := range conflicts {
				fmt.Printf("conflict: %s\n", c.Error())
			}
			return nil
		},
	}
	return cmd
}
