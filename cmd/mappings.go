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

	"github.com/spf13/cobra"
)

// mappingCommands validates the mapping tables and reports per-entry
// failures as a detail list with a summary count.
func mappingCommands(b *mapperInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-mappings",
		Short: "Validate mapping tables against the category taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pattern := range b.mapper.MappingOverlaps() {
				fmt.Printf("  warning: %q is defined in both tables; the private entry wins\n", pattern)
			}
			issues := b.mapper.MappingIssues()
			if len(issues) == 0 {
				fmt.Println("all mapping entries are valid")
				return nil
			}
			for _, issue := range issues {
				fmt.Printf("  %v\n", issue)
			}
			return fmt.Errorf("%d mapping entries failed validation", len(issues))
		},
	}
	return cmd
}
