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
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	moneymapper "github.com/moneymapper/moneymapper"
	"github.com/moneymapper/moneymapper/config"
)

// Moneymapper represents the CLI application, encapsulating the root Cobra command.
type Moneymapper struct {
	cmd *cobra.Command
}

// mapperInstance holds the engine instance and its configuration, shared by
// every subcommand after preRun.
type mapperInstance struct {
	mapper *moneymapper.Moneymapper
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the engine before running
// any subcommand. Mapping-entry validation failures are reported as a
// summary, never a hard stop.
func preRun(app *mapperInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		mapper, err := moneymapper.NewMoneymapper()
		if err != nil {
			log.Fatal(err)
		}
		if issues := mapper.MappingIssues(); len(issues) > 0 {
			logrus.Warnf("%d mapping entries failed validation", len(issues))
			for _, issue := range issues {
				logrus.Warn(issue)
			}
		}

		app.mapper = mapper
		app.cnf = cnf
		return nil
	}
}

// NewCLI creates the command-line interface for the Moneymapper application.
func NewCLI() *Moneymapper {
	var configFile string
	m := &mapperInstance{}

	var rootCmd = &cobra.Command{
		Use:   "moneymapper",
		Short: "Statement transaction extraction and categorization",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./moneymapper.json", "Configuration file")

	rootCmd.PersistentPreRunE = preRun(m, &configFile)

	rootCmd.AddCommand(parseCommands(m))
	rootCmd.AddCommand(enrichCommands(m))
	rootCmd.AddCommand(consolidateCommands(m))
	rootCmd.AddCommand(mappingCommands(m))

	return &Moneymapper{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Moneymapper) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
