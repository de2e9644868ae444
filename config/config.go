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

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_ENRICHMENT_THRESHOLD    = 0.70
	DEFAULT_REDACTION_THRESHOLD     = 0.85
	DEFAULT_CONSOLIDATION_THRESHOLD = 0.60
)

var ConfigStore atomic.Value

// ThresholdConfig holds the similarity knobs. Enrichment gates the fuzzy
// categorization tier, Redaction gates keyword redaction decisions, and
// Consolidation gates pattern grouping. Pointers distinguish "unset" from
// an explicit zero.
type ThresholdConfig struct {
	Enrichment    *float64 `json:"enrichment" envconfig:"MONEYMAP_THRESHOLD_ENRICHMENT"`
	Redaction     *float64 `json:"redaction" envconfig:"MONEYMAP_THRESHOLD_REDACTION"`
	Consolidation *float64 `json:"consolidation" envconfig:"MONEYMAP_THRESHOLD_CONSOLIDATION"`
}

type MappingsConfig struct {
	PublicPath  string `json:"public_path" envconfig:"MONEYMAP_MAPPINGS_PUBLIC"`
	PrivatePath string `json:"private_path" envconfig:"MONEYMAP_MAPPINGS_PRIVATE"`
}

// RedactionConfig carries the user's sensitive phrases and the placeholder
// each should be replaced with.
type RedactionConfig struct {
	Keywords map[string]string `json:"keywords"`
}

type Configuration struct {
	ProjectName string          `json:"project_name" envconfig:"MONEYMAP_PROJECT_NAME"`
	OutputDir   string          `json:"output_dir" envconfig:"MONEYMAP_OUTPUT_DIR"`
	Workers     int             `json:"workers" envconfig:"MONEYMAP_WORKERS"`
	Thresholds  ThresholdConfig `json:"thresholds"`
	Mappings    MappingsConfig  `json:"mappings"`
	Redaction   RedactionConfig `json:"redaction"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("moneymap", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called moneymapper.json with your config")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Moneymapper"
	}

	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.OutputDir = strings.TrimSpace(cnf.OutputDir)
	cnf.Mappings.PublicPath = strings.TrimSpace(cnf.Mappings.PublicPath)
	cnf.Mappings.PrivatePath = strings.TrimSpace(cnf.Mappings.PrivatePath)

	if cnf.OutputDir == "" {
		cnf.OutputDir = "output"
	}

	cnf.fillThresholdDefaults()

	for name, v := range map[string]*float64{
		"enrichment":    cnf.Thresholds.Enrichment,
		"redaction":     cnf.Thresholds.Redaction,
		"consolidation": cnf.Thresholds.Consolidation,
	} {
		if *v < 0 || *v > 1 {
			log.Printf("Error: %s threshold %.2f is outside [0,1].", name, *v)
			return errors.New(name + " threshold must be between 0 and 1")
		}
	}

	if cnf.Workers < 0 {
		log.Println("Warning: negative worker count, using automatic sizing.")
		cnf.Workers = 0
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	mockConfig.fillThresholdDefaults()
	ConfigStore.Store(mockConfig)
}

func (cnf *Configuration) fillThresholdDefaults() {
	if cnf.Thresholds.Enrichment == nil {
		v := DEFAULT_ENRICHMENT_THRESHOLD
		cnf.Thresholds.Enrichment = &v
	}
	if cnf.Thresholds.Redaction == nil {
		v := DEFAULT_REDACTION_THRESHOLD
		cnf.Thresholds.Redaction = &v
	}
	if cnf.Thresholds.Consolidation == nil {
		v := DEFAULT_CONSOLIDATION_THRESHOLD
		cnf.Thresholds.Consolidation = &v
	}
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
