package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/wacul/ptr"
)

func TestValidateAndAddDefaults(t *testing.T) {
	// Empty project name falls back to the default
	cnf := Configuration{}
	err := cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.ProjectName != "Moneymapper" {
		t.Errorf("Expected default project name, got %q", cnf.ProjectName)
	}
	if cnf.OutputDir != "output" {
		t.Errorf("Expected default output dir, got %q", cnf.OutputDir)
	}

	// Unset thresholds take the documented defaults
	if cnf.Thresholds.Enrichment == nil || *cnf.Thresholds.Enrichment != DEFAULT_ENRICHMENT_THRESHOLD {
		t.Errorf("Expected default enrichment threshold, got %v", cnf.Thresholds.Enrichment)
	}
	if cnf.Thresholds.Redaction == nil || *cnf.Thresholds.Redaction != DEFAULT_REDACTION_THRESHOLD {
		t.Errorf("Expected default redaction threshold, got %v", cnf.Thresholds.Redaction)
	}
	if cnf.Thresholds.Consolidation == nil || *cnf.Thresholds.Consolidation != DEFAULT_CONSOLIDATION_THRESHOLD {
		t.Errorf("Expected default consolidation threshold, got %v", cnf.Thresholds.Consolidation)
	}

	// Explicit thresholds survive defaulting
	cnf = Configuration{Thresholds: ThresholdConfig{Enrichment: ptr.Float64(0.9)}}
	if err := cnf.validateAndAddDefaults(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if *cnf.Thresholds.Enrichment != 0.9 {
		t.Errorf("Expected enrichment threshold 0.9, got %v", *cnf.Thresholds.Enrichment)
	}

	// Out-of-range threshold is rejected
	cnf = Configuration{Thresholds: ThresholdConfig{Redaction: ptr.Float64(1.5)}}
	if err := cnf.validateAndAddDefaults(); err == nil {
		t.Error("Expected error for out-of-range redaction threshold")
	}

	// Negative worker count resets to automatic sizing
	cnf = Configuration{Workers: -3}
	if err := cnf.validateAndAddDefaults(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.Workers != 0 {
		t.Errorf("Expected workers reset to 0, got %d", cnf.Workers)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Create a temporary file
	tmpFile, err := os.CreateTemp("", "moneymapper.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up after the test

	// Sample configuration to write to the temp file
	sampleConfig := Configuration{
		ProjectName: "Temp Project",
		Mappings: MappingsConfig{
			PublicPath:  "mappings/public.toml",
			PrivatePath: "mappings/private.toml",
		},
	}
	if err := json.NewEncoder(tmpFile).Encode(sampleConfig); err != nil {
		t.Fatalf("Unable to write to temporary file: %v", err)
	}
	tmpFile.Close() // Close the file so loadConfigFromFile can open it

	// Set an environment variable to override the project name
	os.Setenv("MONEYMAP_PROJECT_NAME", "Env Project")
	defer os.Unsetenv("MONEYMAP_PROJECT_NAME")

	if err := loadConfigFromFile(tmpFile.Name()); err != nil {
		t.Fatalf("loadConfigFromFile returned error: %v", err)
	}

	fetched, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if fetched.ProjectName != "Env Project" {
		t.Errorf("Expected env override of project name, got %q", fetched.ProjectName)
	}
	if fetched.Mappings.PublicPath != "mappings/public.toml" {
		t.Errorf("Expected public mapping path from file, got %q", fetched.Mappings.PublicPath)
	}
	if fetched.Thresholds.Enrichment == nil || *fetched.Thresholds.Enrichment != DEFAULT_ENRICHMENT_THRESHOLD {
		t.Errorf("Expected default enrichment threshold, got %v", fetched.Thresholds.Enrichment)
	}
}

func TestMockConfig(t *testing.T) {
	MockConfig(&Configuration{ProjectName: "Mock"})
	fetched, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if fetched.ProjectName != "Mock" {
		t.Errorf("Expected mock project name, got %q", fetched.ProjectName)
	}
	if fetched.Thresholds.Consolidation == nil || *fetched.Thresholds.Consolidation != DEFAULT_CONSOLIDATION_THRESHOLD {
		t.Errorf("Expected mock config to fill threshold defaults, got %v", fetched.Thresholds.Consolidation)
	}
}
