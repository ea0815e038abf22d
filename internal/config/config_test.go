package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Seed != 42 {
		t.Errorf("Expected default seed 42, got %d", cfg.Seed)
	}

	if cfg.DataDir != "data" {
		t.Errorf("Expected data_dir 'data', got '%s'", cfg.DataDir)
	}

	if len(cfg.Years) != 3 || cfg.Years[0] != 2023 {
		t.Errorf("Expected years [2023 2024 2025], got %v", cfg.Years)
	}

	if len(cfg.FipsCodes) != 10 {
		t.Fatalf("Expected 10 county codes, got %d", len(cfg.FipsCodes))
	}
	if cfg.FipsCodes[0] != "01001" {
		t.Errorf("Expected first fips code '01001', got '%s'", cfg.FipsCodes[0])
	}
	if cfg.FipsCodes[9] != "01010" {
		t.Errorf("Expected last fips code '01010', got '%s'", cfg.FipsCodes[9])
	}

	for _, crop := range cfg.Crops {
		if _, ok := cfg.YieldRanges[crop]; !ok {
			t.Errorf("Missing yield range for crop %s", crop)
		}
		if _, ok := cfg.AbandonmentRanges[crop]; !ok {
			t.Errorf("Missing abandonment range for crop %s", crop)
		}
	}

	if cfg.Defects.NullYieldsPerYear != 2 {
		t.Errorf("Expected 2 null yields per year, got %d", cfg.Defects.NullYieldsPerYear)
	}
	if cfg.Defects.NegativeYields != 4 {
		t.Errorf("Expected 4 negative yields, got %d", cfg.Defects.NegativeYields)
	}
	if cfg.Defects.YieldDuplicates != 3 {
		t.Errorf("Expected 3 yield duplicates, got %d", cfg.Defects.YieldDuplicates)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestValidateMissingCropRange(t *testing.T) {
	cfg := Default()
	cfg.Crops = append(cfg.Crops, "barley")

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation to fail for crop without ranges, but it passed")
	}
}

func TestValidateInvertedRange(t *testing.T) {
	cfg := Default()
	cfg.LandArea = Range{Min: 500, Max: 80}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation to fail for inverted land_area range, but it passed")
	}
}

func TestValidateEmptyDomainsAllowed(t *testing.T) {
	cfg := Default()
	cfg.Years = nil
	cfg.FipsCodes = nil

	// Empty domains mean zero output, not an error
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected empty domains to validate, got: %v", err)
	}
}
