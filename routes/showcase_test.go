package routes

import (
	"testing"

	"github.com/Rudrakshsachdev/TravelSource/models"
)

func TestDefaultSectionConfigs(t *testing.T) {
	intl := defaultSectionConfig(models.InternationalSectionID)
	if intl.ID != models.InternationalSectionID {
		t.Fatalf("international config got ID %d", intl.ID)
	}
	if !intl.IsEnabled {
		t.Error("sections should default to enabled")
	}

	india := defaultSectionConfig(models.IndiaSectionID)
	if india.ID != models.IndiaSectionID {
		t.Fatalf("india config got ID %d", india.ID)
	}
	if india.Title == intl.Title {
		t.Error("sections should not share a default title")
	}
	if india.ScrollSpeed <= 0 {
		t.Error("scroll speed default must be positive")
	}
}

func TestApplySectionConfigPatch(t *testing.T) {
	enabled := false
	title := "Monsoon Specials"
	speed := 45

	cfg := defaultSectionConfig(models.IndiaSectionID)
	err := applySectionConfigPatch(&cfg, SectionConfigPatch{
		IsEnabled:   &enabled,
		Title:       &title,
		ScrollSpeed: &speed,
	})
	if err != nil {
		t.Fatalf("valid patch rejected: %v", err)
	}
	if cfg.IsEnabled || cfg.Title != title || cfg.ScrollSpeed != 45 {
		t.Errorf("patch not applied: %+v", cfg)
	}

	// Omitted fields stay untouched.
	before := cfg
	if err := applySectionConfigPatch(&cfg, SectionConfigPatch{}); err != nil {
		t.Fatalf("empty patch rejected: %v", err)
	}
	if cfg != before {
		t.Errorf("empty patch changed the config: %+v", cfg)
	}

	for _, bad := range []int{0, -10} {
		v := bad
		prev := cfg.ScrollSpeed
		if err := applySectionConfigPatch(&cfg, SectionConfigPatch{ScrollSpeed: &v}); err == nil {
			t.Errorf("scroll_speed %d should be rejected", bad)
		}
		if cfg.ScrollSpeed != prev {
			t.Errorf("rejected patch must not modify the config")
		}
	}
}
