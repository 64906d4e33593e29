package landing

import (
	"testing"
	"time"
)

func TestCatalogs(t *testing.T) {
	if len(Features) != 6 {
		t.Errorf("Feature catalog has %d entries, want 6", len(Features))
	}
	for _, f := range Features {
		if f.Title == "" || f.Description == "" || f.Icon == "" {
			t.Errorf("Incomplete feature %+v", f)
		}
	}

	tests := []struct {
		title       string
		price       string
		highlighted bool
	}{
		{"Starter", "$49", false},
		{"Professional", "$99", true},
		{"Enterprise", "Custom", false},
	}
	if len(PricingTiers) != len(tests) {
		t.Fatalf("Pricing catalog has %d tiers, want %d", len(PricingTiers), len(tests))
	}
	for i, tt := range tests {
		tier := PricingTiers[i]
		if tier.Title != tt.title || tier.Price != tt.price || tier.Highlighted != tt.highlighted {
			t.Errorf("Tier %d = %s %s %v, want %s %s %v", i, tier.Title, tier.Price, tier.Highlighted, tt.title, tt.price, tt.highlighted)
		}
		if len(tier.Features) != 4 {
			t.Errorf("Tier %s has %d features, want 4", tier.Title, len(tier.Features))
		}
	}
}

func TestNavLinksTargetSections(t *testing.T) {
	known := make(map[SectionID]bool)
	for _, id := range Sections {
		known[id] = true
	}
	for _, link := range NavLinks {
		if !known[link.Target] {
			t.Errorf("Nav link %q targets unknown section %q", link.Label, link.Target)
		}
	}
}

func TestCopyrightLine(t *testing.T) {
	got := CopyrightLine(time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC))
	want := "© 2031 DataViz. All rights reserved."
	if got != want {
		t.Errorf("CopyrightLine() = %q, want %q", got, want)
	}
}

func TestMobileMenuBreakpoint(t *testing.T) {
	tests := []struct {
		width float64
		open  bool
		shown bool
	}{
		{width: 0, open: true, shown: true},
		{width: 375, open: true, shown: true},
		{width: 375, open: false, shown: false},
		{width: 768, open: true, shown: false},
		{width: 1280, open: true, shown: false},
	}
	for _, tt := range tests {
		if got := ShowMobileMenu(tt.open, tt.width); got != tt.shown {
			t.Errorf("ShowMobileMenu(%v, %v) = %v, want %v", tt.open, tt.width, got, tt.shown)
		}
	}
}

func TestResizeClosesMenuOnDesktop(t *testing.T) {
	store := NewStore()
	store.ToggleMenu()

	store.Resize(500)
	if !store.Snapshot().MenuOpen {
		t.Error("Menu should stay open on a narrow viewport")
	}
	store.Resize(1024)
	if store.Snapshot().MenuOpen {
		t.Error("Menu should close past the breakpoint")
	}
}
