package extract

import (
	"reflect"
	"testing"
)

func TestDocType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"README.md", "readme"},
		{"readme.md", "readme"},
		{"CHANGELOG.md", "changelog"},
		{"CONTRIBUTING.md", "contributing"},
		{"API_REFERENCE.md", "api_doc"},
		{"api.md", "api_doc"},
		{"NOTES.md", "doc"},
	}
	for _, tt := range tests {
		if got := DocType(tt.name); got != tt.want {
			t.Errorf("DocType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

const sampleDoc = `# Acme Billing

A small billing service for internal use.

## Overview

Processes invoices and forwards them to the ledger.
Runs as a scheduled batch job.

## Dependencies

- spring-boot
- postgresql
* spring-boot
- flyway

## Usage

Run the jar.
`

func TestDocSections(t *testing.T) {
	sections := DocSections(sampleDoc)
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4: %v", len(sections), sections)
	}
	want := []DocSection{
		{Title: "Acme Billing", Level: 1, Line: 1},
		{Title: "Overview", Level: 2, Line: 5},
		{Title: "Dependencies", Level: 2, Line: 10},
		{Title: "Usage", Level: 2, Line: 17},
	}
	if !reflect.DeepEqual(sections, want) {
		t.Errorf("sections = %+v, want %+v", sections, want)
	}
}

func TestDocOverview(t *testing.T) {
	got := DocOverview(sampleDoc)
	want := "Processes invoices and forwards them to the ledger.\nRuns as a scheduled batch job."
	if got != want {
		t.Errorf("overview = %q, want %q", got, want)
	}
}

func TestDocOverview_FirstParagraphFallback(t *testing.T) {
	src := "Plain notes file.\nStill the first paragraph.\n\nSecond paragraph."
	got := DocOverview(src)
	if got != "Plain notes file.\nStill the first paragraph." {
		t.Errorf("overview = %q", got)
	}
	if DocOverview("") != "" {
		t.Error("empty doc should yield empty overview")
	}
}

func TestDocDependencies(t *testing.T) {
	deps := DocDependencies(sampleDoc)
	want := []string{"spring-boot", "postgresql", "flyway"}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("deps = %v, want %v", deps, want)
	}
	if got := DocDependencies("# Title\n\nno deps section\n"); got != nil {
		t.Errorf("expected nil for missing section, got %v", got)
	}
}
