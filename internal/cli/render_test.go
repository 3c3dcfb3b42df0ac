package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"print-bom/internal/app"
	"print-bom/internal/types"
)

func TestRenderReport(t *testing.T) {
	result := app.ExtractResult{
		PackageName: "project.3mf",
		Entries: []types.BOMEntry{
			{Name: "Bracket Left", Quantity: 2, SearchURL: "https://thangs.com/search/%22Bracket%20Left%22?searchScope=thangs&view=list"},
			{Name: "Tile A Stack", Quantity: 1},
		},
	}

	var want strings.Builder
	want.WriteString("--- Analyzing 3MF File: project.3mf ---\n")
	want.WriteString("\nBill of Materials (BOM):\n")
	want.WriteString(strings.Repeat("-", 35) + "\n")
	want.WriteString(fmt.Sprintf("%-10s | %-40s | %s\n", "Quantity", "Part Name", "Thangs URL"))
	want.WriteString(strings.Repeat("-", 100) + "\n")
	want.WriteString(fmt.Sprintf("%-10d | %-40s | %s\n", 2, "Bracket Left", "https://thangs.com/search/%22Bracket%20Left%22?searchScope=thangs&view=list"))
	want.WriteString(fmt.Sprintf("%-10d | %-40s\n", 1, "Tile A Stack"))
	want.WriteString(strings.Repeat("-", 100) + "\n")

	if diff := cmp.Diff(want.String(), renderReport(result)); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	got := renderReport(app.ExtractResult{PackageName: "empty.3mf"})
	if !strings.Contains(got, "No parts were found in the model's build section.") {
		t.Fatalf("missing empty-BOM message in:\n%s", got)
	}
	if strings.Contains(got, "Quantity") {
		t.Fatalf("unexpected table header in empty report:\n%s", got)
	}
}

func TestRenderReportWarningsPrecedeTable(t *testing.T) {
	result := app.ExtractResult{
		PackageName: "warn.3mf",
		Warnings:    []string{"Warning: Found Metadata/model_settings.config but failed to parse it: boom"},
		Entries:     []types.BOMEntry{{Name: "Base", Quantity: 1}},
	}
	got := renderReport(result)
	warnAt := strings.Index(got, "Warning:")
	tableAt := strings.Index(got, "Bill of Materials")
	if warnAt < 0 || tableAt < 0 || warnAt > tableAt {
		t.Fatalf("warnings must precede the table:\n%s", got)
	}
}
