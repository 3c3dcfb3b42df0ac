package cli

import (
	"fmt"
	"strings"

	"print-bom/internal/app"
)

// renderReport formats the fixed-width BOM table. Column widths and dash
// rules match the layout downstream scripts already parse.
func renderReport(result app.ExtractResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Analyzing 3MF File: %s ---\n", result.PackageName)

	for _, warning := range result.Warnings {
		fmt.Fprintln(&b, warning)
	}

	fmt.Fprintf(&b, "\nBill of Materials (BOM):\n")
	if len(result.Entries) == 0 {
		fmt.Fprintln(&b, "No parts were found in the model's build section.")
		return b.String()
	}

	fmt.Fprintln(&b, strings.Repeat("-", 35))
	fmt.Fprintf(&b, "%-10s | %-40s | %s\n", "Quantity", "Part Name", "Thangs URL")
	fmt.Fprintln(&b, strings.Repeat("-", 100))
	for _, entry := range result.Entries {
		fmt.Fprintf(&b, "%-10d | %-40s", entry.Quantity, entry.Name)
		if entry.SearchURL != "" {
			fmt.Fprintf(&b, " | %s", entry.SearchURL)
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprintln(&b, strings.Repeat("-", 100))
	return b.String()
}
