package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSearchLink(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		skipped bool
	}{
		{
			name:  "simple name",
			input: "Widget",
			want:  `https://thangs.com/search/%22Widget%22?searchScope=thangs&view=list`,
		},
		{
			name:  "spaces encoded as percent-20",
			input: "Bracket Left",
			want:  `https://thangs.com/search/%22Bracket%20Left%22?searchScope=thangs&view=list`,
		},
		{
			name:    "stacking tile skipped",
			input:   "Tile A Stack",
			skipped: true,
		},
		{
			name:    "stacking tile with infix skipped",
			input:   "Tile 4x4 Corner Stack",
			skipped: true,
		},
		{
			name:    "empty name skipped",
			input:   "",
			skipped: true,
		},
		{
			name:  "tile without stack gets a link",
			input: "Tile Connector",
			want:  `https://thangs.com/search/%22Tile%20Connector%22?searchScope=thangs&view=list`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SearchLink(tt.input)
			require.Equal(t, !tt.skipped, ok)
			if tt.skipped {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected url (-want +got):\n%s", diff)
			}
		})
	}
}
