package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"print-bom/internal/types"
)

func configResolution(id string, names ...string) types.Resolution {
	return types.Resolution{ObjectID: id, Source: types.ResolutionSourceConfig, Names: names}
}

func TestAggregateCountsAndSorts(t *testing.T) {
	got := Aggregate([]types.Resolution{
		configResolution("1", "Bracket Left", "Bracket Right"),
		configResolution("1", "Bracket Left", "Bracket Right"),
		configResolution("2", "axle"),
	})
	want := []types.BOMEntry{
		{Name: "axle", Quantity: 1},
		{Name: "Bracket Left", Quantity: 2},
		{Name: "Bracket Right", Quantity: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestAggregateCaseVariantsStayDistinct(t *testing.T) {
	// Names differing only in case count separately and keep their
	// first-appearance order under the case-insensitive sort.
	got := Aggregate([]types.Resolution{
		configResolution("1", "Base"),
		configResolution("2", "base"),
		configResolution("1", "Base"),
	})
	want := []types.BOMEntry{
		{Name: "Base", Quantity: 2},
		{Name: "base", Quantity: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestAggregateOrderInsensitiveCounts(t *testing.T) {
	forward := Aggregate([]types.Resolution{
		configResolution("1", "Widget"),
		configResolution("2", "Axle"),
		configResolution("1", "Widget"),
	})
	reversed := Aggregate([]types.Resolution{
		configResolution("1", "Widget"),
		configResolution("1", "Widget"),
		configResolution("2", "Axle"),
	})
	if diff := cmp.Diff(forward, reversed); diff != "" {
		t.Fatalf("aggregation depends on duplicate order (-forward +reversed):\n%s", diff)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}
