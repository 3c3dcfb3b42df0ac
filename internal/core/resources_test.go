package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestResourceNames(t *testing.T) {
	doc, err := ParseDocument([]byte(`<model>
  <resources>
    <object id="1" name="Base.STL"/>
    <object id="2" name="Lid"/>
    <object id="3"/>
    <object name="NoID.stl"/>
    <object id="4" name=""/>
  </resources>
  <build/>
</model>`))
	require.NoError(t, err)

	got := ResourceNames(doc)
	want := map[string]string{
		"1": "Base",
		"2": "Lid",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
}

func TestResourceNamesIgnoresMetadata(t *testing.T) {
	// Only the declared name attribute counts here; metadata elements are
	// the configuration resolver's business.
	doc, err := ParseDocument([]byte(`<model>
  <resources>
    <object id="1"><metadata key="name" value="FromMetadata.stl"/></object>
  </resources>
</model>`))
	require.NoError(t, err)

	got := ResourceNames(doc)
	if diff := cmp.Diff(map[string]string{}, got); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
}

func TestResourceNamesNoResourcesSection(t *testing.T) {
	doc, err := ParseDocument([]byte(`<model><build/></model>`))
	require.NoError(t, err)

	got := ResourceNames(doc)
	if diff := cmp.Diff(map[string]string{}, got); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
}
