package roster_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbrawl/arenasim/internal/game/roster"
)

func TestLoadFromBytes_ParsesManifest(t *testing.T) {
	parts, err := roster.LoadFromBytes([]byte(`
roster:
  - id: abc-123
    name: juggernaut
    image: images/juggernaut.png
  - id: def-456
    name: comet
    image: images/comet.png
`))
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "abc-123", parts[0].ID)
	assert.Equal(t, "juggernaut", parts[0].Name)
	assert.Equal(t, "images/juggernaut.png", parts[0].ImageRef)
	assert.Equal(t, "comet", parts[1].Name)
}

func TestLoadFromBytes_AssignsMissingIDsAndNames(t *testing.T) {
	parts, err := roster.LoadFromBytes([]byte(`
roster:
  - image: images/anon.png
`))
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.NotEmpty(t, parts[0].ID, "missing id gets a fresh UUID")
	assert.Equal(t, parts[0].ID, parts[0].Name, "missing name defaults to the id")
}

func TestLoadFromBytes_RejectsDuplicateIDs(t *testing.T) {
	_, err := roster.LoadFromBytes([]byte(`
roster:
  - id: dup
  - id: dup
`))
	assert.Error(t, err)
}

func TestLoadFromBytes_RejectsMalformedYAML(t *testing.T) {
	_, err := roster.LoadFromBytes([]byte("roster: [pile of ::: nonsense"))
	assert.Error(t, err)
}

func TestLoadFromBytes_CapsOversizedRoster(t *testing.T) {
	manifest := "roster:\n"
	for i := 0; i < roster.MaxEntries+1; i++ {
		manifest += fmt.Sprintf("  - id: entry-%d\n", i)
	}
	parts, err := roster.LoadFromBytes([]byte(manifest))
	require.NoError(t, err)
	assert.Len(t, parts, roster.MaxEntries, "entries past the cap are ignored")
	assert.Equal(t, "entry-0", parts[0].ID, "order of the kept prefix is preserved")
	assert.Equal(t, fmt.Sprintf("entry-%d", roster.MaxEntries-1), parts[len(parts)-1].ID)
}

func TestCap(t *testing.T) {
	small := roster.Generate(3)
	assert.Len(t, roster.Cap(small), 3)

	big := roster.Generate(roster.MaxEntries + 50)
	capped := roster.Cap(big)
	assert.Len(t, capped, roster.MaxEntries)
	assert.Equal(t, big[0].ID, capped[0].ID)
}

func TestGenerate_UniqueIDs(t *testing.T) {
	parts := roster.Generate(100)
	require.Len(t, parts, 100)
	seen := make(map[string]bool)
	for _, p := range parts {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
	}
}

func TestWriteFile_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	want := roster.Generate(5)
	require.NoError(t, roster.WriteFile(path, want))

	got, err := roster.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := roster.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
