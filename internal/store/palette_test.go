package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/swatchpicker/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "brand.yaml")
	want := NamedPalette{Name: "reference", Palette: picker.DefaultPalette()}

	require.NoError(t, SavePalette(path, want))

	got, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, "reference", got.Name)
	assert.Equal(t, want.Palette.Hexes(), got.Palette.Hexes())
}

func TestLoadPalette_NormalizesAndDefaultsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("swatches:\n  - \"#f99221\"\n  - \"#b85d0d\"\n"), 0644))

	got, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, "warm.yaml", got.Name)
	assert.Equal(t, []string{"#F99221", "#B85D0D"}, got.Palette.Hexes())
}

func TestLoadPalette_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPalette(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("swatches: [\"#12345\"]\n"), 0644))
	_, err = LoadPalette(bad)
	assert.ErrorIs(t, err, picker.ErrInvalidFormat)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: nothing\n"), 0644))
	_, err = LoadPalette(empty)
	assert.ErrorIs(t, err, picker.ErrInvalidConfig)

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("swatches: {: ["), 0644))
	_, err = LoadPalette(garbage)
	assert.Error(t, err)
}
