package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBumpVersion(t *testing.T) {
	cases := []struct {
		v     string
		level Level
		want  string
	}{
		{"1.2.3", Patch, "1.2.4"},
		{"1.2.3", Minor, "1.3.0"},
		{"1.2.3", Major, "2.0.0"},
		{"1.2.3", "", "1.2.4"},
		{"0.9", Patch, "0.9.1"},
		{"2", Major, "3.0.0"},
	}
	for _, tc := range cases {
		got, err := BumpVersion(tc.v, tc.level)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s %s", tc.v, tc.level)
	}
}

func TestBumpVersionRejectsMalformed(t *testing.T) {
	for _, v := range []string{"", "a.b.c", "1.2.3.4", "1.-2.3", "1.2.3-rc1"} {
		_, err := BumpVersion(v, Patch)
		require.Error(t, err, "version %q", v)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	src := `{
  "name": "widget",
  "version": "1.0.0",
  "description": "a widget",
  "build": {"target": "es2020"}
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "widget", m.Name)
	require.Equal(t, "1.0.0", m.Version)

	next, err := m.Bump(Patch)
	require.NoError(t, err)
	require.Equal(t, "1.0.1", next)
	require.NoError(t, m.Save(path))

	// Unknown keys survive the rewrite.
	var out map[string]json.RawMessage
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &out))
	require.JSONEq(t, `"1.0.1"`, string(out["version"]))
	require.JSONEq(t, `"a widget"`, string(out["description"]))
	require.JSONEq(t, `{"target": "es2020"}`, string(out["build"]))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	noVersion := filepath.Join(dir, "nv.json")
	require.NoError(t, os.WriteFile(noVersion, []byte(`{"name":"x"}`), 0o644))
	_, err = Load(noVersion)
	require.ErrorContains(t, err, "missing version")

	badVersion := filepath.Join(dir, "bv.json")
	require.NoError(t, os.WriteFile(badVersion, []byte(`{"version":7}`), 0o644))
	_, err = Load(badVersion)
	require.ErrorContains(t, err, "not a string")
}

func TestPruneStale(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.0.0", "1.0.1", "1.0.2"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name, "assets"), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.log"), nil, 0o644))

	removed, err := PruneStale(dir, map[string]bool{"1.0.2": true})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"1.0.0", "1.0.1", "stray.log"}, removed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "1.0.2", entries[0].Name())
}

func TestPruneStaleMissingDir(t *testing.T) {
	removed, err := PruneStale(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	require.Empty(t, removed)
}
