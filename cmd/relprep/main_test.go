package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recview/recview/internal/manifest"
)

func writeManifest(t *testing.T, dir, version string) string {
	t.Helper()
	path := filepath.Join(dir, "manifest.json")
	src := `{"name": "widget", "version": "` + version + `"}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func runRelprep(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGateSkipsOutsideProduction(t *testing.T) {
	t.Setenv(envKey, "development")
	path := writeManifest(t, t.TempDir(), "1.0.2")

	out, err := runRelprep(t, "bump", "-m", path)
	require.NoError(t, err, "skipping is a success for build pipelines")
	require.Contains(t, out, "skipped")
	require.Contains(t, out, `RELPREP_ENV="development"`)

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.Equal(t, "1.0.2", m.Version, "skipped run must not touch the manifest")
}

func TestGateForceOverride(t *testing.T) {
	t.Setenv(envKey, "")
	path := writeManifest(t, t.TempDir(), "1.0.2")

	out, err := runRelprep(t, "bump", "-m", path, "--force")
	require.NoError(t, err)
	require.Contains(t, out, "1.0.2 -> 1.0.3")

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.Equal(t, "1.0.3", m.Version)
}

func TestGateProductionRuns(t *testing.T) {
	t.Setenv(envKey, "production")
	path := writeManifest(t, t.TempDir(), "2.1.9")

	out, err := runRelprep(t, "bump", "-m", path, "--level", "minor")
	require.NoError(t, err)
	require.NotContains(t, out, "skipped")

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.Equal(t, "2.2.0", m.Version)
}

func TestFinishPrunesThenBumps(t *testing.T) {
	t.Setenv(envKey, "production")
	dir := t.TempDir()
	path := writeManifest(t, dir, "1.0.2")

	dist := filepath.Join(dir, "dist")
	for _, name := range []string{"1.0.2", "1.0.1", "assets"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dist, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dist, "stray.log"), []byte("x"), 0o644))

	out, err := runRelprep(t, "finish", "-m", path, "-d", dist, "--keep", "assets")
	require.NoError(t, err)
	require.Contains(t, out, "removed "+dist+"/1.0.1")
	require.Contains(t, out, "removed "+dist+"/stray.log")
	require.Contains(t, out, "1.0.2 -> 1.0.3")

	require.DirExists(t, filepath.Join(dist, "1.0.2"))
	require.DirExists(t, filepath.Join(dist, "assets"))
	require.NoDirExists(t, filepath.Join(dist, "1.0.1"))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.Equal(t, "1.0.3", m.Version)
}
