package record

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMixedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"level":"info","msg":"started","port":8080,"ok":true}`,
		`plain text line`,
		`{"broken json`,
		`{"msg":"nested","ctx":{"a":1}}`,
	}, "\n")

	recs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 4)

	require.Equal(t, 0, recs[0].Index)
	require.Equal(t, "started", recs[0].Field("msg"))
	require.Equal(t, "8080", recs[0].Field("port"))
	require.Equal(t, "true", recs[0].Field("ok"))
	require.Equal(t, "started", recs[0].Summary())
	require.Equal(t, "info", recs[0].Level())

	require.Equal(t, "plain text line", recs[1].Field("line"))
	require.Equal(t, "plain text line", recs[1].Summary())
	require.Equal(t, "", recs[1].Level())

	// Malformed JSON degrades to a plain line, never an error.
	require.Equal(t, `{"broken json`, recs[2].Field("line"))

	require.Equal(t, `{"a":1}`, recs[3].Field("ctx"))
}

func TestParseEmptyInput(t *testing.T) {
	recs, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestParseKeepsBlankInteriorLines(t *testing.T) {
	recs, err := Parse(strings.NewReader("a\n\nb\n"))
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "", recs[1].Raw)
	// A trailing newline does not produce a phantom record.
	require.Equal(t, "b", recs[2].Raw)
}

func TestLevelNormalization(t *testing.T) {
	cases := map[string]string{
		"INFO":    "info",
		"Warning": "warn",
		"err":     "error",
		"FATAL":   "fatal",
		"verbose": "",
	}
	for in, want := range cases {
		r := Record{Fields: map[string]string{"level": in}}
		require.Equal(t, want, r.Level(), "level %q", in)
	}

	r := Record{Fields: map[string]string{"severity": "ERROR"}}
	require.Equal(t, "error", r.Level())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recs.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(`{"msg":"one"}`+"\n"), 0o644))

	recs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "one", recs[0].Summary())

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
