package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smake-dev/smake/internal/state"
)

func sampleState() *state.BuildState {
	st := state.NewBuildState("app.db")
	st.Record("schema/01_customers.sql", state.Checksum("CREATE TABLE c (x INT);"), "all")
	st.Record("seed/seed.sql", state.Checksum("INSERT INTO c VALUES (1);"), "all")
	return st
}

func TestValidFormat(t *testing.T) {
	require.True(t, ValidFormat("text"))
	require.True(t, ValidFormat("json"))
	require.False(t, ValidFormat("html"))
	require.Equal(t, []string{"text", "json"}, SupportedFormats())
}

func TestGetFormatterUnknown(t *testing.T) {
	_, err := GetFormatter("yaml")
	require.Error(t, err)
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatToWriter(sampleState(), FormatJSON, &buf))

	var decoded state.BuildState
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "app.db", decoded.Database)
	require.Len(t, decoded.Scripts, 2)
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatToWriter(sampleState(), FormatText, &buf))

	out := buf.String()
	require.Contains(t, out, "Database: app.db")
	require.Contains(t, out, "schema/01_customers.sql")
	require.Contains(t, out, "target=all")
}

func TestTextReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatToWriter(state.NewBuildState("app.db"), FormatText, &buf))
	require.Contains(t, buf.String(), "No scripts built yet")
}
