package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSampleModel(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleModelYAML), 0o644))
	return path
}

func TestPropagateCmd_PrintsSummariesAsJSON(t *testing.T) {
	cmd := newPropagateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--model", writeSampleModel(t), "--samples", "20"})

	require.NoError(t, cmd.Execute())
	assert.True(t, json.Valid(out.Bytes()))
	assert.Contains(t, out.String(), `"headcount"`)
}

func TestPropagateCmd_RequiresModelFlag(t *testing.T) {
	cmd := newPropagateCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestPropagateCmd_RejectsMalformedIntervention(t *testing.T) {
	cmd := newPropagateCmd()
	cmd.SetArgs([]string{"--model", writeSampleModel(t), "--set", "budget"})
	err := cmd.Execute()
	assert.Error(t, err)
}
