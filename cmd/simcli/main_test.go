package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "simcli version "+version)
}

func TestRootCommand_RegistersAllSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range []string{"version", "propagate", "analyze", "serve"} {
		names[c] = true
	}
	got := map[string]bool{
		newVersionCmd().Use:   true,
		newPropagateCmd().Use: true,
		newAnalyzeCmd().Use:   true,
		newServeCmd().Use:     true,
	}
	assert.Equal(t, names, got)
}
