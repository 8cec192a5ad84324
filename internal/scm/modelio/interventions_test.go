package modelio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterventions_EmptyStringYieldsNil(t *testing.T) {
	m, err := ParseInterventions("")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestParseInterventions_ParsesMultiplePairs(t *testing.T) {
	m, err := ParseInterventions("budget=500, headcount=12.5")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"budget": 500, "headcount": 12.5}, m)
}

func TestParseInterventions_RejectsMissingEquals(t *testing.T) {
	_, err := ParseInterventions("budget500")
	assert.Error(t, err)
}

func TestParseInterventions_RejectsNonNumericValue(t *testing.T) {
	_, err := ParseInterventions("budget=lots")
	assert.Error(t, err)
}
