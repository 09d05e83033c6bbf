package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatAcceptsNumbersAndStrings(t *testing.T) {
	got, err := ParseFloat(12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = ParseFloat("12.5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)
}

func TestParseFloatRejectsGarbage(t *testing.T) {
	_, err := ParseFloat("twelve")
	assert.Error(t, err)

	_, err = ParseFloat(nil)
	assert.Error(t, err)

	_, err = ParseFloat([]string{"12"})
	assert.Error(t, err)
}

func TestParseDateLayouts(t *testing.T) {
	got, err := ParseDate("2025-06-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC), got)

	got, err = ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("June first")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
