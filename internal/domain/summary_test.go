package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIndicator(t *testing.T) {
	assert.Equal(t, IndicatorNone, ParseIndicator("none"))
	assert.Equal(t, IndicatorMinor, ParseIndicator("minor"))
	assert.Equal(t, IndicatorMajor, ParseIndicator("major"))
	assert.Equal(t, IndicatorCritical, ParseIndicator("critical"))

	assert.Equal(t, IndicatorUnknown, ParseIndicator(""))
	assert.Equal(t, IndicatorUnknown, ParseIndicator("apocalyptic"))
}

func TestSummary_HasActive(t *testing.T) {
	assert.False(t, (&Summary{}).HasActive())
	assert.True(t, (&Summary{Active: []Incident{{Name: "x"}}}).HasActive())
}
