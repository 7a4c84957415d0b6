package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLocale(t *testing.T) {
	l, err := LookupLocale(" EN ")
	require.NoError(t, err)
	assert.Equal(t, "Present", l.Present)

	_, err = LookupLocale("de")
	assert.ErrorContains(t, err, "available: en, fr")
}

func TestLocalesNarrateEverySource(t *testing.T) {
	files := []string{"Profile.csv", "Positions.csv", "Education.csv", "Skills.csv",
		"Certifications.csv", "Languages.csv", "Projects.csv"}
	for _, code := range LocaleCodes() {
		l, err := LookupLocale(code)
		require.NoError(t, err)
		for _, f := range files {
			assert.NotEmpty(t, l.Text.Progress[f], "%s: %s", code, f)
		}
		assert.NotEmpty(t, l.Text.Summary, code)
		assert.Contains(t, l.Text.Saved, "%s", code)
		assert.Contains(t, l.Text.NextReview, "%s", code)
	}
	assert.NotEqual(t, LocaleFR.Text.Progress["Skills.csv"], LocaleEN.Text.Progress["Skills.csv"])
}
