package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publicProfileHTML = `<html><body>
<section class="top-card-layout">
  <h1 class="top-card-layout__title">  Alice Martin </h1>
  <div class="top-card-layout__headline">Développeuse Full Stack</div>
  <span class="top-card__subline-item">1 200 followers</span>
</section>
<div class="pv-text-details__left-panel">
  <span class="text-body-small">Paris, Île-de-France</span>
</div>
<section class="core-section-container__content"><p class="break-words">Passionnée par le web.</p></section>
</body></html>`

func TestProfileParserParse(t *testing.T) {
	parsed, err := NewProfileParser().Parse(publicProfileHTML)
	require.NoError(t, err)

	assert.Equal(t, "Alice Martin", parsed.Name)
	assert.Equal(t, "Développeuse Full Stack", parsed.Title)
	assert.Equal(t, "Paris, Île-de-France", parsed.Location)
	assert.Equal(t, "Passionnée par le web.", parsed.About)
}

func TestProfileParserFallbackSelectors(t *testing.T) {
	html := `<html><body>
<div class="pv-text-details__left-panel">
  <h1 class="text-heading-xlarge">Bob</h1>
  <div class="text-body-medium">Ops</div>
</div>
<div class="pv-about__summary-text">About Bob</div>
</body></html>`

	parsed, err := NewProfileParser().Parse(html)
	require.NoError(t, err)

	assert.Equal(t, "Bob", parsed.Name)
	assert.Equal(t, "Ops", parsed.Title)
	assert.Equal(t, "", parsed.Location)
	assert.Equal(t, "About Bob", parsed.About)
}

func TestProfileParserEmptyPage(t *testing.T) {
	parsed, err := NewProfileParser().Parse("<html><body><div id=\"app\"></div></body></html>")
	require.NoError(t, err)
	assert.Equal(t, ParsedPublicProfile{}, *parsed)
}
