package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedInProfileURL(t *testing.T) {
	testCases := []struct {
		public string
		want   string
	}{
		{"https://www.linkedin.com/in/alice-martin", "https://www.linkedin.com/in/alice-martin"},
		{"www.linkedin.com/in/bob", "https://www.linkedin.com/in/bob"},
		{"charlie", "https://www.linkedin.com/in/charlie"},
		{"", "https://www.linkedin.com/in/"},
		{"https://www.linkedin.com/in/dana/", "https://www.linkedin.com/in/"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, LinkedInProfileURL(tc.public), "LinkedInProfileURL(%q)", tc.public)
	}
}

func TestExtractLinkedInID(t *testing.T) {
	assert.Equal(t, "alice", ExtractLinkedInID("https://www.linkedin.com/in/alice/?trk=x"))
	assert.Equal(t, "bob", ExtractLinkedInID("https://fr.linkedin.com/in/bob?originalSubdomain=fr"))
	assert.Equal(t, "", ExtractLinkedInID("https://example.com/alice"))
}

func TestIsLinkedInURL(t *testing.T) {
	assert.True(t, IsLinkedInURL("https://www.linkedin.com/in/alice"))
	assert.True(t, IsLinkedInURL("https://fr.LinkedIn.com/in/alice"))
	assert.False(t, IsLinkedInURL("https://example.com/linkedin.com/in/alice"))
	assert.False(t, IsLinkedInURL("not a url"))
}
