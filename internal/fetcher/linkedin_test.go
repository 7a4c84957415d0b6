package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedInClientFetchProfilePage(t *testing.T) {
	var gotUA, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	client := NewLinkedInClient("", "", 5*time.Second)
	html, err := client.FetchProfilePage(context.Background(), server.URL+"/in/alice")
	require.NoError(t, err)

	assert.Equal(t, "<html>ok</html>", html)
	assert.Equal(t, DefaultUserAgent, gotUA)
	assert.Equal(t, DefaultAcceptLanguage, gotLang)
}

func TestLinkedInClientBlocked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(999)
	}))
	defer server.Close()

	_, err := NewLinkedInClient("bot", "en", 5*time.Second).FetchProfilePage(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrBlocked)
}

func TestLinkedInClientHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewLinkedInClient("", "", 5*time.Second).FetchProfilePage(context.Background(), server.URL)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBlocked)
	assert.Contains(t, err.Error(), "status 404")
}

func TestLinkedInClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := NewLinkedInClient("", "", 20*time.Millisecond).FetchProfilePage(context.Background(), server.URL)
	assert.Error(t, err)
}
