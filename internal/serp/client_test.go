package serp

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

func newTestClient(transport *httpmock.MockTransport) *Client {
	return New("test-key", 100, 10).WithHTTPClient(&http.Client{Transport: transport})
}

func TestDirectorySearch(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://serpapi.com/search",
		httpmock.NewStringResponder(200, `{
			"local_results": [
				{"title": "Acme Spa", "phone": "+1-555-0100", "rating": 4.6, "reviews": 120},
				{"title": "Rival Spa", "website": "https://rival.example", "phone": "+1-555-0101", "rating": 4.8, "reviews": 300},
				{"title": "Unrated Spa", "phone": "+1-555-0102"}
			]
		}`))

	c := newTestClient(transport)
	got, err := c.DirectorySearch(context.Background(), "Aesthetic Spa in Miami, FL")
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "Acme Spa", got[0].Name)
	require.False(t, got[0].HasWebsite)
	require.Equal(t, "+1-555-0100", got[0].Phone)
	require.NotNil(t, got[0].Rating)
	require.InDelta(t, 4.6, *got[0].Rating, 1e-9)
	require.Equal(t, 120, got[0].ReviewCount)

	require.True(t, got[1].HasWebsite)

	require.Nil(t, got[2].Rating, "missing rating stays nil")
}

func TestDirectorySearchEmptyResults(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://serpapi.com/search",
		httpmock.NewStringResponder(200, `{}`))

	c := newTestClient(transport)
	got, err := c.DirectorySearch(context.Background(), "anything")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDirectorySearchServerError(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://serpapi.com/search",
		httpmock.NewStringResponder(500, "boom"))

	c := newTestClient(transport)
	_, err := c.DirectorySearch(context.Background(), "anything")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestDirectorySearchBadJSON(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://serpapi.com/search",
		httpmock.NewStringResponder(200, "<html>not json</html>"))

	c := newTestClient(transport)
	_, err := c.DirectorySearch(context.Background(), "anything")
	require.Error(t, err)
}

func TestTextSearchReturnsRawBody(t *testing.T) {
	body := `{"organic_results":[{"snippet":"contact sales@example.co.uk"}]}`
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://serpapi.com/search",
		httpmock.NewStringResponder(200, body))

	c := newTestClient(transport)
	got, err := c.TextSearch(context.Background(), `"Acme Spa" Miami, FL email contact`)
	require.NoError(t, err)
	require.Equal(t, body, string(got))
}
