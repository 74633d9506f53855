package news

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchArticleOpenGraph(t *testing.T) {
	srv := htmlServer(t, `<html><head>
		<title>fallback title</title>
		<meta property="og:title" content="Monsoon outlook improves for kharif sowing">
		<meta property="og:description" content="Early rains lift planting prospects across key districts.">
		<meta property="article:published_time" content="2026-08-20T09:30:00Z">
	</head><body><p>short</p></body></html>`)

	a, err := FetchArticle(srv.URL, "weather")
	require.NoError(t, err)
	assert.Equal(t, "Monsoon outlook improves for kharif sowing", a.Title)
	assert.Equal(t, "Early rains lift planting prospects across key districts.", a.Summary)
	assert.Equal(t, "weather", a.Category)
	assert.Equal(t, srv.URL, a.SourceURL)
	want, _ := time.Parse(time.RFC3339, "2026-08-20T09:30:00Z")
	assert.True(t, a.PublishedAt.Equal(want))
}

func TestFetchArticleFallbacks(t *testing.T) {
	srv := htmlServer(t, `<html><head><title>Wheat prices steady</title></head><body>
		<p>hi</p>
		<p>Wheat prices held steady this week as arrivals matched demand in the major producing regions of the country.</p>
	</body></html>`)

	a, err := FetchArticle(srv.URL, "market")
	require.NoError(t, err)
	assert.Equal(t, "Wheat prices steady", a.Title)
	assert.Contains(t, a.Summary, "held steady")
	assert.WithinDuration(t, time.Now(), a.PublishedAt, time.Minute)
}

func TestFetchArticleNoTitle(t *testing.T) {
	srv := htmlServer(t, `<html><head></head><body><p>nothing here</p></body></html>`)
	_, err := FetchArticle(srv.URL, "general")
	assert.Error(t, err)
}

func TestFetchArticleBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	_, err := FetchArticle(srv.URL, "general")
	assert.Error(t, err)
}

func TestParseSources(t *testing.T) {
	got := ParseSources("market|https://a.example/p1, https://b.example/p2 ,,weather|https://c.example/p3")
	require.Len(t, got, 3)
	assert.Equal(t, Source{"market", "https://a.example/p1"}, got[0])
	assert.Equal(t, Source{"general", "https://b.example/p2"}, got[1])
	assert.Equal(t, Source{"weather", "https://c.example/p3"}, got[2])
}
