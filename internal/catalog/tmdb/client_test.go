package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmcdole/moviehouse/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient(Config{BaseURL: server.URL + "/", APIKey: "test-key"}, nil)
	c.retryDelay = time.Millisecond
	return c
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClient_DiscoverEncodesFullCriteria(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[
			{"id":5,"title":"Dune","poster_path":"/dune.jpg","vote_average":7.8,"overview":"Spice.","release_date":"2021-09-15","genre_ids":[878]},
			{"id":6,"title":"","original_title":"Solaris","poster_path":null,"vote_average":7.1,"overview":""}
		]}`))
	})

	criteria := domain.Criteria{SearchText: "sand", SortKey: domain.SortRatingAsc, GenreID: 878}
	movies, err := c.Discover(testContext(t), criteria, 1)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	if gotPath != "/discover/movie" {
		t.Fatalf("path = %q, want /discover/movie", gotPath)
	}
	want := map[string]string{
		"api_key":     "test-key",
		"sort_by":     "vote_average.asc",
		"page":        "1",
		"with_genres": "878",
		"query":       "sand",
	}
	for k, v := range want {
		if gotQuery.Get(k) != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery.Get(k), v)
		}
	}

	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[0].ID != 5 || movies[0].PosterPath != "/dune.jpg" || movies[0].VoteAverage != 7.8 {
		t.Fatalf("movie[0] = %#v", movies[0])
	}
	if movies[1].Title != "Solaris" || movies[1].HasPoster() {
		t.Fatalf("movie[1] = %#v, want original title fallback and no poster", movies[1])
	}
}

func TestClient_DiscoverOmitsEmptyGenre(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	movies, err := c.Discover(testContext(t), domain.DefaultCriteria(), 0)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(movies) != 0 {
		t.Fatalf("got %d movies, want 0", len(movies))
	}
	if gotQuery.Has("with_genres") {
		t.Fatalf("with_genres sent for empty genre: %q", gotQuery.Get("with_genres"))
	}
	if gotQuery.Get("sort_by") != "popularity.desc" || gotQuery.Get("page") != "1" {
		t.Fatalf("query = %v, want default sort and page 1", gotQuery)
	}
}

func TestClient_SearchSendsOnlyQuery(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"results":[{"id":1,"title":"Alien"}]}`))
	})

	movies, err := c.Search(testContext(t), "alien")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if gotPath != "/search/movie" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery.Get("query") != "alien" || gotQuery.Get("api_key") != "test-key" {
		t.Fatalf("query = %v", gotQuery)
	}
	if gotQuery.Has("sort_by") || gotQuery.Has("with_genres") {
		t.Fatalf("search sent discover parameters: %v", gotQuery)
	}
	if len(movies) != 1 || movies[0].Title != "Alien" {
		t.Fatalf("movies = %#v", movies)
	}
}

func TestClient_Genres(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":18,"name":"Drama"}]}`))
	})

	genres, err := c.Genres(testContext(t))
	if err != nil {
		t.Fatalf("Genres returned error: %v", err)
	}
	if len(genres) != 2 || genres[1].Name != "Drama" {
		t.Fatalf("genres = %#v", genres)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"status_message":"Invalid API key"}`, domain.ErrAuthFailed},
		{"not found", http.StatusNotFound, `{"status_message":"gone"}`, domain.ErrNetwork},
		{"garbage body", http.StatusOK, `<html>`, domain.ErrMalformedResponse},
		{"missing results", http.StatusOK, `{"page":1}`, domain.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Search(testContext(t), "x")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"genres":[]}`))
	})

	if _, err := c.Genres(testContext(t)); err != nil {
		t.Fatalf("Genres returned error: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want 3", calls.Load())
	}
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Genres(testContext(t))
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	if calls.Load() != maxRetries+1 {
		t.Fatalf("calls = %d, want %d", calls.Load(), maxRetries+1)
	}
}

func TestClient_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	c := NewClient(Config{BaseURL: server.URL, APIKey: "k"}, nil)
	_, err := c.Genres(testContext(t))
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
}

func TestMoviePageURL(t *testing.T) {
	if got := MoviePageURL(438631); got != "https://www.themoviedb.org/movie/438631" {
		t.Fatalf("MoviePageURL = %q", got)
	}
}

func TestClient_MissingAPIKey(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL}, nil)
	_, err := c.Genres(testContext(t))
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if called {
		t.Fatal("expected no request without an API key")
	}
}
