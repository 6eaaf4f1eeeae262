package browser

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/mmcdole/moviehouse/internal/domain"
)

func TestNew_DefaultsInvalidSortKey(t *testing.T) {
	s := New(domain.Criteria{SortKey: "bogus"}, nil)
	if s.Criteria.SortKey != domain.SortPopularityDesc {
		t.Fatalf("SortKey = %q, want popularity.desc", s.Criteria.SortKey)
	}
	if s.Favorites == nil {
		t.Fatalf("Favorites = nil, want empty")
	}
}

func TestCriteriaChangesIssueOneDiscoverWithFullTuple(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)

	req, ok := s.SetSortKey(domain.SortRatingDesc)
	if !ok || req.Kind != RequestDiscover {
		t.Fatalf("SetSortKey = %+v, %v", req, ok)
	}
	if req.Criteria != (domain.Criteria{SortKey: domain.SortRatingDesc}) {
		t.Fatalf("criteria = %+v", req.Criteria)
	}

	req, ok = s.SetGenre(28)
	if !ok || req.Criteria != (domain.Criteria{SortKey: domain.SortRatingDesc, GenreID: 28}) {
		t.Fatalf("SetGenre = %+v, %v", req, ok)
	}

	req, ok = s.SetSearchText("dune")
	want := domain.Criteria{SearchText: "dune", SortKey: domain.SortRatingDesc, GenreID: 28}
	if !ok || req.Criteria != want || req.Kind != RequestDiscover {
		t.Fatalf("SetSearchText = %+v, %v; want %+v", req, ok, want)
	}
	if req.Seq != 3 {
		t.Fatalf("Seq = %d, want 3 after three changes", req.Seq)
	}
}

func TestUnchangedCriteriaIssueNothing(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)

	if _, ok := s.SetSortKey(domain.SortPopularityDesc); ok {
		t.Fatalf("SetSortKey(same) issued a request")
	}
	if _, ok := s.SetSortKey("title.asc"); ok {
		t.Fatalf("SetSortKey(invalid) issued a request")
	}
	if _, ok := s.SetGenre(domain.AllGenres); ok {
		t.Fatalf("SetGenre(same) issued a request")
	}
	if _, ok := s.SetSearchText(""); ok {
		t.Fatalf("SetSearchText(same) issued a request")
	}
	if s.Loading {
		t.Fatalf("Loading = true with no request issued")
	}
}

func TestSubmitSearchUsesSearchText(t *testing.T) {
	s := New(domain.Criteria{SearchText: "alien", SortKey: domain.SortReleaseDateAsc, GenreID: 27}, nil)

	req := s.SubmitSearch()
	if req.Kind != RequestSearch {
		t.Fatalf("Kind = %v, want search", req.Kind)
	}
	if req.Criteria.SearchText != "alien" {
		t.Fatalf("SearchText = %q", req.Criteria.SearchText)
	}
}

func TestStaleResponsesAreDiscarded(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)

	first, _ := s.SetSearchText("a")
	second, _ := s.SetSearchText("al")

	if !s.ApplyResults(second.Seq, []domain.Movie{{ID: 2}}) {
		t.Fatalf("latest response rejected")
	}
	if s.ApplyResults(first.Seq, []domain.Movie{{ID: 1}}) {
		t.Fatalf("stale response applied")
	}
	if len(s.Results) != 1 || s.Results[0].ID != 2 {
		t.Fatalf("Results = %v, want the second response", s.Results)
	}
	if s.Loading {
		t.Fatalf("Loading = true after latest response")
	}
}

func TestSearchAndDiscoverRace(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)

	discover, _ := s.SetSearchText("x")
	search := s.SubmitSearch()

	if s.ApplyResults(discover.Seq, []domain.Movie{{ID: 1}}) {
		t.Fatalf("discover response applied after a later search was issued")
	}
	if !s.ApplyResults(search.Seq, []domain.Movie{{ID: 9}}) {
		t.Fatalf("search response rejected")
	}
}

func TestApplyErrorKeepsResults(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)
	req := s.Refresh()
	s.ApplyResults(req.Seq, []domain.Movie{{ID: 1}})

	req = s.Refresh()
	if !s.ApplyError(req.Seq, fmt.Errorf("wrap: %w", domain.ErrNetwork)) {
		t.Fatalf("ApplyError rejected latest seq")
	}
	if len(s.Results) != 1 {
		t.Fatalf("Results changed on error: %v", s.Results)
	}
	if !strings.Contains(s.Notice, "Could not reach") {
		t.Fatalf("Notice = %q", s.Notice)
	}

	req = s.Refresh()
	s.ApplyResults(req.Seq, nil)
	if s.Notice != "" {
		t.Fatalf("Notice = %q after success, want cleared", s.Notice)
	}
}

func TestApplyErrorStaleIgnored(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)
	old := s.Refresh()
	s.Refresh()

	if s.ApplyError(old.Seq, errors.New("boom")) {
		t.Fatalf("stale error applied")
	}
	if s.Notice != "" {
		t.Fatalf("Notice = %q", s.Notice)
	}
}

func TestFavoritesExample(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)
	dune := domain.Movie{ID: 5, Title: "Dune"}

	added, _ := s.AddFavorite(dune)
	if !added || !reflect.DeepEqual(s.Favorites.IDs(), []int{5}) {
		t.Fatalf("after add: added=%v favorites=%v", added, s.Favorites.IDs())
	}
	if s.Toast.Text != `"Dune" added to favorites` || !s.Toast.Visible || s.Toast.Level != ToastSuccess {
		t.Fatalf("toast = %+v", s.Toast)
	}

	added, _ = s.AddFavorite(dune)
	if added || len(s.Favorites) != 1 {
		t.Fatalf("duplicate add changed favorites: %v", s.Favorites.IDs())
	}
	if s.Toast.Text != `"Dune" already in favorites` || s.Toast.Level != ToastWarning {
		t.Fatalf("toast = %+v", s.Toast)
	}

	if !s.RemoveFavorite(5) || len(s.Favorites) != 0 {
		t.Fatalf("RemoveFavorite(5) left %v", s.Favorites.IDs())
	}
}

func TestRemoveAbsentFavoriteIsSilent(t *testing.T) {
	s := New(domain.DefaultCriteria(), domain.Favorites{{ID: 1}})
	before := s.Toast

	if s.RemoveFavorite(99) {
		t.Fatalf("RemoveFavorite(99) = true")
	}
	if len(s.Favorites) != 1 {
		t.Fatalf("Favorites = %v", s.Favorites.IDs())
	}
	if s.Toast != before {
		t.Fatalf("toast changed on no-op remove: %+v", s.Toast)
	}
}

func TestToastHideOnlyForLatest(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)

	_, first := s.AddFavorite(domain.Movie{ID: 1, Title: "A"})
	_, second := s.AddFavorite(domain.Movie{ID: 2, Title: "B"})

	if s.HideToast(first) {
		t.Fatalf("hide for superseded toast took effect")
	}
	if !s.Toast.Visible || s.Toast.Text != `"B" added to favorites` {
		t.Fatalf("toast = %+v", s.Toast)
	}
	if !s.HideToast(second) {
		t.Fatalf("hide for current toast ignored")
	}
	if s.Toast.Visible {
		t.Fatalf("toast still visible")
	}
	if s.HideToast(second) {
		t.Fatalf("second hide reported a change")
	}
}

func TestToggleDescription(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)

	s.ToggleDescription(1)
	s.ToggleDescription(2)
	if s.IsExpanded(1) || !s.IsExpanded(2) {
		t.Fatalf("ExpandedID = %d, want only 2 expanded", s.ExpandedID)
	}

	s.ToggleDescription(2)
	if s.ExpandedID != 0 {
		t.Fatalf("ExpandedID = %d, want collapsed", s.ExpandedID)
	}
}

func TestOverviewTruncation(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)
	long := domain.Movie{ID: 7, Overview: strings.Repeat("a", 150) + strings.Repeat("b", 50)}

	collapsed := s.Overview(long)
	if collapsed != strings.Repeat("a", 150)+"..." {
		t.Fatalf("collapsed = %q", collapsed)
	}

	s.ToggleDescription(7)
	if got := s.Overview(long); got != long.Overview || len([]rune(got)) != 200 {
		t.Fatalf("expanded overview length = %d, want 200", len([]rune(got)))
	}
}

func TestTruncateOverview(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 150, "short..."},
		{"", 150, "..."},
		{"héllo wörld", 5, "héllo..."},
		{"abcdef", 6, "abcdef..."},
	}
	for _, tt := range tests {
		if got := TruncateOverview(tt.in, tt.limit); got != tt.want {
			t.Errorf("TruncateOverview(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestGenreLabel(t *testing.T) {
	s := New(domain.DefaultCriteria(), nil)
	if got := s.GenreLabel(); got != "All Genres" {
		t.Fatalf("GenreLabel = %q", got)
	}
	s.SetGenres([]domain.Genre{{ID: 28, Name: "Action"}})
	s.SetGenre(28)
	if got := s.GenreLabel(); got != "Action" {
		t.Fatalf("GenreLabel = %q", got)
	}
	s.SetGenre(99)
	if got := s.GenreLabel(); got != "Genre 99" {
		t.Fatalf("GenreLabel = %q", got)
	}
}
