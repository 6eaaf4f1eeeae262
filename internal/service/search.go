package service

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/moviehouse/internal/domain"
)

// RankResults orders search results by how well their titles match query.
// Equal scores keep the catalog's order.
func RankResults(movies []domain.Movie, query string) []domain.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(movies) == 0 || query == "" {
		return movies
	}

	type rankedMovie struct {
		movie domain.Movie
		score int
	}

	ranked := make([]rankedMovie, len(movies))
	for i, m := range movies {
		ranked[i] = rankedMovie{movie: m, score: calculateMatchScore(strings.ToLower(m.Title), query)}
	}

	// Sort by score (lower is better)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	results := make([]domain.Movie, len(ranked))
	for i, r := range ranked {
		results[i] = r.movie
	}
	return results
}

// calculateMatchScore calculates a match score for ranking
// Lower score = better match
func calculateMatchScore(title, query string) int {
	// Exact match is best
	if title == query {
		return 0
	}

	// Prefix match is very good
	if strings.HasPrefix(title, query) {
		return 10
	}

	// Contains match is good
	if strings.Contains(title, query) {
		return 50
	}

	// Subsequence match ("lotr" style) beats plain edit distance
	if fuzzy.MatchFold(query, title) {
		return 75
	}

	return 100 + fuzzy.LevenshteinDistance(query, title)
}
