package domain

// Favorites is an ordered, duplicate-free (by ID) list of movies.
// Methods never modify the receiver's backing array; they return a new slice.
type Favorites []Movie

// Index returns the position of the movie with the given ID, or -1
func (f Favorites) Index(id int) int {
	for i, m := range f {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a movie with the given ID is present
func (f Favorites) Contains(id int) bool {
	return f.Index(id) >= 0
}

// Add appends movie if its ID is not present.
// Returns the resulting list and whether it changed.
func (f Favorites) Add(movie Movie) (Favorites, bool) {
	if f.Contains(movie.ID) {
		return f, false
	}
	out := make(Favorites, len(f), len(f)+1)
	copy(out, f)
	return append(out, movie), true
}

// Remove drops the movie with the given ID.
// Returns the resulting list and whether it changed.
func (f Favorites) Remove(id int) (Favorites, bool) {
	idx := f.Index(id)
	if idx < 0 {
		return f, false
	}
	out := make(Favorites, 0, len(f)-1)
	out = append(out, f[:idx]...)
	return append(out, f[idx+1:]...), true
}

// Dedupe drops repeated IDs, keeping the first occurrence
func (f Favorites) Dedupe() Favorites {
	seen := make(map[int]bool, len(f))
	out := make(Favorites, 0, len(f))
	for _, m := range f {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

// IDs returns the movie IDs in order
func (f Favorites) IDs() []int {
	ids := make([]int, len(f))
	for i, m := range f {
		ids[i] = m.ID
	}
	return ids
}
