package domain

// Track is a normalized catalog track. Identity is the opaque catalog ID.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artists    []string `json:"artists"`
	URI        string   `json:"uri"`
	PreviewURL string   `json:"preview_url,omitempty"`
	DurationMs int      `json:"duration_ms"`
}

// TrackList accumulates tracks while rejecting duplicate IDs and capping
// length. Use NewTrackList to set the bound.
type TrackList struct {
	limit  int
	seen   map[string]struct{}
	tracks []Track
}

// NewTrackList creates a list that never grows beyond limit entries.
func NewTrackList(limit int) *TrackList {
	return &TrackList{
		limit: limit,
		seen:  make(map[string]struct{}, limit),
	}
}

// Add appends t unless its ID was already seen or the list is full.
// It reports whether the track was kept. First-seen wins; later
// duplicates are dropped, not merged.
func (l *TrackList) Add(t Track) bool {
	if l.Full() {
		return false
	}
	if _, dup := l.seen[t.ID]; dup {
		return false
	}
	l.seen[t.ID] = struct{}{}
	l.tracks = append(l.tracks, t)
	return true
}

// Full reports whether the list reached its limit.
func (l *TrackList) Full() bool {
	return len(l.tracks) >= l.limit
}

// Len returns the number of accumulated tracks.
func (l *TrackList) Len() int {
	return len(l.tracks)
}

// Tracks returns the accumulated tracks in insertion order, truncated to
// the limit.
func (l *TrackList) Tracks() []Track {
	if len(l.tracks) > l.limit {
		return l.tracks[:l.limit]
	}
	return l.tracks
}
