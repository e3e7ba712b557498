// Package tracker remembers a baseline and the current content for every file
// an external agent has touched, and produces diffs on demand. Mutations must
// be invoked sequentially; the store does not serialize concurrent callers.
package tracker

import "difftrack/internal/diffcore"

type snapshot struct {
	baseline string
	current  string
}

// Store owns all file snapshots, keyed by resolved path, in first-tracked
// order. Snapshots are never removed; a dismissed file simply has
// baseline == current until the next edit.
type Store struct {
	files map[string]*snapshot
	order []string
}

func NewStore() *Store {
	return &Store{files: map[string]*snapshot{}}
}

// IsTracked reports whether path has a snapshot.
func (s *Store) IsTracked(path string) bool {
	_, ok := s.files[path]
	return ok
}

// Track creates a snapshot for path. Tracking an already-tracked path is a
// caller error and is ignored; callers should check IsTracked first.
func (s *Store) Track(path, baseline, current string) {
	if s.IsTracked(path) {
		return
	}
	s.files[path] = &snapshot{baseline: baseline, current: current}
	s.order = append(s.order, path)
}

// Update overwrites the current content of an existing snapshot. Returns
// false when path is untracked.
func (s *Store) Update(path, current string) bool {
	snap, ok := s.files[path]
	if !ok {
		return false
	}
	snap.current = current
	return true
}

// Dismiss rebaselines path: the current content becomes the new baseline, so
// the pending diff clears while the path stays tracked for future edits.
// Returns false when path is untracked.
func (s *Store) Dismiss(path string) bool {
	snap, ok := s.files[path]
	if !ok {
		return false
	}
	snap.baseline = snap.current
	return true
}

// FileDiff computes the diff for path from its baseline/current pair.
// ok is false when path is untracked.
func (s *Store) FileDiff(path string, contextLines int) (diffcore.FileDiff, bool) {
	snap, ok := s.files[path]
	if !ok {
		return diffcore.FileDiff{}, false
	}
	return diffcore.Compute(path, snap.baseline, snap.current, contextLines), true
}

// ChangedFiles returns the paths whose baseline differs from their current
// content, in first-tracked order.
func (s *Store) ChangedFiles() []string {
	var out []string
	for _, path := range s.order {
		if snap := s.files[path]; snap.baseline != snap.current {
			out = append(out, path)
		}
	}
	return out
}

// PendingCount is the number of changed files.
func (s *Store) PendingCount() int {
	return len(s.ChangedFiles())
}
