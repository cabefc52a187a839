// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package negotiate

import (
	"fmt"
	"slices"
)

// Outcome describes how a resolution was satisfied.
type Outcome uint8

const (
	// MatchExact means the requested version was registered as-is.
	MatchExact Outcome = iota
	// MatchDowngrade means the closest registered version below the
	// requested one was served.
	MatchDowngrade
	// MatchLatest means the client named no version and the highest
	// registered version was served.
	MatchLatest
)

// String returns the outcome name as used in logs and metric attributes.
func (o Outcome) String() string {
	switch o {
	case MatchExact:
		return "exact"
	case MatchDowngrade:
		return "downgrade"
	case MatchLatest:
		return "latest"
	default:
		return "unknown"
	}
}

// Match describes the view selected by Resolve: the version it was
// registered at, the flag bucket that served it, and how it matched.
// Flag is NoFlag when a flagged request fell back to the unflagged bucket.
type Match struct {
	Version Version
	Flag    string
	Outcome Outcome
}

// Map stores views keyed by (flag, version) and selects the best registered
// view for a requested (version, flag) pair. The view type V is opaque to
// the map: no meaning is attached to the stored values.
//
// Map is not safe for concurrent mutation; see the package documentation
// for the registration-before-serving contract.
type Map[V any] struct {
	buckets map[string]*bucket[V]
}

// bucket is the version→view sub-map for one flag value. ordered holds the
// registered versions sorted ascending, which makes exact lookups O(1) and
// closest-below scans a binary search.
type bucket[V any] struct {
	views   map[Version]V
	ordered []Version
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{buckets: make(map[string]*bucket[V])}
}

// Register adds a view at the given version and flag. Use NoFlag for views
// that require no feature flag.
//
// The version string is validated before insertion and registration fails
// fast on malformed input; this is a service-definition-time contract, not
// a request-time one. Registering the same (version, flag) pair twice is an
// error rather than a silent overwrite, so conflicting definitions surface
// at startup.
func (m *Map[V]) Register(version, flag string, view V) error {
	v, err := ParseVersion(version)
	if err != nil {
		return err
	}
	b := m.buckets[flag]
	if b == nil {
		b = &bucket[V]{views: make(map[Version]V)}
		m.buckets[flag] = b
	}
	if _, exists := b.views[v]; exists {
		return fmt.Errorf("version %s, flag %q: %w", v, flag, ErrDuplicateView)
	}
	b.views[v] = view
	idx, _ := slices.BinarySearchFunc(b.ordered, v, Version.Compare)
	b.ordered = slices.Insert(b.ordered, idx, v)
	return nil
}

// Resolve selects the best registered view for the requested version and
// flag, applying the fallback algorithm described in the package
// documentation. ok is false when no registered view can satisfy the
// request; that is a normal outcome which HTTP callers map to 406.
func (m *Map[V]) Resolve(requested Requested, flag string) (V, Match, bool) {
	if view, match, ok := m.resolveBucket(requested, flag); ok {
		return view, match, true
	}
	// A flagged request that the flag bucket cannot satisfy degrades to
	// the unflagged views. The full algorithm reapplies from scratch, and
	// the retry happens at most once.
	if flag != NoFlag {
		if view, match, ok := m.resolveBucket(requested, NoFlag); ok {
			return view, match, true
		}
	}
	var zero V
	return zero, Match{}, false
}

// resolveBucket runs the version selection steps against a single flag
// bucket.
func (m *Map[V]) resolveBucket(requested Requested, flag string) (V, Match, bool) {
	var zero V
	b := m.buckets[flag]
	if b == nil || len(b.ordered) == 0 {
		return zero, Match{}, false
	}

	if requested.IsLatest() {
		v := b.ordered[len(b.ordered)-1]
		return b.views[v], Match{Version: v, Flag: flag, Outcome: MatchLatest}, true
	}

	want, _ := requested.Version()
	if view, ok := b.views[want]; ok {
		return view, Match{Version: want, Flag: flag, Outcome: MatchExact}, true
	}

	// Closest below: the largest registered version that does not exceed
	// the request. Nothing at or below the request means no match; the
	// engine never serves a version newer than the client declared.
	idx, _ := slices.BinarySearchFunc(b.ordered, want, Version.Compare)
	if idx == 0 {
		return zero, Match{}, false
	}
	v := b.ordered[idx-1]
	return b.views[v], Match{Version: v, Flag: flag, Outcome: MatchDowngrade}, true
}

// Lookup is the raw-string form of Resolve for callers that have not parsed
// the version themselves. An empty version selects the latest registered
// one; anything else must be a valid "<major>.<minor>" string, and
// malformed input is reported as an error at this boundary rather than
// treated as a miss.
func (m *Map[V]) Lookup(version, flag string) (V, Match, bool, error) {
	if version == "" {
		view, match, ok := m.Resolve(Latest(), flag)
		return view, match, ok, nil
	}
	v, err := ParseVersion(version)
	if err != nil {
		var zero V
		return zero, Match{}, false, err
	}
	view, match, ok := m.Resolve(Exact(v), flag)
	return view, match, ok, nil
}

// Versions returns the versions registered for a flag, sorted ascending.
// The slice is a copy; mutating it does not affect the map.
func (m *Map[V]) Versions(flag string) []Version {
	b := m.buckets[flag]
	if b == nil {
		return nil
	}
	return slices.Clone(b.ordered)
}

// Flags returns all flags with at least one registered view, sorted, with
// NoFlag included when unflagged views exist.
func (m *Map[V]) Flags() []string {
	flags := make([]string, 0, len(m.buckets))
	for flag := range m.buckets {
		flags = append(flags, flag)
	}
	slices.Sort(flags)
	return flags
}

// Len returns the total number of registered views across all flags.
func (m *Map[V]) Len() int {
	n := 0
	for _, b := range m.buckets {
		n += len(b.views)
	}
	return n
}
