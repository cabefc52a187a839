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
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version is an API version of the form <major>.<minor>.
//
// Versions compare numerically component by component, so 1.9 < 1.10.
// The zero value is version 0.0.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a version string of the exact form "<major>.<minor>".
//
// Both components must consist solely of decimal digits: no sign, no
// whitespace, no extra components. Validation never coerces or truncates;
// any deviation is reported as an error that identifies the violated rule
// (component count, major, or minor).
func ParseVersion(s string) (Version, error) {
	major, minor, found := strings.Cut(s, ".")
	if !found || strings.Contains(minor, ".") {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, ErrVersionFormat)
	}
	maj, err := parseComponent(major)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, ErrMajorNotDecimal)
	}
	min, err := parseComponent(minor)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, ErrMinorNotDecimal)
	}
	return Version{Major: maj, Minor: min}, nil
}

// MustVersion is like ParseVersion but panics on invalid input.
// It is intended for version literals in service definitions and tests.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// parseComponent parses a single version component. Unlike strconv.Atoi it
// rejects signs, so "+1" and "-1" are invalid components.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// String returns the canonical "<major>.<minor>" form.
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Compare returns -1, 0, or +1 depending on whether v is ordered before,
// equal to, or after o. Major components are compared first, then minor.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	return cmp.Compare(v.Minor, o.Minor)
}

// Requested is what a client asked for: either a specific version or the
// latest registered one. Using a distinct type instead of a magic version
// string forces call sites to handle both cases explicitly.
//
// The zero value requests the latest version.
type Requested struct {
	version Version
	exact   bool
}

// Latest requests whatever is the most recently introduced version in the
// matched flag bucket. It is used when the client named no version at all.
func Latest() Requested {
	return Requested{}
}

// Exact requests a specific version.
func Exact(v Version) Requested {
	return Requested{version: v, exact: true}
}

// IsLatest reports whether this request is for the latest version.
func (r Requested) IsLatest() bool {
	return !r.exact
}

// Version returns the requested version. The second return value is false
// for a Latest request, which carries no version.
func (r Requested) Version() (Version, bool) {
	return r.version, r.exact
}

// String returns the requested version, or "latest".
func (r Requested) String() string {
	if !r.exact {
		return "latest"
	}
	return r.version.String()
}
