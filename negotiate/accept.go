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
	"regexp"
	"strings"
)

// NoFlag is the flag value of a request or registration that carries no
// feature flag.
const NoFlag = ""

// vendorPattern restricts vendors to safe identifiers. The vendor string is
// inserted verbatim into the media type pattern, so it must not contain
// regular expression metacharacters or media type syntax.
var vendorPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// HeaderParser extracts the requested API version and feature flag from the
// Accept header values of a request.
//
// It matches vendor media types of the form
//
//	application/vnd.<vendor>.<major>.<minor>[+<flag>]
//
// The parser is created once per service and is safe for concurrent use.
type HeaderParser struct {
	vendor string
	media  *regexp.Regexp
}

// NewHeaderParser creates a parser for the given vendor identifier.
//
// The vendor must consist solely of letters and digits; this is the single
// enforcement point for vendor safety, so the per-request parse can splice
// the vendor into its pattern without escaping.
func NewHeaderParser(vendor string) (*HeaderParser, error) {
	if vendor == "" {
		return nil, ErrEmptyVendor
	}
	if !vendorPattern.MatchString(vendor) {
		return nil, fmt.Errorf("vendor %q: %w", vendor, ErrInvalidVendor)
	}
	media := regexp.MustCompile(`^application/vnd\.` + vendor + `\.(\d+\.\d+)(?:\+(.*))?$`)
	return &HeaderParser{vendor: vendor, media: media}, nil
}

// Vendor returns the vendor identifier this parser matches.
func (p *HeaderParser) Vendor() string {
	return p.vendor
}

// Parse scans the Accept header values in order and returns the version and
// flag of the first value that matches the vendor media type pattern.
//
// The values are expected in client preference order; no re-sorting by
// quality parameters is performed, and scanning stops at the first match.
// A "+" suffix becomes the flag, with the "+" stripped; a bare "+" yields
// NoFlag. Values that do not match the pattern are skipped.
//
// If no value matches, ok is false. That is not an error: callers treat an
// absent version as a request for the latest one.
func (p *HeaderParser) Parse(values []string) (version, flag string, ok bool) {
	for _, value := range values {
		m := p.media.FindStringSubmatch(strings.TrimSpace(value))
		if m == nil {
			continue
		}
		return m[1], m[2], true
	}
	return "", NoFlag, false
}
