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

package acceptable

import (
	"net/http"
	"strings"

	"rivaas.dev/acceptable/negotiate"
)

// Endpoint is one versioned API endpoint: a URL with a set of views
// registered at explicit versions and optional feature flags.
//
// Endpoint implements http.Handler. Each request is dispatched to the
// view selected by the negotiation engine, or answered with an RFC 9457
// 406 problem when no registered view can satisfy the request.
type Endpoint struct {
	service *Service
	name    string
	url     string
	docs    string
	methods []string
	views   *negotiate.Map[http.Handler]
}

// Name returns the endpoint's API name.
func (e *Endpoint) Name() string {
	return e.name
}

// URL returns the route the endpoint is bound at.
func (e *Endpoint) URL() string {
	return e.url
}

// Methods returns the HTTP methods the endpoint is bound for.
func (e *Endpoint) Methods() []string {
	return e.methods
}

// Register adds a view at the given version and flag. Use negotiate.NoFlag
// for views that require no feature flag.
//
// Registration fails fast on malformed versions and on duplicate
// (version, flag) pairs; it is a service-definition-time contract. The
// registered version is also recorded in the metadata registry, where the
// lowest one becomes the endpoint's introduced-at version.
func (e *Endpoint) Register(version, flag string, view http.Handler) error {
	if view == nil {
		return ErrNilView
	}
	if err := e.views.Register(version, flag, view); err != nil {
		return err
	}
	if err := e.service.registry.RecordView(e.service.name, e.name, version, flag); err != nil {
		return err
	}
	e.service.logger.Debug("view registered",
		"service", e.service.name, "api", e.name, "version", version, "flag", flag)
	return nil
}

// RegisterFunc is Register for plain handler functions.
func (e *Endpoint) RegisterFunc(version, flag string, view http.HandlerFunc) error {
	if view == nil {
		return ErrNilView
	}
	return e.Register(version, flag, view)
}

// Changelog records a changelog note for a version of this endpoint. The
// notes surface in metadata snapshots; the lint checker asks for one when
// an existing endpoint grows a new version.
func (e *Endpoint) Changelog(version, note string) error {
	return e.service.registry.RecordChangelog(e.service.name, e.name, version, note)
}

// ServeHTTP negotiates the version and flag from the request's Accept
// header values and dispatches to the matching view. The view receives
// the request unchanged. A request that no registered view can satisfy is
// answered with 406 Not Acceptable naming the requested version and flag.
func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	values := acceptValues(r.Header)
	rawVersion, flag, ok := e.service.parser.Parse(values)

	requested := negotiate.Latest()
	if ok {
		v, err := negotiate.ParseVersion(rawVersion)
		if err != nil {
			// Matched the media type pattern but not a representable
			// version (component out of range).
			e.notAcceptable(w, r, rawVersion, flag)
			return
		}
		requested = negotiate.Exact(v)
	}

	view, match, found := e.views.Resolve(requested, flag)
	if !found {
		e.notAcceptable(w, r, requested.String(), flag)
		return
	}

	if e.service.sendVersionHeader {
		w.Header().Set("X-API-Version", match.Version.String())
	}
	if rec := e.service.recorder; rec != nil {
		rec.recordNegotiation(r.Context(), e.service.name, e.name, match)
	}
	view.ServeHTTP(w, r)
}

// notAcceptable writes the 406 problem response and records the rejection.
func (e *Endpoint) notAcceptable(w http.ResponseWriter, r *http.Request, version, flag string) {
	e.service.logger.Warn("no acceptable view",
		"service", e.service.name, "api", e.name, "version", version, "flag", flag)
	if rec := e.service.recorder; rec != nil {
		rec.recordRejection(r.Context(), e.service.name, e.name, version, flag)
	}
	writeNotAcceptable(w, r, e.service.problemBaseURL, version, flag)
}

// acceptValues expands the request's Accept headers into the ordered list
// of media type values, with whitespace and media type parameters (such as
// q values) stripped. Ordering follows the header; no re-sorting by
// quality is performed.
func acceptValues(h http.Header) []string {
	var values []string
	for _, raw := range h.Values("Accept") {
		for part := range strings.SplitSeq(raw, ",") {
			if media, _, found := strings.Cut(part, ";"); found {
				part = media
			}
			values = append(values, strings.TrimSpace(part))
		}
	}
	return values
}
