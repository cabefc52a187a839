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

// Package negotiate implements Accept-header API version negotiation.
//
// # Overview
//
// This package provides the two building blocks needed to serve several
// versions of an HTTP endpoint behind a single URL:
//
//   - HeaderParser extracts the requested (version, flag) pair from the
//     ordered Accept header values of a request, using vendor media types
//     of the form "application/vnd.<vendor>.<major>.<minor>+<flag>".
//   - Map stores views keyed by (flag, version) and selects the best
//     registered view for a request using a deterministic fallback
//     algorithm.
//
// # Resolution Algorithm
//
// Given a requested version and flag, Map.Resolve proceeds as follows:
//
//  1. Look up the flag bucket. A flag that was never registered behaves
//     like an empty bucket.
//  2. If the client requested no particular version (Latest), serve the
//     numerically highest version registered in the bucket.
//  3. An exact version match always wins.
//  4. Otherwise serve the closest version below the request: the largest
//     registered version that does not exceed what the client declared
//     support for. A view registered at 1.0 stays reachable for a client
//     asking for 1.1. The engine never serves a version newer than the
//     client requested.
//  5. If the bucket cannot satisfy the request and a flag was requested,
//     the whole algorithm is retried once against the unflagged bucket,
//     so feature-flagged endpoints degrade gracefully.
//  6. If nothing matches, Resolve reports no match. That is a normal
//     outcome, not an error; HTTP callers turn it into 406 Not Acceptable.
//
// Versions compare numerically on (major, minor), so 1.9 < 1.10.
//
// # Usage
//
//	views := negotiate.NewMap[http.Handler]()
//	if err := views.Register("1.0", negotiate.NoFlag, listV1); err != nil {
//	    return err
//	}
//	if err := views.Register("1.1", "beta", listBeta); err != nil {
//	    return err
//	}
//
//	parser, err := negotiate.NewHeaderParser("myservice")
//	if err != nil {
//	    return err
//	}
//
//	version, flag, ok := parser.Parse(acceptValues)
//	requested := negotiate.Latest()
//	if ok {
//	    v, err := negotiate.ParseVersion(version)
//	    if err != nil {
//	        return err
//	    }
//	    requested = negotiate.Exact(v)
//	}
//	view, match, found := views.Resolve(requested, flag)
//
// # Concurrency
//
// Map performs no internal locking. Registration is expected to complete
// during service construction, before traffic is served; after that,
// Resolve is a pure read and safe for concurrent use. Callers that must
// register views while serving need their own synchronization.
package negotiate
