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
	"encoding/json"
	"fmt"
	"net/http"
)

// ProblemContentType is the media type of RFC 9457 problem responses.
const ProblemContentType = "application/problem+json"

// notAcceptableSlug is appended to the problem base URL to form the
// problem type URI.
const notAcceptableSlug = "not-acceptable"

// Problem is an RFC 9457 problem detail. The library only emits 406
// problems, with the requested version and flag as extension members so
// clients can see what could not be satisfied.
type Problem struct {
	Type             string `json:"type"`
	Title            string `json:"title"`
	Status           int    `json:"status"`
	Detail           string `json:"detail,omitempty"`
	Instance         string `json:"instance,omitempty"`
	RequestedVersion string `json:"requested_version,omitempty"`
	RequestedFlag    string `json:"requested_flag,omitempty"`
}

// notAcceptableProblem builds the 406 problem for a request that no
// registered view can satisfy.
func notAcceptableProblem(baseURL, instance, version, flag string) Problem {
	problemType := "about:blank"
	if baseURL != "" {
		problemType = baseURL + "/" + notAcceptableSlug
	}
	detail := fmt.Sprintf("could not find a view for version %s", version)
	if flag != "" {
		detail += fmt.Sprintf(" and flag %q", flag)
	}
	return Problem{
		Type:             problemType,
		Title:            http.StatusText(http.StatusNotAcceptable),
		Status:           http.StatusNotAcceptable,
		Detail:           detail,
		Instance:         instance,
		RequestedVersion: version,
		RequestedFlag:    flag,
	}
}

// writeNotAcceptable writes the 406 problem response.
func writeNotAcceptable(w http.ResponseWriter, r *http.Request, baseURL, version, flag string) {
	problem := notAcceptableProblem(baseURL, r.URL.Path, version, flag)
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(problem.Status)
	// Encoding a flat struct of strings cannot fail; the write itself can,
	// but there is nothing useful to do about a dead client here.
	_ = json.NewEncoder(w).Encode(problem)
}
