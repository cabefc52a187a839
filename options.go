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
	"log/slog"
	"strings"

	"rivaas.dev/acceptable/metadata"
)

// WithLogger sets the logger for service events: endpoint registration,
// view registration, and 406 responses. The default discards everything.
//
// Example:
//
//	acceptable.WithLogger(slog.Default())
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			return ErrNilLogger
		}
		s.logger = logger
		return nil
	}
}

// WithRegistry records the service's metadata into a shared registry
// instead of a private one. Use this when several services feed one
// OpenAPI document or one lint run.
//
// Example:
//
//	reg := metadata.NewRegistry()
//	svc, err := acceptable.NewService("ledger", "ledger", acceptable.WithRegistry(reg))
func WithRegistry(registry *metadata.Registry) Option {
	return func(s *Service) error {
		if registry == nil {
			return ErrNilRegistry
		}
		s.registry = registry
		return nil
	}
}

// WithMetrics records negotiation outcomes and 406 rejections to the
// given Recorder.
//
// Example:
//
//	rec, err := acceptable.NewRecorder(acceptable.WithPrometheusExporter())
//	if err != nil {
//	    return err
//	}
//	svc, err := acceptable.NewService("ledger", "ledger", acceptable.WithMetrics(rec))
func WithMetrics(recorder *Recorder) Option {
	return func(s *Service) error {
		if recorder == nil {
			return ErrNilRecorder
		}
		s.recorder = recorder
		return nil
	}
}

// WithVersionHeader adds an X-API-Version response header carrying the
// version that was actually served, which may be lower than the requested
// one after a closest-below match.
func WithVersionHeader() Option {
	return func(s *Service) error {
		s.sendVersionHeader = true
		return nil
	}
}

// WithProblemBaseURL sets the base URL for the "type" member of RFC 9457
// problem responses. The default is "about:blank".
//
// Example:
//
//	acceptable.WithProblemBaseURL("https://api.example.com/problems")
//	// 406 responses carry type "https://api.example.com/problems/not-acceptable"
func WithProblemBaseURL(baseURL string) Option {
	return func(s *Service) error {
		s.problemBaseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	}
}

// EndpointOption configures an Endpoint.
type EndpointOption func(*Endpoint) error

// WithMethods sets the HTTP methods the endpoint's URL is bound for. The
// default is GET.
//
// Example:
//
//	svc.Endpoint("/accounts", "create-account", acceptable.WithMethods(http.MethodPost))
func WithMethods(methods ...string) EndpointOption {
	return func(e *Endpoint) error {
		if len(methods) == 0 {
			return ErrNoMethods
		}
		for _, m := range methods {
			if m == "" {
				return ErrEmptyMethod
			}
		}
		e.methods = methods
		return nil
	}
}

// WithDocs attaches free-form documentation to the endpoint. It is stored
// in the metadata registry and surfaces in the exported OpenAPI document;
// the lint checker flags new endpoints that lack it.
func WithDocs(docs string) EndpointOption {
	return func(e *Endpoint) error {
		e.docs = docs
		return nil
	}
}
