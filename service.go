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
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"rivaas.dev/acceptable/metadata"
	"rivaas.dev/acceptable/negotiate"
)

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Service is the entry point for a service that manages its API versions
// with the Accept header. It owns the vendor identifier, the Accept header
// parser, and a set of named endpoints.
//
// Define all endpoints and views during startup, then Bind the service to
// a mux. Endpoints perform no locking around their view maps; the
// registration phase must complete before traffic is served.
type Service struct {
	name      string
	parser    *negotiate.HeaderParser
	registry  *metadata.Registry
	logger    *slog.Logger
	recorder  *Recorder
	endpoints map[string]*Endpoint

	sendVersionHeader bool
	problemBaseURL    string
}

// Option configures a Service.
type Option func(*Service) error

// NewService creates a service with the given name and vendor identifier.
//
// The vendor is embedded in the Accept media type pattern
// ("application/vnd.<vendor>.<version>") and must consist solely of
// letters and digits. The service name identifies the service in the
// metadata registry.
func NewService(name, vendor string, opts ...Option) (*Service, error) {
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	parser, err := negotiate.NewHeaderParser(vendor)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor: %w", err)
	}

	s := &Service{
		name:      name,
		parser:    parser,
		logger:    noopLogger,
		endpoints: make(map[string]*Endpoint),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if s.registry == nil {
		s.registry = metadata.NewRegistry()
	}
	if err := s.registry.RegisterService(name, vendor); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.name
}

// Vendor returns the vendor identifier.
func (s *Service) Vendor() string {
	return s.parser.Vendor()
}

// Registry returns the metadata registry the service records into. It is
// the input for the openapi exporter and the lint compatibility checker.
func (s *Service) Registry() *metadata.Registry {
	return s.registry
}

// Endpoint adds a named API endpoint at the given URL.
//
// The endpoint name must be unique within the service, and so must the
// (URL, methods) combination; conflicts are reported here, at service
// definition time. Endpoints default to GET.
func (s *Service) Endpoint(url, name string, opts ...EndpointOption) (*Endpoint, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	e := &Endpoint{
		service: s,
		name:    name,
		url:     url,
		methods: []string{http.MethodGet},
		views:   negotiate.NewMap[http.Handler](),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("invalid endpoint option: %w", err)
		}
	}

	// The registry enforces name and URL uniqueness for the service.
	err := s.registry.RegisterAPI(s.name, metadata.API{
		Name:    name,
		URL:     url,
		Methods: e.methods,
		Docs:    e.docs,
	})
	if err != nil {
		return nil, err
	}

	s.endpoints[name] = e
	s.logger.Debug("endpoint added",
		"service", s.name, "api", name, "url", url, "methods", e.methods)
	return e, nil
}

// Bind registers every endpoint that has at least one view on the mux.
// Endpoints without views are metadata-only and are skipped.
func (s *Service) Bind(mux *http.ServeMux) {
	for _, name := range s.endpointNames() {
		e := s.endpoints[name]
		if e.views.Len() == 0 {
			continue
		}
		for _, method := range e.methods {
			mux.Handle(method+" "+e.url, e)
		}
	}
}

// Endpoints returns the service's endpoints sorted by name.
func (s *Service) Endpoints() []*Endpoint {
	endpoints := make([]*Endpoint, 0, len(s.endpoints))
	for _, name := range s.endpointNames() {
		endpoints = append(endpoints, s.endpoints[name])
	}
	return endpoints
}

func (s *Service) endpointNames() []string {
	names := make([]string, 0, len(s.endpoints))
	for name := range s.endpoints {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
