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

package metadata

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"rivaas.dev/acceptable/negotiate"
)

// API describes an endpoint being added to the registry.
type API struct {
	// Name is the API identifier, unique within its service.
	Name string
	// URL is the route the API is served at.
	URL string
	// Methods are the HTTP methods the URL is bound for.
	Methods []string
	// Docs is free-form documentation for the API.
	Docs string
}

// Registry records services and their versioned APIs. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	services map[string]*serviceRecord
}

type serviceRecord struct {
	name   string
	vendor string
	apis   map[string]*apiRecord
	urls   map[string]struct{}
}

type apiRecord struct {
	name      string
	url       string
	methods   []string
	docs      string
	versions  map[negotiate.Version]struct{}
	flags     map[string]struct{}
	changelog map[negotiate.Version]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]*serviceRecord)}
}

// RegisterService adds a service to the registry. Service names are unique
// within a registry.
func (r *Registry) RegisterService(name, vendor string) error {
	if name == "" {
		return fmt.Errorf("service: %w", ErrEmptyName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %q: %w", name, ErrServiceExists)
	}
	r.services[name] = &serviceRecord{
		name:   name,
		vendor: vendor,
		apis:   make(map[string]*apiRecord),
		urls:   make(map[string]struct{}),
	}
	return nil
}

// RegisterAPI adds an API to a registered service. The API name must be
// unique within the service, and so must the (URL, methods) combination;
// both guards catch conflicting service definitions at startup.
//
// APIs with no methods default to GET.
func (r *Registry) RegisterAPI(service string, api API) error {
	if api.Name == "" {
		return fmt.Errorf("API: %w", ErrEmptyName)
	}
	methods := api.Methods
	if len(methods) == 0 {
		methods = []string{"GET"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[service]
	if !ok {
		return fmt.Errorf("service %q: %w", service, ErrUnknownService)
	}
	if _, exists := svc.apis[api.Name]; exists {
		return fmt.Errorf("API %q in service %q: %w", api.Name, service, ErrAPIExists)
	}
	urlKey := urlKey(api.URL, methods)
	if _, exists := svc.urls[urlKey]; exists {
		return fmt.Errorf("%s %s in service %q: %w",
			strings.Join(methods, "|"), api.URL, service, ErrURLTaken)
	}

	svc.apis[api.Name] = &apiRecord{
		name:      api.Name,
		url:       api.URL,
		methods:   slices.Clone(methods),
		docs:      api.Docs,
		versions:  make(map[negotiate.Version]struct{}),
		flags:     make(map[string]struct{}),
		changelog: make(map[negotiate.Version]string),
	}
	svc.urls[urlKey] = struct{}{}
	return nil
}

// RecordView records that a view was registered for an API at the given
// version and flag. The version must be a valid "<major>.<minor>" string.
func (r *Registry) RecordView(service, api, version, flag string) error {
	v, err := negotiate.ParseVersion(version)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, err := r.lookup(service, api)
	if err != nil {
		return err
	}
	rec.versions[v] = struct{}{}
	if flag != negotiate.NoFlag {
		rec.flags[flag] = struct{}{}
	}
	return nil
}

// RecordChangelog stores a changelog note for an API version. Recording a
// note for the same version again overwrites the previous one.
func (r *Registry) RecordChangelog(service, api, version, note string) error {
	v, err := negotiate.ParseVersion(version)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, err := r.lookup(service, api)
	if err != nil {
		return err
	}
	rec.changelog[v] = note
	return nil
}

// lookup finds an API record. Callers must hold the lock.
func (r *Registry) lookup(service, api string) (*apiRecord, error) {
	svc, ok := r.services[service]
	if !ok {
		return nil, fmt.Errorf("service %q: %w", service, ErrUnknownService)
	}
	rec, ok := svc.apis[api]
	if !ok {
		return nil, fmt.Errorf("API %q in service %q: %w", api, service, ErrUnknownAPI)
	}
	return rec, nil
}

// Reset removes everything from the registry. It exists for test
// isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services = make(map[string]*serviceRecord)
}

// urlKey builds the uniqueness key for a (URL, methods) registration.
func urlKey(url string, methods []string) string {
	sorted := slices.Clone(methods)
	slices.Sort(sorted)
	return strings.Join(sorted, "|") + " " + url
}
