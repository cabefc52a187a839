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
	"slices"
	"strings"

	"rivaas.dev/acceptable/negotiate"
)

// Snapshot is a deep-copied, deterministically ordered view of a Registry.
// Services, APIs, methods, versions, and flags are sorted, so two
// snapshots of the same definitions always serialize identically; that is
// what makes snapshots diffable by the compatibility linter.
type Snapshot struct {
	Services []ServiceSnapshot `json:"services" yaml:"services"`
}

// ServiceSnapshot is the recorded state of one service.
type ServiceSnapshot struct {
	Name   string        `json:"name" yaml:"name"`
	Vendor string        `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	APIs   []APISnapshot `json:"apis" yaml:"apis"`
}

// APISnapshot is the recorded state of one API.
type APISnapshot struct {
	Name         string            `json:"name" yaml:"name"`
	URL          string            `json:"url" yaml:"url"`
	Methods      []string          `json:"methods" yaml:"methods"`
	Docs         string            `json:"docs,omitempty" yaml:"docs,omitempty"`
	IntroducedAt string            `json:"introduced_at,omitempty" yaml:"introduced_at,omitempty"`
	Versions     []string          `json:"versions,omitempty" yaml:"versions,omitempty"`
	Flags        []string          `json:"flags,omitempty" yaml:"flags,omitempty"`
	Changelog    map[string]string `json:"changelog,omitempty" yaml:"changelog,omitempty"`
}

// Snapshot returns the current registry contents.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{Services: make([]ServiceSnapshot, 0, len(r.services))}
	for _, svc := range r.services {
		ss := ServiceSnapshot{
			Name:   svc.name,
			Vendor: svc.vendor,
			APIs:   make([]APISnapshot, 0, len(svc.apis)),
		}
		for _, rec := range svc.apis {
			ss.APIs = append(ss.APIs, snapshotAPI(rec))
		}
		slices.SortFunc(ss.APIs, func(a, b APISnapshot) int {
			return strings.Compare(a.Name, b.Name)
		})
		snap.Services = append(snap.Services, ss)
	}
	slices.SortFunc(snap.Services, func(a, b ServiceSnapshot) int {
		return strings.Compare(a.Name, b.Name)
	})
	return snap
}

func snapshotAPI(rec *apiRecord) APISnapshot {
	api := APISnapshot{
		Name:    rec.name,
		URL:     rec.url,
		Methods: slices.Clone(rec.methods),
		Docs:    rec.docs,
	}

	versions := make([]negotiate.Version, 0, len(rec.versions))
	for v := range rec.versions {
		versions = append(versions, v)
	}
	slices.SortFunc(versions, negotiate.Version.Compare)
	for _, v := range versions {
		api.Versions = append(api.Versions, v.String())
	}
	// The introduced-at version is the lowest one a view was registered
	// for; it must never change once the API has shipped.
	if len(versions) > 0 {
		api.IntroducedAt = versions[0].String()
	}

	for flag := range rec.flags {
		api.Flags = append(api.Flags, flag)
	}
	slices.Sort(api.Flags)

	if len(rec.changelog) > 0 {
		api.Changelog = make(map[string]string, len(rec.changelog))
		for v, note := range rec.changelog {
			api.Changelog[v.String()] = note
		}
	}
	return api
}

// Service returns the snapshot of a named service.
func (s Snapshot) Service(name string) (ServiceSnapshot, bool) {
	for _, svc := range s.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return ServiceSnapshot{}, false
}

// API returns the snapshot of a named API.
func (s ServiceSnapshot) API(name string) (APISnapshot, bool) {
	for _, api := range s.APIs {
		if api.Name == name {
			return api, true
		}
	}
	return APISnapshot{}, false
}

// HasVersion reports whether a view was recorded at the given version.
func (a APISnapshot) HasVersion(version string) bool {
	return slices.Contains(a.Versions, version)
}

// HasMethod reports whether the API is bound for the given HTTP method.
func (a APISnapshot) HasMethod(method string) bool {
	return slices.Contains(a.Methods, method)
}
