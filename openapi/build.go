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

package openapi

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"rivaas.dev/acceptable/metadata"
	"rivaas.dev/acceptable/negotiate"
)

// ErrEmptySnapshot is returned when the snapshot holds no services.
var ErrEmptySnapshot = errors.New("openapi: snapshot contains no services")

// Option configures the built document.
type Option func(*builder)

type builder struct {
	title       string
	description string
	version     string
	servers     []Server
}

// WithTitle sets the document title. The default is derived from the
// service names in the snapshot.
func WithTitle(title string) Option {
	return func(b *builder) { b.title = title }
}

// WithDescription sets the document description.
func WithDescription(description string) Option {
	return func(b *builder) { b.description = description }
}

// WithDocVersion sets the info.version field. The default is the highest
// API version recorded in the snapshot.
func WithDocVersion(version string) Option {
	return func(b *builder) { b.version = version }
}

// WithServer adds a server entry.
func WithServer(url, description string) Option {
	return func(b *builder) {
		b.servers = append(b.servers, Server{URL: url, Description: description})
	}
}

// Build translates a metadata snapshot into an OpenAPI document.
//
// Every recorded API becomes a path item. Its success response advertises
// one vendor media type per registered version, so a reader of the
// document sees exactly the Accept values the service negotiates on. The
// snapshot's ordering guarantees make the output deterministic for
// unchanged definitions.
func Build(snap metadata.Snapshot, opts ...Option) (*Document, error) {
	if len(snap.Services) == 0 {
		return nil, ErrEmptySnapshot
	}

	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	doc := &Document{
		OpenAPI: Version304,
		Info: Info{
			Title:       b.title,
			Description: b.description,
			Version:     b.version,
		},
		Servers: b.servers,
		Paths:   make(map[string]*PathItem),
	}
	if doc.Info.Title == "" {
		doc.Info.Title = defaultTitle(snap)
	}
	if doc.Info.Version == "" {
		doc.Info.Version = highestVersion(snap)
	}

	for _, svc := range snap.Services {
		doc.Tags = append(doc.Tags, Tag{Name: svc.Name})
		for _, api := range svc.APIs {
			if err := addAPI(doc, svc, api); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

func defaultTitle(snap metadata.Snapshot) string {
	names := make([]string, 0, len(snap.Services))
	for _, svc := range snap.Services {
		names = append(names, svc.Name)
	}
	return strings.Join(names, ", ") + " API"
}

// highestVersion returns the numerically highest version recorded across
// the snapshot, or "1.0" when nothing has versions yet.
func highestVersion(snap metadata.Snapshot) string {
	highest := negotiate.Version{Major: 1}
	for _, svc := range snap.Services {
		for _, api := range svc.APIs {
			for _, raw := range api.Versions {
				v, err := negotiate.ParseVersion(raw)
				if err != nil {
					continue
				}
				if v.Compare(highest) > 0 {
					highest = v
				}
			}
		}
	}
	return highest.String()
}

func addAPI(doc *Document, svc metadata.ServiceSnapshot, api metadata.APISnapshot) error {
	item := doc.Paths[api.URL]
	if item == nil {
		item = &PathItem{}
		doc.Paths[api.URL] = item
	}

	for _, method := range api.Methods {
		op := buildOperation(svc, api, method, len(api.Methods) > 1)
		if err := setOperation(item, method, op); err != nil {
			return fmt.Errorf("api %s at %s: %w", api.Name, api.URL, err)
		}
	}
	return nil
}

func buildOperation(svc metadata.ServiceSnapshot, api metadata.APISnapshot, method string, multiMethod bool) *Operation {
	id := api.Name
	if multiMethod {
		id += "-" + strings.ToLower(method)
	}

	op := &Operation{
		OperationID:  id,
		Summary:      summaryLine(api.Docs),
		Description:  api.Docs,
		Tags:         []string{svc.Name},
		IntroducedAt: api.IntroducedAt,
		Versions:     slices.Clone(api.Versions),
		Flags:        slices.Clone(api.Flags),
		Changelog:    maps.Clone(api.Changelog),
		Responses: map[string]Response{
			"406": {
				Description: "No registered view satisfies the requested version and flag.",
				Content:     map[string]MediaType{"application/problem+json": {}},
			},
		},
	}

	success := Response{Description: "Negotiated response."}
	if len(api.Versions) > 0 && svc.Vendor != "" {
		success.Content = make(map[string]MediaType, len(api.Versions))
		for _, v := range api.Versions {
			success.Content[fmt.Sprintf("application/vnd.%s.%s", svc.Vendor, v)] = MediaType{}
		}
	}
	op.Responses["200"] = success
	return op
}

// summaryLine reduces the docs to their first line for the summary field.
func summaryLine(docs string) string {
	line, _, _ := strings.Cut(docs, "\n")
	return strings.TrimSpace(line)
}

func setOperation(item *PathItem, method string, op *Operation) error {
	slot := operationSlot(item, method)
	if slot == nil {
		return fmt.Errorf("unsupported HTTP method %q", method)
	}
	if *slot != nil {
		return fmt.Errorf("duplicate operation for method %s", method)
	}
	*slot = op
	return nil
}

func operationSlot(item *PathItem, method string) **Operation {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return &item.Get
	case http.MethodPut:
		return &item.Put
	case http.MethodPost:
		return &item.Post
	case http.MethodDelete:
		return &item.Delete
	case http.MethodPatch:
		return &item.Patch
	case http.MethodHead:
		return &item.Head
	case http.MethodOptions:
		return &item.Options
	default:
		return nil
	}
}
