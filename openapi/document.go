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
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Version304 is the OpenAPI version the exporter emits.
const Version304 = "3.0.4"

// Document is the root of an exported OpenAPI document. It covers the
// subset of OpenAPI 3.0.4 the metadata registry can populate.
type Document struct {
	OpenAPI string               `json:"openapi" yaml:"openapi"`
	Info    Info                 `json:"info" yaml:"info"`
	Servers []Server             `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags    []Tag                `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths   map[string]*PathItem `json:"paths" yaml:"paths"`
}

// Info carries the document metadata.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// Server is one server URL the documented APIs are reachable at.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Tag groups the operations of one service.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem holds the operations bound at one URL.
type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
}

// Operation is one documented API operation.
type Operation struct {
	OperationID string              `json:"operationId" yaml:"operationId"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`

	// Negotiation metadata OpenAPI has no native fields for.
	IntroducedAt string            `json:"x-api-introduced-at,omitempty" yaml:"x-api-introduced-at,omitempty"`
	Versions     []string          `json:"x-api-versions,omitempty" yaml:"x-api-versions,omitempty"`
	Flags        []string          `json:"x-api-flags,omitempty" yaml:"x-api-flags,omitempty"`
	Changelog    map[string]string `json:"x-api-changelog,omitempty" yaml:"x-api-changelog,omitempty"`
}

// Response documents one response status.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType is one negotiable media type of a response. The registry
// records no body schemas, so it stays empty; its key is the content.
type MediaType struct{}

// MarshalYAML serializes the document as YAML.
func (d *Document) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// MarshalJSON serializes the document as indented JSON.
func (d *Document) MarshalJSON() ([]byte, error) {
	type doc Document
	return json.MarshalIndent((*doc)(d), "", "  ")
}
