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

// Package openapi translates metadata snapshots into OpenAPI documents.
//
// The exporter maps each recorded API to a path item whose operations
// advertise the versioned vendor media types a client can negotiate with
// the Accept header, plus the application/problem+json 406 response every
// negotiated endpoint can produce. Version history that OpenAPI has no
// native field for (introduced-at version, registered versions and flags,
// changelog notes) is carried in x- extensions.
//
// The document content is driven entirely by the snapshot, so it reflects
// what the service actually serves, not hand-maintained documentation:
//
//	snap := svc.Registry().Snapshot()
//	doc, err := openapi.Build(snap)
//	if err != nil {
//	    return err
//	}
//	data, err := doc.MarshalYAML()
package openapi
