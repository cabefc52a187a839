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

// Package metadata collects structured metadata about versioned API
// endpoints: URLs, HTTP methods, documentation, registered versions and
// flags, and per-version changelog entries.
//
// The Registry is an explicit context object passed by reference to
// whatever needs it (service builders, exporters, the compatibility
// linter). It is never a process-wide singleton; create one per service or
// per test, and Reset it for test isolation.
//
// Consumers read a Snapshot, a deep-copied, deterministically ordered view
// of the registry that is safe to serialize (JSON and YAML tags are
// provided) and to diff against a snapshot from an earlier release.
package metadata
