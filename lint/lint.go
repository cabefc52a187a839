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

package lint

import (
	"fmt"
	"slices"

	"rivaas.dev/acceptable/metadata"
)

// Level classifies an issue by severity.
type Level int

const (
	// Warning marks a change that is probably fine but worth a look.
	Warning Level = iota
	// Documentation marks missing documentation for a shipped change.
	Documentation
	// Error marks a backward-incompatible change.
	Error
)

// String returns the level name as it appears in issue output.
func (l Level) String() string {
	switch l {
	case Warning:
		return "Warning"
	case Documentation:
		return "Documentation"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Issue is one finding of the compatibility check.
type Issue struct {
	Level   Level
	Service string
	API     string
	URL     string
	Message string
}

// String formats the issue for terminal output.
func (i Issue) String() string {
	if i.API == "" {
		return fmt.Sprintf("%s: service %s: %s", i.Level, i.Service, i.Message)
	}
	return fmt.Sprintf("%s: API %s at %s: %s", i.Level, i.API, i.URL, i.Message)
}

// HasErrors reports whether any issue is at the Error level.
func HasErrors(issues []Issue) bool {
	return slices.ContainsFunc(issues, func(i Issue) bool {
		return i.Level == Error
	})
}

// Compare diffs two snapshots and reports compatibility issues in the new
// one. The old snapshot represents what clients have already seen; nothing
// they depend on may disappear or move.
func Compare(old, new metadata.Snapshot) []Issue {
	var issues []Issue

	for _, oldSvc := range old.Services {
		if _, ok := new.Service(oldSvc.Name); !ok {
			issues = append(issues, Issue{
				Level:   Error,
				Service: oldSvc.Name,
				Message: "service removed",
			})
		}
	}

	for _, newSvc := range new.Services {
		oldSvc, _ := old.Service(newSvc.Name)
		issues = append(issues, compareService(oldSvc, newSvc)...)
	}
	return issues
}

func compareService(old, new metadata.ServiceSnapshot) []Issue {
	var issues []Issue

	for _, oldAPI := range old.APIs {
		if _, ok := new.API(oldAPI.Name); !ok {
			issues = append(issues, Issue{
				Level:   Error,
				Service: old.Name,
				API:     oldAPI.Name,
				URL:     oldAPI.URL,
				Message: "API removed",
			})
		}
	}

	for _, newAPI := range new.APIs {
		oldAPI, existed := old.API(newAPI.Name)
		issues = append(issues, compareAPI(new.Name, oldAPI, newAPI, existed)...)
	}
	return issues
}

// compareAPI lints one API. An API that was absent from the old snapshot
// is new; it gets stricter documentation requirements but no history
// checks.
func compareAPI(service string, old, new metadata.APISnapshot, existed bool) []Issue {
	var issues []Issue
	add := func(level Level, format string, args ...any) {
		issues = append(issues, Issue{
			Level:   level,
			Service: service,
			API:     new.Name,
			URL:     new.URL,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if new.Docs == "" {
		// New APIs must ship documented; for existing ones the omission
		// predates this check.
		if existed {
			add(Warning, "missing documentation")
		} else {
			add(Error, "missing documentation")
		}
	}

	if new.IntroducedAt == "" {
		add(Error, "missing introduced_at version; no views registered")
	}

	if !existed {
		return issues
	}

	if old.IntroducedAt != "" && new.IntroducedAt != "" && old.IntroducedAt != new.IntroducedAt {
		add(Error, "introduced_at changed from %s to %s", old.IntroducedAt, new.IntroducedAt)
	}
	if old.URL != new.URL {
		add(Error, "url changed from %s to %s", old.URL, new.URL)
	}

	for _, method := range old.Methods {
		if !new.HasMethod(method) {
			add(Error, "HTTP method %s removed", method)
		}
	}

	for _, version := range old.Versions {
		if !new.HasVersion(version) {
			add(Error, "version %s removed", version)
		}
	}

	for _, flag := range old.Flags {
		if !slices.Contains(new.Flags, flag) {
			add(Warning, "feature flag %s removed", flag)
		}
	}

	// New versions of an existing API need a changelog note for clients
	// tracking the upgrade path.
	for _, version := range new.Versions {
		if old.HasVersion(version) {
			continue
		}
		if _, ok := new.Changelog[version]; !ok {
			add(Documentation, "no changelog entry for version %s", version)
		}
	}
	return issues
}
