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

// Package lint checks metadata snapshots for backward-incompatible API
// changes.
//
// Compare diffs a previously saved snapshot against the current one and
// reports what a deployed client could notice: removed services or APIs,
// moved URLs, dropped methods or versions, and rewritten history. Wire it
// into CI by snapshotting the registry on each release and comparing the
// stored snapshot against the build's:
//
//	issues := lint.Compare(saved, svc.Registry().Snapshot())
//	for _, issue := range issues {
//	    fmt.Println(issue)
//	}
//	if lint.HasErrors(issues) {
//	    os.Exit(1)
//	}
package lint
