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

package negotiate_test

import (
	"fmt"

	"rivaas.dev/acceptable/negotiate"
)

// Example demonstrates the full negotiation flow: parse the Accept header
// values, then resolve the best registered view.
func Example() {
	views := negotiate.NewMap[string]()
	_ = views.Register("1.0", negotiate.NoFlag, "stable view")
	_ = views.Register("1.1", negotiate.NoFlag, "newer view")
	_ = views.Register("1.1", "beta", "beta view")

	parser, _ := negotiate.NewHeaderParser("myservice")

	version, flag, ok := parser.Parse([]string{
		"text/html",
		"application/vnd.myservice.1.1+beta",
	})
	fmt.Println(version, flag, ok)

	requested := negotiate.Latest()
	if ok {
		requested = negotiate.Exact(negotiate.MustVersion(version))
	}
	view, match, found := views.Resolve(requested, flag)
	fmt.Println(view, found, match.Outcome)

	// Output:
	// 1.1 beta true
	// beta view true exact
}

// ExampleMap_Resolve shows the closest-below fallback: a client asking for
// a version that was never registered is served the newest view that does
// not exceed its request.
func ExampleMap_Resolve() {
	views := negotiate.NewMap[string]()
	_ = views.Register("1.1", negotiate.NoFlag, "view 1.1")
	_ = views.Register("1.3", negotiate.NoFlag, "view 1.3")

	view, match, ok := views.Resolve(negotiate.Exact(negotiate.MustVersion("1.4")), negotiate.NoFlag)
	fmt.Println(view, match.Version, ok)

	// Nothing at or below 1.0 is registered, so there is no match.
	_, _, ok = views.Resolve(negotiate.Exact(negotiate.MustVersion("1.0")), negotiate.NoFlag)
	fmt.Println(ok)

	// Output:
	// view 1.3 1.3 true
	// false
}

// ExampleLatest shows that a request without an explicit version is served
// the numerically highest registered version.
func ExampleLatest() {
	views := negotiate.NewMap[string]()
	_ = views.Register("1.9", negotiate.NoFlag, "view 1.9")
	_ = views.Register("1.10", negotiate.NoFlag, "view 1.10")

	view, _, _ := views.Resolve(negotiate.Latest(), negotiate.NoFlag)
	fmt.Println(view)

	// Output:
	// view 1.10
}
