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

package negotiate

import (
	"fmt"
	"testing"
)

// benchMap builds a map with n consecutive minor versions under NoFlag and
// a handful of flagged views.
func benchMap(n int) *Map[int] {
	m := NewMap[int]()
	for i := 0; i < n; i++ {
		if err := m.Register(fmt.Sprintf("1.%d", i), NoFlag, i); err != nil {
			panic(err)
		}
	}
	if err := m.Register("1.0", "beta", -1); err != nil {
		panic(err)
	}
	return m
}

func BenchmarkMap_ResolveExact(b *testing.B) {
	m := benchMap(32)
	requested := Exact(MustVersion("1.16"))

	b.ReportAllocs()
	for b.Loop() {
		if _, _, ok := m.Resolve(requested, NoFlag); !ok {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkMap_ResolveClosestBelow(b *testing.B) {
	m := benchMap(32)
	// 2.0 is above everything registered, so every resolution walks the
	// closest-below path to 1.31.
	requested := Exact(MustVersion("2.0"))

	b.ReportAllocs()
	for b.Loop() {
		if _, _, ok := m.Resolve(requested, NoFlag); !ok {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkMap_ResolveFlagFallback(b *testing.B) {
	m := benchMap(32)
	requested := Exact(MustVersion("1.16"))

	b.ReportAllocs()
	for b.Loop() {
		if _, _, ok := m.Resolve(requested, "unregistered-flag"); !ok {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkHeaderParser_Parse(b *testing.B) {
	p, err := NewHeaderParser("myservice")
	if err != nil {
		b.Fatal(err)
	}
	values := []string{
		"text/html",
		"application/vnd.other.1.2",
		"application/vnd.myservice.1.3+feature1",
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, _, ok := p.Parse(values); !ok {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkParseVersion(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ParseVersion("1.10"); err != nil {
			b.Fatal(err)
		}
	}
}
