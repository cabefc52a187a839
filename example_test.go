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

package acceptable_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"rivaas.dev/acceptable"
	"rivaas.dev/acceptable/negotiate"
)

func Example() {
	svc, err := acceptable.NewService("ledger", "ledger",
		acceptable.WithVersionHeader(),
	)
	if err != nil {
		panic(err)
	}

	accounts, err := svc.Endpoint("/accounts", "list-accounts")
	if err != nil {
		panic(err)
	}

	v10 := func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "accounts v1.0") }
	v11 := func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "accounts v1.1") }
	if err := accounts.RegisterFunc("1.0", negotiate.NoFlag, v10); err != nil {
		panic(err)
	}
	if err := accounts.RegisterFunc("1.1", negotiate.NoFlag, v11); err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	svc.Bind(mux)

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("Accept", "application/vnd.ledger.1.0")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	fmt.Println(w.Body.String())
	fmt.Println(w.Header().Get("X-API-Version"))
	// Output:
	// accounts v1.0
	// 1.0
}

func Example_notAcceptable() {
	svc, err := acceptable.NewService("ledger", "ledger")
	if err != nil {
		panic(err)
	}

	accounts, err := svc.Endpoint("/accounts", "list-accounts")
	if err != nil {
		panic(err)
	}
	view := func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "ok") }
	if err := accounts.RegisterFunc("2.0", negotiate.NoFlag, view); err != nil {
		panic(err)
	}

	// No view exists at or below 1.5, so the request is rejected.
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("Accept", "application/vnd.ledger.1.5")
	w := httptest.NewRecorder()
	accounts.ServeHTTP(w, req)

	fmt.Println(w.Code)
	fmt.Println(w.Header().Get("Content-Type"))
	// Output:
	// 406
	// application/problem+json
}
