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

// Package acceptable serves multiple versions of an HTTP endpoint behind a
// single URL, selecting the version and feature-flag variant at request
// time from the client's Accept header.
//
// # Overview
//
// Clients request a version through a vendor media type:
//
//	Accept: application/vnd.myservice.1.3+beta
//
// A Service owns the vendor identifier and a set of named Endpoints. Each
// Endpoint registers plain http.Handler views at explicit versions and
// optional flags, and dispatches each request to the best matching view
// using the negotiation engine in rivaas.dev/acceptable/negotiate:
// exact version match first, then the closest registered version below the
// request, then the unflagged views, and 406 Not Acceptable (as an
// RFC 9457 problem document) when nothing fits. Clients that name no
// version get the newest registered view.
//
// # Usage
//
//	svc, err := acceptable.NewService("ledger", "ledger")
//	if err != nil {
//	    return err
//	}
//
//	list, err := svc.Endpoint("/accounts", "list-accounts",
//	    acceptable.WithMethods(http.MethodGet),
//	    acceptable.WithDocs("List the accounts visible to the caller."),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := list.RegisterFunc("1.0", negotiate.NoFlag, listAccountsV1); err != nil {
//	    return err
//	}
//	if err := list.RegisterFunc("1.1", "beta", listAccountsBeta); err != nil {
//	    return err
//	}
//
//	mux := http.NewServeMux()
//	svc.Bind(mux)
//
// Registration happens at service definition time and fails fast on
// malformed versions, duplicate endpoint names, or conflicting URL and
// method combinations. Binding to a mux is a separate, explicit step.
//
// # Metadata
//
// Every service records endpoint metadata (URL, methods, documentation,
// registered versions and flags, changelog entries) into a
// metadata.Registry, either a private one or one shared across services
// via WithRegistry. The registry feeds the openapi exporter and the lint
// backward-compatibility checker.
//
// # Observability
//
// Negotiation outcomes can be recorded as OpenTelemetry metrics through a
// Recorder (Prometheus, OTLP, stdout, or a caller-supplied meter
// provider), and 406 responses are logged through the service's
// slog.Logger.
package acceptable
