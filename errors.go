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

package acceptable

import "errors"

// Static errors for service and endpoint configuration.
// These errors are wrapped with fmt.Errorf and %w where context is added.
var (
	// Service configuration errors
	ErrEmptyServiceName = errors.New("service name cannot be empty")
	ErrNilLogger        = errors.New("logger cannot be nil")
	ErrNilRegistry      = errors.New("registry cannot be nil")
	ErrNilRecorder      = errors.New("metrics recorder cannot be nil")

	// Endpoint configuration errors
	ErrEmptyURL    = errors.New("endpoint URL cannot be empty")
	ErrNoMethods   = errors.New("at least one HTTP method is required")
	ErrEmptyMethod = errors.New("HTTP method cannot be empty")
	ErrNilView     = errors.New("view handler cannot be nil")

	// Recorder configuration errors
	ErrNilMeterProvider = errors.New("meter provider cannot be nil")
	ErrEmptyEndpoint    = errors.New("exporter endpoint cannot be empty")
)
