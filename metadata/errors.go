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

package metadata

import "errors"

// Static errors for registry operations.
// These errors are wrapped with fmt.Errorf and %w where context is added.
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrServiceExists  = errors.New("service is already registered")
	ErrUnknownService = errors.New("service is not registered")
	ErrAPIExists      = errors.New("an API with this name already exists in the service")
	ErrURLTaken       = errors.New("the URL and method combination is already registered")
	ErrUnknownAPI     = errors.New("API is not registered in the service")
)
