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

import "errors"

// Static errors for version and vendor validation.
// These errors are wrapped with fmt.Errorf and %w where context is added.
var (
	// Version format errors
	ErrVersionFormat   = errors.New("version must be in the format <major>.<minor>")
	ErrMajorNotDecimal = errors.New("major version is not a decimal integer")
	ErrMinorNotDecimal = errors.New("minor version is not a decimal integer")

	// Vendor errors
	ErrEmptyVendor   = errors.New("vendor cannot be empty")
	ErrInvalidVendor = errors.New("vendor must contain only letters and digits")

	// Registration errors
	ErrDuplicateView = errors.New("a view is already registered for this version and flag")
)
