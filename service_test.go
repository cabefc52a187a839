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

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/acceptable/metadata"
	"rivaas.dev/acceptable/negotiate"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		svc, err := NewService("ledger", "ledger")
		require.NoError(t, err)
		assert.Equal(t, "ledger", svc.Name())
		assert.Equal(t, "ledger", svc.Vendor())
		assert.NotNil(t, svc.Registry())
	})

	t.Run("empty_name", func(t *testing.T) {
		t.Parallel()

		_, err := NewService("", "ledger")
		assert.ErrorIs(t, err, ErrEmptyServiceName)
	})

	t.Run("empty_vendor", func(t *testing.T) {
		t.Parallel()

		_, err := NewService("ledger", "")
		assert.ErrorIs(t, err, negotiate.ErrEmptyVendor)
	})

	t.Run("invalid_vendor", func(t *testing.T) {
		t.Parallel()

		_, err := NewService("ledger", "my-vendor")
		assert.ErrorIs(t, err, negotiate.ErrInvalidVendor)
	})

	t.Run("nil_logger", func(t *testing.T) {
		t.Parallel()

		_, err := NewService("ledger", "ledger", WithLogger(nil))
		assert.ErrorIs(t, err, ErrNilLogger)
	})

	t.Run("nil_registry", func(t *testing.T) {
		t.Parallel()

		_, err := NewService("ledger", "ledger", WithRegistry(nil))
		assert.ErrorIs(t, err, ErrNilRegistry)
	})

	t.Run("nil_recorder", func(t *testing.T) {
		t.Parallel()

		_, err := NewService("ledger", "ledger", WithMetrics(nil))
		assert.ErrorIs(t, err, ErrNilRecorder)
	})

	t.Run("with_logger", func(t *testing.T) {
		t.Parallel()

		_, err := NewService("ledger", "ledger", WithLogger(slog.Default()))
		assert.NoError(t, err)
	})
}

func TestService_SharedRegistry(t *testing.T) {
	t.Parallel()

	reg := metadata.NewRegistry()

	_, err := NewService("ledger", "ledger", WithRegistry(reg))
	require.NoError(t, err)
	_, err = NewService("billing", "billing", WithRegistry(reg))
	require.NoError(t, err)

	// Service names are unique per registry.
	_, err = NewService("ledger", "ledger", WithRegistry(reg))
	assert.ErrorIs(t, err, metadata.ErrServiceExists)

	snap := reg.Snapshot()
	require.Len(t, snap.Services, 2)
	assert.Equal(t, "billing", snap.Services[0].Name)
	assert.Equal(t, "ledger", snap.Services[1].Name)
}

func TestService_EndpointConflicts(t *testing.T) {
	t.Parallel()

	svc, err := NewService("ledger", "ledger")
	require.NoError(t, err)

	_, err = svc.Endpoint("/accounts", "list-accounts")
	require.NoError(t, err)

	t.Run("duplicate_name", func(t *testing.T) {
		_, err := svc.Endpoint("/other", "list-accounts")
		assert.ErrorIs(t, err, metadata.ErrAPIExists)
	})

	t.Run("duplicate_url_and_methods", func(t *testing.T) {
		_, err := svc.Endpoint("/accounts", "list-accounts-again")
		assert.ErrorIs(t, err, metadata.ErrURLTaken)
	})

	t.Run("same_url_different_method", func(t *testing.T) {
		_, err := svc.Endpoint("/accounts", "create-account", WithMethods(http.MethodPost))
		assert.NoError(t, err)
	})

	t.Run("empty_url", func(t *testing.T) {
		_, err := svc.Endpoint("", "no-url")
		assert.ErrorIs(t, err, ErrEmptyURL)
	})

	t.Run("no_methods", func(t *testing.T) {
		_, err := svc.Endpoint("/x", "no-methods", WithMethods())
		assert.ErrorIs(t, err, ErrNoMethods)
	})
}

func TestService_MetadataRecording(t *testing.T) {
	t.Parallel()

	svc, err := NewService("ledger", "ledger")
	require.NoError(t, err)

	e, err := svc.Endpoint("/accounts", "list-accounts",
		WithDocs("Lists the accounts visible to the caller."),
	)
	require.NoError(t, err)

	require.NoError(t, e.RegisterFunc("1.2", negotiate.NoFlag, textView("v1.2")))
	require.NoError(t, e.RegisterFunc("1.0", negotiate.NoFlag, textView("v1.0")))
	require.NoError(t, e.RegisterFunc("1.2", "beta", textView("beta")))
	require.NoError(t, e.Changelog("1.2", "Added pagination."))

	snap := svc.Registry().Snapshot()
	svcSnap, ok := snap.Service("ledger")
	require.True(t, ok)
	api, ok := svcSnap.API("list-accounts")
	require.True(t, ok)

	assert.Equal(t, "/accounts", api.URL)
	assert.Equal(t, "Lists the accounts visible to the caller.", api.Docs)
	assert.Equal(t, "1.0", api.IntroducedAt)
	assert.Equal(t, []string{"1.0", "1.2"}, api.Versions)
	assert.Equal(t, map[string]string{"1.2": "Added pagination."}, api.Changelog)
}

func TestService_Endpoints(t *testing.T) {
	t.Parallel()

	svc, err := NewService("ledger", "ledger")
	require.NoError(t, err)

	_, err = svc.Endpoint("/b", "bravo")
	require.NoError(t, err)
	_, err = svc.Endpoint("/a", "alpha")
	require.NoError(t, err)

	endpoints := svc.Endpoints()
	require.Len(t, endpoints, 2)
	assert.Equal(t, "alpha", endpoints[0].Name())
	assert.Equal(t, "bravo", endpoints[1].Name())
	assert.Equal(t, "/a", endpoints[0].URL())
	assert.Equal(t, []string{http.MethodGet}, endpoints[0].Methods())
}
