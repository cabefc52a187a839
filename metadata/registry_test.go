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

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/acceptable/negotiate"
)

func TestRegistry_RegisterService(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))

	err := r.RegisterService("ledger", "ledger")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceExists)

	err = r.RegisterService("", "v")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRegistry_RegisterAPI(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))

	require.NoError(t, r.RegisterAPI("ledger", API{
		Name:    "list-accounts",
		URL:     "/accounts",
		Methods: []string{"GET"},
	}))

	t.Run("duplicate_name", func(t *testing.T) {
		err := r.RegisterAPI("ledger", API{Name: "list-accounts", URL: "/other"})
		assert.ErrorIs(t, err, ErrAPIExists)
	})

	t.Run("duplicate_url_and_methods", func(t *testing.T) {
		err := r.RegisterAPI("ledger", API{
			Name:    "list-accounts-again",
			URL:     "/accounts",
			Methods: []string{"GET"},
		})
		assert.ErrorIs(t, err, ErrURLTaken)
	})

	t.Run("same_url_different_method_is_fine", func(t *testing.T) {
		require.NoError(t, r.RegisterAPI("ledger", API{
			Name:    "create-account",
			URL:     "/accounts",
			Methods: []string{"POST"},
		}))
	})

	t.Run("unknown_service", func(t *testing.T) {
		err := r.RegisterAPI("nope", API{Name: "x", URL: "/x"})
		assert.ErrorIs(t, err, ErrUnknownService)
	})
}

func TestRegistry_RecordView(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))
	require.NoError(t, r.RegisterAPI("ledger", API{Name: "list", URL: "/accounts"}))

	require.NoError(t, r.RecordView("ledger", "list", "1.2", negotiate.NoFlag))
	require.NoError(t, r.RecordView("ledger", "list", "1.0", negotiate.NoFlag))
	require.NoError(t, r.RecordView("ledger", "list", "1.10", "beta"))

	err := r.RecordView("ledger", "list", "1.0.0", negotiate.NoFlag)
	assert.ErrorIs(t, err, negotiate.ErrVersionFormat)

	err = r.RecordView("ledger", "missing", "1.0", negotiate.NoFlag)
	assert.ErrorIs(t, err, ErrUnknownAPI)

	snap := r.Snapshot()
	svc, ok := snap.Service("ledger")
	require.True(t, ok)
	api, ok := svc.API("list")
	require.True(t, ok)

	assert.Equal(t, "1.0", api.IntroducedAt, "introduced-at is the lowest recorded version")
	assert.Equal(t, []string{"1.0", "1.2", "1.10"}, api.Versions, "versions sorted numerically")
	assert.Equal(t, []string{"beta"}, api.Flags)
}

func TestRegistry_RecordChangelog(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))
	require.NoError(t, r.RegisterAPI("ledger", API{Name: "list", URL: "/accounts"}))

	require.NoError(t, r.RecordChangelog("ledger", "list", "1.1", "added pagination"))

	snap := r.Snapshot()
	svc, _ := snap.Service("ledger")
	api, _ := svc.API("list")
	assert.Equal(t, map[string]string{"1.1": "added pagination"}, api.Changelog)
}

func TestRegistry_SnapshotIsDetached(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))
	require.NoError(t, r.RegisterAPI("ledger", API{Name: "list", URL: "/accounts"}))

	snap := r.Snapshot()
	require.NoError(t, r.RecordView("ledger", "list", "2.0", negotiate.NoFlag))

	svc, _ := snap.Service("ledger")
	api, _ := svc.API("list")
	assert.Empty(t, api.Versions, "snapshot must not observe later mutations")
}

func TestRegistry_DefaultsToGET(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))
	require.NoError(t, r.RegisterAPI("ledger", API{Name: "list", URL: "/accounts"}))

	svc, _ := r.Snapshot().Service("ledger")
	api, _ := svc.API("list")
	assert.Equal(t, []string{"GET"}, api.Methods)
}

func TestRegistry_Reset(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))

	r.Reset()
	assert.Empty(t, r.Snapshot().Services)

	// The same name registers cleanly after a reset.
	require.NoError(t, r.RegisterService("ledger", "ledger"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.RegisterService("ledger", "ledger"))
	require.NoError(t, r.RegisterAPI("ledger", API{Name: "list", URL: "/accounts"}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.RecordView("ledger", "list", "1.0", negotiate.NoFlag)
		}()
		go func() {
			defer wg.Done()
			_ = r.Snapshot()
		}()
	}
	wg.Wait()

	svc, _ := r.Snapshot().Service("ledger")
	api, _ := svc.API("list")
	assert.Equal(t, []string{"1.0"}, api.Versions)
}
