/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination=mock_kv.go -package=kv github.com/carverauto/integrations/pkg/kv KVStore

// Package kv provides the key-value storage boundary for the integration
// catalog, backed by NATS JetStream.
package kv

import (
	"context"
)

// KVStore defines the interface for the catalog's key-value store.
type KVStore interface {
	// Get retrieves the value associated with the given key.
	// Returns the value as a byte slice, a boolean indicating if the key was found, and an error if the operation fails.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores a value under the given key, overwriting any existing value.
	Put(ctx context.Context, key string, value []byte) error

	// ListKeys returns every key currently present in the bucket. The
	// underlying lister streams keys, so large buckets are paged without
	// the caller tracking a cursor.
	ListKeys(ctx context.Context) ([]string, error)

	// Close shuts down the KV store, releasing any resources (e.g., connections).
	Close() error
}
