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

// Package seeder populates and verifies the master-integrations bucket from
// the static service catalog.
package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/carverauto/integrations/pkg/catalog"
	"github.com/carverauto/integrations/pkg/kv"
	"github.com/carverauto/integrations/pkg/logger"
)

// Seeder runs the two catalog operations: a best-effort seeding pass and a
// full read-back verification. Both are single linear passes over the bucket.
type Seeder struct {
	store kv.KVStore
	log   logger.Logger
	now   func() time.Time
}

// New creates a Seeder on the given store.
func New(store kv.KVStore, log logger.Logger) *Seeder {
	return &Seeder{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// SeedAll builds a record for every catalog entry and writes it to the store,
// overwriting any previous version. With simulate set, the intended writes are
// logged and counted but no storage call is made. Individual write failures
// are counted and the pass continues.
func (s *Seeder) SeedAll(ctx context.Context, simulate bool) (*Summary, error) {
	summary := newSummary()

	for _, entry := range catalog.All() {
		summary.Processed++

		rec := catalog.BuildRecordAt(entry.Definition, entry.Provider, s.now().UTC())
		summary.ByProvider[rec.Provider]++
		summary.ByCategory[rec.Category]++

		if simulate {
			s.log.Info().
				Str("pk", rec.PK).
				Str("features", strings.Join(enabledFeatures(rec), ", ")).
				Msg("[dry-run] would write")

			summary.Written++

			continue
		}

		data, err := json.Marshal(rec)
		if err != nil {
			// Record marshaling never fails for the static catalog; counted
			// rather than fatal to keep the pass best-effort.
			s.log.Error().Err(err).Str("pk", rec.PK).Msg("failed to marshal record")

			summary.Errors++

			continue
		}

		key := catalog.KeyPath(entry.Provider, entry.Definition.Service)

		if err := s.store.Put(ctx, key, data); err != nil {
			s.log.Error().Err(err).Str("pk", rec.PK).Msg("failed to write record")

			summary.Errors++

			continue
		}

		s.log.Info().Str("pk", rec.PK).Msg("written")

		summary.Written++
	}

	return summary, nil
}

// Verify scans the whole bucket, recomputes the grouped counts, and collects
// the records carrying each optional feature. Any read failure aborts the
// pass; reads are not retried.
func (s *Seeder) Verify(ctx context.Context) (*VerifyReport, error) {
	keys, err := s.store.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog keys: %w", err)
	}

	report := newVerifyReport()

	for _, key := range keys {
		value, found, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read key %s: %w", key, err)
		}

		if !found {
			return nil, fmt.Errorf("%w: %s", errKeyVanished, key)
		}

		var rec catalog.Record
		if err := json.Unmarshal(value, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record %s: %w", key, err)
		}

		report.observe(&rec)
	}

	report.sortServiceLists()

	return report, nil
}

func enabledFeatures(rec catalog.Record) []string {
	var features []string

	if rec.CSPMEnabled == "true" {
		features = append(features, "CSPM")
	}

	if rec.AssetsEnabled == "true" {
		features = append(features, "Assets")
	}

	if rec.DataDiscoveryEnabled == "true" {
		features = append(features, "DataDiscovery")
	}

	return features
}

func (r *VerifyReport) observe(rec *catalog.Record) {
	r.Total++

	provider := rec.Provider
	if provider == "" {
		provider = "unknown"
	}

	category := rec.Category
	if category == "" {
		category = "unknown"
	}

	r.ByProvider[provider]++
	r.ByCategory[category]++

	ref := ServiceRef{
		PK:          rec.PK,
		Provider:    rec.Provider,
		Service:     rec.Service,
		DisplayName: rec.DisplayName,
	}

	if rec.CSPMEnabled == "true" {
		r.CSPMCount++
	}

	if rec.AssetsEnabled == "true" {
		r.AssetsCount++
		r.AssetsServices = append(r.AssetsServices, ref)
	}

	if rec.DataDiscoveryEnabled == "true" {
		r.DataDiscoveryCount++
		r.DataDiscoveryServices = append(r.DataDiscoveryServices, ref)
	}
}

func (r *VerifyReport) sortServiceLists() {
	byPK := func(refs []ServiceRef) func(i, j int) bool {
		return func(i, j int) bool { return refs[i].PK < refs[j].PK }
	}

	sort.Slice(r.AssetsServices, byPK(r.AssetsServices))
	sort.Slice(r.DataDiscoveryServices, byPK(r.DataDiscoveryServices))
}
