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

package catalog

import (
	"fmt"
	"time"
)

// UpdatedBy is the identity stamped on every seeded record.
const UpdatedBy = "system"

// Feature describes one feature flag inside the record's features map.
type Feature struct {
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// Features is the detailed per-feature map carried in API responses.
type Features struct {
	CSPM          Feature `json:"cspm"`
	Assets        Feature `json:"assets"`
	DataDiscovery Feature `json:"dataDiscovery"`
}

// Record is the item written to the master-integrations bucket. Feature flags
// are duplicated as "true"/"false" strings for secondary-index compatibility.
type Record struct {
	PK          string `json:"pk"`
	Provider    string `json:"provider"`
	Service     string `json:"service"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Category    string `json:"category"`

	CSPMEnabled          string `json:"cspmEnabled"`
	AssetsEnabled        string `json:"assetsEnabled"`
	DataDiscoveryEnabled string `json:"dataDiscoveryEnabled"`

	Features Features `json:"features"`

	// CollectorName maps the record back to its discovery collector.
	CollectorName string `json:"collectorName"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	UpdatedBy string `json:"updatedBy"`
}

// PK returns the composite record key for a provider/service pair.
func PK(provider Provider, service string) string {
	return fmt.Sprintf("%s#%s", provider, service)
}

// KeyPath returns the bucket key for a provider/service pair. JetStream KV
// keys cannot contain '#', so the bucket key uses '/' while the record's pk
// field keeps the composite form.
func KeyPath(provider Provider, service string) string {
	return fmt.Sprintf("%s/%s", provider, service)
}

// BuildRecord derives the storage record for a definition. CSPM is enabled for
// every service; Assets and Data Discovery follow the configured sets. Both
// timestamps are stamped with the invocation time.
func BuildRecord(def Definition, provider Provider) Record {
	return BuildRecordAt(def, provider, time.Now().UTC())
}

// BuildRecordAt is BuildRecord with an explicit clock, for callers that need
// reproducible timestamps.
func BuildRecordAt(def Definition, provider Provider, now time.Time) Record {
	const cspmEnabled = true

	assetsEnabled := AssetsEnabled(def.Service)
	dataDiscoveryEnabled := DataDiscoveryEnabled(def.Service)
	timestamp := now.UTC().Format(time.RFC3339Nano)

	return Record{
		PK:          PK(provider, def.Service),
		Provider:    string(provider),
		Service:     def.Service,
		DisplayName: def.DisplayName,
		Description: def.Description,
		Category:    def.Category,

		CSPMEnabled:          boolString(cspmEnabled),
		AssetsEnabled:        boolString(assetsEnabled),
		DataDiscoveryEnabled: boolString(dataDiscoveryEnabled),

		Features: Features{
			CSPM: Feature{
				Enabled:     cspmEnabled,
				Description: "Cloud Security Posture Management checks",
			},
			Assets: Feature{
				Enabled:     assetsEnabled,
				Description: "Asset inventory tracking",
			},
			DataDiscovery: Feature{
				Enabled:     dataDiscoveryEnabled,
				Description: "Data discovery and classification",
			},
		},

		CollectorName: def.Service,

		CreatedAt: timestamp,
		UpdatedAt: timestamp,
		UpdatedBy: UpdatedBy,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
