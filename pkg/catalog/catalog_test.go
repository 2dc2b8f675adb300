package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOrdersAWSBeforeM365(t *testing.T) {
	entries := All()
	require.Len(t, entries, len(AWSServices)+len(M365Services))

	for i, entry := range entries {
		if i < len(AWSServices) {
			assert.Equal(t, ProviderAWS, entry.Provider)
		} else {
			assert.Equal(t, ProviderM365, entry.Provider)
		}
	}
}

func TestNoDuplicateProviderServicePairs(t *testing.T) {
	seen := make(map[string]struct{})

	for _, entry := range All() {
		key := PK(entry.Provider, entry.Definition.Service)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate catalog key %s", key)
		seen[key] = struct{}{}
	}
}

func TestDefinitionsAreComplete(t *testing.T) {
	for _, entry := range All() {
		def := entry.Definition
		assert.NotEmpty(t, def.Service)
		assert.NotEmpty(t, def.DisplayName, "service %s", def.Service)
		assert.NotEmpty(t, def.Category, "service %s", def.Service)
	}
}

func TestFeatureSetsCoverCatalogServices(t *testing.T) {
	names := make(map[string]struct{})
	for _, entry := range All() {
		names[entry.Definition.Service] = struct{}{}
	}

	for _, svc := range AssetsEnabledServices() {
		_, ok := names[svc]
		assert.True(t, ok, "assets set references unknown service %s", svc)
	}

	for _, svc := range DataDiscoveryEnabledServices() {
		_, ok := names[svc]
		assert.True(t, ok, "data discovery set references unknown service %s", svc)
	}
}

func TestDataDiscoveryExcludesDocumentDB(t *testing.T) {
	// Pending data scanning support; see dataDiscoveryEnabledServices.
	assert.False(t, DataDiscoveryEnabled("documentdb"))
}
