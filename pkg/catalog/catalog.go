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

// Package catalog holds the static master-integrations service catalog and the
// transform that turns a service definition into a storage record.
package catalog

import "sort"

// Provider is the top-level namespace for a service catalog.
type Provider string

const (
	ProviderAWS  Provider = "aws"
	ProviderM365 Provider = "m365"
)

// Definition describes one catalog service. Definitions are static and
// read-only after package initialization.
type Definition struct {
	Service     string
	DisplayName string
	Category    string
	Description string
}

// Entry pairs a definition with the provider it belongs to.
type Entry struct {
	Definition Definition
	Provider   Provider
}

// assetsEnabledServices lists services with asset inventory tracking.
// AWS: IAM, Bedrock, EC2, Lambda, ECS, EKS. M365: Entra ID, Intune.
var assetsEnabledServices = map[string]struct{}{
	"iam":     {},
	"bedrock": {},
	"ec2":     {},
	"lambda":  {},
	"ecs":     {},
	"eks":     {},
	"entraid": {},
	"intune":  {},
}

// dataDiscoveryEnabledServices lists services with data discovery and
// classification. AWS: S3, DynamoDB, EC2, EFS, FSx, Neptune, RDS, Redshift.
// M365: SharePoint, OneDrive.
// Note: DocumentDB removed - data scanning not yet implemented.
var dataDiscoveryEnabledServices = map[string]struct{}{
	"s3":         {},
	"dynamodb":   {},
	"ec2":        {},
	"efs":        {},
	"fsx":        {},
	"neptune":    {},
	"rds":        {},
	"redshift":   {},
	"sharepoint": {},
	"onedrive":   {},
}

// AssetsEnabled reports whether the named service has the Assets feature.
func AssetsEnabled(service string) bool {
	_, ok := assetsEnabledServices[service]
	return ok
}

// DataDiscoveryEnabled reports whether the named service has the Data
// Discovery feature.
func DataDiscoveryEnabled(service string) bool {
	_, ok := dataDiscoveryEnabledServices[service]
	return ok
}

// AssetsEnabledServices returns the configured Assets set in sorted order.
func AssetsEnabledServices() []string {
	return sortedKeys(assetsEnabledServices)
}

// DataDiscoveryEnabledServices returns the configured Data Discovery set in
// sorted order.
func DataDiscoveryEnabledServices() []string {
	return sortedKeys(dataDiscoveryEnabledServices)
}

func sortedKeys(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))

	for name := range set {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// All returns every catalog entry in seeding order: the AWS list followed by
// the M365 list.
func All() []Entry {
	entries := make([]Entry, 0, len(AWSServices)+len(M365Services))

	for _, def := range AWSServices {
		entries = append(entries, Entry{Definition: def, Provider: ProviderAWS})
	}

	for _, def := range M365Services {
		entries = append(entries, Entry{Definition: def, Provider: ProviderM365})
	}

	return entries
}
