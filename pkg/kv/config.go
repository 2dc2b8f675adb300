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

package kv

import (
	"time"
)

// DefaultBucket is the fixed bucket name for the integration catalog. Naming
// follows the CDK convention: just the resource name, no environment prefix.
const DefaultBucket = "master-integrations"

// Config holds the connection settings for the catalog KV store.
type Config struct {
	NATSURL   string `json:"nats_url"`
	Bucket    string `json:"bucket,omitempty"`
	Domain    string `json:"domain,omitempty"` // Optional JetStream domain
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	CredsFile string `json:"creds_file,omitempty"`

	TLSCertFile string `json:"tls_cert_file,omitempty"`
	TLSKeyFile  string `json:"tls_key_file,omitempty"`
	TLSCAFile   string `json:"tls_ca_file,omitempty"`
	InsecureTLS bool   `json:"insecure_tls,omitempty"` // development only

	ConnectTimeout time.Duration `json:"-"`
}

// Validate checks mandatory fields and applies defaults.
func (c *Config) Validate() error {
	if c.NATSURL == "" {
		return errNatsURLRequired
	}

	if c.Bucket == "" {
		c.Bucket = DefaultBucket
	}

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errTLSCertKeyMismatch
	}

	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}

	return nil
}
