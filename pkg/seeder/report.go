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

package seeder

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/carverauto/integrations/pkg/catalog"
)

var errKeyVanished = errors.New("key listed but not readable")

const reportRule = "================================================================================"

// Summary holds the counters for one seeding pass.
type Summary struct {
	Processed  int
	Written    int
	Errors     int
	ByProvider map[string]int
	ByCategory map[string]int
}

func newSummary() *Summary {
	return &Summary{
		ByProvider: make(map[string]int),
		ByCategory: make(map[string]int),
	}
}

// ServiceRef identifies one record in the verification feature lists.
type ServiceRef struct {
	PK          string
	Provider    string
	Service     string
	DisplayName string
}

// VerifyReport holds the counts recomputed from a full bucket scan.
type VerifyReport struct {
	Total      int
	ByProvider map[string]int
	ByCategory map[string]int

	CSPMCount          int
	AssetsCount        int
	DataDiscoveryCount int

	AssetsServices        []ServiceRef
	DataDiscoveryServices []ServiceRef
}

func newVerifyReport() *VerifyReport {
	return &VerifyReport{
		ByProvider: make(map[string]int),
		ByCategory: make(map[string]int),
	}
}

// Render writes the human-readable seeding summary.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, "Seeding Summary")
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Total services: %d\n", s.Processed)
	fmt.Fprintf(w, "Written: %d\n", s.Written)
	fmt.Fprintf(w, "Errors: %d\n", s.Errors)

	renderCounts(w, "By provider:", s.ByProvider)
	renderCounts(w, "By category:", s.ByCategory)

	assets := catalog.AssetsEnabledServices()
	dataDiscovery := catalog.DataDiscoveryEnabledServices()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Feature coverage:")
	fmt.Fprintf(w, "  CSPM: %d services (all)\n", s.Processed)
	fmt.Fprintf(w, "  Assets: %d services (%s)\n", len(assets), strings.Join(assets, ", "))
	fmt.Fprintf(w, "  Data Discovery: %d services (%s)\n", len(dataDiscovery), strings.Join(dataDiscovery, ", "))
	fmt.Fprintln(w, reportRule)
}

// Render writes the human-readable verification report.
func (r *VerifyReport) Render(w io.Writer) {
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Total items: %d\n", r.Total)

	renderCounts(w, "By provider:", r.ByProvider)
	renderCounts(w, "By category:", r.ByCategory)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Feature coverage:")
	fmt.Fprintf(w, "  CSPM enabled: %d\n", r.CSPMCount)
	fmt.Fprintf(w, "  Assets enabled: %d\n", r.AssetsCount)
	fmt.Fprintf(w, "  Data Discovery enabled: %d\n", r.DataDiscoveryCount)

	renderServiceList(w, "Services with Assets feature:", r.AssetsServices)
	renderServiceList(w, "Services with Data Discovery feature:", r.DataDiscoveryServices)

	fmt.Fprintln(w, reportRule)
}

func renderCounts(w io.Writer, title string, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}

	sort.Strings(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, title)

	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d\n", name, counts[name])
	}
}

func renderServiceList(w io.Writer, title string, refs []ServiceRef) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)

	for _, ref := range refs {
		fmt.Fprintf(w, "  - [%s] %s: %s\n", ref.Provider, ref.Service, ref.DisplayName)
	}
}
