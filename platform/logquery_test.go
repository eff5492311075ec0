// Copyright 2024 ProjHub Team <dev@projhub.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package platform

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/projhub/projhub-cli/api"
)

func logsResponse(messages ...string) map[string]interface{} {
	logs := []map[string]string{}
	for i, message := range messages {
		logs = append(logs, map[string]string{
			"timestamp": fmt.Sprintf("2024-03-01 10:0%d:00,000", i),
			"level":     "INFO",
			"username":  "alice",
			"method":    "GET",
			"path":      "/api/projects",
			"status":    "200",
			"message":   message,
		})
	}
	return map[string]interface{}{"success": true, "logs": logs}
}

func newMockedPager(t *testing.T) *LogPager {
	client := resty.New()
	httpmock.ActivateNonDefault(client.GetClient())
	return NewLogPager(client)
}

func TestFetchCarriesFiltersAndProbes(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	var pageQueries []map[string]string
	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			pageQueries = append(pageQueries, map[string]string{
				"username": query.Get("username"),
				"page":     query.Get("page"),
				"per_page": query.Get("per_page"),
			})

			if query.Get("page") == "1" {
				return httpmock.NewJsonResponse(200, logsResponse("one", "two", "three"))
			}
			return httpmock.NewJsonResponse(200, logsResponse("page two row"))
		},
	)

	pager.SetFilter(api.LogFilter{Username: "alice", PerPage: 25})
	assert.NoError(t, pager.Fetch())

	// One request for the page, one probe for page 2.
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
	assert.Len(t, pager.Entries(), 3)
	assert.True(t, pager.HasNext())
	assert.Empty(t, pager.LastError())

	assert.Equal(t, map[string]string{"username": "alice", "page": "1", "per_page": "25"}, pageQueries[0])
	assert.Equal(t, map[string]string{"username": "alice", "page": "2", "per_page": "25"}, pageQueries[1])

	// Advancing keeps the same filters with page=2 and probes page 3.
	assert.NoError(t, pager.NextPage())
	assert.Equal(t, 2, pager.Page())
	assert.Equal(t, map[string]string{"username": "alice", "page": "2", "per_page": "25"}, pageQueries[2])
	assert.Equal(t, map[string]string{"username": "alice", "page": "3", "per_page": "25"}, pageQueries[3])
}

func TestFetchUnboundedSkipsProbe(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	var perPageSent string
	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			perPageSent = req.URL.Query().Get("per_page")
			return httpmock.NewJsonResponse(200, logsResponse("one", "two", "three"))
		},
	)

	pager.SetFilter(api.LogFilter{PerPage: api.PerPageAll})
	assert.NoError(t, pager.Fetch())

	// The sentinel never goes on the wire and there is only ever one page.
	assert.Equal(t, "1000000", perPageSent)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.False(t, pager.HasNext())
	assert.Len(t, pager.Entries(), 3)
}

func TestHasNextFromProbe(t *testing.T) {

	var tests = []struct {
		name            string
		probeMessages   []string
		expectedHasNext bool
	}{
		{"empty probe", nil, false},
		{"single row probe", []string{"more"}, true},
		{"full probe", []string{"a", "b", "c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pager := newMockedPager(t)
			defer httpmock.DeactivateAndReset()

			httpmock.RegisterResponder("GET", "/api/logs",
				func(req *http.Request) (*http.Response, error) {
					if req.URL.Query().Get("page") == "1" {
						return httpmock.NewJsonResponse(200, logsResponse("row"))
					}
					return httpmock.NewJsonResponse(200, logsResponse(tt.probeMessages...))
				},
			)

			pager.SetFilter(api.LogFilter{PerPage: 50})
			assert.NoError(t, pager.Fetch())
			assert.Equal(t, tt.expectedHasNext, pager.HasNext())
		})
	}
}

func TestProbeFailureDegradesToNoNextPage(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			if req.URL.Query().Get("page") == "1" {
				return httpmock.NewJsonResponse(200, logsResponse("row"))
			}
			return httpmock.NewJsonResponse(500, map[string]interface{}{"success": false})
		},
	)

	pager.SetFilter(api.LogFilter{PerPage: 50})

	// The primary page is still a success.
	assert.NoError(t, pager.Fetch())
	assert.Len(t, pager.Entries(), 1)
	assert.Empty(t, pager.LastError())
	assert.False(t, pager.HasNext())
}

func TestFetchSortsEntries(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			if req.URL.Query().Get("page") != "1" {
				return httpmock.NewJsonResponse(200, logsResponse())
			}
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"success": true,
				"logs": []map[string]string{
					{"timestamp": "2024-03-01 10:05:00,000", "message": "second"},
					{"timestamp": "2024-03-02T09:00:00", "message": "third"},
					{"timestamp": "broken", "message": "oldest"},
					{"timestamp": "2024-03-01 10:00:00,000", "message": "first"},
				},
			})
		},
	)

	pager.SetAscending(true)
	pager.SetFilter(api.LogFilter{PerPage: 50})
	assert.NoError(t, pager.Fetch())

	entries := pager.Entries()
	assert.Equal(t, "oldest", entries[0].Message)
	assert.Equal(t, "first", entries[1].Message)
	assert.Equal(t, "second", entries[2].Message)
	assert.Equal(t, "third", entries[3].Message)

	// Re-sorting happens locally, no extra request.
	calls := httpmock.GetTotalCallCount()
	pager.ToggleSort()
	assert.Equal(t, calls, httpmock.GetTotalCallCount())

	entries = pager.Entries()
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "oldest", entries[3].Message)

	// Toggling twice restores the original order.
	pager.ToggleSort()
	entries = pager.Entries()
	assert.Equal(t, "oldest", entries[0].Message)
	assert.Equal(t, "third", entries[3].Message)
}

func TestFetchFailureRetainsLastKnownGood(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			if req.URL.Query().Get("page") == "1" {
				return httpmock.NewJsonResponse(200, logsResponse("good row"))
			}
			return httpmock.NewJsonResponse(200, logsResponse())
		},
	)

	pager.SetFilter(api.LogFilter{PerPage: 50})
	assert.NoError(t, pager.Fetch())
	assert.Len(t, pager.Entries(), 1)

	httpmock.Reset()
	httpmock.RegisterResponder("GET", "/api/logs",
		httpmock.NewStringResponder(500, "internal error"),
	)

	err := pager.Fetch()
	assert.Error(t, err)

	// Last-known-good rows stay on display with a retained message.
	assert.Len(t, pager.Entries(), 1)
	assert.Equal(t, "good row", pager.Entries()[0].Message)
	assert.Equal(t, "internal error", pager.LastError())
	assert.False(t, pager.HasNext())
}

func TestFailedPageTurnRollsBackPageNumber(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, logsResponse("page one row"))
		},
	)

	pager.SetFilter(api.LogFilter{PerPage: 50})
	assert.NoError(t, pager.Fetch())
	assert.True(t, pager.HasNext())

	httpmock.Reset()
	httpmock.RegisterResponder("GET", "/api/logs",
		httpmock.NewStringResponder(500, "internal error"),
	)

	// The failed turn keeps the old rows on display, so the page number
	// must stay with them instead of pointing at the page that never loaded.
	assert.Error(t, pager.NextPage())
	assert.Equal(t, 1, pager.Page())
	assert.Len(t, pager.Entries(), 1)
	assert.Equal(t, "page one row", pager.Entries()[0].Message)
	assert.Equal(t, "internal error", pager.LastError())
}

func TestFetchServerRejectionSurfacesMessage(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"success": false,
				"message": "Admin access required",
			})
		},
	)

	pager.SetFilter(api.LogFilter{PerPage: 50})
	err := pager.Fetch()
	assert.EqualError(t, err, "Admin access required")
	assert.Equal(t, "Admin access required", pager.LastError())
}

func TestFilterChangeResetsPageAndDirtyFlag(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, logsResponse("row"))
		},
	)

	pager.SetFilter(api.LogFilter{Username: "alice", PerPage: 50})
	pager.SetPage(7)
	assert.Equal(t, 7, pager.Page())

	// Any filter change returns to page 1 and marks the pager dirty.
	filter := pager.Filter()
	filter.Method = "POST"
	pager.SetFilter(filter)
	assert.Equal(t, 1, pager.Page())
	assert.True(t, pager.Dirty())

	// The dirty flag clears only once a fetch is actually issued.
	assert.NoError(t, pager.Fetch())
	assert.False(t, pager.Dirty())
}

func TestSupersededFetchIsSilentAndLastRequestWins(t *testing.T) {
	pager := newMockedPager(t)
	defer httpmock.DeactivateAndReset()

	started := make(chan struct{})
	release := make(chan struct{})

	httpmock.RegisterResponder("GET", "/api/logs",
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()

			if query.Get("username") == "alice" {
				close(started)
				<-release
				return httpmock.NewJsonResponse(200, logsResponse("from alice"))
			}

			if query.Get("page") == "1" {
				return httpmock.NewJsonResponse(200, logsResponse("from bob"))
			}
			return httpmock.NewJsonResponse(200, logsResponse())
		},
	)

	pager.SetFilter(api.LogFilter{Username: "alice", PerPage: 50})

	var slowErr error
	slowDone := make(chan struct{})
	go func() {
		slowErr = pager.Fetch()
		close(slowDone)
	}()
	<-started

	// A second fetch supersedes the in-flight one.
	pager.SetFilter(api.LogFilter{Username: "bob", PerPage: 50})
	assert.NoError(t, pager.Fetch())

	close(release)
	<-slowDone

	// The superseded fetch resolves as a silent no-op; the newer fetch's
	// rows stay in place.
	assert.NoError(t, slowErr)
	assert.Len(t, pager.Entries(), 1)
	assert.Equal(t, "from bob", pager.Entries()[0].Message)
	assert.Empty(t, pager.LastError())
}
