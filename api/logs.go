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

package api

import (
	"strconv"
)

// LogsResult is the envelope returned by GET /api/logs. The endpoint carries
// no pagination metadata (no total count, no has-more flag).
type LogsResult struct {
	Success bool        `json:"success"`
	Logs    []*LogEntry `json:"logs"`
	Message string      `json:"message,omitempty"`
}

// LogEntry is one parsed action log line as served by the platform. All
// fields are opaque display strings. Timestamp is server-local and not
// guaranteed to be ISO-8601; see ParseLogTimestamp.
type LogEntry struct {
	Timestamp  string `json:"timestamp"`
	Level      string `json:"level"`
	RemoteAddr string `json:"remote_addr"`
	Username   string `json:"username"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

const (
	// DefaultLines is the legacy tail cap the server expects on every call.
	DefaultLines = 200

	// DefaultPerPage matches the server-side default page size.
	DefaultPerPage = 100

	// PerPageAll is the client-only sentinel for "no page size limit". It is
	// never transmitted verbatim.
	PerPageAll = 0

	// PerPageAllCap is what goes on the wire for PerPageAll. The backend has
	// no "unlimited" notion; this mirrors the platform frontend cap and must
	// not change without a backend contract change.
	PerPageAllCap = 1000000
)

// LogFilter carries one query against /api/logs. A fresh filter is built for
// every request from the current inputs; it is not reused across requests.
type LogFilter struct {
	Lines    int
	Username string
	Method   string
	Path     string
	Search   string
	Start    string
	End      string
	Page     int
	PerPage  int
}

func NewLogFilter() LogFilter {
	return LogFilter{
		Lines:   DefaultLines,
		Page:    1,
		PerPage: DefaultPerPage,
	}
}

// Unbounded reports whether the filter selects the single "all rows" page.
// An unbounded query has, by definition, no next page.
func (f *LogFilter) Unbounded() bool {
	return f.PerPage == PerPageAll
}

// QueryParams renders the filter for transmission. Empty string filters are
// omitted entirely; the server treats absence as "no filter". The PerPageAll
// sentinel is replaced by PerPageAllCap, and page is clamped to 1.
func (f *LogFilter) QueryParams() map[string]string {
	page := f.Page
	if page < 1 {
		page = 1
	}

	perPage := f.PerPage
	if perPage == PerPageAll {
		perPage = PerPageAllCap
	}

	params := map[string]string{
		"lines":    strconv.Itoa(f.Lines),
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	}

	optional := map[string]string{
		"username": f.Username,
		"method":   f.Method,
		"path":     f.Path,
		"search":   f.Search,
		"start":    f.Start,
		"end":      f.End,
	}
	for key, value := range optional {
		if value != "" {
			params[key] = value
		}
	}

	return params
}
