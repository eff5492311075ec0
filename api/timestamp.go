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
	"sort"
	"strings"
	"time"
)

// The shapes the platform log actually emits. The server writes timestamps
// with a space separator and a comma before the fractional seconds
// ("2006-01-02 15:04:05,000"); both are normalized before parsing.
var logTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseLogTimestamp parses a server log timestamp leniently. It never fails:
// whitespace is trimmed, a space date/time separator becomes a "T", a
// fractional-seconds comma becomes a dot, and anything still unparseable
// (including the empty string) maps to the zero time. The fallback is
// deterministic so that sorting stays total and stable; rows with broken
// timestamps consistently sort as the oldest possible.
func ParseLogTimestamp(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}
	}

	value = strings.Replace(value, " ", "T", 1)
	value = strings.Replace(value, ",", ".", 1)

	for _, layout := range logTimestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}

	return time.Time{}
}

// SortLogEntries orders entries by their parsed timestamp. The sort is
// stable, so rows with equal or unparseable timestamps keep their relative
// order across repeated re-sorts.
func SortLogEntries(entries []*LogEntry, ascending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti := ParseLogTimestamp(entries[i].Timestamp)
		tj := ParseLogTimestamp(entries[j].Timestamp)
		if ascending {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})
}
