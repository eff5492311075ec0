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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLogTimestamp(t *testing.T) {

	var tests = []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{"iso", "2024-03-01T10:00:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"space separator", "2024-03-01 10:00:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"comma fraction", "2024-03-01 10:00:00,123", time.Date(2024, 3, 1, 10, 0, 0, 123000000, time.UTC)},
		{"dot fraction", "2024-03-01T10:00:00.500", time.Date(2024, 3, 1, 10, 0, 0, 500000000, time.UTC)},
		{"minute precision", "2024-03-01 10:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2024-03-01T10:00:00  ", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"blank", "   ", time.Time{}},
		{"garbage", "not a timestamp", time.Time{}},
		{"partial garbage", "2024-13-45 99:99:99", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseLogTimestamp(tt.raw)
			assert.True(t, tt.expected.Equal(parsed), "got %v", parsed)
		})
	}
}

func TestParseLogTimestampDeterministic(t *testing.T) {
	// Unparseable values all collapse onto the same fallback so re-sorting
	// the same page is reproducible.
	first := ParseLogTimestamp("garbage")
	second := ParseLogTimestamp("garbage")
	assert.Equal(t, first, second)
	assert.True(t, first.IsZero())
}

func TestSortLogEntries(t *testing.T) {
	entries := []*LogEntry{
		{Timestamp: "2024-03-01 10:05:00", Message: "second"},
		{Timestamp: "garbage", Message: "broken"},
		{Timestamp: "2024-03-01 10:00:00,500", Message: "first"},
		{Timestamp: "2024-03-02T08:00:00", Message: "third"},
	}

	SortLogEntries(entries, true)
	assert.Equal(t, "broken", entries[0].Message)
	assert.Equal(t, "first", entries[1].Message)
	assert.Equal(t, "second", entries[2].Message)
	assert.Equal(t, "third", entries[3].Message)

	SortLogEntries(entries, false)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "first", entries[2].Message)
	assert.Equal(t, "broken", entries[3].Message)
}

func TestSortLogEntriesInvolution(t *testing.T) {
	ascending := []*LogEntry{
		{Timestamp: "2024-03-01T09:00:00", Message: "a"},
		{Timestamp: "2024-03-01T10:00:00", Message: "b"},
		{Timestamp: "2024-03-01T11:00:00", Message: "c"},
	}

	// Flipping the direction twice restores the original order.
	SortLogEntries(ascending, false)
	SortLogEntries(ascending, true)

	assert.Equal(t, "a", ascending[0].Message)
	assert.Equal(t, "b", ascending[1].Message)
	assert.Equal(t, "c", ascending[2].Message)
}
