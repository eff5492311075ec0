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
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	"github.com/projhub/projhub-cli/api"
	"github.com/projhub/projhub-cli/helper"
)

// LogPager drives paginated queries against the platform action log.
//
// The log endpoint understands page/per_page but returns a flat list with no
// total count and no has-more flag, so the existence of a further page is
// established by probing page+1 with the same filters and checking whether
// anything comes back. Probe rows are discarded.
//
// At most one primary fetch is in flight at a time. Starting a new one
// cancels the previous one; a superseded fetch resolves silently and leaves
// the pager untouched (last request wins). On failure the previously
// displayed rows are retained and a message is kept until the next
// successful fetch.
type LogPager struct {
	client *resty.Client
	logger *zap.SugaredLogger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc

	filter    api.LogFilter
	dirty     bool
	ascending bool

	entries []*api.LogEntry
	hasNext bool
	lastErr string
}

func NewLogPager(client *resty.Client) *LogPager {
	return &LogPager{
		client: client,
		logger: helper.GetSugarLogger([]string{"platform", "logpager"}),
		filter: api.NewLogFilter(),
	}
}

// SetFilter replaces the pending filter values. The page resets to 1, so a
// stale page number can never outlive a filter change, and the pager is
// marked dirty until a fetch is actually issued with the new values.
func (p *LogPager) SetFilter(filter api.LogFilter) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if filter.Lines == 0 {
		filter.Lines = api.DefaultLines
	}
	filter.Page = 1

	p.filter = filter
	p.dirty = true
}

// ResetFilter drops every filter value back to its default. Like any filter
// change it returns to page 1 and marks the pager dirty.
func (p *LogPager) ResetFilter() {
	p.SetFilter(api.NewLogFilter())
}

// SetPage jumps to the given page (clamped to 1) without touching the
// filter values. Navigation is not a filter change and does not mark the
// pager dirty.
func (p *LogPager) SetPage(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if page < 1 {
		page = 1
	}
	p.filter.Page = page
}

// SetAscending selects the timestamp sort direction for fetched pages.
func (p *LogPager) SetAscending(ascending bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ascending = ascending
}

// ToggleSort flips the sort direction and re-sorts the rows already held,
// without a round trip.
func (p *LogPager) ToggleSort() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ascending = !p.ascending
	api.SortLogEntries(p.entries, p.ascending)
}

func (p *LogPager) Filter() api.LogFilter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

func (p *LogPager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter.Page
}

func (p *LogPager) Ascending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ascending
}

// Dirty reports whether the displayed rows no longer reflect the entered
// filter values; it clears only when a fetch is issued.
func (p *LogPager) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty
}

// Entries returns the last successfully fetched page.
func (p *LogPager) Entries() []*api.LogEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.entries
}

// HasNext reports whether a further page existed at the time of the last
// successful fetch. It is always false for unbounded queries and after a
// failed fetch.
func (p *LogPager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasNext
}

// LastError returns the retained failure message, or "" after a success.
func (p *LogPager) LastError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// NextPage advances to the following page and fetches it. It is a no-op
// when the last fetch established that there is no further page. A failed
// navigation keeps the rows from the old page on display, so the page
// number rolls back with them.
func (p *LogPager) NextPage() error {
	p.mu.Lock()
	if !p.hasNext {
		p.mu.Unlock()
		return nil
	}
	previous := p.filter.Page
	p.filter.Page++
	p.mu.Unlock()

	return p.fetchOrRollback(previous)
}

// PrevPage goes back one page and fetches it; it is a no-op on page 1.
func (p *LogPager) PrevPage() error {
	p.mu.Lock()
	if p.filter.Page <= 1 {
		p.mu.Unlock()
		return nil
	}
	previous := p.filter.Page
	p.filter.Page--
	p.mu.Unlock()

	return p.fetchOrRollback(previous)
}

func (p *LogPager) fetchOrRollback(previous int) error {
	err := p.Fetch()
	if err != nil {
		p.mu.Lock()
		p.filter.Page = previous
		p.mu.Unlock()
	}
	return err
}

// Fetch retrieves the current page. Any fetch still in flight is cancelled
// first; if this fetch is itself superseded before it commits, it returns
// nil without touching any state. Other failures retain the previous rows,
// record a message and force HasNext to false.
func (p *LogPager) Fetch() error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.cancel = cancel
	p.generation++
	generation := p.generation
	filter := p.filter
	ascending := p.ascending
	p.dirty = false
	p.mu.Unlock()

	result := &api.LogsResult{}
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(filter.QueryParams()).
		SetResult(result).
		SetError(result).
		Get("/api/logs")

	if ctx.Err() != nil {
		// Superseded by a newer fetch. Not an error.
		p.logger.Debugw("log fetch superseded", "page", filter.Page)
		return nil
	}

	if err != nil {
		return p.commitFailure(generation, err.Error())
	}
	if resp.StatusCode() != http.StatusOK {
		message := result.Message
		if message == "" {
			message = string(resp.Body())
		}
		return p.commitFailure(generation, message)
	}
	if !result.Success {
		message := result.Message
		if message == "" {
			message = "the platform rejected the log query"
		}
		return p.commitFailure(generation, message)
	}

	entries := result.Logs
	api.SortLogEntries(entries, ascending)

	hasNext := false
	if !filter.Unbounded() {
		hasNext = p.probeNextPage(filter)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if generation != p.generation {
		// A newer fetch owns the pager now.
		return nil
	}

	p.entries = entries
	p.hasNext = hasNext
	p.lastErr = ""
	return nil
}

// probeNextPage issues a secondary request for the page after the given one
// with the same filters and reports whether it holds any rows. Its failure
// degrades to "no next page" without surfacing an error; the primary page is
// still a success.
func (p *LogPager) probeNextPage(filter api.LogFilter) bool {
	probe := api.LogFilter{}
	if err := copier.Copy(&probe, &filter); err != nil {
		p.logger.Debugw("probe filter copy failed", "error", err)
		return false
	}
	probe.Page = filter.Page + 1

	result := &api.LogsResult{}
	resp, err := p.client.R().
		SetQueryParams(probe.QueryParams()).
		SetResult(result).
		Get("/api/logs")

	if err != nil {
		p.logger.Debugw("next page probe failed", "error", err)
		return false
	}
	if resp.StatusCode() != http.StatusOK || !result.Success {
		return false
	}

	return len(result.Logs) > 0
}

// commitFailure records a user-visible message unless a newer fetch has
// taken over. The rows from the last successful fetch stay displayed and
// paging forward is disabled.
func (p *LogPager) commitFailure(generation uint64, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation {
		return nil
	}

	p.hasNext = false
	p.lastErr = message
	return fmt.Errorf("%s", message)
}
