package ledger

// DefaultPageSize matches the dashboard's transaction table.
const DefaultPageSize = 5

// ViewEngine owns the full entry snapshot for one account together with the
// active filter and page, and re-derives the displayed page on every change.
// Entries arrive from the provider most-recent-first and are never re-sorted.
//
// The engine is single-threaded by design: all operations run on one logical
// thread of control, so it carries no locking. While a fetch is outstanding
// the view keeps its last-known-good state and reports Loading. Fetches are
// tagged with a monotonically increasing token so a slow response that
// arrives after a newer one is discarded instead of clobbering the snapshot.
type ViewEngine struct {
	pageSize int

	entries  []Entry
	filter   Filter
	filtered []Entry

	page       int
	totalPages int
	displayed  []Entry

	loading    bool
	fetchToken uint64
}

func NewViewEngine(pageSize int) *ViewEngine {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	v := &ViewEngine{pageSize: pageSize, page: 1}
	v.recompute()
	return v
}

// SetEntries replaces the full snapshot and returns the view to page 1.
func (v *ViewEngine) SetEntries(entries []Entry) {
	v.entries = entries
	v.page = 1
	v.recompute()
}

// BeginFetch marks a fetch as outstanding and returns its token.
func (v *ViewEngine) BeginFetch() uint64 {
	v.fetchToken++
	v.loading = true
	return v.fetchToken
}

// ApplyEntries installs a fetch response. A response whose token is stale
// (an overlapping fetch was issued after it) is discarded and the method
// reports false; the view keeps whatever state the newer fetch produced.
func (v *ViewEngine) ApplyEntries(token uint64, entries []Entry) bool {
	if token != v.fetchToken {
		return false
	}
	v.loading = false
	v.SetEntries(entries)
	return true
}

// AbortFetch clears the loading flag after a failed fetch, leaving the
// last-known-good snapshot in place.
func (v *ViewEngine) AbortFetch(token uint64) {
	if token == v.fetchToken {
		v.loading = false
	}
}

// SetFilter replaces the active filter and returns the user to page 1 of the
// new results.
func (v *ViewEngine) SetFilter(filter Filter) {
	v.filter = filter
	v.page = 1
	v.recompute()
}

// GoToPage moves to page n when 1 <= n <= TotalPages, and is a no-op
// otherwise. It never leaves the view in an inconsistent page state.
func (v *ViewEngine) GoToPage(n int) {
	if n < 1 || n > v.totalPages {
		return
	}
	v.page = n
	v.recompute()
}

func (v *ViewEngine) NextPage()     { v.GoToPage(v.page + 1) }
func (v *ViewEngine) PreviousPage() { v.GoToPage(v.page - 1) }

func (v *ViewEngine) recompute() {
	v.filtered = v.filter.Apply(v.entries)
	v.displayed, v.totalPages = Paginate(v.filtered, v.page, v.pageSize)
}

func (v *ViewEngine) Displayed() []Entry { return v.displayed }
func (v *ViewEngine) CurrentPage() int   { return v.page }
func (v *ViewEngine) TotalPages() int    { return v.totalPages }
func (v *ViewEngine) FilteredCount() int { return len(v.filtered) }
func (v *ViewEngine) PageSize() int      { return v.pageSize }
func (v *ViewEngine) Filter() Filter     { return v.filter }
func (v *ViewEngine) Loading() bool      { return v.loading }

// StartRecord is the 1-based index of the first displayed record, for
// "showing X-Y of Z". Both StartRecord and EndRecord are 0 when nothing
// matches the filter.
func (v *ViewEngine) StartRecord() int {
	if len(v.filtered) == 0 {
		return 0
	}
	return (v.page-1)*v.pageSize + 1
}

// EndRecord is the 1-based index of the last displayed record.
func (v *ViewEngine) EndRecord() int {
	if len(v.filtered) == 0 {
		return 0
	}
	end := v.page * v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return end
}
