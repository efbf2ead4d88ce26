package ledger

// Paginate slices an ordered sequence into the requested fixed-size page and
// returns the page contents and total page count. Pure function of its
// inputs. totalPages is at least 1 even for an empty sequence.
//
// The view engine validates page numbers before calling; the clamps here only
// keep Paginate safe in isolation, they never error.
func Paginate(entries []Entry, page, pageSize int) (pageEntries []Entry, totalPages int) {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages = (len(entries) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(entries) {
		return []Entry{}, totalPages
	}

	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end], totalPages
}
