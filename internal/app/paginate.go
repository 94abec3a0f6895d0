package app

// PageSize is default number of contributors on a single page.
const PageSize = 8

// PageEntry is a ranked contributor placed on the leaderboard.
type PageEntry struct {
	RankedContributor

	// Rank is 1-based position on the whole leaderboard.
	Rank   int
	League League
}

// Page is a slice of leaderboard.
type Page struct {
	Number     int
	TotalPages int
	Entries    []PageEntry
	HasPrev    bool
	HasNext    bool
}

// TotalPages returns number of pages needed for n entries.
func TotalPages(n int, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns 1-based page of ranked contributors.
//
// Page 1 of empty list is valid and has no entries. Any other page outside of <1..TotalPages>
// returns OutOfRangeError.
func Paginate(ranked []RankedContributor, page int, size int) (Page, error) {
	if size < 1 {
		return Page{}, InvalidRequestError("page size must be greater than zero")
	}

	total := TotalPages(len(ranked), size)
	if page == 1 && total == 0 {
		return Page{
			Number:  1,
			Entries: []PageEntry{},
		}, nil
	}
	if page < 1 || page > total {
		return Page{}, &OutOfRangeError{Page: page, TotalPages: total}
	}

	start := (page - 1) * size
	end := start + size
	if end > len(ranked) {
		end = len(ranked)
	}

	entries := make([]PageEntry, 0, end-start)
	for i := start; i < end; i++ {
		entries = append(entries, newPageEntry(ranked[i], i+1))
	}

	return Page{
		Number:     page,
		TotalPages: total,
		Entries:    entries,
		HasPrev:    page > 1,
		HasNext:    page < total,
	}, nil
}

func newPageEntry(rc RankedContributor, rank int) PageEntry {
	return PageEntry{
		RankedContributor: rc,
		Rank:              rank,
		League:            ClassifyLeague(rc.Points),
	}
}
