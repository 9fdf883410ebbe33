// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import "context"

// Store executes composed searches.
type Store interface {
	// Search runs the query and returns one page of candidates with their
	// translations and images loaded, plus the total match count.
	Search(context context.Context, query Query) ([]Candidate, int, error)
}
