// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import "context"

// Repository defines the data access contract.
type Repository interface {
	// ListActive returns active languages ordered by display order, then id.
	ListActive(context context.Context) ([]*Language, error)
}
