// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package language owns the set of languages the catalog is translated into.
//
// # Overview
//
// Every public read carries a requested language code. The [Registry] maps
// that code to an active [Language], falling back to the single default
// language when the code is empty or unknown.
package language

import "time"

// Language is one locale content can be translated into.
type Language struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	NativeName   string    `json:"native_name"`
	IsActive     bool      `json:"is_active"`
	IsDefault    bool      `json:"is_default"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"-"`
}
