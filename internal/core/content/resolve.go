// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

// Localized is any record scoped to one language.
type Localized interface {
	LanguageKey() int
}

/*
Resolve picks the translation to display for a requested language.

Description: Precedence is fixed:
 1. the entry for requested;
 2. else the entry for fallback (the default language);
 3. else the first entry of set;
 4. else nothing, reported by ok == false.

Stores load translations ordered by language id, so step 3 yields the entry
with the lowest language id. Callers substitute the node slug for title-like
fields when ok is false.

Parameters:
  - set: []T (Every translation of one record)
  - requested: int (Resolved requested language id)
  - fallback: int (Default language id)

Returns:
  - T: The chosen translation, or the zero value
  - bool: Whether any translation was found
*/
func Resolve[T Localized](set []T, requested, fallback int) (T, bool) {
	for _, candidate := range set {
		if candidate.LanguageKey() == requested {
			return candidate, true
		}
	}

	for _, candidate := range set {
		if candidate.LanguageKey() == fallback {
			return candidate, true
		}
	}

	if len(set) > 0 {
		return set[0], true
	}

	var none T
	return none, false
}

// Title returns the resolved title, or slug when no translation exists or
// the chosen one has a blank title.
func Title(set []Translation, requested, fallback int, slug string) string {
	translation, ok := Resolve(set, requested, fallback)
	if !ok || translation.Title == "" {
		return slug
	}
	return translation.Title
}
