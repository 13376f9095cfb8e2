// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package reference provides the shared master data of the marketplace.

Currently that is the bilingual course category taxonomy used by catalogue
filters and the landing-page category grid.
*/
package reference

import "time"

// Category is a bilingual course classification.
// Name is resolved to the request language at the storage boundary.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon"` // icon identifier rendered by the storefront
	CreatedAt time.Time `json:"created_at"`
}
