// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package reference

import "context"

// CategoryRepository defines the data access contract for master data.
type CategoryRepository interface {

	/*
		List returns every category in display order.

		Parameters:
		  - context: context.Context
		  - lang: string ("en" or "ar"; selects the localized name)

		Returns:
		  - []*Category: Ordered category records
		  - error: Database retrieval failures
	*/
	List(context context.Context, lang string) ([]*Category, error)

	/*
		FindByID returns a single category.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - lang: string

		Returns:
		  - *Category: The matching record
		  - error: NotFound if missing
	*/
	FindByID(context context.Context, id, lang string) (*Category, error)
}
