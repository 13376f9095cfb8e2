// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package i18n

// CLDR plural category names.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralCategory returns the CLDR plural category of count in the given
// language.
//
// English distinguishes one/other. Arabic uses the full six-way split:
// zero, one, two, few (3-10 by hundreds), many (11-99 by hundreds), other.
// Unknown languages fall back to the English rule.
func PluralCategory(lang string, count int) string {
	if count < 0 {
		count = -count
	}

	if lang == LangArabic {
		return arabicCategory(count)
	}

	if count == 1 {
		return PluralOne
	}
	return PluralOther
}

func arabicCategory(n int) string {
	switch n {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	}

	switch mod := n % 100; {
	case mod >= 3 && mod <= 10:
		return PluralFew
	case mod >= 11 && mod <= 99:
		return PluralMany
	default:
		return PluralOther
	}
}
