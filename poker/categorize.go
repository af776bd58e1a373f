package poker

// HoleCategory buckets starting hands into coarse preflop strength tiers.
type HoleCategory int

const (
	CategoryTrash HoleCategory = iota
	CategoryWeak
	CategoryMedium
	CategoryStrong
	CategoryPremium
)

func (c HoleCategory) String() string {
	switch c {
	case CategoryPremium:
		return "premium"
	case CategoryStrong:
		return "strong"
	case CategoryMedium:
		return "medium"
	case CategoryWeak:
		return "weak"
	default:
		return "trash"
	}
}

// Categorize buckets two hole cards. Premium is JJ+ and AK, strong is TT and
// AQ/AJ, medium is 77-99 and suited broadways, weak is small pairs and
// suited connectors.
func Categorize(a, b Card) HoleCategory {
	lo, hi := a.Rank, b.Rank
	if lo > hi {
		lo, hi = hi, lo
	}
	pair := lo == hi
	suited := a.Suit == b.Suit

	if pair && lo >= Jack {
		return CategoryPremium
	}
	if hi == Ace && lo == King {
		return CategoryPremium
	}

	if pair && lo == Ten {
		return CategoryStrong
	}
	if hi == Ace && lo >= Jack {
		return CategoryStrong
	}

	if pair && lo >= Seven {
		return CategoryMedium
	}
	if suited && lo >= Ten {
		return CategoryMedium
	}

	if pair {
		return CategoryWeak
	}
	if suited && hi-lo == 1 && lo >= Five {
		return CategoryWeak
	}
	if hi == Ace && suited {
		return CategoryWeak
	}

	return CategoryTrash
}
