package stale

// Left over from an older Item declaration; does not type-check.
func (b ItemBuilder[TName, TCount]) SetCount(v int) ItemBuilder[TName, int] {
	return ItemBuilder[TName, int]{name: b.name, count: v}
}
