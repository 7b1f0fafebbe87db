package buddy

// buddyOf returns the buddy of block within pool: the unique block of
// the same order that, together with block, tiles an aligned block one
// order larger. It is pure — it never reads or writes the buddy's
// header — and works purely in offsets from pool.base, never on the
// absolute address the OS happened to map the region at.
func buddyOf(pool *Pool, block *header) *header {
	offset := block.addr() - pool.base
	buddyOffset := offset ^ (uintptr(1) << block.kval)
	return headerAt(pool.base + buddyOffset)
}
