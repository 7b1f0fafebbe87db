package buddy

// freeListEmpty reports whether the list headed by sentinel has no real
// blocks linked into it.
func freeListEmpty(sentinel *header) bool {
	return sentinel.next == sentinel
}

// freeListInsert links block at the head of the list headed by sentinel:
// sentinel <-> block <-> sentinel.next (old).
func freeListInsert(sentinel, block *header) {
	block.next = sentinel.next
	block.prev = sentinel
	sentinel.next.prev = block
	sentinel.next = block
}

// freeListPopFront removes and returns the first real block on the list
// headed by sentinel, or nil if the list is empty.
func freeListPopFront(sentinel *header) *header {
	block := sentinel.next
	if block == sentinel {
		return nil
	}
	unlink(block)
	return block
}

// unlink detaches a known node from whatever circular list it currently
// sits in. It is the single pointer-fixup primitive shared by popping a
// free list's head and detaching a coalescing buddy mid-list.
func unlink(node *header) {
	node.prev.next = node.next
	node.next.prev = node.prev
	node.next = nil
	node.prev = nil
}
