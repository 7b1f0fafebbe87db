package buddy

import (
	"fmt"
	"strings"
)

// Dump renders the free-list registry, one line per order, for use in
// debugging a stuck allocation or a coalescing bug. It never mutates
// the pool.
func (p *Pool) Dump() string {
	var b strings.Builder
	for k := uint(0); k <= p.kvalM; k++ {
		sentinel := &p.avail[k]
		fmt.Fprintf(&b, "avail[%2d]:", k)
		if freeListEmpty(sentinel) {
			b.WriteString(" (empty)\n")
			continue
		}
		for node := sentinel.next; node != sentinel; node = node.next {
			fmt.Fprintf(&b, " %#x(%s)", node.addr()-p.base, node.tag)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
