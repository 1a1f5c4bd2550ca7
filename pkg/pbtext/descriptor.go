package pbtext

import "sync/atomic"

// rootIndex is the message index of the implicit top-level container.
const rootIndex = 0

// messageDesc records one `name { ... }` occurrence.
type messageDesc struct {
	// openBrace is the offset of the opening '{'. The root container uses -1.
	openBrace int

	// children holds message indexes of directly nested blocks, in document order.
	children []int

	// attrs holds attribute indexes of directly owned attributes, in document order.
	attrs []int

	name lazyString
	keys atomic.Pointer[[]string]
}

// attrDesc records one `name: value` occurrence.
type attrDesc struct {
	// colon is the offset of the separating ':'.
	colon int

	name  lazyString
	value lazyString
}

// lazyString is a compute-once cell. Concurrent first accesses may both
// compute; they store equal strings, so either write is correct.
type lazyString struct {
	p atomic.Pointer[string]
}

func (l *lazyString) get(compute func() string) string {
	if cached := l.p.Load(); cached != nil {
		return *cached
	}
	s := compute()
	l.p.Store(&s)
	return s
}
