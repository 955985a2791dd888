package dllist

// node узел списка. Узел без значения является ограничителем, либо
// уже изъят из списка.
type node[T any] struct {
	prev *node[T]
	next *node[T]
	list *List[T]

	val *T
}

func newNode[T any](v T) *node[T] {
	return &node[T]{
		val: &v,
	}
}

func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil
	n.list = nil
}

// linkBefore вставка узла n непосредственно перед target.
func (l *List[T]) linkBefore(target, n *node[T]) *node[T] {
	n.prev = target.prev
	n.next = target
	target.prev.next = n
	target.prev = n
	n.list = l
	l.sz++

	return n
}

// unlink изъятие узла n из цепочки. Значение остаётся в узле, сам узел
// более не связан ни с одним списком.
func (l *List[T]) unlink(n *node[T]) *node[T] {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.cleanup()
	l.sz--

	return n
}

// destroy освобождение значения изъятого узла.
func (l *List[T]) destroy(n *node[T]) {
	v := n.val
	n.val = nil
	if v == nil || l.release == nil {
		return
	}

	if err := l.releaseValue(*v); err != nil {
		l.logger.ErrorRelease(l.wrapContext(err, "release value"))
	}
}

func (l *List[T]) releaseValue(v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorReleasePanic(r)
		}
	}()

	return l.release(v)
}
