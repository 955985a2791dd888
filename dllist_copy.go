package dllist

import (
	"github.com/google/uuid"
)

// Clone глубокая копия списка: новые ограничители, новые узлы и
// новый идентификатор. Опции списка переносятся в копию.
func (l *List[T]) Clone() *List[T] {
	res := &List[T]{
		id:      uuid.New(),
		less:    l.less,
		equal:   l.equal,
		cpy:     l.cpy,
		release: l.release,
		logger:  l.logger,
	}
	res.init()
	res.appendCopies(l)

	return res
}

// Assign замена содержимого списка копиями значений other.
// Присваивание самому себе ничего не делает.
func (l *List[T]) Assign(other *List[T]) {
	if other == l {
		return
	}

	l.Clear()
	if other == nil {
		return
	}

	l.appendCopies(other)
}

func (l *List[T]) appendCopies(src *List[T]) {
	for n := src.head.next; n != src.tail; n = n.next {
		l.PushBack(l.copyValue(*n.val))
	}
}

func (l *List[T]) copyValue(v T) T {
	if l.cpy == nil {
		return v
	}

	return l.cpy(v)
}
