// Package dllist двусвязный список с ограничителями и итераторами,
// отслеживающими актуальность своей позиции.
package dllist

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// New конструктор пустого списка с заданным отношением порядка less.
// Порядок используется в Sort и Merge, а также, если не задано иное
// при помощи WithEqual, для определения равенства в Unique.
func New[T any](less func(a, b T) bool, opts ...Option[T]) *List[T] {
	if less == nil {
		panic("dllist: less function must not be nil")
	}

	l := &List[T]{
		id:     uuid.New(),
		less:   less,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(l, optionRestriction{})
	}
	if l.equal == nil {
		l.equal = func(a, b T) bool {
			return !less(a, b) && !less(b, a)
		}
	}
	l.init()

	return l
}

// NewOrdered конструктор пустого списка упорядочиваемых значений.
func NewOrdered[T constraints.Ordered](opts ...Option[T]) *List[T] {
	all := make([]Option[T], 0, len(opts)+1)
	all = append(all, WithEqual(func(a, b T) bool {
		return a == b
	}))
	all = append(all, opts...)

	return New(func(a, b T) bool {
		return a < b
	}, all...)
}

// List двусвязный список. Начало и конец последовательности отмечены
// узлами-ограничителями, которые существуют всё время жизни списка.
// Нулевое значение не готово к использованию, нужно использовать New.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	id   uuid.UUID
	head *node[T]
	tail *node[T]
	sz   int

	less    func(a, b T) bool
	equal   func(a, b T) bool
	cpy     func(v T) T
	release func(v T) error
	logger  Logger
}

func (l *List[T]) init() {
	l.head = &node[T]{list: l}
	l.tail = &node[T]{list: l}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.sz = 0
}

// ID уникальный идентификатор списка.
func (l *List[T]) ID() uuid.UUID {
	return l.id
}

// Len число элементов в списке.
func (l *List[T]) Len() int {
	return l.sz
}

// Empty проверка списка на пустоту.
func (l *List[T]) Empty() bool {
	return l.sz == 0
}

// Front первый элемент списка.
func (l *List[T]) Front() (res T, err error) {
	if l.sz == 0 {
		return res, l.errorEmpty("front")
	}

	return *l.head.next.val, nil
}

// Back последний элемент списка.
func (l *List[T]) Back() (res T, err error) {
	if l.sz == 0 {
		return res, l.errorEmpty("back")
	}

	return *l.tail.prev.val, nil
}

// Begin итератор на первый элемент, либо на конец для пустого списка.
func (l *List[T]) Begin() Iterator[T] {
	return l.iter(l.head.next)
}

// End итератор на позицию после последнего элемента.
func (l *List[T]) End() Iterator[T] {
	return l.iter(l.tail)
}

// CBegin то же, что и Begin, но только для чтения.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd то же, что и End, но только для чтения.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// Values значения списка в порядке следования.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.sz)
	for n := l.head.next; n != l.tail; n = n.next {
		res = append(res, *n.val)
	}

	return res
}

// String представление списка для диагностики: идентификатор и значения.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("dllist[")
	b.WriteString(l.id.String())
	b.WriteString("](")
	for n := l.head.next; n != l.tail; n = n.next {
		if n != l.head.next {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprint(&b, *n.val)
	}
	b.WriteByte(')')

	return b.String()
}

func (l *List[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{
		position: position[T]{
			owner: l,
			cur:   n,
		},
	}
}
