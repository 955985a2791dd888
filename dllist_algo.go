package dllist

import (
	"golang.org/x/exp/slices"
)

// Sort устойчивая сортировка по возрастанию. Значения не копируются,
// переставляются сами узлы: итераторы продолжают указывать на те же
// значения, но в новом порядке.
func (l *List[T]) Sort() {
	if l.sz <= 1 {
		return
	}

	nodes := make([]*node[T], 0, l.sz)
	for n := l.head.next; n != l.tail; n = n.next {
		nodes = append(nodes, n)
	}
	slices.SortStableFunc(nodes, func(a, b *node[T]) bool {
		return l.less(*a.val, *b.val)
	})

	prev := l.head
	for _, n := range nodes {
		prev.next = n
		n.prev = prev
		prev = n
	}
	prev.next = l.tail
	l.tail.prev = prev
}

// Merge слияние с отсортированным списком other, данный список также
// должен быть отсортирован. Узлы other переносятся в данный список
// без копирования значений, other становится пустым. Из равных элементов
// первыми идут элементы данного списка.
func (l *List[T]) Merge(other *List[T]) {
	if other == nil || other == l || other.sz == 0 {
		return
	}

	cur := l.head.next
	src := other.head.next
	for cur != l.tail && src != other.tail {
		if !l.less(*src.val, *cur.val) {
			cur = cur.next
			continue
		}

		n := src
		src = src.next
		l.linkBefore(cur, other.unlink(n))
	}

	// Оставшийся хвост other не меньше любого элемента данного списка.
	for src != other.tail {
		n := src
		src = src.next
		l.linkBefore(l.tail, other.unlink(n))
	}
}

// Reverse обращение порядка значений. Узлы остаются на своих местах,
// меняются местами хранящиеся в них значения: итератор указывавший на
// k-ый узел указывает на него же, но значение в нём уже другое.
func (l *List[T]) Reverse() {
	if l.sz <= 1 {
		return
	}

	left := l.head.next
	right := l.tail.prev
	for i := 0; i < l.sz/2; i++ {
		left.val, right.val = right.val, left.val
		left = left.next
		right = right.prev
	}
}

// Unique удаление подряд идущих равных элементов, из каждой группы
// остаётся только первый.
func (l *List[T]) Unique() {
	if l.sz <= 1 {
		return
	}

	for first := l.head.next; first != l.tail; first = first.next {
		for first.next != l.tail && l.equal(*first.val, *first.next.val) {
			l.destroy(l.unlink(first.next))
		}
	}
}
