package dllist

// Insert вставка значения перед позицией pos, которая может быть и концом
// списка. Возвращает итератор на вставленное значение.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if err := l.owns("insert", pos.position); err != nil {
		return Iterator[T]{}, err
	}
	if pos.cur == l.head {
		return Iterator[T]{}, l.errorPosition("insert", "cannot insert before the beginning sentinel")
	}

	return l.iter(l.linkBefore(pos.cur, newNode(v))), nil
}

// Erase удаление элемента по позиции pos. Возвращает итератор на следующий
// за удалённым элемент, либо конец, если удалён был последний.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if l.sz == 0 {
		return Iterator[T]{}, l.errorEmpty("erase")
	}
	if err := l.owns("erase", pos.position); err != nil {
		return Iterator[T]{}, err
	}
	if pos.cur.val == nil {
		return Iterator[T]{}, l.errorPosition("erase", "position holds no value")
	}

	next := pos.cur.next
	l.destroy(l.unlink(pos.cur))

	return l.iter(next), nil
}

// PushBack добавление значения в конец списка.
func (l *List[T]) PushBack(v T) {
	l.linkBefore(l.tail, newNode(v))
}

// PushFront добавление значения в начало списка.
func (l *List[T]) PushFront(v T) {
	l.linkBefore(l.head.next, newNode(v))
}

// PopBack удаление последнего элемента.
func (l *List[T]) PopBack() error {
	if l.sz == 0 {
		return l.errorEmpty("pop back")
	}

	l.destroy(l.unlink(l.tail.prev))
	return nil
}

// PopFront удаление первого элемента.
func (l *List[T]) PopFront() error {
	if l.sz == 0 {
		return l.errorEmpty("pop front")
	}

	l.destroy(l.unlink(l.head.next))
	return nil
}

// Clear удаление всех элементов. Итераторы на удалённые элементы
// становятся недействительными, ограничители остаются прежними.
func (l *List[T]) Clear() {
	for l.head.next != l.tail {
		l.destroy(l.unlink(l.head.next))
	}
}

// owns проверка, что позиция принадлежит данному списку и её узел
// всё ещё в нём.
func (l *List[T]) owns(op string, p position[T]) error {
	switch {
	case p.owner == nil || p.cur == nil:
		return errorUnbound(op)
	case p.owner != l:
		return l.errorPosition(op, "iterator belongs to another list")
	case p.cur.list != l:
		return l.errorPosition(op, "node is detached from the list")
	}

	return nil
}
