package dllist

// Iterator позиция в списке. Итератор не владеет узлом, на который
// указывает: после удаления узла любое обращение через итератор
// завершается ErrInvalidPosition.
// Нулевое значение не привязано ни к какому списку.
type Iterator[T any] struct {
	position[T]
}

// Get значение по позиции итератора.
func (it Iterator[T]) Get() (res T, err error) {
	p, err := it.ptr("get")
	if err != nil {
		return res, err
	}

	return *p, nil
}

// Ptr указатель на значение хранящееся в узле.
func (it Iterator[T]) Ptr() (*T, error) {
	return it.ptr("dereference")
}

// Set замена значения по позиции итератора.
func (it Iterator[T]) Set(v T) error {
	p, err := it.ptr("set")
	if err != nil {
		return err
	}

	*p = v
	return nil
}

// Next переход к следующей позиции. Переход дальше конца запрещён.
func (it *Iterator[T]) Next() error {
	return it.next()
}

// Prev переход к предыдущей позиции. Переход с первого элемента, как и
// с конца пустого списка, запрещён.
func (it *Iterator[T]) Prev() error {
	return it.prev()
}

// Equal проверка, что итераторы указывают на один и тот же узел.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.cur == other.cur
}

// EqualConst то же, что и Equal, но для итератора только для чтения.
func (it Iterator[T]) EqualConst(other ConstIterator[T]) bool {
	return it.cur == other.cur
}

// Const итератор только для чтения с той же позицией.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{
		position: it.position,
	}
}

// position общая для итераторов пара из списка и узла. Узел может быть
// перенесён слиянием в другой список, тогда переходы выполняются уже по
// цепочке этого списка.
type position[T any] struct {
	owner *List[T]
	cur   *node[T]
}

// list список, в котором узел находится сейчас. Пустое значение для
// непривязанного итератора и удалённого узла.
func (p *position[T]) list() *List[T] {
	if p.owner == nil || p.cur == nil {
		return nil
	}

	return p.cur.list
}

func (p *position[T]) invalid(op string) error {
	if p.owner == nil || p.cur == nil {
		return errorUnbound(op)
	}

	return p.owner.errorPosition(op, "node is detached from the list")
}

func (p *position[T]) ptr(op string) (*T, error) {
	l := p.list()
	if l == nil {
		return nil, p.invalid(op)
	}
	if p.cur.val == nil {
		return nil, l.errorPosition(op, "position holds no value")
	}

	return p.cur.val, nil
}

func (p *position[T]) next() error {
	l := p.list()
	if l == nil {
		return p.invalid("next")
	}
	if p.cur == l.tail {
		return l.errorPosition("next", "cannot advance past the end")
	}

	p.cur = p.cur.next
	return nil
}

func (p *position[T]) prev() error {
	l := p.list()
	if l == nil {
		return p.invalid("prev")
	}

	switch {
	case p.cur == l.head:
		return l.errorPosition("prev", "cannot retreat before the beginning")
	case p.cur == l.tail:
		if l.sz == 0 {
			return l.errorPosition("prev", "cannot retreat from the end of an empty list")
		}
	case p.cur.prev == l.head:
		return l.errorPosition("prev", "cannot retreat before the beginning")
	}

	p.cur = p.cur.prev
	return nil
}
