package dllist

// ConstIterator итератор только для чтения. Может быть получен из
// Iterator методом Const с сохранением позиции.
type ConstIterator[T any] struct {
	position[T]
}

// Get значение по позиции итератора.
func (it ConstIterator[T]) Get() (res T, err error) {
	p, err := it.ptr("get")
	if err != nil {
		return res, err
	}

	return *p, nil
}

// Ptr указатель на значение хранящееся в узле. Изменять значение через
// него не следует.
func (it ConstIterator[T]) Ptr() (*T, error) {
	return it.ptr("dereference")
}

// Next переход к следующей позиции.
func (it *ConstIterator[T]) Next() error {
	return it.next()
}

// Prev переход к предыдущей позиции.
func (it *ConstIterator[T]) Prev() error {
	return it.prev()
}

// Equal проверка, что итераторы указывают на один и тот же узел.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.cur == other.cur
}

// EqualIterator то же, что и Equal, но для изменяющего итератора.
func (it ConstIterator[T]) EqualIterator(other Iterator[T]) bool {
	return it.cur == other.cur
}
