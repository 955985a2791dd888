package dllist

import (
	"github.com/sirkon/errors"
)

const (
	// ErrEmptyContainer операция требует хотя бы одного элемента в списке.
	ErrEmptyContainer errors.Const = "container is empty"

	// ErrInvalidPosition итератор не привязан к списку, указывает на узел
	// другого списка, на уже удалённый узел, либо на позицию, с которой
	// требуемое действие невозможно.
	ErrInvalidPosition errors.Const = "invalid position"
)

// IsEmptyContainer проверка, что ошибка вызвана обращением к пустому списку.
func IsEmptyContainer(err error) bool {
	return errors.Is(err, ErrEmptyContainer)
}

// IsInvalidPosition проверка, что ошибка вызвана неправильной позицией.
func IsInvalidPosition(err error) bool {
	return errors.Is(err, ErrInvalidPosition)
}

func (l *List[T]) errorEmpty(op string) error {
	return errors.Wrap(ErrEmptyContainer, op).
		Str("list-id", l.id.String())
}

func (l *List[T]) errorPosition(op, reason string) error {
	return errors.Wrap(ErrInvalidPosition, op).
		Str("list-id", l.id.String()).
		Str("reason", reason).
		Int("list-size", l.sz)
}

func (l *List[T]) wrapContext(err error, msg string) error {
	return errors.Wrap(err, msg).
		Str("list-id", l.id.String())
}

func errorUnbound(op string) error {
	return errors.Wrap(ErrInvalidPosition, op).
		Str("reason", "iterator is not bound to any list")
}

func errorReleasePanic(r any) error {
	return errors.Newf("release panicked: %v", r)
}
