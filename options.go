package dllist

// Option определение опции списка.
type Option[T any] func(l *List[T], _ optionRestriction)

type optionRestriction struct{}

// WithEqual задаёт отношение равенства используемое в Unique.
// По умолчанию элементы равны, если ни один из них не меньше другого.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.equal = equal
	}
}

// WithCopy задаёт копирование значений при Clone и Assign.
// По умолчанию значение копируется обычным присваиванием.
func WithCopy[T any](cp func(v T) T) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.cpy = cp
	}
}

// WithRelease задаёт функцию вызываемую ровно один раз для каждого
// значения удаляемого из списка. Ошибка освобождения передаётся в логгер
// и не прерывает удаление прочих узлов.
func WithRelease[T any](release func(v T) error) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.release = release
	}
}

// WithLogger задаёт логгер списка.
func WithLogger[T any](logger Logger) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		if logger == nil {
			return
		}

		l.logger = logger
	}
}
