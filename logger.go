package dllist

//go:generate mockgen -destination internal/mocks/logger_mock.go -package mocks -mock_names Logger=LoggerMock github.com/sirkon/dllist Logger

// Logger абстракция логирования событий списка, которые не могут быть
// возвращены вызывающему в виде ошибки. Реализация делается пользователями
// библиотеки.
type Logger interface {
	// ErrorRelease ошибка освобождения значения удаляемого узла. Удаление
	// остальных узлов при этом продолжается.
	ErrorRelease(err error)
}

type nopLogger struct{}

func (nopLogger) ErrorRelease(error) {}
