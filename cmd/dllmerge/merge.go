package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/sirkon/dllist"
	"github.com/sirkon/errors"
)

type mergeOptions struct {
	unique     bool
	reverse    bool
	ignoreCase bool
}

func (o mergeOptions) newList() *dllist.List[string] {
	if !o.ignoreCase {
		return dllist.NewOrdered[string]()
	}

	return dllist.New(
		func(a, b string) bool {
			return strings.ToLower(a) < strings.ToLower(b)
		},
		dllist.WithEqual(strings.EqualFold),
	)
}

// mergeFiles то же, что и mergeSources, но источниками служат файлы.
// Каждый файл закрывается сразу после того, как прочитан.
func mergeFiles(names []string, opts mergeOptions) (*dllist.List[string], error) {
	res := opts.newList()
	for _, name := range names {
		l, err := readFile(name, opts)
		if err != nil {
			return nil, errors.Wrap(err, "read input file").Str("file-name", name)
		}

		res.Merge(l)
	}

	return opts.finish(res), nil
}

func readFile(name string, opts mergeOptions) (_ *dllist.List[string], err error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close file")
		}
	}()

	return readSorted(file, opts)
}

// mergeSources строки каждого источника сортируются в отдельном списке,
// после чего списки сливаются по порядку источников: из равных строк
// первой идёт строка из более раннего источника.
func mergeSources(srcs []io.Reader, opts mergeOptions) (*dllist.List[string], error) {
	res := opts.newList()
	for i, src := range srcs {
		l, err := readSorted(src, opts)
		if err != nil {
			return nil, errors.Wrap(err, "read source").Int("source-index", i)
		}

		res.Merge(l)
	}

	return opts.finish(res), nil
}

func readSorted(src io.Reader, opts mergeOptions) (*dllist.List[string], error) {
	l := opts.newList()
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		l.PushBack(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan lines")
	}

	l.Sort()
	return l, nil
}

func (o mergeOptions) finish(l *dllist.List[string]) *dllist.List[string] {
	if o.unique {
		l.Unique()
	}
	if o.reverse {
		l.Reverse()
	}

	return l
}

func writeList(dst io.Writer, l *dllist.List[string]) error {
	w := bufio.NewWriter(dst)
	for it := l.CBegin(); !it.Equal(l.CEnd()); {
		line, err := it.Get()
		if err != nil {
			return errors.Wrap(err, "get line")
		}

		if _, err := w.WriteString(line); err != nil {
			return errors.Wrap(err, "write line")
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "write line separator")
		}

		if err := it.Next(); err != nil {
			return errors.Wrap(err, "advance to the next line")
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush output")
	}

	return nil
}
