package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/dllist/internal/tlog"
	"github.com/sirkon/errors"
)

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func sources(texts ...string) []io.Reader {
	res := make([]io.Reader, 0, len(texts))
	for _, text := range texts {
		res = append(res, strings.NewReader(text))
	}

	return res
}

func TestMergeSources(t *testing.T) {
	tests := []struct {
		name string
		srcs []string
		opts mergeOptions
		want []string
	}{
		{
			name: "plain",
			srcs: []string{"c\na\n", "b\nd\n"},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "unique",
			srcs: []string{"b\na\nb\n", "a\nc\n"},
			opts: mergeOptions{unique: true},
			want: []string{"a", "b", "c"},
		},
		{
			name: "reverse",
			srcs: []string{"b\na\n", "c\n"},
			opts: mergeOptions{reverse: true},
			want: []string{"c", "b", "a"},
		},
		{
			name: "ignore-case-keeps-source-order",
			srcs: []string{"B\na\n", "b\nA\n"},
			opts: mergeOptions{ignoreCase: true},
			want: []string{"a", "A", "B", "b"},
		},
		{
			name: "ignore-case-unique",
			srcs: []string{"B\na\n", "b\nA\n"},
			opts: mergeOptions{ignoreCase: true, unique: true},
			want: []string{"a", "B"},
		},
		{
			name: "no-sources",
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res, err := mergeSources(sources(tt.srcs...), tt.opts)
			if err != nil {
				tlog.Error(t, err)
				return
			}

			got := res.Values()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !deepequal.Equal(tt.want, got) {
				t.Error("unexpected merge result")
				deepequal.SideBySide(t, "lines", tt.want, got)
			}
		})
	}
}

func TestMergeSourcesReadError(t *testing.T) {
	failure := errors.New("read failure")
	srcs := append(sources("a\n"), failingReader{err: failure})

	_, err := mergeSources(srcs, mergeOptions{})
	if !errors.Is(err, failure) {
		tlog.Error(t, err)
		t.Error("read failure was expected")
		return
	}
	tlog.Log(t, err)
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("c\na\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("b\na\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("merge", func(t *testing.T) {
		res, err := mergeFiles([]string{first, second}, mergeOptions{unique: true})
		if tlog.Check(t, err) {
			return
		}

		want := []string{"a", "b", "c"}
		if got := res.Values(); !deepequal.Equal(want, got) {
			t.Error("unexpected merge result")
			deepequal.SideBySide(t, "lines", want, got)
		}
	})

	t.Run("missing-file", func(t *testing.T) {
		_, err := mergeFiles([]string{first, filepath.Join(dir, "missing.txt")}, mergeOptions{})
		if !errors.Is(err, os.ErrNotExist) {
			tlog.Error(t, err)
			t.Error("missing file error was expected")
			return
		}
		tlog.Log(t, err)
	})
}

func TestWriteList(t *testing.T) {
	res, err := mergeSources(sources("b\na\n"), mergeOptions{})
	if tlog.Check(t, err) {
		return
	}

	var buf bytes.Buffer
	if err := writeList(&buf, res); tlog.Check(t, err) {
		return
	}
	if buf.String() != "a\nb\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
