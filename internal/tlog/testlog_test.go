package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/dllist/internal/tlog"
	"github.com/sirkon/errors"
)

type recorder struct {
	logs   int
	errors int
}

func (r *recorder) Helper()      {}
func (r *recorder) Log(...any)   { r.logs++ }
func (r *recorder) Error(...any) { r.errors++ }

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("int", 12).Any("map", map[string]string{
			"a": "b",
		}).Str("string", "str"))
	})
}

func TestExpect(t *testing.T) {
	const target errors.Const = "target"

	t.Run("matched", func(t *testing.T) {
		var r recorder
		if !tlog.Expect(&r, errors.Wrap(target, "op").Int("size", 1), target) {
			t.Error("wrapped target must match")
		}
		if r.logs != 1 || r.errors != 0 {
			t.Errorf("expected single log and no errors, got %d logs and %d errors", r.logs, r.errors)
		}
	})

	t.Run("missing", func(t *testing.T) {
		var r recorder
		if tlog.Expect(&r, nil, target) {
			t.Error("nil error must not match")
		}
		if r.errors != 1 {
			t.Errorf("expected single error, got %d", r.errors)
		}
	})

	t.Run("other", func(t *testing.T) {
		var r recorder
		if tlog.Expect(&r, errors.New("other"), target) {
			t.Error("foreign error must not match")
		}
		if r.errors != 1 {
			t.Errorf("expected single error, got %d", r.errors)
		}
	})
}
