package tlog

import "github.com/sirkon/errors"

type contextConsumer struct {
	vars []contextVar
}

type contextVar struct {
	name  string
	value any
}

func (c *contextConsumer) add(name string, value any) {
	c.vars = append(c.vars, contextVar{
		name:  name,
		value: value,
	})
}

func (c *contextConsumer) Bool(name string, value bool)       { c.add(name, value) }
func (c *contextConsumer) Int(name string, value int)         { c.add(name, value) }
func (c *contextConsumer) Int8(name string, value int8)       { c.add(name, value) }
func (c *contextConsumer) Int16(name string, value int16)     { c.add(name, value) }
func (c *contextConsumer) Int32(name string, value int32)     { c.add(name, value) }
func (c *contextConsumer) Int64(name string, value int64)     { c.add(name, value) }
func (c *contextConsumer) Uint(name string, value uint)       { c.add(name, value) }
func (c *contextConsumer) Uint8(name string, value uint8)     { c.add(name, value) }
func (c *contextConsumer) Uint16(name string, value uint16)   { c.add(name, value) }
func (c *contextConsumer) Uint32(name string, value uint32)   { c.add(name, value) }
func (c *contextConsumer) Uint64(name string, value uint64)   { c.add(name, value) }
func (c *contextConsumer) Float32(name string, value float32) { c.add(name, value) }
func (c *contextConsumer) Float64(name string, value float64) { c.add(name, value) }
func (c *contextConsumer) String(name string, value string)   { c.add(name, value) }
func (c *contextConsumer) Any(name string, value interface{}) { c.add(name, value) }

var _ errors.ErrorContextConsumer = &contextConsumer{}
