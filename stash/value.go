package stash

import (
	"fmt"
	"strconv"
)

// Kind enumerates the storable value variants. The zero Kind is invalid,
// which makes an uninitialized Value detectable at the Store boundary.
type Kind uint8

const (
	KindText Kind = iota + 1
	KindBytes
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Value is a storable datum: exactly one of text, bytes, integer, or float.
// Construct with Text, Bytes, Int, or Float; the zero Value is not storable.
type Value struct {
	kind Kind
	text string
	raw  []byte
	num  int64
	fnum float64
}

func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func Bytes(b []byte) Value {
	return Value{kind: KindBytes, raw: b}
}

func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, fnum: f}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Encode renders the value as the byte string actually written to storage.
// Numbers become their decimal text form, so the round trip back to int64
// or float64 goes through strconv on the read side.
func (v Value) Encode() []byte {
	switch v.kind {
	case KindText:
		return []byte(v.text)
	case KindBytes:
		return v.raw
	case KindInt:
		return []byte(strconv.FormatInt(v.num, 10))
	case KindFloat:
		return []byte(strconv.FormatFloat(v.fnum, 'g', -1, 64))
	default:
		return nil
	}
}

// String is the kind-tagged form used in call history, eg `int:123` or
// `bytes:"first"`. It is unambiguous where Encode is not: the encodings of
// Text("123") and Int(123) collide, their String forms do not.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("text:%q", v.text)
	case KindBytes:
		return fmt.Sprintf("bytes:%q", v.raw)
	case KindInt:
		return fmt.Sprintf("int:%d", v.num)
	case KindFloat:
		return fmt.Sprintf("float:%s", strconv.FormatFloat(v.fnum, 'g', -1, 64))
	default:
		return "invalid"
	}
}

// AsText interprets raw stored bytes as UTF-8 text.
func AsText(b []byte) (string, error) {
	return string(b), nil
}

// AsInt parses raw stored bytes as a base-10 integer.
func AsInt(b []byte) (int64, error) {
	return strconv.ParseInt(string(b), 10, 64)
}

// AsFloat parses raw stored bytes as a decimal floating-point number.
func AsFloat(b []byte) (float64, error) {
	return strconv.ParseFloat(string(b), 64)
}
