package console

import "strconv"

// Value lists the types ParseValue understands
type Value interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | string
}

// ParseBool is a lenient yes test for prompt answers
// y, ye, yes, ok, +, t, tr, tru and true are true; everything else is false.
func ParseBool(s string) bool {
	switch s {
	case "y", "ye", "yes", "ok", "+", "t", "tr", "tru", "true":
		return true
	}
	return false
}

// ParseValue parses s as T, rejecting out of range numbers
// Input is not trimmed; bool uses strconv.ParseBool.
func ParseValue[T Value](s string) (T, bool) {
	var zero T
	var v any
	var err error

	switch any(zero).(type) {
	case int:
		var n int64
		n, err = strconv.ParseInt(s, 10, strconv.IntSize)
		v = int(n)
	case int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		v = int8(n)
	case int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		v = int16(n)
	case int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		v = int32(n)
	case int64:
		v, err = strconv.ParseInt(s, 10, 64)
	case uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, strconv.IntSize)
		v = uint(n)
	case uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		v = uint8(n)
	case uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		v = uint16(n)
	case uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		v = uint32(n)
	case uint64:
		v, err = strconv.ParseUint(s, 10, 64)
	case float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case float64:
		v, err = strconv.ParseFloat(s, 64)
	case bool:
		v, err = strconv.ParseBool(s)
	case string:
		v = s
	}

	if err != nil {
		return zero, false
	}
	return v.(T), true
}
