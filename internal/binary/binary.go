// Package binary replaces the encoding/binary package in the standard library
// for fixed-width integer codecs using generics. Unlike the standard package it
// carries both byte orders as first-class functions, since wire layouts mix
// little and big endian fields freely.
package binary

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Size reports the encoded byte width of T.
func Size[T constraints.Integer]() int {
	var r T // This is only used for type detection.
	switch any(r).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	case int64, uint64:
		return 8
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", r))
}

// Get reads a little-endian integer of T's width from the front of b.
func Get[T constraints.Integer](b []byte) T {
	_ = b[Size[T]()-1] // bounds check hint to compiler; see golang.org/issue/14808

	var r T
	switch any(r).(type) {
	case int8:
		return T(int8(b[0]))
	case int16:
		return T(int16(binary.LittleEndian.Uint16(b)))
	case int32:
		return T(int32(binary.LittleEndian.Uint32(b)))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(b)))
	case uint8:
		return T(b[0])
	case uint16:
		return T(binary.LittleEndian.Uint16(b))
	case uint32:
		return T(binary.LittleEndian.Uint32(b))
	case uint64:
		return T(binary.LittleEndian.Uint64(b))
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", r))
}

// GetBE reads a big-endian integer of T's width from the front of b.
func GetBE[T constraints.Integer](b []byte) T {
	_ = b[Size[T]()-1] // bounds check hint to compiler; see golang.org/issue/14808

	var r T
	switch any(r).(type) {
	case int8:
		return T(int8(b[0]))
	case int16:
		return T(int16(binary.BigEndian.Uint16(b)))
	case int32:
		return T(int32(binary.BigEndian.Uint32(b)))
	case int64:
		return T(int64(binary.BigEndian.Uint64(b)))
	case uint8:
		return T(b[0])
	case uint16:
		return T(binary.BigEndian.Uint16(b))
	case uint32:
		return T(binary.BigEndian.Uint32(b))
	case uint64:
		return T(binary.BigEndian.Uint64(b))
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", r))
}

// Put writes v into the front of b in little-endian order. b must be at least
// T's width.
func Put[T constraints.Integer](b []byte, v T) {
	switch any(v).(type) {
	case int8, uint8:
		b[0] = byte(v)
	case int16, uint16:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case int32, uint32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, uint64(v))
	}
}

// PutBE writes v into the front of b in big-endian order. b must be at least
// T's width.
func PutBE[T constraints.Integer](b []byte, v T) {
	switch any(v).(type) {
	case int8, uint8:
		b[0] = byte(v)
	case int16, uint16:
		binary.BigEndian.PutUint16(b, uint16(v))
	case int32, uint32:
		binary.BigEndian.PutUint32(b, uint32(v))
	default:
		binary.BigEndian.PutUint64(b, uint64(v))
	}
}
