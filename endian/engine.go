// Package endian provides the byte order abstraction used by the stridx
// container format.
//
// EndianEngine combines the standard library's ByteOrder and AppendByteOrder
// interfaces so encoders can append directly into growing buffers instead of
// staging through temporary slices. binary.LittleEndian and binary.BigEndian
// both satisfy it; the container defaults to little-endian.
//
// The package also exposes the host's native byte order so cell payload
// encoding can take a memcpy fast path when the target order matches.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is the byte order contract for container encoding: read/write
// at offsets plus append to a growing slice.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// nativeLittle is probed once at init; byte order is a property of the host.
var nativeLittle = func() bool {
	var x uint16 = 1

	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return nativeLittle
}

// IsNative reports whether engine matches the host's byte order. Encoders use
// this to reinterpret []uint16 cells as bytes without per-cell conversion.
func IsNative(engine EndianEngine) bool {
	if nativeLittle {
		return engine == EndianEngine(binary.LittleEndian)
	}

	return engine == EndianEngine(binary.BigEndian)
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
