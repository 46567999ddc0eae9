package segstring

import "io"

// Codec adapts a raw, NUL-terminated byte buffer of one Encoding to the
// segment contract: logical length, random code-point access, and a
// UTF-8-emitting writer. Implementations never allocate an index table;
// CodeUnitAt walks the buffer from the front on every call (ASCII/UTF-32
// fast-path on direct indexing since their code units are fixed-width).
type Codec interface {
	// Length returns the logical code-point count of the NUL-terminated
	// buffer b, or 0 if b is malformed.
	Length(b []byte) int
	// LengthAndByteSize returns both the logical length and the number of
	// bytes b occupies including its terminator; used by owned copies,
	// which must size their allocation up front.
	LengthAndByteSize(b []byte) (length, byteSize int)
	// CodeUnitAt decodes the code point at logical index i.
	CodeUnitAt(b []byte, i int) (CodePoint, error)
	// Print writes the code points in [start,end) of b to w as UTF-8,
	// reporting whether the whole range was written.
	Print(w io.Writer, b []byte, start, end int) (bool, error)
}

// codecFor is the encoding-to-codec dispatch table: one flat lookup
// instead of a type switch repeated at every call site.
var codecFor = map[Encoding]Codec{
	ASCII:   asciiCodec{},
	UTF8:    utf8Codec{},
	UTF16BE: utf16beCodec{},
	UTF32:   utf32Codec{},
}

func codecForEncoding(e Encoding) Codec {
	c, ok := codecFor[e]
	if !ok {
		panic("segstring: unknown encoding " + e.String())
	}
	return c
}
