// Package lnkobj encodes and decodes LNK1 object files - the single-unit
// binary artifact a linker consumes: machine code, initialized data, a symbol
// table, and relocation entries.
//
// Components:
//   - Layout: the on-disk shape (magic, 20-byte header, raw sections, fixed
//     72-byte symbol/relocation records). See layout.go.
//   - Encode: ObjectFile -> bytes. Header sizes and counts are computed from
//     the input, so the write path cannot produce a header/body mismatch.
//   - Decode: bytes -> ObjectFile, or a typed error (BadMagicError,
//     TruncatedError) naming exactly what was wrong. Never panics, never
//     returns a partial result.
//
// Encode and Decode are pure functions of their arguments. They retain no
// state between calls and are safe to run concurrently without coordination.
// Linking itself (symbol resolution, address fixups, section merging) is out
// of scope: relocations reference symbols by name and may dangle.
package lnkobj

// ObjectFile is one compiled translation unit, decoded from or ready to be
// encoded into the LNK1 layout. Symbol and relocation order is significant
// (consumers refer to symbols by table position) and survives a round trip.
type ObjectFile struct {
	Text    []byte
	Data    []byte
	Symbols []Symbol
	Relocs  []Relocation
}

// Symbol is a named location. Section and Offset are meaningful when Type is
// SymbolDefined; for undefined symbols they are conventionally zero. The
// format itself does not enforce that convention.
type Symbol struct {
	Name    string
	Type    SymbolType
	Section Section
	Offset  uint32
}

// Relocation asks a linker to patch the bytes at Offset (by convention inside
// .text) with the resolved address of SymbolName. The reference is by name,
// not table index, and need not resolve within this file.
type Relocation struct {
	Offset     uint32
	SymbolName string
	Type       RelocType
}
