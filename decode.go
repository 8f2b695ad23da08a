package lnkobj

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// Decode validates b against the LNK1 layout and materializes an ObjectFile.
// Checks run in a fixed order and each has its own typed failure:
//
//  1. buffer shorter than the header: TruncatedError{Stage: StageHeader}
//  2. wrong magic: BadMagicError
//  3. text/data slices, as declared by the header: TruncatedError per section
//  4. symbol_count 72-byte records: TruncatedError{Stage: StageSymbolTable}
//  5. reloc_count 72-byte records: TruncatedError{Stage: StageRelocTable}
//
// Bytes past the declared tables are ignored. Text and Data of the result
// alias b (zero-copy); names are fresh strings. Name fields decode up to the
// first NUL; invalid UTF-8 never fails the decode - each bad byte becomes
// one U+FFFD, because names are diagnostic, not control data. Unknown
// type/section tag values pass through unchanged.
func Decode(b []byte, opt ...Option) (*ObjectFile, error) {
	var o options
	for _, fn := range opt {
		fn(&o)
	}
	log := Logger(NopLogger{})
	if o.log != nil {
		log = o.log
	}

	if len(b) < HeaderSize {
		return nil, &TruncatedError{Stage: StageHeader, Need: HeaderSize, Have: len(b)}
	}
	if m := binary.LittleEndian.Uint32(b[0:4]); m != Magic {
		return nil, &BadMagicError{Found: m}
	}

	textSize := int(binary.LittleEndian.Uint32(b[4:8]))
	dataSize := int(binary.LittleEndian.Uint32(b[8:12]))
	symCount := int(binary.LittleEndian.Uint32(b[12:16]))
	relCount := int(binary.LittleEndian.Uint32(b[16:20]))

	obj := new(ObjectFile)
	off := HeaderSize

	// overflow-safe bound checks: the casts above can go negative on 32-bit
	if textSize < 0 || textSize > len(b)-off {
		return nil, &TruncatedError{Stage: StageText, Need: textSize, Have: len(b) - off}
	}
	if textSize > 0 {
		obj.Text = b[off : off+textSize]
	}
	off += textSize

	if dataSize < 0 || dataSize > len(b)-off {
		return nil, &TruncatedError{Stage: StageData, Need: dataSize, Have: len(b) - off}
	}
	if dataSize > 0 {
		obj.Data = b[off : off+dataSize]
	}
	off += dataSize

	if symCount < 0 || (len(b)-off)/SymbolSize < symCount {
		return nil, &TruncatedError{Stage: StageSymbolTable, Need: symCount * SymbolSize, Have: len(b) - off}
	}
	if symCount > 0 {
		obj.Symbols = make([]Symbol, symCount)
		for i := range obj.Symbols {
			rec := b[off : off+SymbolSize]
			name, repaired := decodeName(rec[:NameSize])
			if repaired > 0 {
				log.Warn("invalid UTF-8 in symbol name, bytes replaced", Fields{
					"index": i, "replaced": repaired, "name": name,
				})
			}
			obj.Symbols[i] = Symbol{
				Name:    name,
				Type:    SymbolType(binary.LittleEndian.Uint32(rec[64:68])),
				Section: Section(binary.LittleEndian.Uint32(rec[68:72])),
				Offset:  binary.LittleEndian.Uint32(rec[72:76]),
			}
			off += SymbolSize
		}
	}

	if relCount < 0 || (len(b)-off)/RelocSize < relCount {
		return nil, &TruncatedError{Stage: StageRelocTable, Need: relCount * RelocSize, Have: len(b) - off}
	}
	if relCount > 0 {
		obj.Relocs = make([]Relocation, relCount)
		for i := range obj.Relocs {
			rec := b[off : off+RelocSize]
			name, repaired := decodeName(rec[4 : 4+NameSize])
			if repaired > 0 {
				log.Warn("invalid UTF-8 in relocation symbol name, bytes replaced", Fields{
					"index": i, "replaced": repaired, "name": name,
				})
			}
			obj.Relocs[i] = Relocation{
				Offset:     binary.LittleEndian.Uint32(rec[0:4]),
				SymbolName: name,
				Type:       RelocType(binary.LittleEndian.Uint32(rec[68:72])),
			}
			off += RelocSize
		}
	}

	log.Debug("object decoded", Fields{
		"text":     textSize,
		"data":     dataSize,
		"symbols":  symCount,
		"relocs":   relCount,
		"trailing": len(b) - off,
	})
	return obj, nil
}

// decodeName extracts the NUL-terminated prefix of a fixed name field. Bytes
// that are not valid UTF-8 are each replaced with U+FFFD; the count of
// replacements is returned so callers can report the repair.
func decodeName(field []byte) (string, int) {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if utf8.Valid(field) {
		return string(field), 0
	}

	var sb strings.Builder
	sb.Grow(len(field))
	replaced := 0
	for len(field) > 0 {
		r, size := utf8.DecodeRune(field)
		if r == utf8.RuneError && size == 1 {
			replaced++
		}
		sb.WriteRune(r)
		field = field[size:]
	}
	return sb.String(), replaced
}
