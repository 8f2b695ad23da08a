package lnkobj

import "strconv"

// On-disk layout. All multi-byte fields are unsigned 32-bit little-endian;
// there is no alignment padding and no variable-length encoding anywhere.
//
//	header:  magic | text_size | data_size | symbol_count | reloc_count
//	body:    text_size raw bytes | data_size raw bytes
//	symbol:  name[64] | type | section | offset
//	reloc:   offset | symbol_name[64] | type
//
// Note the reloc record leads with its offset field while the symbol record
// leads with the name. The asymmetry is part of the format.
const (
	// Magic identifies an LNK1 object file ("LNK1" read as little-endian u32).
	Magic uint32 = 0x4C4E4B31

	// HeaderSize is the fixed size of the five-field file header.
	HeaderSize = 20

	// NameSize is the fixed width of a name field. Names are NUL-padded, and
	// a producer must leave room for at least one terminator byte, so the
	// longest representable name is NameSize-1 bytes of UTF-8.
	NameSize = 64

	// SymbolSize is the fixed size of one symbol table record.
	SymbolSize = NameSize + 3*4

	// RelocSize is the fixed size of one relocation table record.
	RelocSize = 4 + NameSize + 4
)

// SymbolType tags a symbol as imported or exported. Values outside the known
// set are preserved as-is by Decode so newer producers do not break older
// readers.
type SymbolType uint32

const (
	SymbolUndefined SymbolType = 0 // import, resolved externally
	SymbolDefined   SymbolType = 1 // export, Offset valid within Section
)

// Section names the region a defined symbol lives in.
type Section uint32

const (
	SectionText Section = 0
	SectionData Section = 1
)

// RelocType selects the patch kind a linker applies.
type RelocType uint32

const (
	RelocAbsolute RelocType = 0 // 32-bit absolute address
	RelocRelative RelocType = 1 // relative jump target
)

// Rendering labels. Unknown values fall back to their raw decimal form.
var (
	symbolTypeNames = map[SymbolType]string{
		SymbolUndefined: "UNDEF",
		SymbolDefined:   "DEF",
	}
	sectionNames = map[Section]string{
		SectionText: "TEXT",
		SectionData: "DATA",
	}
	relocTypeNames = map[RelocType]string{
		RelocAbsolute: "ABS",
		RelocRelative: "REL",
	}
)

func (t SymbolType) String() string {
	if s, ok := symbolTypeNames[t]; ok {
		return s
	}
	return strconv.FormatUint(uint64(t), 10)
}

func (s Section) String() string {
	if n, ok := sectionNames[s]; ok {
		return n
	}
	return strconv.FormatUint(uint64(s), 10)
}

func (t RelocType) String() string {
	if s, ok := relocTypeNames[t]; ok {
		return s
	}
	return strconv.FormatUint(uint64(t), 10)
}
