package lnkobj

import (
	"bytes"
	"encoding/binary"
)

var namePad [NameSize]byte

// Encode serializes obj into the LNK1 layout: header, text, data, then the
// symbol and relocation tables in input order. text_size, data_size and the
// two counts are computed from obj itself, never taken from the caller, so an
// encoded buffer can never disagree with its own header.
//
// A name of NameSize bytes or more returns a NameTooLongError and no output.
// Encode does not retain obj or any of its slices.
func Encode(obj *ObjectFile) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(obj.Text) + len(obj.Data) +
		SymbolSize*len(obj.Symbols) + RelocSize*len(obj.Relocs))

	var u4 [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u4[:], v)
		buf.Write(u4[:])
	}

	putU32(Magic)
	putU32(uint32(len(obj.Text)))
	putU32(uint32(len(obj.Data)))
	putU32(uint32(len(obj.Symbols)))
	putU32(uint32(len(obj.Relocs)))

	buf.Write(obj.Text)
	buf.Write(obj.Data)

	for i := range obj.Symbols {
		s := &obj.Symbols[i]
		if err := putName(&buf, s.Name); err != nil {
			return nil, err
		}
		putU32(uint32(s.Type))
		putU32(uint32(s.Section))
		putU32(s.Offset)
	}

	for i := range obj.Relocs {
		r := &obj.Relocs[i]
		putU32(r.Offset)
		if err := putName(&buf, r.SymbolName); err != nil {
			return nil, err
		}
		putU32(uint32(r.Type))
	}

	return buf.Bytes(), nil
}

// putName writes name left-justified into a fixed NameSize field, NUL-filled
// to the end. The field must keep at least one terminator byte.
func putName(buf *bytes.Buffer, name string) error {
	if len(name) >= NameSize {
		return &NameTooLongError{Name: name}
	}
	buf.WriteString(name)
	buf.Write(namePad[len(name):])
	return nil
}
