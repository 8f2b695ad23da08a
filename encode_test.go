package lnkobj

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func u32at(t *testing.T, b []byte, off int) uint32 {
	t.Helper()
	if off+4 > len(b) {
		t.Fatalf("offset %d out of range (len %d)", off, len(b))
	}
	return binary.LittleEndian.Uint32(b[off : off+4])
}

func TestEncodeEmptyObject(t *testing.T) {
	b, err := Encode(&ObjectFile{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if len(b) != HeaderSize {
		t.Fatalf("empty object should encode to exactly %d bytes, got %d", HeaderSize, len(b))
	}
	if got := u32at(t, b, 0); got != Magic {
		t.Fatalf("magic mismatch: got 0x%08x", got)
	}
	for off := 4; off < HeaderSize; off += 4 {
		if got := u32at(t, b, off); got != 0 {
			t.Fatalf("header field at %d should be zero, got %d", off, got)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	obj := &ObjectFile{
		Text: []byte{0x90, 0x90, 0xC3},
		Data: []byte{1, 2, 3, 4, 5},
		Symbols: []Symbol{
			{Name: "main", Type: SymbolDefined, Section: SectionText, Offset: 0},
			{Name: "printf", Type: SymbolUndefined},
		},
		Relocs: []Relocation{
			{Offset: 1, SymbolName: "printf", Type: RelocRelative},
		},
	}
	b, err := Encode(obj)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	want := HeaderSize + 3 + 5 + 2*SymbolSize + 1*RelocSize
	if len(b) != want {
		t.Fatalf("encoded length: got %d want %d", len(b), want)
	}

	// header fields are computed from the input
	if u32at(t, b, 4) != 3 || u32at(t, b, 8) != 5 || u32at(t, b, 12) != 2 || u32at(t, b, 16) != 1 {
		t.Fatalf("header sizes/counts wrong: %v", b[:HeaderSize])
	}

	// sections follow the header back to back, no padding
	if !bytes.Equal(b[20:23], obj.Text) || !bytes.Equal(b[23:28], obj.Data) {
		t.Fatalf("section bytes misplaced")
	}

	// symbol record: name[64] then type, section, offset
	sym := b[28 : 28+SymbolSize]
	if !bytes.HasPrefix(sym, []byte("main\x00")) {
		t.Fatalf("symbol name field: %q", sym[:8])
	}
	if u32at(t, sym, 64) != uint32(SymbolDefined) || u32at(t, sym, 68) != uint32(SectionText) {
		t.Fatalf("symbol type/section misencoded")
	}

	// reloc record leads with the offset field, then name, then type
	rel := b[28+2*SymbolSize:]
	if u32at(t, rel, 0) != 1 {
		t.Fatalf("reloc offset field: got %d", u32at(t, rel, 0))
	}
	if !bytes.HasPrefix(rel[4:], []byte("printf\x00")) {
		t.Fatalf("reloc name field: %q", rel[4:12])
	}
	if u32at(t, rel, 4+NameSize) != uint32(RelocRelative) {
		t.Fatalf("reloc type field misencoded")
	}
}

func TestEncodeNameCapacity(t *testing.T) {
	ok := strings.Repeat("a", NameSize-1)
	long := strings.Repeat("a", NameSize)

	if _, err := Encode(&ObjectFile{Symbols: []Symbol{{Name: ok}}}); err != nil {
		t.Fatalf("%d-byte name should encode: %v", NameSize-1, err)
	}

	_, err := Encode(&ObjectFile{Symbols: []Symbol{{Name: long}}})
	var tooLong *NameTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("%d-byte symbol name: got %v, want NameTooLongError", NameSize, err)
	}
	if tooLong.Name != long {
		t.Fatalf("error should carry the offending name")
	}

	// same rule for relocation symbol names
	if _, err := Encode(&ObjectFile{Relocs: []Relocation{{SymbolName: long}}}); !errors.As(err, &tooLong) {
		t.Fatalf("%d-byte reloc name: got %v, want NameTooLongError", NameSize, err)
	}
}

func TestEncodeMultibyteNameCapacity(t *testing.T) {
	// 21 three-byte runes + "a" = 64 encoded bytes, over the line
	long := strings.Repeat("日", 21) + "a"
	if len(long) != NameSize {
		t.Fatalf("test setup: name is %d bytes", len(long))
	}
	var tooLong *NameTooLongError
	if _, err := Encode(&ObjectFile{Symbols: []Symbol{{Name: long}}}); !errors.As(err, &tooLong) {
		t.Fatalf("expected NameTooLongError, got %v", err)
	}
}
