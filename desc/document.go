package desc

import "github.com/unkn0wn-root/lnkobj"

// Document is the structured description an external builder supplies before
// encoding. Type and section tags are plain integers rather than enums so a
// producer can emit values this package does not know about; they ride
// through to the object file unchanged.
type Document struct {
	Text    []byte        `json:"text,omitempty" cbor:"text,omitempty" msgpack:"text,omitempty"`
	Data    []byte        `json:"data,omitempty" cbor:"data,omitempty" msgpack:"data,omitempty"`
	Symbols []SymbolEntry `json:"symbols,omitempty" cbor:"symbols,omitempty" msgpack:"symbols,omitempty"`
	Relocs  []RelocEntry  `json:"relocs,omitempty" cbor:"relocs,omitempty" msgpack:"relocs,omitempty"`
}

type SymbolEntry struct {
	Name    string `json:"name" cbor:"name" msgpack:"name"`
	Type    uint32 `json:"type" cbor:"type" msgpack:"type"`
	Section uint32 `json:"section" cbor:"section" msgpack:"section"`
	Offset  uint32 `json:"offset" cbor:"offset" msgpack:"offset"`
}

// RelocEntry references its symbol by name. The name need not appear in this
// document's symbol table; resolving it is a linker's problem.
type RelocEntry struct {
	Offset     uint32 `json:"offset" cbor:"offset" msgpack:"offset"`
	SymbolName string `json:"symbol_name" cbor:"symbol_name" msgpack:"symbol_name"`
	Type       uint32 `json:"type" cbor:"type" msgpack:"type"`
}

// ObjectFile converts the document into the codec model, ready for
// lnkobj.Encode. Section bytes are shared with the document, not copied.
func (d *Document) ObjectFile() *lnkobj.ObjectFile {
	obj := &lnkobj.ObjectFile{Text: d.Text, Data: d.Data}
	for _, s := range d.Symbols {
		obj.Symbols = append(obj.Symbols, lnkobj.Symbol{
			Name:    s.Name,
			Type:    lnkobj.SymbolType(s.Type),
			Section: lnkobj.Section(s.Section),
			Offset:  s.Offset,
		})
	}
	for _, r := range d.Relocs {
		obj.Relocs = append(obj.Relocs, lnkobj.Relocation{
			Offset:     r.Offset,
			SymbolName: r.SymbolName,
			Type:       lnkobj.RelocType(r.Type),
		})
	}
	return obj
}

// FromObjectFile is the inverse bridge, for tooling that re-emits a decoded
// object as a description document.
func FromObjectFile(obj *lnkobj.ObjectFile) *Document {
	d := &Document{Text: obj.Text, Data: obj.Data}
	for _, s := range obj.Symbols {
		d.Symbols = append(d.Symbols, SymbolEntry{
			Name:    s.Name,
			Type:    uint32(s.Type),
			Section: uint32(s.Section),
			Offset:  s.Offset,
		})
	}
	for _, r := range obj.Relocs {
		d.Relocs = append(d.Relocs, RelocEntry{
			Offset:     r.Offset,
			SymbolName: r.SymbolName,
			Type:       uint32(r.Type),
		})
	}
	return d
}
