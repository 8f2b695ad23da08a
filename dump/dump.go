// Package dump renders a decoded object file for humans: header summary,
// section hexdumps, and indexed symbol/relocation listings. Unknown
// type/section tags render as their raw decimal value, so a file written by
// a newer producer still dumps cleanly.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/unkn0wn-root/lnkobj"
)

// Options control rendering. The zero value is ready to use.
type Options struct {
	// Width is the number of bytes per hexdump line. <= 0 means 16.
	Width int
}

// Dump renders obj to w with default options.
func Dump(w io.Writer, obj *lnkobj.ObjectFile) error {
	return DumpWith(w, obj, Options{})
}

// DumpWith renders obj to w. Empty sections and empty tables are omitted.
func DumpWith(w io.Writer, obj *lnkobj.ObjectFile, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = 16
	}

	p := &printer{w: w}

	p.printf("Header: text=%d bytes, data=%d bytes, symbols=%d, relocs=%d\n",
		len(obj.Text), len(obj.Data), len(obj.Symbols), len(obj.Relocs))

	if len(obj.Text) > 0 {
		p.printf("\n.text (%d bytes)\n", len(obj.Text))
		p.hexdump(obj.Text, width)
	}
	if len(obj.Data) > 0 {
		p.printf("\n.data (%d bytes)\n", len(obj.Data))
		p.hexdump(obj.Data, width)
	}

	if len(obj.Symbols) > 0 {
		p.printf("\nSymbols:\n")
		for i, s := range obj.Symbols {
			p.printf("  [%02d] %-20s type=%-5s section=%-4s offset=0x%x\n",
				i, s.Name, s.Type, s.Section, s.Offset)
		}
	}

	if len(obj.Relocs) > 0 {
		p.printf("\nRelocations:\n")
		for i, r := range obj.Relocs {
			p.printf("  [%02d] offset=0x%x type=%-3s symbol=%s\n",
				i, r.Offset, r.Type, r.SymbolName)
		}
	}

	return p.err
}

// printer keeps the first write error and drops everything after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) hexdump(b []byte, width int) {
	for base := 0; base < len(b); base += width {
		chunk := b[base:min(base+width, len(b))]

		var hexed strings.Builder
		var ascii strings.Builder
		for i, c := range chunk {
			if i > 0 {
				hexed.WriteByte(' ')
			}
			fmt.Fprintf(&hexed, "%02x", c)
			if c >= 0x20 && c < 0x7F {
				ascii.WriteByte(c)
			} else {
				ascii.WriteByte('.')
			}
		}

		p.printf("  %08x: %-*s |%s|\n", base, width*3-1, hexed.String(), ascii.String())
	}
}
