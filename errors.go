package lnkobj

import "fmt"

// Stage identifies the structural region a decode stopped in.
type Stage int

const (
	StageHeader Stage = iota
	StageText
	StageData
	StageSymbolTable
	StageRelocTable
)

var stageNames = map[Stage]string{
	StageHeader:      "header",
	StageText:        "text section",
	StageData:        "data section",
	StageSymbolTable: "symbol table",
	StageRelocTable:  "relocation table",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// BadMagicError reports a buffer whose first four bytes are not the LNK1
// magic: either not an object file at all, or one corrupted at the front.
type BadMagicError struct {
	Found uint32
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("lnkobj: bad magic 0x%08x (want 0x%08x)", e.Found, Magic)
}

// TruncatedError reports a buffer that ends before Stage is fully present.
// Need is what finishing the stage would have taken, Have what remained.
type TruncatedError struct {
	Stage Stage
	Need  int
	Have  int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("lnkobj: truncated %s: need %d bytes, have %d", e.Stage, e.Need, e.Have)
}

// NameTooLongError reports a name whose UTF-8 encoding cannot fit the fixed
// name field with its terminator. Encode refuses rather than truncating,
// since a clipped name would silently corrupt relocation back-references.
type NameTooLongError struct {
	Name string
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("lnkobj: name %q is %d bytes, limit is %d", e.Name, len(e.Name), NameSize-1)
}
