package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/lnkobj"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenThenDump(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "unit.json")
	output := filepath.Join(dir, "unit.obj")

	doc := `{
		"text": "kJDD",
		"data": "AQI=",
		"symbols": [{"name": "main", "type": 1, "section": 0, "offset": 0}],
		"relocs":  [{"offset": 1, "symbol_name": "puts", "type": 1}]
	}`
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o644))

	_, _, err := runCmd(t, "gen", input, output)
	require.NoError(t, err)

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	obj, err := lnkobj.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, []byte{0x90, 0x90, 0xC3}, obj.Text)
	require.Equal(t, "puts", obj.Relocs[0].SymbolName)

	out, _, err := runCmd(t, "dump", output)
	require.NoError(t, err)
	require.Contains(t, out, "== "+output+" ==")
	require.Contains(t, out, "Header: text=3 bytes, data=2 bytes, symbols=1, relocs=1")
	require.Contains(t, out, "type=REL symbol=puts")
}

func TestGenUnknownFormat(t *testing.T) {
	_, _, err := runCmd(t, "gen", "--format", "xml", "in", "out")
	require.ErrorContains(t, err, "unknown description format")
}

func TestDumpBatchKeepsGoing(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.obj")
	enc, err := lnkobj.Encode(&lnkobj.ObjectFile{Text: []byte{0xC3}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(good, enc, 0o644))

	bad := filepath.Join(dir, "bad.obj")
	require.NoError(t, os.WriteFile(bad, []byte("not an object"), 0o644))

	out, errOut, err := runCmd(t, "dump", bad, good)
	require.Error(t, err, "a failed file must fail the batch exit status")
	require.Contains(t, errOut, "ERROR:")
	require.Contains(t, out, "Header: text=1 bytes", "the good file still dumps")
}
