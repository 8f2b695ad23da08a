package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/lnkobj"
)

type genCmd struct {
	gs     *globalState
	format string
}

func newGenCmd(gs *globalState) *cobra.Command {
	c := &genCmd{gs: gs}
	cmd := &cobra.Command{
		Use:   "gen <input> <output>",
		Short: "build an object file from a description document",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	cmd.Flags().StringVarP(&c.format, "format", "f", "json", "description format: json, cbor or msgpack")
	return cmd
}

func (c *genCmd) run(_ *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	codec, err := docCodec(c.format)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	doc, err := codec.Decode(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	out, err := lnkobj.Encode(doc.ObjectFile())
	if err != nil {
		return fmt.Errorf("encode %s: %w", input, err)
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}

	c.gs.logger.Info("object written", lnkobj.Fields{"path": output, "size": len(out)})
	return nil
}
