package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/lnkobj"
	"github.com/unkn0wn-root/lnkobj/dump"
)

type dumpCmd struct {
	gs    *globalState
	width int
}

func newDumpCmd(gs *globalState) *cobra.Command {
	c := &dumpCmd{gs: gs}
	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "render object files for inspection",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}
	cmd.Flags().IntVarP(&c.width, "width", "w", 16, "bytes per hexdump line")
	return cmd
}

// run keeps going after a bad file; one corrupt object in a batch should not
// hide the rest.
func (c *dumpCmd) run(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", path)
		if err := c.dumpOne(cmd.OutOrStdout(), path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func (c *dumpCmd) dumpOne(w io.Writer, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	obj, err := lnkobj.Decode(raw, lnkobj.WithLogger(c.gs.logger))
	if err != nil {
		return err
	}
	if err := dump.DumpWith(w, obj, dump.Options{Width: c.width}); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
