package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/lnkobj"
	"github.com/unkn0wn-root/lnkobj/desc"
	zaplog "github.com/unkn0wn-root/lnkobj/log/zap"
)

// maxDocSize bounds how large a description document gen will read.
const maxDocSize = 64 << 20

type globalState struct {
	verbose bool
	logger  lnkobj.Logger
}

func newRootCmd() *cobra.Command {
	gs := &globalState{logger: lnkobj.NopLogger{}}

	root := &cobra.Command{
		Use:          "lnkobj",
		Short:        "generate and inspect LNK1 object files",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !gs.verbose {
				return nil
			}
			zl, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			gs.logger = zaplog.ZapLogger{L: zl}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&gs.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenCmd(gs))
	root.AddCommand(newDumpCmd(gs))
	return root
}

func docCodec(format string) (desc.Codec[desc.Document], error) {
	var inner desc.Codec[desc.Document]
	switch format {
	case "json":
		inner = desc.JSONCodec[desc.Document]{}
	case "cbor":
		c, err := desc.NewCBOR[desc.Document](false)
		if err != nil {
			return nil, err
		}
		inner = c
	case "msgpack":
		inner = desc.Msgpack[desc.Document]{}
	default:
		return nil, fmt.Errorf("unknown description format %q (want json, cbor or msgpack)", format)
	}
	return desc.LimitCodec[desc.Document]{Inner: inner, MaxDecode: maxDocSize}, nil
}
