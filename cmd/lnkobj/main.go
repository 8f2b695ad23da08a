// lnkobj is a small toolbox for LNK1 object files: gen builds one from a
// description document, dump renders one for inspection.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
