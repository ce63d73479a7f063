package main

import (
	"fmt"
	"os"

	_ "github.com/brimdata/native/cmd/native/encode"
	_ "github.com/brimdata/native/cmd/native/exception"
	"github.com/brimdata/native/cmd/native/root"
	_ "github.com/brimdata/native/cmd/native/settings"
	_ "github.com/brimdata/native/cmd/native/types"
)

func main() {
	if err := root.Native.Exec(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
