package exception

import (
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/native/cmd/native/root"
	"github.com/brimdata/native/pkg/charm"
	"github.com/brimdata/native/protocol"
	"github.com/brimdata/native/wire"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "exception",
	Usage: "exception [-hex] [-stack] [file]",
	Short: "decode a server exception",
	Long: `
The exception command decodes the body of an Exception packet captured from
a server connection and prints each exception in its chain, outermost
first.  Input is read from the named file or from standard input.  With
-hex, the input is a hexadecimal encoding of the packet body.
`,
	New: New,
}

func init() {
	root.Native.Add(Spec)
}

type Command struct {
	*root.Command
	hex   bool
	stack bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.hex, "hex", false, "input is hexadecimal")
	f.BoolVar(&c.stack, "stack", false, "print stack traces")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) > 1 {
		return errors.New("too many arguments")
	}
	if err := c.Init(); err != nil {
		return err
	}
	defer c.Logger.Sync()
	var r io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if c.hex {
		b, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		b, err = hex.DecodeString(strings.Join(strings.Fields(string(b)), ""))
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}
	e, err := protocol.ReadException(wire.NewDeserializer(r))
	if err != nil {
		c.Logger.Error("decoding exception", zap.Error(err))
		return err
	}
	for k, rec := range e.Chain() {
		fmt.Printf("%d: code %d: %s: %s\n", k, rec.Code, rec.Name, rec.Message)
		if c.stack && rec.StackTrace != "" {
			fmt.Println(rec.StackTrace)
		}
	}
	return nil
}
