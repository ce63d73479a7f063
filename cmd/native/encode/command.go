package encode

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/native/arrowblock"
	"github.com/brimdata/native/block"
	"github.com/brimdata/native/cmd/native/root"
	"github.com/brimdata/native/column"
	"github.com/brimdata/native/pkg/charm"
	"github.com/brimdata/native/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "encode",
	Usage: "encode [-o file] [-table name] [file]",
	Short: "encode an Arrow IPC stream as Data packets",
	Long: `
The encode command reads an Arrow IPC stream from the named file or from
standard input and writes one Data packet per Arrow record followed by the
empty Data packet that ends an insert.  Column headers are written only in
the first packet in which a column appears, as on a single connection.
`,
	New: New,
}

func init() {
	root.Native.Add(Spec)
}

type Command struct {
	*root.Command
	output string
	table  string
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.output, "o", "", "write output to file instead of standard output")
	f.StringVar(&c.table, "table", "", "name of the temporary table for the data")
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
	var w io.Writer = os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	reader, err := ipc.NewReader(r, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return err
	}
	defer reader.Release()
	reg := prometheus.NewRegistry()
	metrics := block.NewMetrics(reg)
	s := wire.NewSerializer(w)
	rows, err := arrowblock.WriteInsert(s, reader, c.table, column.NewExports(), block.WithLogger(c.Logger), block.WithMetrics(metrics))
	if err != nil {
		return err
	}
	c.Logger.Debug("insert encoded", zap.String("table", c.table), zap.Int("rows", rows))
	if err := s.Flush(); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			c.Logger.Info("encode metric", zap.String("name", mf.GetName()), zap.Float64("value", m.GetCounter().GetValue()))
		}
	}
	return nil
}
