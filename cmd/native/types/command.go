package types

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/brimdata/native"
	"github.com/brimdata/native/cmd/native/root"
	"github.com/brimdata/native/pkg/charm"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var Spec = &charm.Spec{
	Name:  "types",
	Usage: "types [-j n] [-tree] type-name ...",
	Short: "parse and canonicalize column type names",
	Long: `
The types command parses each type name argument and prints its canonical
form and kind.  With -tree, the nested types of composite types are printed
indented beneath them.  Names are parsed concurrently by up to -j workers
sharing one type registry.
`,
	New: New,
}

func init() {
	root.Native.Add(Spec)
}

type Command struct {
	*root.Command
	jobs int
	tree bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.IntVar(&c.jobs, "j", runtime.GOMAXPROCS(0), "number of names to parse concurrently")
	f.BoolVar(&c.tree, "tree", false, "print nested types")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return errors.New("no type names given")
	}
	if err := c.Init(); err != nil {
		return err
	}
	defer c.Logger.Sync()
	reg := native.NewRegistry()
	types := make([]native.Type, len(args))
	var g errgroup.Group
	g.SetLimit(max(c.jobs, 1))
	for k, name := range args {
		g.Go(func() error {
			typ, err := reg.Parse(name)
			if err != nil {
				return err
			}
			types[k] = typ
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	c.Logger.Info("parsed type names", zap.Int("count", len(types)))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, typ := range types {
		printType(w, typ, 0, c.tree)
	}
	return w.Flush()
}

func printType(w *tabwriter.Writer, typ native.Type, depth int, tree bool) {
	fmt.Fprintf(w, "%s%s\t%s\n", strings.Repeat("  ", depth), typ.Name(), typ.Kind())
	if tree {
		for _, inner := range native.InnerTypes(typ) {
			printType(w, inner, depth+1, tree)
		}
	}
}
