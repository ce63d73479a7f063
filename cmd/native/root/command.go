package root

import (
	"flag"

	"github.com/brimdata/native/cli/logflags"
	"github.com/brimdata/native/pkg/charm"
	"go.uber.org/zap"
)

var Native = &charm.Spec{
	Name:  "native",
	Usage: "native [options] <command> [arguments...]",
	Short: "inspect and encode native protocol data",
	Long: `
The "native" command works with the binary protocol spoken by columnar
database servers over TCP.  Its sub-commands parse and canonicalize column
type names, list and encode session settings, decode server exceptions
captured from a connection, and encode Arrow data as Data packets.
`,
	New: New,
}

type Command struct {
	logFlags logflags.Flags
	Logger   *zap.Logger
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.logFlags.SetFlags(f)
	return c, nil
}

// Init opens the logger.  Sub-commands call it once their flags are parsed.
func (c *Command) Init() error {
	logger, err := c.logFlags.Open()
	if err != nil {
		return err
	}
	c.Logger = logger
	return nil
}

func (c *Command) Run(args []string) error {
	return charm.NoRun(args)
}
