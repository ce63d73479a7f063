package settings

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/brimdata/native/cmd/native/root"
	"github.com/brimdata/native/pkg/charm"
	"github.com/brimdata/native/settings"
	"github.com/brimdata/native/wire"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "settings",
	Usage: "settings [-f file.yaml] [name ...]",
	Short: "list or encode session settings",
	Long: `
Without -f, the settings command lists the settings catalog, or the named
settings, with each setting's kind and description.

With -f, the settings command loads a YAML mapping of setting names to
values, validates it against the catalog, and writes a hex dump of the
settings list as it is sent with a query.  Client-only settings are
omitted from the encoding.
`,
	New: New,
}

func init() {
	root.Native.Add(Spec)
}

type Command struct {
	*root.Command
	file string
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.file, "f", "", "YAML file of setting values to encode")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if err := c.Init(); err != nil {
		return err
	}
	defer c.Logger.Sync()
	if c.file != "" {
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments with -f: %v", args)
		}
		return c.encode()
	}
	return list(args)
}

func list(names []string) error {
	var catalog []settings.Setting
	if len(names) == 0 {
		catalog = settings.All()
	}
	for _, name := range names {
		s, ok := settings.Lookup(name)
		if !ok {
			return &settings.UnknownSettingError{Name: name, Suggestion: settings.Suggest(name)}
		}
		catalog = append(catalog, s)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, s := range catalog {
		desc := s.Description
		if s.ClientOnly {
			desc = "(client only)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Kind, desc)
	}
	return w.Flush()
}

func (c *Command) encode() error {
	f, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer f.Close()
	values, err := settings.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", c.file, err)
	}
	c.Logger.Info("loaded settings", zap.String("file", c.file), zap.Int("count", len(values)))
	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	if err := settings.EncodeAll(s, values, c.Logger); err != nil {
		return err
	}
	if err := s.Flush(); err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(hex.Dump(buf.Bytes()))
	return err
}
