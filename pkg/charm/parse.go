package charm

import (
	"errors"
	"flag"
	"io"
)

type frame struct {
	spec  *Spec
	cmd   Command
	flags *flag.FlagSet
}

// path is the chain of commands selected by the command line, root first.
type path []frame

func (p path) run(args []string) error {
	return p[len(p)-1].cmd.Run(args)
}

func newFlagSet(spec *Spec) (*flag.FlagSet, *bool, *bool) {
	f := flag.NewFlagSet(spec.Name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	help := f.Bool("h", false, "display help")
	hidden := f.Bool("hidden", false, "show hidden options")
	f.BoolVar(help, "help", false, "display help")
	return f, help, hidden
}

// parse walks args from the root spec, constructing each command on the
// way with its parent and parsing its flags.  When leaf is true, internal
// leaf commands register their leaf flags, and ErrNotLeaf is returned if
// such a command turns out to have a child selected.
func parse(spec *Spec, args []string, leaf bool) (path, []string, bool, error) {
	var p path
	var parent Command
	var showHidden bool
	for {
		f, help, hidden := newFlagSet(spec)
		cmd, err := spec.New(parent, f)
		if err != nil {
			return nil, nil, false, err
		}
		setLeaf := leaf && spec.InternalLeaf
		if setLeaf {
			if l, ok := cmd.(InternalLeaf); ok {
				l.SetLeafFlags(f)
			}
		}
		p = append(p, frame{spec, cmd, f})
		if err := f.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return p, nil, showHidden, NeedHelp
			}
			return nil, nil, false, err
		}
		showHidden = showHidden || *hidden
		if *help {
			return p, nil, showHidden, NeedHelp
		}
		rest := f.Args()
		if len(rest) > 0 {
			if child := spec.lookupSub(rest[0]); child != nil {
				if setLeaf {
					return nil, nil, false, ErrNotLeaf
				}
				spec, args, parent = child, rest[1:], cmd
				continue
			}
		}
		return p, rest, showHidden, nil
	}
}

// parseHelp finds the command named by args without parsing flags so that
// help can be shown for a command line that does not parse.
func parseHelp(spec *Spec, args []string) (path, error) {
	var p path
	var parent Command
	for {
		f, _, _ := newFlagSet(spec)
		cmd, err := spec.New(parent, f)
		if err != nil {
			return nil, err
		}
		p = append(p, frame{spec, cmd, f})
		var child *Spec
		for k, arg := range args {
			if child = spec.lookupSub(arg); child != nil {
				args = args[k+1:]
				break
			}
		}
		if child == nil {
			if l, ok := cmd.(InternalLeaf); ok && spec.InternalLeaf {
				l.SetLeafFlags(f)
			}
			return p, nil
		}
		spec, parent = child, cmd
	}
}
