package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
)

func displayHelp(p path, showHidden bool) {
	writeHelp(os.Stdout, p, showHidden)
}

func writeHelp(w io.Writer, p path, showHidden bool) {
	leaf := p[len(p)-1]
	spec := leaf.spec
	fmt.Fprintf(w, "NAME\n    %s - %s\n\n", spec.Name, spec.Short)
	fmt.Fprintf(w, "USAGE\n    %s\n\n", spec.Usage)
	hidden := strings.Split(spec.HiddenFlags, ",")
	redacted := strings.Split(spec.RedactedFlags, ",")
	var opts strings.Builder
	tw := tabwriter.NewWriter(&opts, 0, 4, 2, ' ', 0)
	leaf.flags.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "h" || f.Name == "help" || f.Name == "hidden":
			return
		case !showHidden && slices.Contains(hidden, f.Name):
			return
		}
		def := f.DefValue
		if slices.Contains(redacted, f.Name) {
			def = "<redacted>"
		}
		if def == "" {
			fmt.Fprintf(tw, "    -%s\t%s\n", f.Name, f.Usage)
		} else {
			fmt.Fprintf(tw, "    -%s\t%s (default %q)\n", f.Name, f.Usage, def)
		}
	})
	tw.Flush()
	if opts.Len() > 0 {
		fmt.Fprintf(w, "OPTIONS\n%s\n", opts.String())
	}
	var cmds strings.Builder
	tw = tabwriter.NewWriter(&cmds, 0, 4, 2, ' ', 0)
	for _, child := range spec.children {
		if !child.Hidden || showHidden {
			fmt.Fprintf(tw, "    %s\t%s\n", child.Name, child.Short)
		}
	}
	tw.Flush()
	if cmds.Len() > 0 {
		fmt.Fprintf(w, "COMMANDS\n%s\n", cmds.String())
	}
	if long := strings.TrimSpace(spec.Long); long != "" {
		fmt.Fprintf(w, "DESCRIPTION\n%s\n", indent(long))
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for k, line := range lines {
		if line != "" {
			lines[k] = "    " + line
		}
	}
	return strings.Join(lines, "\n")
}
