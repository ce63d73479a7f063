package charm

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootCommand struct {
	verbose bool
	only    string
	ran     []string
}

func (r *rootCommand) SetLeafFlags(f *flag.FlagSet) {
	f.StringVar(&r.only, "only", "", "root-only flag")
}

func (r *rootCommand) Run(args []string) error {
	r.ran = args
	return nil
}

type childCommand struct {
	*rootCommand
	count int
}

func (c *childCommand) Run(args []string) error {
	c.ran = append([]string{"child"}, args...)
	return nil
}

func newTree(root *rootCommand) *Spec {
	spec := &Spec{
		Name:         "tool",
		Usage:        "tool [options] <command>",
		Short:        "a tool",
		Long:         "Tool does things.",
		InternalLeaf: true,
		HiddenFlags:  "secret",
		New: func(_ Command, f *flag.FlagSet) (Command, error) {
			f.BoolVar(&root.verbose, "v", false, "verbose")
			f.String("secret", "", "hidden flag")
			return root, nil
		},
	}
	spec.Add(&Spec{
		Name:  "child",
		Usage: "tool child [-n count]",
		Short: "a child command",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			c := &childCommand{rootCommand: parent.(*rootCommand)}
			f.IntVar(&c.count, "n", 1, "count")
			return c, nil
		},
	})
	return spec
}

func TestExecLeafFlags(t *testing.T) {
	root := &rootCommand{}
	require.NoError(t, newTree(root).Exec([]string{"-v", "-only", "x", "a", "b"}))
	assert.True(t, root.verbose)
	assert.Equal(t, "x", root.only)
	assert.Equal(t, []string{"a", "b"}, root.ran)
}

func TestExecChild(t *testing.T) {
	root := &rootCommand{}
	require.NoError(t, newTree(root).Exec([]string{"-v", "child", "-n", "3", "arg"}))
	assert.True(t, root.verbose)
	assert.Equal(t, []string{"child", "arg"}, root.ran)
}

func TestExecBadFlag(t *testing.T) {
	assert.Error(t, newTree(&rootCommand{}).Exec([]string{"-bogus"}))
}

func TestHelp(t *testing.T) {
	root := &rootCommand{}
	p, err := parseHelp(newTree(root), []string{"child"})
	require.NoError(t, err)
	require.Len(t, p, 2)
	var sb strings.Builder
	writeHelp(&sb, p, false)
	help := sb.String()
	assert.Contains(t, help, "tool child [-n count]")
	assert.Contains(t, help, "-n")

	p, err = parseHelp(newTree(root), nil)
	require.NoError(t, err)
	sb.Reset()
	writeHelp(&sb, p, false)
	help = sb.String()
	assert.Contains(t, help, "child")
	assert.Contains(t, help, "-only")
	assert.NotContains(t, help, "-secret")
	assert.Contains(t, help, "Tool does things.")

	sb.Reset()
	writeHelp(&sb, p, true)
	assert.Contains(t, sb.String(), "-secret")
}

func TestNoRun(t *testing.T) {
	assert.Equal(t, NeedHelp, NoRun(nil))
	assert.Equal(t, ErrNoRun, NoRun([]string{"x"}))
}
