package native

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/golang-lru/arc/v2"
)

const DefaultCacheSize = 1024

type UnknownTypeError struct {
	Name string
}

func (u *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %q", u.Name)
}

type TypeSyntaxError struct {
	Input  string
	Reason string
}

func (t *TypeSyntaxError) Error() string {
	return fmt.Sprintf("bad type name %q: %s", t.Input, t.Reason)
}

// A Registry parses type names into Types.  The primitive types are fixed
// at init time and parsed composite types are remembered in an ARC cache
// keyed by the input text, so a Registry may be shared by any number of
// goroutines.
type Registry struct {
	cache *arc.ARCCache[string, Type]
}

func NewRegistry() *Registry {
	return NewRegistryWithCacheSize(DefaultCacheSize)
}

func NewRegistryWithCacheSize(size int) *Registry {
	cache, err := arc.NewARC[string, Type](size)
	if err != nil {
		panic(err)
	}
	return &Registry{cache: cache}
}

var defaultRegistry = NewRegistry()

// Parse parses name with the process-wide Registry.
func Parse(name string) (Type, error) {
	return defaultRegistry.Parse(name)
}

func MustParse(name string) Type {
	typ, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return typ
}

func (r *Registry) Parse(name string) (Type, error) {
	if typ := LookupPrimitive(name); typ != nil {
		return typ, nil
	}
	if typ, ok := r.cache.Get(name); ok {
		return typ, nil
	}
	typ, err := r.parse(name, name)
	if err != nil {
		return nil, err
	}
	r.cache.Add(name, typ)
	return typ, nil
}

func (r *Registry) MustParse(name string) Type {
	typ, err := r.Parse(name)
	if err != nil {
		panic(err)
	}
	return typ
}

func (r *Registry) parse(input, text string) (Type, error) {
	head, args, hasArgs, err := splitTypeName(input, strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	if !hasArgs {
		if typ := LookupPrimitive(head); typ != nil {
			return typ, nil
		}
		switch head {
		case "Array", "Nullable", "Tuple", "FixedString":
			return nil, &TypeSyntaxError{input, head + " requires arguments"}
		}
		return nil, &UnknownTypeError{head}
	}
	switch head {
	case "FixedString":
		return parseFixedString(input, args)
	case "Array", "Nullable":
		if len(args) != 1 {
			return nil, &TypeSyntaxError{input, fmt.Sprintf("%s takes one argument but got %d", head, len(args))}
		}
		inner, err := r.parse(input, args[0])
		if err != nil {
			return nil, err
		}
		if head == "Array" {
			return NewTypeArray(inner), nil
		}
		if inner.Kind() != PrimitiveKind {
			return nil, &TypeSyntaxError{input, "nested type " + inner.Name() + " cannot be inside Nullable"}
		}
		return NewTypeNullable(inner), nil
	case "Tuple":
		types := make([]Type, 0, len(args))
		for _, arg := range args {
			typ, err := r.parse(input, arg)
			if err != nil {
				return nil, err
			}
			types = append(types, typ)
		}
		return NewTypeTuple(types), nil
	}
	if LookupPrimitive(head) != nil {
		return nil, &TypeSyntaxError{input, head + " takes no arguments"}
	}
	return nil, &UnknownTypeError{head}
}

func parseFixedString(input string, args []string) (Type, error) {
	if len(args) != 1 {
		return nil, &TypeSyntaxError{input, fmt.Sprintf("FixedString takes one argument but got %d", len(args))}
	}
	size, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || size < 1 {
		return nil, &TypeSyntaxError{input, fmt.Sprintf("FixedString size %q is not a positive integer", args[0])}
	}
	return &TypeFixedString{Size: size}, nil
}

// splitTypeName splits text of the form "Head(arg1, arg2, ...)" into its
// head and its top-level arguments.  Commas inside nested parentheses do not
// split.  hasArgs is false when text has no parenthesized list.
func splitTypeName(input, text string) (string, []string, bool, error) {
	open := strings.IndexByte(text, '(')
	if open < 0 {
		if text == "" {
			return "", nil, false, &TypeSyntaxError{input, "empty type name"}
		}
		if strings.ContainsRune(text, ')') {
			return "", nil, false, &TypeSyntaxError{input, "unbalanced parentheses"}
		}
		return text, nil, false, nil
	}
	head := strings.TrimSpace(text[:open])
	if head == "" {
		return "", nil, false, &TypeSyntaxError{input, "missing type name before '('"}
	}
	if !strings.HasSuffix(text, ")") {
		return "", nil, false, &TypeSyntaxError{input, "unbalanced parentheses"}
	}
	inner := text[open+1 : len(text)-1]
	var args []string
	depth, start := 0, 0
	for k := 0; k < len(inner); k++ {
		switch inner[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", nil, false, &TypeSyntaxError{input, "unbalanced parentheses"}
			}
		case ',':
			if depth == 0 {
				args = append(args, inner[start:k])
				start = k + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, false, &TypeSyntaxError{input, "unbalanced parentheses"}
	}
	last := inner[start:]
	if len(args) == 0 && strings.TrimSpace(last) == "" {
		return head, nil, true, nil
	}
	args = append(args, last)
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return "", nil, false, &TypeSyntaxError{input, "empty type argument"}
		}
	}
	return head, args, true, nil
}
