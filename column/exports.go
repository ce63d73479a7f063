package column

// Exports records the column headers that have been sent on one connection
// so that later blocks with the same schema need not resend them.  A column
// whose type changes under the same name is exported again.  A nil *Exports
// records nothing, so every flush writes its header.
type Exports struct {
	headers map[string]string
}

func NewExports() *Exports {
	return &Exports{headers: make(map[string]string)}
}

func (e *Exports) Exported(name, typ string) bool {
	if e == nil {
		return false
	}
	t, ok := e.headers[name]
	return ok && t == typ
}

func (e *Exports) mark(name, typ string) {
	if e != nil {
		e.headers[name] = typ
	}
}

// Len returns the number of column names with an exported header.
func (e *Exports) Len() int {
	if e == nil {
		return 0
	}
	return len(e.headers)
}

// Reset forgets every exported header, as is needed when the connection is
// replaced.
func (e *Exports) Reset() {
	if e != nil {
		clear(e.headers)
	}
}
