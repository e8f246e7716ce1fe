package call

import "slices"

// KV is a single named argument.
type KV struct {
	Key   string
	Value any
}

// Args holds the arguments of one invocation.
// Values are held by reference; nothing is deep-copied.
type Args struct {
	Pos   []any
	named []KV
}

// Pos builds Args from positional values.
func Pos(vals ...any) Args {
	return Args{Pos: vals}
}

// Kw returns a copy of a with the named argument key set to val.
// An existing key keeps its position and takes the new value.
func (a Args) Kw(key string, val any) Args {
	named := make([]KV, len(a.named), len(a.named)+1)
	copy(named, a.named)
	for i := range named {
		if named[i].Key == key {
			named[i].Value = val
			return Args{Pos: a.Pos, named: named}
		}
	}
	return Args{Pos: a.Pos, named: append(named, KV{Key: key, Value: val})}
}

// Named returns the named arguments in insertion order.
func (a Args) Named() []KV {
	out := make([]KV, len(a.named))
	copy(out, a.named)
	return out
}

// Lookup returns the named argument key.
func (a Args) Lookup(key string) (any, bool) {
	for _, kv := range a.named {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Len returns the total number of arguments.
func (a Args) Len() int {
	return len(a.Pos) + len(a.named)
}

func (a Args) clone() Args {
	return Args{Pos: slices.Clone(a.Pos), named: slices.Clone(a.named)}
}
