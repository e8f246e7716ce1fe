package call

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Record is one observed invocation. It is never mutated after creation:
// it owns its argument sequences, while the values in them are shared.
type Record struct {
	Name string
	args Args
}

// NewRecord captures an invocation of the function named name.
func NewRecord(name string, args Args) Record {
	return Record{Name: name, args: args.clone()}
}

// Args returns the recorded arguments. Changing the returned sequences
// does not change the record.
func (r Record) Args() Args {
	return r.args.clone()
}

// String renders the record as name(pos1, pos2, key=val).
// String values are quoted; everything else uses its default format.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteByte('(')

	first := true
	sep := func() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
	}
	for _, v := range r.args.Pos {
		sep()
		sb.WriteString(renderValue(v))
	}
	for _, kv := range r.args.named {
		sep()
		sb.WriteString(kv.Key)
		sb.WriteByte('=')
		sb.WriteString(renderValue(kv.Value))
	}

	sb.WriteByte(')')
	return sb.String()
}

// Fingerprint hashes the rendering; records that render alike share it.
func (r Record) Fingerprint() uint64 {
	return xxhash.Sum64String(r.String())
}

func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	return fmt.Sprintf("%v", v)
}
