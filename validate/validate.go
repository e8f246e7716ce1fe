// Package validate checks the arguments and results of a function against
// a declared schema.
//
// The schema is an explicit value handed over at wrap time:
//
//	v, err := validate.New(validate.Schema{
//	    Params: []validate.Param{{Name: "name", Type: validate.String}},
//	    Return: validate.String,
//	})
//	greet := v.Wrap(call.Named("get_greeting_string", greetFn))
//
// Arguments are checked before the function runs and the result after it
// returns. A mismatch is reported as an *Error matching ErrValidation.
package validate

import (
	"context"
	"fmt"

	"github.com/on-the-ground/gecko/call"
)

// Param declares the type of one parameter.
type Param struct {
	Name string
	Type Type
}

// Schema declares parameter types in declaration order and the result type.
type Schema struct {
	Params []Param
	Return Type
}

// Undeclared decides what happens to arguments or results the schema has no type for.
type Undeclared int

const (
	// Reject fails with an *UndeclaredError.
	Reject Undeclared = iota
	// Skip leaves them unchecked.
	Skip
)

func (u Undeclared) String() string {
	switch u {
	case Reject:
		return "reject"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Undeclared(%d)", int(u))
	}
}

// ParseUndeclared parses "reject" or "skip".
func ParseUndeclared(s string) (Undeclared, error) {
	switch s {
	case "reject", "":
		return Reject, nil
	case "skip":
		return Skip, nil
	default:
		return Reject, fmt.Errorf("unknown undeclared mode %q", s)
	}
}

type config struct {
	undeclared Undeclared
}

// Option configures a Validator.
type Option func(*config)

// WithUndeclared sets how undeclared arguments and results are treated. Defaults to Reject.
func WithUndeclared(u Undeclared) Option {
	return func(c *config) {
		c.undeclared = u
	}
}

// Validator checks calls against a Schema.
type Validator struct {
	params []Param
	byName map[string]Type
	ret    Type
	cfg    config
}

// New checks schema and builds a Validator for it.
func New(schema Schema, opts ...Option) (*Validator, error) {
	cfg := config{undeclared: Reject}
	for _, opt := range opts {
		opt(&cfg)
	}

	byName := make(map[string]Type, len(schema.Params))
	for i, p := range schema.Params {
		if p.Type == nil {
			return nil, fmt.Errorf("%w: parameter %d (%q) has no type", ErrInvalidSchema, i, p.Name)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate parameter %q", ErrInvalidSchema, p.Name)
		}
		byName[p.Name] = p.Type
	}
	if schema.Return == nil && cfg.undeclared == Reject {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidSchema, ErrUndeclared, ReturnParam)
	}

	return &Validator{
		params: append([]Param(nil), schema.Params...),
		byName: byName,
		ret:    schema.Return,
		cfg:    cfg,
	}, nil
}

// Wrap is New followed by Validator.Wrap.
func Wrap(fn call.Fn, schema Schema, opts ...Option) (call.Fn, error) {
	v, err := New(schema, opts...)
	if err != nil {
		return call.Fn{}, err
	}
	return v.Wrap(fn), nil
}

// Wrap returns fn with its arguments and result checked.
// Errors returned by fn itself pass through untouched.
func (v *Validator) Wrap(fn call.Fn) call.Fn {
	return fn.Replace(func(ctx context.Context, args call.Args) (any, error) {
		if err := v.CheckArgs(args); err != nil {
			return nil, err
		}
		res, err := fn.Call(ctx, args)
		if err != nil {
			return res, err
		}
		if err := v.CheckReturn(res); err != nil {
			return nil, err
		}
		return res, nil
	})
}

// Decorator is Wrap in call.Decorator form.
func (v *Validator) Decorator() call.Decorator {
	return v.Wrap
}

// CheckArgs validates positional arguments against the parameters in declaration
// order, and named arguments by name. The first failure is returned.
// With Reject, a declared parameter supplied neither way is a *MissingError.
func (v *Validator) CheckArgs(args call.Args) error {
	for i, val := range args.Pos {
		if i >= len(v.params) {
			if err := v.undeclared(fmt.Sprintf("positional #%d", i)); err != nil {
				return err
			}
			continue
		}
		if p := v.params[i]; !p.Type.Accepts(val) {
			return &Error{Param: p.Name, Value: val, Expected: p.Type}
		}
	}

	for _, kv := range args.Named() {
		typ, ok := v.byName[kv.Key]
		if !ok {
			if err := v.undeclared(kv.Key); err != nil {
				return err
			}
			continue
		}
		if !typ.Accepts(kv.Value) {
			return &Error{Param: kv.Key, Value: kv.Value, Expected: typ}
		}
	}

	if v.cfg.undeclared == Skip {
		return nil
	}
	for _, p := range v.params[min(len(args.Pos), len(v.params)):] {
		if _, ok := args.Lookup(p.Name); !ok {
			return &MissingError{Param: p.Name}
		}
	}
	return nil
}

// CheckReturn validates a result against the declared return type.
func (v *Validator) CheckReturn(res any) error {
	if v.ret == nil {
		// only reachable with Skip
		return nil
	}
	if !v.ret.Accepts(res) {
		return &Error{Param: ReturnParam, Value: res, Expected: v.ret}
	}
	return nil
}

func (v *Validator) undeclared(param string) error {
	if v.cfg.undeclared == Skip {
		return nil
	}
	return &UndeclaredError{Param: param}
}
