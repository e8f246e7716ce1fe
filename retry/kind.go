package retry

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a category of failure a Policy retries on.
type Kind interface {
	Match(err error) bool
	String() string
}

type kindFunc struct {
	name  string
	match func(error) bool
}

func (k kindFunc) Match(err error) bool { return k.match(err) }
func (k kindFunc) String() string       { return k.name }

// KindFunc builds a Kind from a predicate.
func KindFunc(name string, match func(error) bool) Kind {
	return kindFunc{name: name, match: match}
}

// Is matches errors for which errors.Is(err, target) holds.
func Is(target error) Kind {
	return kindFunc{
		name: target.Error(),
		match: func(err error) bool {
			return errors.Is(err, target)
		},
	}
}

// As matches errors that have an E in their chain.
func As[E error]() Kind {
	return kindFunc{
		name: strings.TrimPrefix(fmt.Sprintf("%T", (*E)(nil)), "*"),
		match: func(err error) bool {
			var target E
			return errors.As(err, &target)
		},
	}
}

// AnyError matches every error.
var AnyError Kind = kindFunc{
	name:  "any",
	match: func(err error) bool { return err != nil },
}

func matchAny(kinds []Kind, err error) bool {
	for _, k := range kinds {
		if k.Match(err) {
			return true
		}
	}
	return false
}
