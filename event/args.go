package event

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

var (
	ErrUnexpectedArgType = errors.New("unexpected argument type")
	ErrNotEnoughArgs     = errors.New("not enough arguments")
	ErrMissingNamedArg   = errors.New("missing named argument")
)

// Args is a dynamic argument list for events whose handlers accept varying positional and named arguments.
// It's most useful with a [HandlerCollection] that holds events with different shapes under one argument type.
// Statically shaped events should prefer a struct for A instead.
//
// Handlers receive the same Args value that was passed to Invoke.
type Args struct {
	Positional []any
	Named      map[string]any
}

// NewArgs creates [Args] with the given positional arguments.
func NewArgs(positional ...any) Args {
	return Args{Positional: positional}
}

// With returns a copy of a with the named argument set.
// The receiver's map is not changed, so an Args value already passed to an invocation is never altered.
func (a Args) With(name string, val any) Args {
	named := make(map[string]any, len(a.Named)+1)
	maps.Copy(named, a.Named)
	named[name] = val
	a.Named = named
	return a
}

// Arg returns the positional argument at pos, or nil if there is no such argument.
func (a Args) Arg(pos int) any {
	if pos < 0 || pos >= len(a.Positional) {
		return nil
	}
	return a.Positional[pos]
}

// Lookup returns a named argument, and whether it was present.
func (a Args) Lookup(name string) (any, bool) {
	val, ok := a.Named[name]
	return val, ok
}

// ArgCheck validates a single argument value.
// The label names the argument in error messages, like "argument 0" or "argument 'count'".
type ArgCheck func(label string, val any) error

// All combines checks into one [ArgCheck] that fails with the first failing check.
func All(checks ...ArgCheck) ArgCheck {
	return func(label string, val any) error {
		for _, check := range checks {
			if err := check(label, val); err != nil {
				return err
			}
		}
		return nil
	}
}

// OneOf passes if any of the checks pass.
// When all of them fail, their errors are joined.
func OneOf(checks ...ArgCheck) ArgCheck {
	return func(label string, val any) error {
		errs := make([]error, 0, len(checks))
		for _, check := range checks {
			err := check(label, val)
			if err == nil {
				return nil
			}
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	}
}

// Is checks that an argument holds a T.
func Is[T any]() ArgCheck {
	return func(label string, val any) error {
		if _, ok := val.(T); ok {
			return nil
		}
		return fmt.Errorf("%w: %s is %T, want %s", ErrUnexpectedArgType, label, val, reflect.TypeFor[T]())
	}
}

// Present checks that an argument is not nil.
func Present(label string, val any) error {
	if val == nil {
		return fmt.Errorf("%w: %s is nil", ErrUnexpectedArgType, label)
	}
	return nil
}

// Into checks that an argument is a non-nil T, and stores it in target.
// Into panics if target is nil.
func Into[T any](target *T) ArgCheck {
	if target == nil {
		panic("nil target for argument")
	}
	return func(label string, val any) error {
		if err := Present(label, val); err != nil {
			return err
		}
		v, ok := val.(T)
		if !ok {
			return Is[T]()(label, val)
		}
		*target = v
		return nil
	}
}

// Maybe applies check only to a non-nil argument.
func Maybe(check ArgCheck) ArgCheck {
	return func(label string, val any) error {
		if val == nil {
			return nil
		}
		return check(label, val)
	}
}

type namedCheck struct {
	name     string
	check    ArgCheck
	required bool
}

// ArgSchema describes the [Args] an event expects.
// It's built with [Expect], and is applied either directly with [ArgSchema.Validate] or to every invocation of a handler with [Checked].
type ArgSchema struct {
	minArgs    int
	positional []ArgCheck
	named      []namedCheck
}

// Expect creates an [ArgSchema] requiring at least minArgs positional arguments.
// The check at index 0 applies to positional argument 0, and so on. A nil check skips its argument.
// Extra arguments without a check are not an error.
func Expect(minArgs int, positional ...ArgCheck) ArgSchema {
	return ArgSchema{minArgs: minArgs, positional: positional}
}

// Named returns a copy of the schema that requires the named argument, and applies check to it if check is not nil.
func (s ArgSchema) Named(name string, check ArgCheck) ArgSchema {
	return s.withNamed(namedCheck{name: name, check: check, required: true})
}

// OptionalNamed returns a copy of the schema that applies check to the named argument only when it's present.
func (s ArgSchema) OptionalNamed(name string, check ArgCheck) ArgSchema {
	return s.withNamed(namedCheck{name: name, check: check})
}

func (s ArgSchema) withNamed(nc namedCheck) ArgSchema {
	s.named = append(slices.Clip(s.named), nc)
	return s
}

// Validate applies the schema to args, joining every failure.
// If there are too few positional arguments, then no check is run.
func (s ArgSchema) Validate(args Args) error {
	if len(args.Positional) < s.minArgs {
		return fmt.Errorf("%w: want at least %d, got %d", ErrNotEnoughArgs, s.minArgs, len(args.Positional))
	}
	var errs []error
	for i, check := range s.positional {
		if i >= len(args.Positional) {
			break
		}
		if check == nil {
			continue
		}
		if err := check(fmt.Sprintf("argument %d", i), args.Positional[i]); err != nil {
			errs = append(errs, err)
		}
	}
	for _, nc := range s.named {
		val, ok := args.Named[nc.name]
		switch {
		case !ok && nc.required:
			errs = append(errs, fmt.Errorf("%w: '%s'", ErrMissingNamedArg, nc.name))
		case ok && nc.check != nil:
			if err := nc.check(fmt.Sprintf("argument '%s'", nc.name), val); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Checked creates a handler that validates [Args] with schema before calling fn.
// A validation failure is returned from the handler without calling fn, which stops the invocation like any other handler error.
func Checked(schema ArgSchema, fn func(args Args) error) *Handler[Args] {
	if fn == nil {
		panic("nil handler function")
	}
	return Func(func(args Args) error {
		if err := schema.Validate(args); err != nil {
			return err
		}
		return fn(args)
	})
}
