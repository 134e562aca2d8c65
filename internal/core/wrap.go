package core

import (
	"fmt"
	"reflect"
)

// Wrap returns a function of the same type as the one passed in. On each
// invocation the wrapper activates a stub chain for the path, invokes the
// original, and deactivates in a deferred cleanup - so a panic raised by the
// wrapped function still propagates unchanged to the caller, after the
// registry and ancestor state are fully restored.
//
// Stacking wrappers on one function nests naturally: the outer wrapper
// activates first and deactivates last.
//
// The wrapped function's type (and therefore its call signature) is
// preserved exactly; that is the identity Go lets us keep. A *ConflictError
// during activation is an internal-consistency fault and panics.
func Wrap[T any](function T, registry Registry, path string) (T, error) {
	var zero T

	funcType := reflect.TypeOf(function)
	if funcType == nil || funcType.Kind() != reflect.Func {
		return zero, fmt.Errorf("cannot wrap non-function type %T", function)
	}

	controller, err := NewScopeController(registry, path)
	if err != nil {
		return zero, err
	}

	funcValue := reflect.ValueOf(function)

	relayer := func(args []reflect.Value) []reflect.Value {
		err := controller.Activate()
		if err != nil {
			panic(err)
		}

		defer controller.Deactivate()

		return funcValue.Call(args)
	}

	// Ignore the type assertion lint check - we are depending on MakeFunc to
	// return the correct type, as documented. If it fails to, the only thing
	// we'd do is panic anyway.
	wrapped := reflect.MakeFunc(funcType, relayer).Interface().(T) //nolint:forcetypeassert

	return wrapped, nil
}
