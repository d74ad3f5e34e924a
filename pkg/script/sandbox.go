package script

import (
	"fmt"

	"github.com/dop251/goja"

	jsjerrors "github.com/wehubfusion/jsj/pkg/errors"
)

// sandbox strips host globals from a runtime and freezes builtins.
type sandbox struct {
	securityLevel string
}

func (s sandbox) apply(vm *goja.Runtime) error {
	if err := s.removeDangerousGlobals(vm); err != nil {
		return fmt.Errorf("failed to remove dangerous globals: %w", err)
	}
	if err := s.freezeBuiltins(vm); err != nil {
		return fmt.Errorf("failed to freeze built-ins: %w", err)
	}
	return nil
}

func (s sandbox) removeDangerousGlobals(vm *goja.Runtime) error {
	dangerousGlobals := []string{
		"require",
		"module",
		"exports",
		"process",
		"global",
		"Buffer",
		"setImmediate",
		"clearImmediate",
	}

	for _, name := range dangerousGlobals {
		if err := vm.Set(name, goja.Undefined()); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}

	if s.securityLevel == SecurityLevelStrict {
		restricted := func(call goja.FunctionCall) goja.Value {
			panic(vm.NewGoError(jsjerrors.Script("eval is not allowed in strict security mode")))
		}
		if err := vm.Set("eval", restricted); err != nil {
			return err
		}
	}

	return nil
}

func (s sandbox) freezeBuiltins(vm *goja.Runtime) error {
	if s.securityLevel == SecurityLevelPermissive {
		return nil
	}

	builtins := []string{"Object", "Array", "Function", "String", "Number", "Boolean", "Date", "RegExp", "Error", "Math", "JSON"}

	val, err := vm.RunString(`
		(function(obj) {
			if (obj && (typeof obj === 'object' || typeof obj === 'function')) {
				Object.freeze(obj);
				if (obj.prototype) {
					Object.freeze(obj.prototype);
				}
			}
		})
	`)
	if err != nil {
		return fmt.Errorf("failed to create freeze function: %w", err)
	}

	freezeFn, ok := goja.AssertFunction(val)
	if !ok {
		return fmt.Errorf("freeze function is not a function")
	}

	for _, name := range builtins {
		obj := vm.Get(name)
		if obj == nil || goja.IsUndefined(obj) {
			continue
		}
		// A builtin that cannot be frozen stays usable.
		_, _ = freezeFn(goja.Undefined(), obj)
	}

	return nil
}
