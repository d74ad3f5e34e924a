// Package script runs JavaScript function expressions as then-callbacks, so a
// chain can be written the way it would be in a browser:
//
//	f, err := script.Compile(`v => v.properties.timeZone`)
//	tz, err := script.Then(data, f)
//
// Scripts run on an embedded goja runtime with Node-style globals removed.
package script

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"

	jsjerrors "github.com/wehubfusion/jsj/pkg/errors"
	"github.com/wehubfusion/jsj/pkg/jsonmap"
	"github.com/wehubfusion/jsj/pkg/promise"
	"github.com/wehubfusion/jsj/pkg/value"
)

// Func is a compiled JavaScript function. Calls are serialised because a goja
// runtime is not safe for concurrent use.
type Func struct {
	source  string
	timeout time.Duration

	mu sync.Mutex
	vm *goja.Runtime
	fn goja.Callable
}

// Compile evaluates src, which must be a function expression such as
// "v => v.a.b" or "function (v) { return v.items.length }".
func Compile(src string, opts ...Option) (*Func, error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.ApplyDefaults()

	vm := goja.New()
	if err := (sandbox{securityLevel: cfg.SecurityLevel}).apply(vm); err != nil {
		return nil, jsjerrors.NewError(jsjerrors.CodeScript, "sandbox setup failed", err)
	}

	val, err := vm.RunString("(" + src + "\n)")
	if err != nil {
		return nil, fromGojaError(err)
	}
	fn, ok := goja.AssertFunction(val)
	if !ok {
		return nil, jsjerrors.Script(fmt.Sprintf("expression %q is not a function", src))
	}

	return &Func{
		source:  src,
		timeout: cfg.Timeout,
		vm:      vm,
		fn:      fn,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string, opts ...Option) *Func {
	f, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Source returns the expression f was compiled from.
func (f *Func) Source() string {
	return f.source
}

// Call invokes the function with v. jsonmap wrappers are passed as plain JS
// objects and arrays; the result is exported and wrapped with jsonmap.Wrap.
func (f *Func) Call(v any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timeout > 0 {
		timer := time.AfterFunc(f.timeout, func() {
			f.vm.Interrupt(fmt.Sprintf("execution timeout after %s", f.timeout))
		})
		defer func() {
			timer.Stop()
			f.vm.ClearInterrupt()
		}()
	}

	out, err := f.fn(goja.Undefined(), f.vm.ToValue(value.Unwrap(v)))
	if err != nil {
		return nil, fromGojaError(err)
	}
	if out == nil || goja.IsUndefined(out) || goja.IsNull(out) {
		return nil, nil
	}
	return jsonmap.Wrap(normalizeNumbers(out.Export())), nil
}

// Then applies f to the value held by d.
func Then[T any](d promise.Data[T], f *Func) (promise.Data[any], error) {
	return promise.ThenTry(d, func(v T) (any, error) {
		return f.Call(v)
	})
}

// Eval compiles src and applies it to d in one step.
func Eval[T any](d promise.Data[T], src string, opts ...Option) (promise.Data[any], error) {
	f, err := Compile(src, opts...)
	if err != nil {
		return promise.Data[any]{}, err
	}
	return Then(d, f)
}

// normalizeNumbers rewrites exported JS numbers as float64, the type
// encoding/json decodes every JSON number to. Maps and slices are rewritten
// in place.
func normalizeNumbers(v any) any {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case float32:
		return float64(n)
	case map[string]any:
		for k, item := range n {
			n[k] = normalizeNumbers(item)
		}
		return n
	case []any:
		for i, item := range n {
			n[i] = normalizeNumbers(item)
		}
		return n
	default:
		return v
	}
}

func fromGojaError(err error) error {
	var exc *goja.Exception
	if errors.As(err, &exc) {
		return jsjerrors.Script(exc.Value().String())
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return jsjerrors.Script(fmt.Sprint(interrupted.Value()))
	}
	var syntaxErr *goja.CompilerSyntaxError
	if errors.As(err, &syntaxErr) {
		return jsjerrors.Script(syntaxErr.Error())
	}
	return jsjerrors.NewError(jsjerrors.CodeScript, "script failed", err)
}
