package environment

import (
	"strings"

	"github.com/loop-lang/loop/lang/value"
)

// DeclareFunction registers name in this scope's function table with the
// given signature and body. Duplicate declarations overwrite (spec.md §4.7
// "Declaration").
func (e *Environment) DeclareFunction(name string, sig value.Signature, body value.Evaluable) error {
	e.functions.Put(name, &funcDecl{sig: sig, body: body})
	return nil
}

// LookupFunction walks the scope chain for a function declaration.
func (e *Environment) LookupFunction(name string) (value.Signature, value.Evaluable, bool) {
	for env := e; env != nil; env = env.parent {
		if fd, ok := env.functions.Get(name); ok {
			return fd.sig, fd.body, true
		}
	}
	return value.Signature{}, nil, false
}

// CallFunction implements the full call procedure of spec.md §4.7: resolve
// each argument to a parameter name (named, sole positional, or prefix-name
// resolution for multiple positional parameters), build a child scope
// binding references by alias and values by declare_assign, type-check, and
// evaluate the body. A ReturnSignal raised by `ret` inside the body is
// intercepted here and turned into a normal return value.
func (e *Environment) CallFunction(name string, args []value.Arg) (value.Value, error) {
	sig, body, ok := e.LookupFunction(name)
	if !ok {
		return nil, &value.FunctionNotFoundError{Name: name}
	}

	bound := make(map[string]value.Arg, len(args))
	var positional []value.Arg
	for _, a := range args {
		if a.Name != "" {
			if _, dup := bound[a.Name]; dup {
				return nil, &value.InvalidFunctionCallError{Reason: "duplicate named argument " + a.Name}
			}
			bound[a.Name] = a
		} else {
			positional = append(positional, a)
		}
	}

	if len(positional) > 0 {
		switch {
		case len(sig.Params) == 1:
			bound[sig.Params[0].Name] = positional[0]
			positional = positional[1:]
		default:
			for _, a := range positional {
				pname, err := resolvePositionalParam(sig, a)
				if err != nil {
					return nil, err
				}
				bound[pname] = a
			}
			positional = nil
		}
	}
	if len(positional) > 0 {
		return nil, &value.InvalidFunctionCallError{Reason: "too many positional arguments for " + name}
	}

	child := e.NewChild().(*Environment)
	defer child.Free()

	for _, p := range sig.Params {
		a, ok := bound[p.Name]
		if !ok {
			return nil, &value.VariableNotFoundError{Name: p.Name}
		}
		if a.Ref != nil {
			if err := child.BindReference(p.Name, *a.Ref, p.Type, true); err != nil {
				return nil, err
			}
			v, ok := child.heap.get(a.Ref.Slot)
			if !ok {
				return nil, &value.NoVariableAtHeapIndexError{Index: a.Ref.Slot}
			}
			if err := checkType(p.Name, p.Type, v); err != nil {
				return nil, err
			}
			continue
		}
		if err := child.DeclareAssign(p.Name, a.Val, false, &p.Type); err != nil {
			return nil, err
		}
	}

	v, err := body.Eval(child)
	if err != nil {
		if ret, ok := err.(value.ReturnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	if sig.Return != nil {
		if err := checkType(name, *sig.Return, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// resolvePositionalParam implements spec.md §4.7 step 2's "prefix-name
// resolution": among the function's parameter names, find the unique one
// that is a prefix of the referenced variable's name. This policy is
// flagged in spec.md §9 as surprising and fragile, kept here exactly as
// specified rather than redesigned.
func resolvePositionalParam(sig value.Signature, a value.Arg) (string, error) {
	refName := a.VarName
	if refName == "" && a.Ref != nil {
		refName = a.Ref.Name
	}
	if refName == "" {
		if len(sig.Params) == 1 {
			return sig.Params[0].Name, nil
		}
		return "", &value.InvalidFunctionCallError{Reason: "cannot resolve positional argument without a variable name"}
	}
	var match string
	count := 0
	for _, p := range sig.Params {
		if strings.HasPrefix(refName, p.Name) {
			match = p.Name
			count++
		}
	}
	if count != 1 {
		return "", &value.InvalidFunctionCallError{Reason: "ambiguous or absent prefix-name resolution for " + refName}
	}
	return match, nil
}
