package calc

import (
	"errors"
	"fmt"
	"sort"

	"bigint"
)

// Env holds evaluator state: user variables and the value of the most
// recent statement, reachable as _.
type Env struct {
	vars     map[string]bigint.Integer
	last     bigint.Integer
	haveLast bool
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]bigint.Integer)}
}

// Eval scans, parses, and evaluates input in one call and returns the
// value of its last statement.
func (e *Env) Eval(input string) (bigint.Integer, error) {
	toks, err := Scan(input)
	if err != nil {
		return bigint.Integer{}, err
	}
	prog, err := Parse(toks)
	if err != nil {
		return bigint.Integer{}, err
	}
	return e.Run(prog)
}

// Run evaluates a parsed program. Every statement updates _, and the
// value of the last one is returned.
func (e *Env) Run(prog []Stmt) (bigint.Integer, error) {
	var out bigint.Integer
	for _, st := range prog {
		v, err := e.evalStmt(st)
		if err != nil {
			return bigint.Integer{}, err
		}
		e.last, e.haveLast = v, true
		out = v
	}
	return out, nil
}

// Get reads a variable. It does not resolve _.
func (e *Env) Get(name string) (bigint.Integer, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set stores a variable, rejecting names the evaluator reserves.
func (e *Env) Set(name string, v bigint.Integer) error {
	if name == "_" {
		return errors.New(`cannot assign to "_"`)
	}
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("cannot assign to builtin %q", name)
	}
	e.vars[name] = v
	return nil
}

// Names returns the defined variable names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Last returns the most recent result, if any statement has run.
func (e *Env) Last() (bigint.Integer, bool) {
	return e.last, e.haveLast
}

// SetLast seeds the _ value, used when restoring a saved session.
func (e *Env) SetLast(v bigint.Integer) {
	e.last, e.haveLast = v, true
}

func (e *Env) evalStmt(st Stmt) (bigint.Integer, error) {
	switch st := st.(type) {
	case *AssignStmt:
		v, err := e.evalExpr(st.X)
		if err != nil {
			return bigint.Integer{}, err
		}
		if err := e.Set(st.Name, v); err != nil {
			return bigint.Integer{}, &Error{Off: st.Off, Msg: err.Error()}
		}
		return v, nil
	case *ExprStmt:
		return e.evalExpr(st.X)
	default:
		return bigint.Integer{}, fmt.Errorf("calc: unknown statement %T", st)
	}
}

func (e *Env) evalExpr(x Expr) (bigint.Integer, error) {
	switch x := x.(type) {
	case *NumberExpr:
		return x.Value, nil
	case *VarExpr:
		return e.lookup(x)
	case *UnaryExpr:
		v, err := e.evalExpr(x.X)
		if err != nil {
			return bigint.Integer{}, err
		}
		if x.Op == Minus {
			return v.Neg(), nil
		}
		return v, nil
	case *BinaryExpr:
		return e.evalBinary(x)
	case *CallExpr:
		return e.evalCall(x)
	default:
		return bigint.Integer{}, fmt.Errorf("calc: unknown expression %T", x)
	}
}

func (e *Env) lookup(x *VarExpr) (bigint.Integer, error) {
	if x.Name == "_" {
		if !e.haveLast {
			return bigint.Integer{}, errAt(x.Off, "no previous result")
		}
		return e.last, nil
	}
	if v, ok := e.vars[x.Name]; ok {
		return v, nil
	}
	if _, ok := builtins[x.Name]; ok {
		return bigint.Integer{}, errAt(x.Off, "%s is a function, call it with arguments", x.Name)
	}
	return bigint.Integer{}, errAt(x.Off, "unknown variable %q", x.Name)
}

func (e *Env) evalBinary(x *BinaryExpr) (bigint.Integer, error) {
	a, err := e.evalExpr(x.X)
	if err != nil {
		return bigint.Integer{}, err
	}
	b, err := e.evalExpr(x.Y)
	if err != nil {
		return bigint.Integer{}, err
	}
	var v bigint.Integer
	switch x.Op {
	case Plus:
		return a.Add(b), nil
	case Minus:
		return a.Sub(b), nil
	case Star:
		return a.Mul(b), nil
	case Slash:
		v, err = a.Div(b)
	case Percent:
		v, err = a.Mod(b)
	case Caret:
		v, err = a.Pow(b)
	default:
		return bigint.Integer{}, errAt(x.Off, "unknown operator %s", x.Op)
	}
	if err != nil {
		return bigint.Integer{}, &Error{Off: x.Off, Err: err}
	}
	return v, nil
}

func (e *Env) evalCall(x *CallExpr) (bigint.Integer, error) {
	fn, ok := builtins[x.Name]
	if !ok {
		return bigint.Integer{}, errAt(x.Off, "unknown function %q", x.Name)
	}
	if len(x.Args) < fn.minArgs || (fn.maxArgs >= 0 && len(x.Args) > fn.maxArgs) {
		return bigint.Integer{}, errAt(x.Off, "%s expects %s, got %d", x.Name, arityText(fn), len(x.Args))
	}
	args := make([]bigint.Integer, len(x.Args))
	for i, argExpr := range x.Args {
		v, err := e.evalExpr(argExpr)
		if err != nil {
			return bigint.Integer{}, err
		}
		args[i] = v
	}
	v, err := fn.apply(args)
	if err != nil {
		return bigint.Integer{}, &Error{Off: x.Off, Msg: x.Name, Err: err}
	}
	return v, nil
}

func arityText(fn builtin) string {
	switch {
	case fn.maxArgs < 0:
		return fmt.Sprintf("at least %d arguments", fn.minArgs)
	case fn.minArgs == 1 && fn.maxArgs == 1:
		return "1 argument"
	case fn.minArgs == fn.maxArgs:
		return fmt.Sprintf("%d arguments", fn.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", fn.minArgs, fn.maxArgs)
	}
}

// builtin describes one callable function. maxArgs of -1 means
// variadic.
type builtin struct {
	minArgs int
	maxArgs int
	apply   func(args []bigint.Integer) (bigint.Integer, error)
}

var builtins = map[string]builtin{
	"abs":     {1, 1, applyAbs},
	"sign":    {1, 1, applySign},
	"bitlen":  {1, 1, applyBitLen},
	"not":     {1, 1, applyNot},
	"isprime": {1, 1, applyIsPrime},
	"gcd":     {2, 2, applyGcd},
	"lcm":     {2, 2, applyLcm},
	"pow":     {2, 2, applyPow},
	"modpow":  {3, 3, applyModPow},
	"modinv":  {2, 2, applyModInv},
	"min":     {2, -1, applyMin},
	"max":     {2, -1, applyMax},
	"and":     {2, 2, applyAnd},
	"or":      {2, 2, applyOr},
	"xor":     {2, 2, applyXor},
	"shl":     {2, 2, applyShl},
	"shr":     {2, 2, applyShr},
	"rand":    {2, 2, applyRand},
}

// Builtins returns the callable function names in sorted order.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applyAbs(a []bigint.Integer) (bigint.Integer, error) { return a[0].Abs(), nil }

func applySign(a []bigint.Integer) (bigint.Integer, error) {
	return bigint.FromInt64(int64(a[0].Sign())), nil
}

func applyBitLen(a []bigint.Integer) (bigint.Integer, error) {
	return bigint.FromInt64(int64(a[0].BitLength())), nil
}

func applyNot(a []bigint.Integer) (bigint.Integer, error) { return a[0].Not(), nil }

func applyIsPrime(a []bigint.Integer) (bigint.Integer, error) {
	if a[0].IsPrime() {
		return bigint.One(), nil
	}
	return bigint.Zero(), nil
}

func applyGcd(a []bigint.Integer) (bigint.Integer, error) { return bigint.Gcd(a[0], a[1]), nil }

func applyLcm(a []bigint.Integer) (bigint.Integer, error) { return bigint.Lcm(a[0], a[1]), nil }

func applyPow(a []bigint.Integer) (bigint.Integer, error) { return a[0].Pow(a[1]) }

func applyModPow(a []bigint.Integer) (bigint.Integer, error) { return a[0].ModPow(a[1], a[2]) }

func applyModInv(a []bigint.Integer) (bigint.Integer, error) { return a[0].ModInv(a[1]) }

func applyMin(a []bigint.Integer) (bigint.Integer, error) {
	out := a[0]
	for _, v := range a[1:] {
		out = bigint.Min(out, v)
	}
	return out, nil
}

func applyMax(a []bigint.Integer) (bigint.Integer, error) {
	out := a[0]
	for _, v := range a[1:] {
		out = bigint.Max(out, v)
	}
	return out, nil
}

func applyAnd(a []bigint.Integer) (bigint.Integer, error) { return a[0].And(a[1]), nil }

func applyOr(a []bigint.Integer) (bigint.Integer, error) { return a[0].Or(a[1]), nil }

func applyXor(a []bigint.Integer) (bigint.Integer, error) { return a[0].Xor(a[1]), nil }

func applyShl(a []bigint.Integer) (bigint.Integer, error) {
	n, ok := a[1].Int64()
	if !ok {
		return bigint.Integer{}, fmt.Errorf("%w: %s", bigint.ErrShiftOutOfRange, a[1])
	}
	return a[0].ShiftLeft(n)
}

func applyShr(a []bigint.Integer) (bigint.Integer, error) {
	n, ok := a[1].Int64()
	if !ok {
		return bigint.Integer{}, fmt.Errorf("%w: %s", bigint.ErrShiftOutOfRange, a[1])
	}
	return a[0].ShiftRight(n)
}

func applyRand(a []bigint.Integer) (bigint.Integer, error) {
	return bigint.RandBetween(a[0], a[1]), nil
}
