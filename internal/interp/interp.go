// Package interp walks the AST the parser produces, evaluating each node
// against a Context to produce a value.Value, per the dispatch and
// operator-dispatch rules laid out alongside the AST node types.
package interp

import (
	stderrors "errors"
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/errors"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/value"
)

// errExit is the internal control-flow signal ast.Exit raises. It never
// reaches an API caller: evalStatements lets it propagate out of nested
// blocks, and evalProgram catches it and stops evaluating the remaining
// top-level statements.
var errExit = stderrors.New("exit")

// Interpreter walks an AST, tracking nothing of its own beyond the method
// set below; all mutable state lives in the Context passed to Eval.
type Interpreter struct{}

// New builds an Interpreter. There is no configuration: behaviour is
// entirely a function of the AST and the Context threaded through it.
func New() *Interpreter {
	return &Interpreter{}
}

// Eval dispatches on node's concrete type and returns the Value it
// evaluates to, or the *errors.Error raised while doing so.
func (it *Interpreter) Eval(node ast.Node, ctx *Context) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return it.evalProgram(n, ctx)
	case *ast.ExpressionStatement:
		return it.Eval(n.Expr, ctx)
	case *ast.Pass:
		return value.Nil, nil
	case *ast.Exit:
		return nil, errExit
	case *ast.VarDelete:
		return it.evalVarDelete(n, ctx)
	case *ast.Number:
		return evalNumber(n), nil
	case *ast.String:
		return value.NewString(n.Value), nil
	case *ast.Tuple:
		return it.evalTuple(n, ctx)
	case *ast.List:
		return it.evalList(n, ctx)
	case *ast.Dict:
		return it.evalDict(n, ctx)
	case *ast.Slice:
		return it.evalSlice(n, ctx)
	case *ast.VarAccess:
		return it.evalVarAccess(n, ctx)
	case *ast.VarAssign:
		return it.evalVarAssign(n, ctx)
	case *ast.UnaryOp:
		return it.evalUnaryOp(n, ctx)
	case *ast.BinaryOp:
		return it.evalBinaryOp(n, ctx)
	case *ast.GetItem:
		return it.evalGetItem(n, ctx)
	case *ast.SetItem:
		return it.evalSetItem(n, ctx)
	case *ast.GetAttr:
		return it.evalGetAttr(n, ctx)
	case *ast.SetAttr:
		return it.evalSetAttr(n, ctx)
	case *ast.Call:
		return it.evalCall(n, ctx)
	case *ast.If:
		return it.evalIf(n, ctx)
	}
	return nil, it.raise(errors.RuntimeError, fmt.Sprintf("cannot evaluate %T", node), node, ctx)
}

// evalProgram evaluates every top-level statement in order, collecting
// each one's result into a List — the "program evaluates to the
// evaluated statement sequence" half of the core API's contract. An
// ast.Exit statement stops evaluation of the remaining statements without
// surfacing as an error; the statements evaluated before it still
// contribute their results.
func (it *Interpreter) evalProgram(n *ast.Program, ctx *Context) (value.Value, error) {
	results := make([]value.Value, 0, len(n.Statements))
	for _, stmt := range n.Statements {
		v, err := it.Eval(stmt, ctx)
		if err != nil {
			// exit reaches only as far as the top-level statement
			// sequence (there is no function/loop scope to unwind),
			// so it is caught here and nowhere else.
			if stderrors.Is(err, errExit) {
				return value.NewList(results), nil
			}
			return nil, err
		}
		results = append(results, v)
	}
	return value.NewList(results), nil
}

// evalStatements evaluates stmts in order, returning the per-statement
// results. A non-expression statement (Pass, VarDelete, a statement-form
// If) contributes Null. It does not catch ast.Exit's signal: exit must
// propagate past any nested block back up to evalProgram.
func (it *Interpreter) evalStatements(stmts []ast.Statement, ctx *Context) ([]value.Value, error) {
	results := make([]value.Value, 0, len(stmts))
	for _, stmt := range stmts {
		v, err := it.Eval(stmt, ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

func evalNumber(n *ast.Number) value.Value {
	switch v := n.Value.(type) {
	case int64:
		return value.NewInt(v)
	case float64:
		return value.NewFloat(v)
	case bool:
		return value.NewBool(v)
	default:
		return value.Nil
	}
}

func (it *Interpreter) evalTuple(n *ast.Tuple, ctx *Context) (value.Value, error) {
	items, err := it.evalExpressions(n.Items, ctx)
	if err != nil {
		return nil, err
	}
	return value.NewTuple(items), nil
}

func (it *Interpreter) evalList(n *ast.List, ctx *Context) (value.Value, error) {
	items, err := it.evalExpressions(n.Items, ctx)
	if err != nil {
		return nil, err
	}
	return value.NewList(items), nil
}

func (it *Interpreter) evalExpressions(exprs []ast.Expression, ctx *Context) ([]value.Value, error) {
	out := make([]value.Value, len(exprs))
	for i, e := range exprs {
		v, err := it.Eval(e, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (it *Interpreter) evalDict(n *ast.Dict, ctx *Context) (value.Value, error) {
	d := value.NewDict()
	for _, entry := range n.Entries {
		k, err := it.Eval(entry.Key, ctx)
		if err != nil {
			return nil, err
		}
		v, err := it.Eval(entry.Value, ctx)
		if err != nil {
			return nil, err
		}
		if !d.Set(k, v) {
			return nil, it.raise(errors.TypeError, fmt.Sprintf("unhashable type: '%s'", k.Type().Name), entry.Key, ctx)
		}
	}
	return d, nil
}

func (it *Interpreter) evalSlice(n *ast.Slice, ctx *Context) (value.Value, error) {
	evalPart := func(e ast.Expression) (value.Value, error) {
		if e == nil {
			return nil, nil
		}
		return it.Eval(e, ctx)
	}
	start, err := evalPart(n.Start)
	if err != nil {
		return nil, err
	}
	stop, err := evalPart(n.Stop)
	if err != nil {
		return nil, err
	}
	step, err := evalPart(n.Step)
	if err != nil {
		return nil, err
	}
	return value.NewSlice(start, stop, step), nil
}

func (it *Interpreter) evalVarAccess(n *ast.VarAccess, ctx *Context) (value.Value, error) {
	v, ok := ctx.Symbols.Get(n.Name)
	if !ok {
		return nil, it.raise(errors.NameError, fmt.Sprintf("name '%s' is not defined", n.Name), n, ctx)
	}
	return v, nil
}

func (it *Interpreter) evalVarAssign(n *ast.VarAssign, ctx *Context) (value.Value, error) {
	v, err := it.Eval(n.Value, ctx)
	if err != nil {
		return nil, err
	}
	ctx.Symbols.Set(n.Name, v)
	return v, nil
}

func (it *Interpreter) evalVarDelete(n *ast.VarDelete, ctx *Context) (value.Value, error) {
	for _, name := range n.Names {
		if !ctx.Symbols.Remove(name) {
			return nil, it.raise(errors.NameError, fmt.Sprintf("name '%s' is not defined", name), n, ctx)
		}
	}
	return value.Nil, nil
}

// evalUnaryOp dispatches `!`/`not`/`非` as truthiness negation (it has no
// home in value.UnaryOperand, since it applies to every Value kind rather
// than a numeric capability) and falls through to value.UnaryOperand for
// the arithmetic/bitwise spellings.
func (it *Interpreter) evalUnaryOp(n *ast.UnaryOp, ctx *Context) (value.Value, error) {
	operand, err := it.Eval(n.Operand, ctx)
	if err != nil {
		return nil, err
	}

	if n.OpKind == lexer.BANG {
		return value.NewBool(!operand.Truthy()), nil
	}

	uo, ok := operand.(value.UnaryOperand)
	if !ok {
		return nil, it.raiseUnaryTypeError(n.OpKind, operand, n, ctx)
	}
	result, handled, opErr := uo.UnaryOp(n.OpKind)
	if opErr != nil {
		return nil, it.raise(errors.OperationError, opErr.Error(), n, ctx)
	}
	if !handled {
		return nil, it.raiseUnaryTypeError(n.OpKind, operand, n, ctx)
	}
	return result, nil
}

func (it *Interpreter) raiseUnaryTypeError(op lexer.Kind, operand value.Value, node ast.Node, ctx *Context) error {
	return it.raise(errors.TypeError, fmt.Sprintf("bad operand type for unary %s: '%s'", operatorSymbol(op), operand.Type().Name), node, ctx)
}

// evalBinaryOp implements the dispatch-then-reflect-then-TypeError
// protocol, with &&/|| short-circuiting before either operand is
// dispatched through value.BinaryOperand at all.
func (it *Interpreter) evalBinaryOp(n *ast.BinaryOp, ctx *Context) (value.Value, error) {
	if n.OpKind == lexer.ANDAND || n.OpKind == lexer.OROR {
		return it.evalShortCircuit(n, ctx)
	}

	left, err := it.Eval(n.Left, ctx)
	if err != nil {
		return nil, err
	}
	right, err := it.Eval(n.Right, ctx)
	if err != nil {
		return nil, err
	}

	// == and != never raise TypeError, even between kinds that implement
	// no BinaryOp at all (e.g. two Types, or a BuiltinFunction and an
	// Int): cross-type comparison defaults to inequality unconditionally.
	if n.OpKind == lexer.EQEQ {
		return value.NewBool(value.Equal(left, right)), nil
	}
	if n.OpKind == lexer.NOTEQ {
		return value.NewBool(!value.Equal(left, right)), nil
	}

	if result, handled, opErr := dispatchBinary(n.OpKind, left, right); handled {
		if opErr != nil {
			return nil, it.raise(errors.OperationError, opErr.Error(), n, ctx)
		}
		return result, nil
	}
	if result, handled, opErr := dispatchBinary(n.OpKind, right, left); handled {
		if opErr != nil {
			return nil, it.raise(errors.OperationError, opErr.Error(), n, ctx)
		}
		return result, nil
	}

	return nil, it.raise(errors.TypeError, fmt.Sprintf("unsupported operand type(s) for '%s': '%s' and '%s'",
		operatorSymbol(n.OpKind), left.Type().Name, right.Type().Name), n, ctx)
}

// dispatchBinary looks up a's BinaryOp capability and tries op(a, b). ok
// is false when a cannot handle op at all (not implementing
// value.BinaryOperand, or reporting it does not handle this particular
// op/operand-type combination).
func dispatchBinary(op lexer.Kind, a, b value.Value) (result value.Value, ok bool, err error) {
	bo, implements := a.(value.BinaryOperand)
	if !implements {
		return nil, false, nil
	}
	return bo.BinaryOp(op, b)
}

func (it *Interpreter) evalShortCircuit(n *ast.BinaryOp, ctx *Context) (value.Value, error) {
	left, err := it.Eval(n.Left, ctx)
	if err != nil {
		return nil, err
	}
	if n.OpKind == lexer.ANDAND && !left.Truthy() {
		return left, nil
	}
	if n.OpKind == lexer.OROR && left.Truthy() {
		return left, nil
	}
	return it.Eval(n.Right, ctx)
}

// evalGetItem implements subscription: String/List/Tuple/Dict indexing,
// translating the value package's sentinel errors into the TypeError/
// IndexError/KeyError the spec names for each container.
func (it *Interpreter) evalGetItem(n *ast.GetItem, ctx *Context) (value.Value, error) {
	obj, err := it.Eval(n.Object, ctx)
	if err != nil {
		return nil, err
	}
	key, err := it.Eval(n.Key, ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := obj.(value.Indexable)
	if !ok {
		return nil, it.raise(errors.TypeError, fmt.Sprintf("'%s' object is not subscriptable", obj.Type().Name), n, ctx)
	}
	result, gerr := idx.GetItem(key)
	if gerr == nil {
		return result, nil
	}
	return nil, it.classifySubscriptError(gerr, obj, key, n, ctx)
}

func (it *Interpreter) evalSetItem(n *ast.SetItem, ctx *Context) (value.Value, error) {
	obj, err := it.Eval(n.Object, ctx)
	if err != nil {
		return nil, err
	}
	key, err := it.Eval(n.Key, ctx)
	if err != nil {
		return nil, err
	}
	val, err := it.Eval(n.Value, ctx)
	if err != nil {
		return nil, err
	}

	mi, ok := obj.(value.MutableIndexable)
	if !ok {
		return nil, it.raise(errors.TypeError, fmt.Sprintf("'%s' object does not support item assignment", obj.Type().Name), n, ctx)
	}
	if serr := mi.SetItem(key, val); serr != nil {
		return nil, it.classifySubscriptError(serr, obj, key, n, ctx)
	}
	return val, nil
}

func (it *Interpreter) classifySubscriptError(err error, obj, key value.Value, node ast.Node, ctx *Context) error {
	switch {
	case stderrors.Is(err, value.ErrIndexOutOfRange):
		return it.raise(errors.IndexError, fmt.Sprintf("%s index out of range", obj.Type().Name), node, ctx)
	case stderrors.Is(err, value.ErrKeyNotFound):
		return it.raise(errors.KeyError, key.Repr(), node, ctx)
	case stderrors.Is(err, value.ErrBadIndexType):
		if _, isString := obj.(*value.String); isString {
			return it.raise(errors.TypeError, "string indices must be integers or slices", node, ctx)
		}
		if _, isDict := obj.(*value.Dict); isDict {
			return it.raise(errors.TypeError, fmt.Sprintf("unhashable type: '%s'", key.Type().Name), node, ctx)
		}
		return it.raise(errors.TypeError, fmt.Sprintf("%s indices must be integers or slices", obj.Type().Name), node, ctx)
	default:
		return it.raise(errors.OperationError, err.Error(), node, ctx)
	}
}

// evalGetAttr and evalSetAttr always raise AttributeError: the value
// lattice has no instance-settable attributes (see internal/interp/builtins
// getattr, which has the same behaviour for the builtin form of lookup).
func (it *Interpreter) evalGetAttr(n *ast.GetAttr, ctx *Context) (value.Value, error) {
	obj, err := it.Eval(n.Object, ctx)
	if err != nil {
		return nil, err
	}
	return nil, it.raise(errors.AttributeError, fmt.Sprintf("'%s' object has no attribute '%s'", obj.Type().Name, n.Name), n, ctx)
}

func (it *Interpreter) evalSetAttr(n *ast.SetAttr, ctx *Context) (value.Value, error) {
	obj, err := it.Eval(n.Object, ctx)
	if err != nil {
		return nil, err
	}
	return nil, it.raise(errors.AttributeError, fmt.Sprintf("'%s' object has no attribute '%s'", obj.Type().Name, n.Name), n, ctx)
}

// evalCall implements the Call protocol: the callee must expose
// value.Callable, positional arguments evaluate into a tuple, keyword
// arguments into a map. Native (non-*errors.Error) failures from a
// builtin are rewrapped as RuntimeError naming the callee.
func (it *Interpreter) evalCall(n *ast.Call, ctx *Context) (value.Value, error) {
	callee, err := it.Eval(n.Callee, ctx)
	if err != nil {
		return nil, err
	}
	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, it.raise(errors.TypeError, fmt.Sprintf("'%s' object is not callable", callee.Type().Name), n, ctx)
	}

	args, err := it.evalExpressions(n.Args.Items, ctx)
	if err != nil {
		return nil, err
	}
	kwargs := make(map[string]value.Value, len(n.Kwargs.Entries))
	for _, entry := range n.Kwargs.Entries {
		v, err := it.Eval(entry.Value, ctx)
		if err != nil {
			return nil, err
		}
		kwargs[entry.Key.(*ast.String).Value] = v
	}

	result, callErr := callable.Call(args, kwargs)
	if callErr == nil {
		return result, nil
	}
	if lumenErr, ok := callErr.(*errors.Error); ok {
		return nil, it.attachFrames(lumenErr, ctx, n.PosStart())
	}
	return nil, it.raise(errors.RuntimeError, fmt.Sprintf("%s: %s", calleeName(callee), callErr.Error()), n, ctx)
}

func calleeName(callee value.Value) string {
	if bf, ok := callee.(*value.BuiltinFunction); ok {
		return bf.Name
	}
	return callee.Repr()
}

// evalIf implements ordered case trial and the expression/statement
// return-value split.
func (it *Interpreter) evalIf(n *ast.If, ctx *Context) (value.Value, error) {
	for _, c := range n.Cases {
		cond, err := it.Eval(c.Condition, ctx)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return it.evalIfBody(c.Body, n.IsExpression, ctx)
		}
	}
	if n.Else != nil {
		return it.evalIfBody(n.Else, n.IsExpression, ctx)
	}
	return value.Nil, nil
}

func (it *Interpreter) evalIfBody(body []ast.Statement, isExpression bool, ctx *Context) (value.Value, error) {
	results, err := it.evalStatements(body, ctx)
	if err != nil {
		return nil, err
	}
	if !isExpression {
		return value.Nil, nil
	}
	if len(results) == 0 {
		return value.Nil, nil
	}
	return results[len(results)-1], nil
}

// raise builds a runtime *errors.Error positioned at node and stamped
// with ctx's traceback chain.
func (it *Interpreter) raise(kind errors.Kind, message string, node ast.Node, ctx *Context) error {
	e := errors.New(kind, message, node.PosStart(), node.PosEnd())
	return it.attachFrames(e, ctx, node.PosStart())
}

// attachFrames walks ctx's parent chain building a traceback, oldest
// frame first, per spec.md §6's rendering rule.
func (it *Interpreter) attachFrames(e *errors.Error, ctx *Context, pos lexer.Position) *errors.Error {
	type link struct {
		name string
		pos  lexer.Position
	}
	var chain []link
	curPos := pos
	for c := ctx; c != nil; c = c.Parent {
		chain = append(chain, link{name: c.DisplayName, pos: curPos})
		curPos = c.ParentCallPos
	}
	for i := len(chain) - 1; i >= 0; i-- {
		e = e.WithFrame(errors.Frame{DisplayName: chain[i].name, Pos: chain[i].pos})
	}
	return e
}
