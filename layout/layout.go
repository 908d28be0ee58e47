/*
Package layout implements a declarative binary layout engine. A schema is a
tree of Field values assembled once at program start; a Struct drives one
sequential decode pass turning bytes into an ordered name/value mapping, and
one sequential encode pass turning such a mapping back into bytes. The engine
imposes no wire format of its own: the format is whatever the schema declares,
and for any well formed input, building the mapping a parse produced yields
the original bytes again.

Fields size, select and repeat themselves with parameters that are either
literals or Expressions. An Expression is evaluated against the Context: one
flat mapping created per top level Parse or Build call and threaded by
reference through every nested evaluation. It is never re-scoped per nesting
level, so a deeply nested field can reference a length or tag registered by
any field evaluated earlier in the same pass, including one outside its own
struct. That visibility is deliberate and load bearing for formats where an
outer header sizes inner records.

Schemas are stateless across calls. A Struct may be used from many goroutines
at once as long as each call has its own source or sink; Contexts are created
inside the call and never shared.
*/
package layout

import (
	"fmt"
	"io"

	"github.com/bytefield/binform/value"
)

// Field is one node of a schema: a named (or anonymous) unit that knows how
// to consume bytes and produce a Value, and how to consume a Value and
// produce bytes. Implementations must consume exactly the bytes their
// parameters call for and must not register anything in the Context
// themselves; the engine registers every field's result under its name after
// each successful decode or encode, at every nesting level.
type Field interface {
	// Name returns the field's name. Empty for anonymous fields such as
	// magic constants and padding.
	Name() string

	// Decode reads the field's bytes from r and returns the decoded Value.
	Decode(r io.ReadSeeker, ctx *Context) (value.Value, error)

	// Encode writes the field's bytes for v to w and returns the value the
	// engine should register in the Context, normally the canonical form of
	// what was written.
	Encode(w io.Writer, ctx *Context, v value.Value) (value.Value, error)
}

// Context is the flat per-call mapping every field registers its result in.
// One Context is created at the start of each top level Parse or Build and
// passed by reference into all nested evaluations for the duration of the
// call. Reads of names that were never written fail; writes overwrite
// silently. The empty string is a legal name.
type Context struct {
	m *value.Map
}

// NewContext returns an empty Context. Parse and Build create their own; this
// is exported for driving individual fields in tests and tools.
func NewContext() *Context {
	return &Context{m: value.NewMap()}
}

// Set inserts or overwrites name. It never fails.
func (c *Context) Set(name string, v value.Value) {
	c.m.Set(name, v)
}

// Get returns the value registered under name, failing with a MissingKey
// error if no field has written it yet.
func (c *Context) Get(name string) (value.Value, error) {
	v, ok := c.m.Get(name)
	if !ok {
		return value.Value{}, errf(ErrMissingKey, name, "nothing registered under this name yet")
	}
	return v, nil
}

// Keys returns the registered names in first-write order.
func (c *Context) Keys() []string {
	return c.m.Keys()
}

// View returns the read-only window expressions evaluate against.
func (c *Context) View() View {
	return View{ctx: c}
}

// View is a read-only window onto a Context.
type View struct {
	ctx *Context
}

// Get returns the value registered under name, failing with a MissingKey
// error if absent.
func (v View) Get(name string) (value.Value, error) {
	return v.ctx.Get(name)
}

// Expr is a deferred computation over the Context, used wherever a field
// parameter is not a literal: lengths, repeat counts, discriminant tags and
// conditions. An Expr is evaluated exactly once at the point the owning field
// needs its result, never memoized and never re-evaluated.
type Expr interface {
	Eval(v View) (value.Value, error)
}

// ExprFunc adapts a function to the Expr interface.
type ExprFunc func(v View) (value.Value, error)

// Eval implements Expr.
func (f ExprFunc) Eval(v View) (value.Value, error) {
	return f(v)
}

type litExpr struct {
	v value.Value
}

func (l litExpr) Eval(View) (value.Value, error) {
	return l.v, nil
}

// Lit returns an Expr that always yields n.
func Lit(n int64) Expr {
	return litExpr{v: value.Int64(n)}
}

// LitValue returns an Expr that always yields v.
func LitValue(v value.Value) Expr {
	return litExpr{v: v}
}

type refExpr struct {
	name string
}

func (r refExpr) Eval(v View) (value.Value, error) {
	return v.Get(r.name)
}

// Ref returns an Expr that yields the value registered in the Context under
// name at evaluation time.
func Ref(name string) Expr {
	return refExpr{name: name}
}

// decodeField runs one field's decode and registers the result in the
// Context under the field's name. All delegation in the engine funnels
// through here so the registration contract holds at every nesting level.
func decodeField(f Field, r io.ReadSeeker, ctx *Context) (value.Value, error) {
	v, err := f.Decode(r, ctx)
	if err != nil {
		return value.Value{}, err
	}
	ctx.Set(f.Name(), v)
	return v, nil
}

// encodeField runs one field's encode, registers the written value in the
// Context under the field's name, and returns the registered value.
func encodeField(f Field, w io.Writer, ctx *Context, v value.Value) (value.Value, error) {
	written, err := f.Encode(w, ctx, v)
	if err != nil {
		return value.Value{}, err
	}
	ctx.Set(f.Name(), written)
	return written, nil
}

// evalInt resolves an expression to the signed 64 bit form all integer
// arithmetic uses. Expression failures (such as a MissingKey from Ref)
// propagate unchanged; a result that is not an integer is a BadParam.
func evalInt(e Expr, ctx *Context, field, what string) (int64, error) {
	v, err := e.Eval(ctx.View())
	if err != nil {
		return 0, err
	}
	n, err := v.AsInt64()
	if err != nil {
		return 0, errWrap(ErrBadParam, field, err, "%s expression", what)
	}
	return n, nil
}

// evalSize resolves a length or count expression and rejects negatives.
func evalSize(e Expr, ctx *Context, field, what string) (int, error) {
	n, err := evalInt(e, ctx, field, what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errf(ErrBadParam, field, "%s resolved to %d, cannot be negative", what, n)
	}
	return int(n), nil
}

// evalBool resolves a condition expression.
func evalBool(e Expr, ctx *Context, field string) (bool, error) {
	v, err := e.Eval(ctx.View())
	if err != nil {
		return false, err
	}
	b, err := v.AsBool()
	if err != nil {
		return false, errWrap(ErrBadParam, field, err, "condition expression")
	}
	return b, nil
}

// readFull reads exactly len(b) bytes, failing with a Truncated error on
// shortfall.
func readFull(r io.Reader, b []byte, field string) error {
	n, err := io.ReadFull(r, b)
	if err != nil {
		return errWrap(ErrTruncated, field, err, "need %d bytes, got %d", len(b), n)
	}
	return nil
}

// writeFull writes all of b, treating a short write as an error.
func writeFull(w io.Writer, b []byte, field string) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("field %q: write: %w", field, err)
	}
	return nil
}
