// Package calc evaluates arithmetic expressions written in prefix (Polish)
// notation with arbitrary-precision decimals.
//
// Operators precede their operands and tokens are separated by whitespace:
//
//	* 10 + 1.23 4.56    = 10 * (1.23 + 4.56)
//	sqrt / 1 2          = sqrt(1 / 2)
//	round ^ 1.1 10 2    = round(1.1^10, 2)
//
// Binary operators are +, -, *, /, %, ^ and round.
// Unary operators are sqrt, neg and abs.
// The exponent of ^ and the decimal places of round must be integers.
package calc

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/govalues/bigdecimal"
)

// Errors returned by Eval for malformed expressions.
var (
	ErrNoTokens          = errors.New("no tokens")
	ErrNotEnoughOperands = errors.New("not enough operands")
	ErrTooManyOperands   = errors.New("too many operands")
	ErrNotInteger        = errors.New("operand is not an integer")
)

// arity returns the number of operands of an operator, or 0 if the token
// is not an operator.
func arity(token string) int {
	switch token {
	case "+", "-", "*", "/", "%", "^", "round":
		return 2
	case "sqrt", "neg", "abs":
		return 1
	}
	return 0
}

// Evaluator evaluates expressions with a fixed context.
// It is safe for concurrent use.
type Evaluator struct {
	ctx    bigdecimal.Context
	logger *zap.Logger
}

// New returns an evaluator using c for division, powers, square roots and
// rounding.
// A nil logger disables logging.
func New(c bigdecimal.Context, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{ctx: c, logger: logger}
}

// Context returns the arithmetic context of the evaluator.
func (e *Evaluator) Context() bigdecimal.Context {
	return e.ctx
}

// Eval evaluates a single expression.
func (e *Evaluator) Eval(expr string) (bigdecimal.Decimal, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return bigdecimal.Decimal{}, ErrNoTokens
	}

	stack := make([]bigdecimal.Decimal, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		n := arity(token)
		if n == 0 {
			d, err := e.ctx.Parse(token)
			if err != nil {
				return bigdecimal.Decimal{}, fmt.Errorf("processing token %q: %w", token, err)
			}
			stack = append(stack, d)
			continue
		}
		if len(stack) < n {
			return bigdecimal.Decimal{}, fmt.Errorf("processing token %q: %w", token, ErrNotEnoughOperands)
		}

		// The operand closest to the operator is on top
		x := stack[len(stack)-1]
		var y bigdecimal.Decimal
		if n == 2 {
			y = stack[len(stack)-2]
		}
		stack = stack[:len(stack)-n]

		z, err := e.apply(token, x, y)
		if err != nil {
			return bigdecimal.Decimal{}, fmt.Errorf("evaluating %q: %w", token, err)
		}
		stack = append(stack, z)
	}

	if len(stack) != 1 {
		return bigdecimal.Decimal{}, fmt.Errorf("stack contains %v: %w", stack, ErrTooManyOperands)
	}

	e.logger.Debug("evaluated",
		zap.String("expr", expr),
		zap.Stringer("result", stack[0]),
	)
	return stack[0], nil
}

func (e *Evaluator) apply(op string, x, y bigdecimal.Decimal) (bigdecimal.Decimal, error) {
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		return e.ctx.Quo(x, y)
	case "%":
		return e.ctx.Mod(x, y)
	case "^":
		n, err := toInt(y)
		if err != nil {
			return bigdecimal.Decimal{}, err
		}
		return e.ctx.Pow(x, n)
	case "round":
		n, err := toInt(y)
		if err != nil {
			return bigdecimal.Decimal{}, err
		}
		return e.ctx.Round(x, n)
	case "sqrt":
		return e.ctx.Sqrt(x)
	case "neg":
		return x.Neg(), nil
	case "abs":
		return x.Abs(), nil
	}
	return bigdecimal.Decimal{}, fmt.Errorf("unknown operator %q", op)
}

func toInt(d bigdecimal.Decimal) (int, error) {
	if !d.IsInt() {
		return 0, fmt.Errorf("%v: %w", d, ErrNotInteger)
	}
	n, ok := d.Int64()
	if !ok || int64(int(n)) != n {
		return 0, fmt.Errorf("%v: %w", d, bigdecimal.ErrInvalidExponent)
	}
	return int(n), nil
}

// Result is the outcome of evaluating one expression.
type Result struct {
	Expr  string
	Value bigdecimal.Decimal
	Err   error
}

// EvalAll evaluates exprs using at most workers goroutines and returns the
// results in the order of exprs.
// A failed expression is reported in its Result and does not stop the others.
// EvalAll returns an error only if ctx is done before all expressions are
// evaluated.
func (e *Evaluator) EvalAll(ctx context.Context, exprs []string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, expr := range exprs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := e.Eval(expr)
			if err != nil {
				e.logger.Error("expression failed",
					zap.Int("index", i),
					zap.String("expr", expr),
					zap.Error(err),
				)
			}
			results[i] = Result{Expr: expr, Value: d, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluating expressions: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluating expressions: %w", err)
	}
	return results, nil
}
