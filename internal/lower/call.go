package lower

import (
	"strings"

	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// call lowers a built-in function invocation. Arguments are resolved to
// scope.Items rather than pre-lowered Ops, so the callee's own emission
// body (registered in internal/prelude) decides how each argument is
// realized — this is what lets a single stdout.print implementation
// dispatch differently per argument type.
//
// Method is either already the fully qualified built-in name (e.g. the `!`
// operator desugars straight to "std::ops::Not" with no receiver), or the
// surface `receiver.method` dot form the parser produces for a method call.
// In the latter case the receiver's declared type name supplies the
// qualifier: `stdin.read_exact` resolves against whatever
// "<stdin's type name>::read_exact" is registered as, with the receiver
// prepended to the resolved argument list to match the receiver-first
// signatures internal/prelude declares.
func call(s *scope.Stack, c ast.CallExpr, target Target) ([]ops.Op, error) {
	methodName := c.Method
	var receiver *scope.Item
	argExprs := c.Args

	if dot := strings.IndexByte(c.Method, '.'); dot >= 0 {
		receiverName, method := c.Method[:dot], c.Method[dot+1:]
		items := s.Lookup(receiverName)
		if len(items) == 0 {
			return nil, compileerr.New(compileerr.UnresolvedName, receiverName)
		}
		recv := items[0]
		receiver = &recv
		methodName = s.Types().Name(recv.Type) + "::" + method
	}

	items := s.Lookup(methodName)
	if len(items) == 0 {
		return nil, compileerr.New(compileerr.UnresolvedName, c.Method)
	}

	fn := items[0]
	if fn.Kind != scope.KindBuiltInFunction {
		return nil, compileerr.New(compileerr.InvalidType, c.Method)
	}
	if target.IsArray {
		return nil, compileerr.New(compileerr.MismatchedTypes, c.Method)
	}

	receiverArgs := 0
	if receiver != nil {
		receiverArgs = 1
	}
	args, err := resolveArgs(s, fn, argExprs, receiverArgs)
	if err != nil {
		return nil, err
	}
	if receiver != nil {
		args = append([]scope.Item{*receiver}, args...)
	}
	return fn.Body(s, args, target.Memory)
}

// resolveArgs resolves each call argument expression to a scope.Item,
// pairing positional arguments against the callee's declared signature
// (the final FuncArg, if marked Variadic, absorbs any number of trailing
// arguments). receiverArgs is 1 when the callee's signature has an
// implicit receiver parameter already satisfied outside argExprs, 0
// otherwise.
func resolveArgs(s *scope.Stack, fn scope.Item, argExprs []ast.Expression, receiverArgs int) ([]scope.Item, error) {
	sig := s.Types().Get(fn.Type)
	if sig.Kind != types.KindFunction {
		panic("lower: built-in function has a non-function signature")
	}

	resolved := make([]scope.Item, 0, len(argExprs))
	for _, argExpr := range argExprs {
		item, err := resolveArg(s, argExpr)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, item)
	}

	if n := len(sig.FuncArgs) - receiverArgs; n > 0 && !sig.FuncArgs[len(sig.FuncArgs)-1].Variadic && len(resolved) < n {
		return nil, compileerr.Newf(
			compileerr.UnspecifiedInputSizeUnsupported, "",
			"%s expects %d argument(s), got %d", "call", n, len(resolved),
		)
	}
	return resolved, nil
}

// resolveArg resolves a single argument expression to a scope.Item without
// materializing it into memory; literals pass through as literal Items,
// identifiers pass through as whatever they're already bound to.
func resolveArg(s *scope.Stack, expr ast.Expression) (scope.Item, error) {
	switch {
	case expr.Number != nil:
		return scope.Item{Kind: scope.KindNumericLiteral, Number: *expr.Number}, nil
	case expr.ByteLiteral != nil:
		return scope.Item{Kind: scope.KindByteLiteral, ByteLiteralValue: expr.ByteLiteral}, nil
	case expr.StringLiteral != nil:
		return scope.Item{Kind: scope.KindByteLiteral, ByteLiteralValue: []byte(*expr.StringLiteral)}, nil
	case expr.Identifier != nil:
		items := s.Lookup(*expr.Identifier)
		if len(items) == 0 {
			return scope.Item{}, compileerr.New(compileerr.UnresolvedName, *expr.Identifier)
		}
		return items[0], nil
	default:
		return scope.Item{}, compileerr.New(compileerr.IncorrectSizedExpression, "")
	}
}
