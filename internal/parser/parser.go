// Package parser turns program source text into the ast.Program shape
// internal/lower expects. It is a minimal hand-written recursive-descent
// parser — there is no parser-combinator or PEG library anywhere in the
// project's dependency stack to reach for instead, so this is stdlib-only
// by necessity, not by preference.
//
// The grammar covers exactly what the compiler's scenarios exercise:
// let-declarations (with optional array-size inference), assignments,
// while loops, if/else and if/else-if/.../else branch expressions,
// receiver.method(...) and bare method(...) calls, and
// string/number/identifier/unit primaries.
// It does not support general parenthesized sub-expressions, operator
// precedence beyond prefix `!`, or Rust-style non-unit block tails: every
// parsed block is given a synthetic trailing unit expression statement so
// it always satisfies internal/lower.Block's non-empty, expression-tailed
// contract, since no scenario this parser serves needs a block to
// produce anything other than unit.
package parser

import "github.com/sunjay/brain-sub000/ast"

// Parse tokenizes and parses a full program.
func Parse(input string) (ast.Program, error) {
	toks, err := lex(input)
	if err != nil {
		return ast.Program{}, err
	}

	p := &parser{toks: toks}
	stmts, err := p.parseStatements(func(t token) bool { return t.kind == tokEOF })
	if err != nil {
		return ast.Program{}, err
	}
	if _, err := p.expect(tokEOF, ""); err != nil {
		return ast.Program{}, err
	}

	return ast.Program{Statements: appendUnitTail(stmts)}, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) checkSymbol(text string) bool {
	return p.peek().is(tokSymbol, text)
}

func (p *parser) checkKeyword(text string) bool {
	return p.peek().is(tokKeyword, text)
}

func (p *parser) expect(kind tokenKind, text string) (token, error) {
	tok := p.peek()
	if tok.kind != kind || (text != "" && tok.text != text) {
		return token{}, syntaxErrorf(tok, "unexpected token %q, expected %q", tok.text, text)
	}
	return p.advance(), nil
}

func (p *parser) expectSymbol(text string) (token, error) {
	return p.expect(tokSymbol, text)
}

// appendUnitTail appends the synthetic trailing unit expression statement
// every parsed block needs — see the package doc comment.
func appendUnitTail(stmts []ast.Statement) []ast.Statement {
	return append(stmts, ast.Statement{
		Expr: &ast.ExpressionStmt{Expr: ast.Expression{UnitLiteral: true}},
	})
}

func (p *parser) parseStatements(until func(token) bool) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !until(p.peek()) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.checkKeyword("let"):
		return p.parseDeclaration()
	case p.checkKeyword("while"):
		return p.parseWhileLoop()
	default:
		return p.parseExprStatement()
	}
}

func (p *parser) parseDeclaration() (ast.Statement, error) {
	p.advance() // let

	nameTok, err := p.expect(tokIdent, "")
	if err != nil {
		return ast.Statement{}, err
	}
	if _, err := p.expectSymbol(":"); err != nil {
		return ast.Statement{}, err
	}
	typeDef, err := p.parseTypeDef()
	if err != nil {
		return ast.Statement{}, err
	}

	var initExpr *ast.Expression
	if p.checkSymbol("=") {
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return ast.Statement{}, err
		}
		initExpr = &e
	}

	if _, err := p.expectSymbol(";"); err != nil {
		return ast.Statement{}, err
	}

	return ast.Statement{Decl: &ast.DeclarationStmt{
		Pattern: ast.Pattern{Identifier: nameTok.text},
		Type:    typeDef,
		Expr:    initExpr,
	}}, nil
}

// parseTypeDef parses `name` or `[ type (; size)? ]`; an array with no
// `; size` clause has its size inferred from its initializer.
func (p *parser) parseTypeDef() (ast.TypeDefinition, error) {
	if p.checkSymbol("[") {
		p.advance()

		item, err := p.parseTypeDef()
		if err != nil {
			return ast.TypeDefinition{}, err
		}

		var size *ast.Expression
		if p.checkSymbol(";") {
			p.advance()
			e, err := p.parseExpression()
			if err != nil {
				return ast.TypeDefinition{}, err
			}
			size = &e
		}

		if _, err := p.expectSymbol("]"); err != nil {
			return ast.TypeDefinition{}, err
		}

		return ast.TypeDefinition{Array: &ast.ArrayTypeDefinition{Item: &item, Size: size}}, nil
	}

	nameTok, err := p.expect(tokIdent, "")
	if err != nil {
		return ast.TypeDefinition{}, err
	}
	name := nameTok.text
	return ast.TypeDefinition{Name: &name}, nil
}

func (p *parser) parseWhileLoop() (ast.Statement, error) {
	p.advance() // while

	cond, err := p.parseExpression()
	if err != nil {
		return ast.Statement{}, err
	}
	if _, err := p.expectSymbol("{"); err != nil {
		return ast.Statement{}, err
	}
	body, err := p.parseStatements(func(t token) bool { return t.is(tokSymbol, "}") })
	if err != nil {
		return ast.Statement{}, err
	}
	if _, err := p.expectSymbol("}"); err != nil {
		return ast.Statement{}, err
	}

	return ast.Statement{While: &ast.WhileLoopStmt{Condition: cond, Body: appendUnitTail(body)}}, nil
}

// parseExprStatement parses an expression used as a statement: either a
// plain `identifier = expr;` assignment, an if/else branch (whose
// trailing `;` is optional, matching how a brace-closed block reads as a
// statement), or any other expression followed by a mandatory `;`.
func (p *parser) parseExprStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return ast.Statement{}, err
	}

	if expr.Identifier != nil && p.checkSymbol("=") {
		p.advance()
		rhs, err := p.parseExpression()
		if err != nil {
			return ast.Statement{}, err
		}
		if _, err := p.expectSymbol(";"); err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{Assign: &ast.AssignmentStmt{LHS: *expr.Identifier, Expr: rhs}}, nil
	}

	if expr.Branch != nil || expr.ConditionGroup != nil {
		if p.checkSymbol(";") {
			p.advance()
		}
	} else if _, err := p.expectSymbol(";"); err != nil {
		return ast.Statement{}, err
	}

	return ast.Statement{Expr: &ast.ExpressionStmt{Expr: expr}}, nil
}

func (p *parser) parseExpression() (ast.Expression, error) {
	tok := p.peek()

	switch {
	case tok.is(tokSymbol, "!"):
		p.advance()
		operand, err := p.parseExpression()
		if err != nil {
			return ast.Expression{}, err
		}
		return ast.Expression{Call: &ast.CallExpr{
			Method: "std::ops::Not",
			Args:   []ast.Expression{operand},
		}}, nil

	case tok.is(tokKeyword, "if"):
		return p.parseBranch()

	default:
		return p.parsePrimary()
	}
}

// parseBranch parses `if cond { ... }`, any number of trailing
// `else if cond { ... }` arms, and an optional final `else { ... }`. A
// plain if/else (no `else if`) produces a BranchExpr; an `else if` chain
// produces a ConditionGroup, matching the distinction spec §6 draws
// between the two node shapes.
func (p *parser) parseBranch() (ast.Expression, error) {
	p.advance() // if

	first, err := p.parseConditionBranch()
	if err != nil {
		return ast.Expression{}, err
	}
	branches := []ast.ConditionBranch{first}

	var otherwise []ast.Statement
	sawElseIf := false

	for p.checkKeyword("else") {
		p.advance()

		if p.checkKeyword("if") {
			sawElseIf = true
			p.advance()
			next, err := p.parseConditionBranch()
			if err != nil {
				return ast.Expression{}, err
			}
			branches = append(branches, next)
			continue
		}

		if _, err := p.expectSymbol("{"); err != nil {
			return ast.Expression{}, err
		}
		elseBody, err := p.parseStatements(func(t token) bool { return t.is(tokSymbol, "}") })
		if err != nil {
			return ast.Expression{}, err
		}
		if _, err := p.expectSymbol("}"); err != nil {
			return ast.Expression{}, err
		}
		otherwise = appendUnitTail(elseBody)
		break
	}

	if sawElseIf {
		return ast.Expression{ConditionGroup: &ast.ConditionGroupExpr{
			Branches: branches,
			Default:  otherwise,
		}}, nil
	}

	return ast.Expression{Branch: &ast.BranchExpr{
		Condition: &branches[0].Condition,
		Body:      branches[0].Body,
		Otherwise: otherwise,
	}}, nil
}

// parseConditionBranch parses a single `cond { ... }` pair shared by the
// leading `if` and any `else if` arms.
func (p *parser) parseConditionBranch() (ast.ConditionBranch, error) {
	cond, err := p.parseExpression()
	if err != nil {
		return ast.ConditionBranch{}, err
	}

	if _, err := p.expectSymbol("{"); err != nil {
		return ast.ConditionBranch{}, err
	}
	body, err := p.parseStatements(func(t token) bool { return t.is(tokSymbol, "}") })
	if err != nil {
		return ast.ConditionBranch{}, err
	}
	if _, err := p.expectSymbol("}"); err != nil {
		return ast.ConditionBranch{}, err
	}

	return ast.ConditionBranch{Condition: cond, Body: appendUnitTail(body)}, nil
}

func (p *parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch {
	case tok.kind == tokString:
		p.advance()
		s := tok.text
		return ast.Expression{StringLiteral: &s}, nil

	case tok.kind == tokNumber:
		p.advance()
		n := tok.number
		return ast.Expression{Number: &n}, nil

	case tok.is(tokSymbol, "("):
		p.advance()
		if _, err := p.expectSymbol(")"); err != nil {
			return ast.Expression{}, err
		}
		return ast.Expression{UnitLiteral: true}, nil

	case tok.kind == tokIdent:
		p.advance()
		name := tok.text

		if p.checkSymbol(".") {
			p.advance()
			methodTok, err := p.expect(tokIdent, "")
			if err != nil {
				return ast.Expression{}, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return ast.Expression{}, err
			}
			return ast.Expression{Call: &ast.CallExpr{
				Method: name + "." + methodTok.text,
				Args:   args,
			}}, nil
		}

		if p.checkSymbol("(") {
			args, err := p.parseArgs()
			if err != nil {
				return ast.Expression{}, err
			}
			return ast.Expression{Call: &ast.CallExpr{Method: name, Args: args}}, nil
		}

		return ast.Expression{Identifier: &name}, nil

	default:
		return ast.Expression{}, syntaxErrorf(tok, "unexpected token %q", tok.text)
	}
}

// parseArgs parses a parenthesized, comma-separated argument list.
func (p *parser) parseArgs() ([]ast.Expression, error) {
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}

	var args []ast.Expression
	if !p.checkSymbol(")") {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.checkSymbol(",") {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return args, nil
}
