package calc

import (
	"fmt"
	"strings"

	"bigint"
)

// Stmt is one statement of a program: an assignment or a bare
// expression.
type Stmt interface{ stmtNode() }

// AssignStmt stores the value of X under Name.
type AssignStmt struct {
	Off  int
	Name string
	X    Expr
}

// ExprStmt evaluates X for its value.
type ExprStmt struct {
	X Expr
}

func (*AssignStmt) stmtNode() {}
func (*ExprStmt) stmtNode()   {}

// Expr is an expression tree node. Off reports the byte offset used in
// error messages.
type Expr interface{ exprOff() int }

type NumberExpr struct {
	Off   int
	Value bigint.Integer
}

type VarExpr struct {
	Off  int
	Name string
}

type UnaryExpr struct {
	Off int
	Op  Kind
	X   Expr
}

// BinaryExpr applies Op to X and Y. Off points at the operator.
type BinaryExpr struct {
	Off  int
	Op   Kind
	X, Y Expr
}

type CallExpr struct {
	Off  int
	Name string
	Args []Expr
}

func (e *NumberExpr) exprOff() int { return e.Off }
func (e *VarExpr) exprOff() int    { return e.Off }
func (e *UnaryExpr) exprOff() int  { return e.Off }
func (e *BinaryExpr) exprOff() int { return e.Off }
func (e *CallExpr) exprOff() int   { return e.Off }

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precAdditive       = 1 // + -
	precMultiplicative = 2 // * / %
	precPower          = 3 // ^ (правоассоциативно)
)

// binaryPrec возвращает приоритет и ассоциативность оператора
func binaryPrec(kind Kind) (int, bool) {
	switch kind {
	case Plus, Minus:
		return precAdditive, false
	case Star, Slash, Percent:
		return precMultiplicative, false
	case Caret:
		return precPower, true
	default:
		return -1, false // не бинарный оператор
	}
}

// Parse builds a statement list from a scanned token stream.
// Statements are separated by semicolons; empty statements are
// skipped.
func Parse(toks []Token) ([]Stmt, error) {
	p := parser{toks: toks}
	return p.parseProgram()
}

// parser — состояние парсера на один ввод
type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) Token {
	if p.pos+n >= len(p.toks) {
		return Token{Kind: EOF}
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *parser) at(k Kind) bool {
	return p.peek().Kind == k
}

func (p *parser) expect(k Kind) (Token, error) {
	if !p.at(k) {
		tok := p.peek()
		return Token{}, errAt(tok.Off, "expected %s, found %s", k, tok.Kind)
	}
	return p.advance(), nil
}

func (p *parser) parseProgram() ([]Stmt, error) {
	var stmts []Stmt
	for {
		for p.at(Semi) {
			p.advance()
		}
		if p.at(EOF) {
			break
		}
		st, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
		if !p.at(Semi) && !p.at(EOF) {
			tok := p.peek()
			return nil, errAt(tok.Off, "unexpected %s", tok.Kind)
		}
	}
	if len(stmts) == 0 {
		return nil, errAt(0, "empty input")
	}
	return stmts, nil
}

func (p *parser) parseStmt() (Stmt, error) {
	if p.at(Ident) && p.peekAt(1).Kind == Assign {
		name := p.advance()
		p.advance() // '='
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Off: name.Off, Name: name.Text, X: x}, nil
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{X: x}, nil
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseBinaryExpr(0) // минимальный приоритет = 0
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
func (p *parser) parseBinaryExpr(minPrec int) (Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		prec, rightAssoc := binaryPrec(tok.Kind)
		if prec < minPrec {
			break
		}
		opTok := p.advance()
		nextMinPrec := prec + 1
		if rightAssoc {
			nextMinPrec = prec
		}
		right, err := p.parseBinaryExpr(nextMinPrec)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Off: opTok.Off, Op: opTok.Kind, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseUnaryExpr() (Expr, error) {
	if p.at(Plus) || p.at(Minus) {
		op := p.advance()
		// '^' binds tighter than unary minus, so -2^2 is -(2^2)
		x, err := p.parseBinaryExpr(precPower)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Off: op.Off, Op: op.Kind, X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case Number:
		p.advance()
		v, err := literalValue(tok)
		if err != nil {
			return nil, err
		}
		return &NumberExpr{Off: tok.Off, Value: v}, nil
	case Ident:
		p.advance()
		if p.at(LParen) {
			return p.parseCall(tok)
		}
		return &VarExpr{Off: tok.Off, Name: tok.Text}, nil
	case LParen:
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, errAt(tok.Off, "expected expression, found %s", tok.Kind)
	}
}

func (p *parser) parseCall(name Token) (Expr, error) {
	p.advance() // '('
	call := &CallExpr{Off: name.Off, Name: name.Text}
	if p.at(RParen) {
		p.advance()
		return call, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if !p.at(Comma) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(RParen); err != nil {
		return nil, err
	}
	return call, nil
}

// literalValue converts a Number token into an Integer. Prefixed
// literals go through ParseBase, plain decimals with an optional
// exponent through Parse.
func literalValue(tok Token) (bigint.Integer, error) {
	text := strings.ReplaceAll(tok.Text, "_", "")
	var v bigint.Integer
	var err error
	switch {
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		v, err = bigint.ParseBase(text[2:], bigint.FromInt64(16))
	case strings.HasPrefix(text, "0o"), strings.HasPrefix(text, "0O"):
		v, err = bigint.ParseBase(text[2:], bigint.FromInt64(8))
	case strings.HasPrefix(text, "0b"), strings.HasPrefix(text, "0B"):
		v, err = bigint.ParseBase(text[2:], bigint.FromInt64(2))
	default:
		v, err = bigint.Parse(text)
	}
	if err != nil {
		return bigint.Integer{}, &Error{Off: tok.Off, Msg: fmt.Sprintf("malformed number %q", tok.Text), Err: err}
	}
	return v, nil
}
