package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/mgomes/protoclass/protoclass"
	"github.com/mgomes/protoclass/zoo"
)

// session evaluates REPL statements against one zoo:
//
//	name = Class(args...)
//	name.method(args...)
//	name = [1, "two", other]
//	name.member
//	name
type session struct {
	zoo *zoo.Zoo
	env map[string]protoclass.Value
}

func newSession(cfg protoclass.Config) *session {
	return &session{zoo: zoo.NewWithConfig(cfg), env: make(map[string]protoclass.Value)}
}

func (s *session) reset() {
	s.env = make(map[string]protoclass.Value)
}

func (s *session) eval(input string) (protoclass.Value, error) {
	p := newStmtParser(input)
	target := ""
	if p.tok == scanner.Ident && p.peek() == '=' {
		target = p.text()
		p.next()
		p.next()
	}
	val, err := s.term(p)
	if err != nil {
		return protoclass.NewNil(), err
	}
	if err := p.expect(scanner.EOF); err != nil {
		return protoclass.NewNil(), err
	}
	if target != "" {
		if _, isClass := s.zoo.Class(target); isClass {
			return protoclass.NewNil(), fmt.Errorf("cannot assign to class %s", target)
		}
		s.env[target] = val
	}
	s.env["_"] = val
	return val, nil
}

func (s *session) term(p *stmtParser) (protoclass.Value, error) {
	if p.tok != scanner.Ident {
		return s.operand(p)
	}
	name := p.text()
	p.next()

	switch p.tok {
	case '(':
		class, ok := s.zoo.Class(name)
		if !ok {
			return protoclass.NewNil(), fmt.Errorf("unknown class %s", name)
		}
		args, err := s.args(p)
		if err != nil {
			return protoclass.NewNil(), err
		}
		obj, err := class.Instance(args...)
		if err != nil {
			return protoclass.NewNil(), err
		}
		return obj.Value(), nil
	case '.':
		p.next()
		if p.tok != scanner.Ident {
			return protoclass.NewNil(), p.errorf("expected member name")
		}
		member := p.text()
		p.next()
		obj, err := s.object(name)
		if err != nil {
			return protoclass.NewNil(), err
		}
		if p.tok != '(' {
			val, ok := obj.Get(member)
			if !ok {
				return protoclass.NewNil(), &protoclass.MemberError{Owner: name, Member: member, Err: protoclass.ErrUnknownMember}
			}
			return val, nil
		}
		args, err := s.args(p)
		if err != nil {
			return protoclass.NewNil(), err
		}
		return obj.Call(member, args...)
	default:
		return s.lookup(name)
	}
}

func (s *session) lookup(name string) (protoclass.Value, error) {
	switch name {
	case "true":
		return protoclass.NewBool(true), nil
	case "false":
		return protoclass.NewBool(false), nil
	case "nil":
		return protoclass.NewNil(), nil
	}
	if val, ok := s.env[name]; ok {
		return val, nil
	}
	if _, ok := s.zoo.Class(name); ok {
		return protoclass.NewString(fmt.Sprintf("<Class %s>", name)), nil
	}
	return protoclass.NewNil(), fmt.Errorf("undefined variable %s", name)
}

func (s *session) object(name string) (*protoclass.Object, error) {
	val, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	obj := val.Object()
	if obj == nil {
		return nil, fmt.Errorf("%s is a %s, not an instance", name, val.Kind())
	}
	return obj, nil
}

func (s *session) args(p *stmtParser) ([]protoclass.Value, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	args := []protoclass.Value{}
	if p.tok == ')' {
		p.next()
		return args, nil
	}
	for {
		val, err := s.operand(p)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
		if p.tok == ',' {
			p.next()
			continue
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return args, nil
	}
}

// operand parses an argument: a variable, a literal or an array of operands.
func (s *session) operand(p *stmtParser) (protoclass.Value, error) {
	switch p.tok {
	case scanner.Ident:
		name := p.text()
		p.next()
		return s.lookup(name)
	case '[':
		p.next()
		elems := []protoclass.Value{}
		for p.tok != ']' {
			val, err := s.operand(p)
			if err != nil {
				return protoclass.NewNil(), err
			}
			elems = append(elems, val)
			if p.tok != ',' {
				break
			}
			p.next()
		}
		if err := p.expect(']'); err != nil {
			return protoclass.NewNil(), err
		}
		return protoclass.NewArray(elems), nil
	default:
		return p.literal()
	}
}

type stmtParser struct {
	s       scanner.Scanner
	tok     rune
	lit     string
	scanErr error
}

func newStmtParser(input string) *stmtParser {
	p := &stmtParser{}
	p.s.Init(strings.NewReader(input))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings | scanner.ScanRawStrings
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		if p.scanErr == nil {
			p.scanErr = errors.New(msg)
		}
	}
	p.next()
	return p
}

func (p *stmtParser) next() {
	p.tok = p.s.Scan()
	p.lit = p.s.TokenText()
}

func (p *stmtParser) peek() rune {
	for {
		ch := p.s.Peek()
		if ch != ' ' && ch != '\t' {
			return ch
		}
		p.s.Next()
	}
}

func (p *stmtParser) text() string { return p.lit }

func (p *stmtParser) errorf(format string, args ...any) error {
	if p.scanErr != nil {
		return p.scanErr
	}
	return fmt.Errorf("column %d: %s", p.s.Position.Column, fmt.Sprintf(format, args...))
}

func (p *stmtParser) expect(tok rune) error {
	if p.tok != tok {
		return p.errorf("expected %s, got %s", scanner.TokenString(tok), scanner.TokenString(p.tok))
	}
	p.next()
	return nil
}

func (p *stmtParser) literal() (protoclass.Value, error) {
	negative := false
	if p.tok == '-' {
		negative = true
		p.next()
	}
	lit := p.lit
	var val protoclass.Value
	switch p.tok {
	case scanner.Int:
		n, err := strconv.ParseInt(lit, 0, 64)
		if err != nil {
			return protoclass.NewNil(), p.errorf("invalid int %s", lit)
		}
		if negative {
			n = -n
		}
		val = protoclass.NewInt(n)
	case scanner.Float:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return protoclass.NewNil(), p.errorf("invalid float %s", lit)
		}
		if negative {
			f = -f
		}
		val = protoclass.NewFloat(f)
	case scanner.String, scanner.RawString:
		if negative {
			return protoclass.NewNil(), p.errorf("unexpected - before string")
		}
		str, err := strconv.Unquote(lit)
		if err != nil {
			return protoclass.NewNil(), p.errorf("invalid string %s", lit)
		}
		val = protoclass.NewString(str)
	default:
		return protoclass.NewNil(), p.errorf("unexpected %s", scanner.TokenString(p.tok))
	}
	p.next()
	return val, nil
}
