package ast

import (
	"github.com/brio-lang/brio/internal/token"
)

// TypeIdentifier names a declared or builtin type, e.g. Int, Primary.
type TypeIdentifier struct {
	Token token.Token
	Name  string
}

func (ti *TypeIdentifier) typeExpressionNode()  {}
func (ti *TypeIdentifier) TokenLiteral() string { return ti.Token.Lexeme }
func (ti *TypeIdentifier) GetToken() token.Token {
	if ti == nil {
		return token.Token{}
	}
	return ti.Token
}

// ListType is the type of homogeneous lists, e.g. [Int].
type ListType struct {
	Token   token.Token // the '[' token
	Element TypeExpression
}

func (lt *ListType) typeExpressionNode()  {}
func (lt *ListType) TokenLiteral() string { return lt.Token.Lexeme }
func (lt *ListType) GetToken() token.Token {
	if lt == nil {
		return token.Token{}
	}
	return lt.Token
}

// RecordTypeField is one field: type pair of a record type.
type RecordTypeField struct {
	Token token.Token
	Name  string
	Value TypeExpression
}

func (rf *RecordTypeField) GetToken() token.Token {
	if rf == nil {
		return token.Token{}
	}
	return rf.Token
}

// RecordType is an exact record type, e.g. { x: Int, y: Int }.
type RecordType struct {
	Token  token.Token // the '{' token
	Fields []*RecordTypeField
}

func (rt *RecordType) typeExpressionNode()  {}
func (rt *RecordType) TokenLiteral() string { return rt.Token.Lexeme }
func (rt *RecordType) GetToken() token.Token {
	if rt == nil {
		return token.Token{}
	}
	return rt.Token
}

// TagType is one variant of a tag group type, e.g. #some(Int).
type TagType struct {
	Token    token.Token // the TAG token
	Name     string
	Contents []TypeExpression
}

func (tt *TagType) GetToken() token.Token {
	if tt == nil {
		return token.Token{}
	}
	return tt.Token
}

// TagGroupType is a closed structural tag union, e.g. #red | #green | #blue.
type TagGroupType struct {
	Token token.Token
	Tags  []*TagType
}

func (tg *TagGroupType) typeExpressionNode()  {}
func (tg *TagGroupType) TokenLiteral() string { return tg.Token.Lexeme }
func (tg *TagGroupType) GetToken() token.Token {
	if tg == nil {
		return token.Token{}
	}
	return tg.Token
}

// EnumVariantType is one variant of an enum type, e.g. .Rgb(Int, Int, Int).
type EnumVariantType struct {
	Token    token.Token // the '.' token
	Name     string
	Contents []TypeExpression
}

func (ev *EnumVariantType) GetToken() token.Token {
	if ev == nil {
		return token.Token{}
	}
	return ev.Token
}

// EnumType is a nominal variant type, e.g. .Red | .Green | .Rgb(Int).
// Unlike tag groups, enums unify only with themselves: the declared name
// becomes part of the type.
type EnumType struct {
	Token    token.Token
	Variants []*EnumVariantType
}

func (et *EnumType) typeExpressionNode()  {}
func (et *EnumType) TokenLiteral() string { return et.Token.Lexeme }
func (et *EnumType) GetToken() token.Token {
	if et == nil {
		return token.Token{}
	}
	return et.Token
}

// FunctionType is the type of functions, e.g. (Int, Str) => Int.
type FunctionType struct {
	Token     token.Token // the '(' token
	Arguments []TypeExpression
	Return    TypeExpression
}

func (ft *FunctionType) typeExpressionNode()  {}
func (ft *FunctionType) TokenLiteral() string { return ft.Token.Lexeme }
func (ft *FunctionType) GetToken() token.Token {
	if ft == nil {
		return token.Token{}
	}
	return ft.Token
}
