package ast

import (
	"github.com/brio-lang/brio/internal/token"
)

// BinaryOperatorSymbol identifies which binary operator to apply.
type BinaryOperatorSymbol string

const (
	Add                  BinaryOperatorSymbol = "+"
	Subtract             BinaryOperatorSymbol = "-"
	Multiply             BinaryOperatorSymbol = "*"
	Divide               BinaryOperatorSymbol = "/"
	Modulus              BinaryOperatorSymbol = "%"
	Power                BinaryOperatorSymbol = "**"
	Concatenate          BinaryOperatorSymbol = "++"
	And                  BinaryOperatorSymbol = "and"
	Or                   BinaryOperatorSymbol = "or"
	EqualTo              BinaryOperatorSymbol = "=="
	NotEqualTo           BinaryOperatorSymbol = "!="
	LessThan             BinaryOperatorSymbol = "<"
	LessThanOrEqualTo    BinaryOperatorSymbol = "<="
	GreaterThan          BinaryOperatorSymbol = ">"
	GreaterThanOrEqualTo BinaryOperatorSymbol = ">="
	FunctionApplication  BinaryOperatorSymbol = "()"
	MethodLookup         BinaryOperatorSymbol = "::"
	FieldLookup          BinaryOperatorSymbol = "."
)

// UnaryOperatorSymbol identifies which unary operator to apply.
type UnaryOperatorSymbol string

const (
	Not      UnaryOperatorSymbol = "not"
	Negative UnaryOperatorSymbol = "-"
)

// BinaryOperator applies Symbol to its two children. Function application,
// field lookup, and method lookup are binary operators too: application's
// right child is a FunctionApplicationArguments node, and the lookups' right
// child is an Identifier naming the field or method.
type BinaryOperator struct {
	Token  token.Token // the operator token
	Symbol BinaryOperatorSymbol
	Left   Expression
	Right  Expression
}

func (bo *BinaryOperator) expressionNode()      {}
func (bo *BinaryOperator) TokenLiteral() string { return bo.Token.Lexeme }
func (bo *BinaryOperator) GetToken() token.Token {
	if bo == nil {
		return token.Token{}
	}
	return bo.Token
}

// UnaryOperator applies Symbol to its single child.
type UnaryOperator struct {
	Token  token.Token
	Symbol UnaryOperatorSymbol
	Child  Expression
}

func (uo *UnaryOperator) expressionNode()      {}
func (uo *UnaryOperator) TokenLiteral() string { return uo.Token.Lexeme }
func (uo *UnaryOperator) GetToken() token.Token {
	if uo == nil {
		return token.Token{}
	}
	return uo.Token
}

// Identifier represents a value identifier. Identifiers beginning with an
// underscore are disregarded.
type Identifier struct {
	Token         token.Token
	Name          string
	IsDisregarded bool
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// IntegerLiteral represents an integer literal. Negative numbers are spelled
// with the '-' unary operator.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// StringLiteral represents a string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

// TagLiteral represents a tag with optional contents, e.g. #some(3).
type TagLiteral struct {
	Token    token.Token // the TAG token
	Name     string
	Contents []Expression
}

func (tl *TagLiteral) expressionNode()      {}
func (tl *TagLiteral) TokenLiteral() string { return tl.Token.Lexeme }
func (tl *TagLiteral) GetToken() token.Token {
	if tl == nil {
		return token.Token{}
	}
	return tl.Token
}

// EnumLiteral represents a variant of a declared enum, e.g. Color.Red(255).
type EnumLiteral struct {
	Token    token.Token // the TYPE_IDENT token
	TypeName string
	Variant  string
	Contents []Expression
}

func (el *EnumLiteral) expressionNode()      {}
func (el *EnumLiteral) TokenLiteral() string { return el.Token.Lexeme }
func (el *EnumLiteral) GetToken() token.Token {
	if el == nil {
		return token.Token{}
	}
	return el.Token
}

// ListLiteral represents a list, e.g. [1, 2, 3].
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token {
	if ll == nil {
		return token.Token{}
	}
	return ll.Token
}

// RecordField is one field: value pair of a record literal or assignment.
type RecordField struct {
	Token token.Token // the field identifier token
	Name  string
	Value Expression
}

func (rf *RecordField) GetToken() token.Token {
	if rf == nil {
		return token.Token{}
	}
	return rf.Token
}

// RecordLiteral represents a record, e.g. { x: 1, y: 2 }.
type RecordLiteral struct {
	Token  token.Token // the '{' token
	Fields []*RecordField
}

func (rl *RecordLiteral) expressionNode()      {}
func (rl *RecordLiteral) TokenLiteral() string { return rl.Token.Lexeme }
func (rl *RecordLiteral) GetToken() token.Token {
	if rl == nil {
		return token.Token{}
	}
	return rl.Token
}

// RecordAssignment produces a copy of a named record with some fields
// replaced, e.g. { point | x: 5 }. The named record must already contain
// every assigned field.
type RecordAssignment struct {
	Token      token.Token // the '{' token
	Identifier *Identifier
	Fields     []*RecordField
}

func (ra *RecordAssignment) expressionNode()      {}
func (ra *RecordAssignment) TokenLiteral() string { return ra.Token.Lexeme }
func (ra *RecordAssignment) GetToken() token.Token {
	if ra == nil {
		return token.Token{}
	}
	return ra.Token
}

// Block is a sequence of expressions evaluating to its last element.
// do a; b end
type Block struct {
	Token    token.Token // the 'do' token
	Contents []Expression
}

func (b *Block) expressionNode()      {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// If is a conditional expression. Alternative may be nil; an if without an
// else is optional-valued.
type If struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence Expression
	Alternative Expression // optional
}

func (i *If) expressionNode()      {}
func (i *If) TokenLiteral() string { return i.Token.Lexeme }
func (i *If) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// FunctionArgument is one declared argument of a function literal.
type FunctionArgument struct {
	Token        token.Token // the argument identifier token
	Name         *Identifier
	ArgumentType TypeExpression // optional
}

func (fa *FunctionArgument) GetToken() token.Token {
	if fa == nil {
		return token.Token{}
	}
	return fa.Token
}

// Function is a function literal, e.g. (a, b: Int) => a + b.
type Function struct {
	Token     token.Token // the '(' token
	Arguments []*FunctionArgument
	Body      Expression
}

func (f *Function) expressionNode()      {}
func (f *Function) TokenLiteral() string { return f.Token.Lexeme }
func (f *Function) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// FunctionApplicationArguments is the right child of a FunctionApplication
// binary operator. It is not a standalone expression; translating it outside
// an application is an error.
type FunctionApplicationArguments struct {
	Token     token.Token // the '(' token
	Arguments []Expression
}

func (fa *FunctionApplicationArguments) expressionNode()      {}
func (fa *FunctionApplicationArguments) TokenLiteral() string { return fa.Token.Lexeme }
func (fa *FunctionApplicationArguments) GetToken() token.Token {
	if fa == nil {
		return token.Token{}
	}
	return fa.Token
}
