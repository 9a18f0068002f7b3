package lexer

import (
	"testing"

	"github.com/brio-lang/brio/internal/token"
)

func TestNextTokenCoversTheOperatorSet(t *testing.T) {
	input := `x = 1 + 2 - 3 * 4 / 5 % 6 ** 7
s = "a" ++ "b"
ok = 1 < 2 <= 3 > 4 >= 5 == 6 != 7
t = #blue(1)
p.x
xs::push
(a: Int) => a and b or not c
Color = .Red | .Green
-- a comment line
if y do 1 else 2 end`

	expected := []struct {
		tokenType token.Type
		lexeme    string
	}{
		{token.IDENT, "x"}, {token.ASSIGN, "="}, {token.INT, "1"}, {token.PLUS, "+"},
		{token.INT, "2"}, {token.MINUS, "-"}, {token.INT, "3"}, {token.STAR, "*"},
		{token.INT, "4"}, {token.SLASH, "/"}, {token.INT, "5"}, {token.PERCENT, "%"},
		{token.INT, "6"}, {token.POWER, "**"}, {token.INT, "7"}, {token.NEWLINE, "\n"},
		{token.IDENT, "s"}, {token.ASSIGN, "="}, {token.STRING, `"a"`}, {token.CONCAT, "++"},
		{token.STRING, `"b"`}, {token.NEWLINE, "\n"},
		{token.IDENT, "ok"}, {token.ASSIGN, "="}, {token.INT, "1"}, {token.LT, "<"},
		{token.INT, "2"}, {token.LTE, "<="}, {token.INT, "3"}, {token.GT, ">"},
		{token.INT, "4"}, {token.GTE, ">="}, {token.INT, "5"}, {token.EQ, "=="},
		{token.INT, "6"}, {token.NOT_EQ, "!="}, {token.INT, "7"}, {token.NEWLINE, "\n"},
		{token.IDENT, "t"}, {token.ASSIGN, "="}, {token.TAG, "#blue"}, {token.LPAREN, "("},
		{token.INT, "1"}, {token.RPAREN, ")"}, {token.NEWLINE, "\n"},
		{token.IDENT, "p"}, {token.DOT, "."}, {token.IDENT, "x"}, {token.NEWLINE, "\n"},
		{token.IDENT, "xs"}, {token.DBLCOLON, "::"}, {token.IDENT, "push"}, {token.NEWLINE, "\n"},
		{token.LPAREN, "("}, {token.IDENT, "a"}, {token.COLON, ":"}, {token.TYPE_IDENT, "Int"},
		{token.RPAREN, ")"}, {token.ARROW, "=>"}, {token.IDENT, "a"}, {token.AND, "and"},
		{token.IDENT, "b"}, {token.OR, "or"}, {token.NOT, "not"}, {token.IDENT, "c"},
		{token.NEWLINE, "\n"},
		{token.TYPE_IDENT, "Color"}, {token.ASSIGN, "="}, {token.DOT, "."}, {token.TYPE_IDENT, "Red"},
		{token.PIPE, "|"}, {token.DOT, "."}, {token.TYPE_IDENT, "Green"}, {token.NEWLINE, "\n"},
		{token.NEWLINE, "\n"},
		{token.IF, "if"}, {token.IDENT, "y"}, {token.DO, "do"}, {token.INT, "1"},
		{token.ELSE, "else"}, {token.INT, "2"}, {token.END, "end"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.tokenType {
			t.Fatalf("token %d: type = %s, want %s (lexeme %q)", i, tok.Type, want.tokenType, tok.Lexeme)
		}
		if tok.Lexeme != want.lexeme {
			t.Fatalf("token %d: lexeme = %q, want %q", i, tok.Lexeme, want.lexeme)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\n\t\"\\b"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("type = %s, want STRING", tok.Type)
	}
	if tok.Literal != "a\n\t\"\\b" {
		t.Errorf("literal = %q", tok.Literal)
	}
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", tok.Type)
	}
}

func TestPositionsAreTracked(t *testing.T) {
	l := New("a\n  b")
	first := l.NextToken()
	l.NextToken() // newline
	second := l.NextToken()
	if first.Line != 1 || first.Column != 1 {
		t.Errorf("first token at %d:%d, want 1:1", first.Line, first.Column)
	}
	if second.Line != 2 || second.Column != 3 {
		t.Errorf("second token at %d:%d, want 2:3", second.Line, second.Column)
	}
}

func TestDisregardedIdentifiersLexAsIdent(t *testing.T) {
	l := New("_unused")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "_unused" {
		t.Fatalf("got %s %q", tok.Type, tok.Literal)
	}
}
