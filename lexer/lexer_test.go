package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokensOf(src string) []Token {
	lex := NewLexer(src)
	var toks []Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func TestOperators(t *testing.T) {
	toks := tokensOf("+ - * / % == != < <= > >= && || ! = ..")
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		PLUS, MINUS, STAR, SLASH, PERCENT,
		EQ, NE, LT, LE, GT, GE, AND, OR, NOT, ASSIGN, RANGE_OP, EOF,
	}, types)
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	toks := tokensOf("let fn return if else while for in true false foo")
	expected := []TokenType{LET, FN, RETURN, IF, ELSE, WHILE, FOR, IN, TRUE, FALSE, IDENT, EOF}
	for i, tok := range toks {
		assert.Equal(t, expected[i], tok.Type)
	}
}

func TestNumbers(t *testing.T) {
	toks := tokensOf("42 3.14 0")
	assert.Equal(t, INT, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, FLOAT, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal)
	assert.Equal(t, INT, toks[2].Type)
}

func TestStringLiteralNoEscaping(t *testing.T) {
	toks := tokensOf(`"hi\nthere"`)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, `hi\nthere`, toks[0].Literal)
}

func TestLineColumnTracking(t *testing.T) {
	lex := NewLexer("let x\n= 1")
	tok := lex.NextToken() // let
	assert.Equal(t, 1, tok.Line)
	tok = lex.NextToken() // x
	assert.Equal(t, 1, tok.Line)
	tok = lex.NextToken() // =
	assert.Equal(t, 2, tok.Line)
}

func TestArrayAndIndexTokens(t *testing.T) {
	toks := tokensOf("a[0]")
	expected := []TokenType{IDENT, LBRACKET, INT, RBRACKET, EOF}
	for i, tok := range toks {
		assert.Equal(t, expected[i], tok.Type)
	}
}
