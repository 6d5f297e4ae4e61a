package rpncalc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operators contains the characters which are lexed as operators.
const Operators = "+-*/^"

// DefaultMaxTokens is the default limit on the number of tokens in a line.
const DefaultMaxTokens = 10000

type lexer struct {
	src string
	// off is the byte offset of the next rune in src.
	off int
	// col is the 1-based column of the next rune in src.
	col int
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// peek returns the rune at byte offset off+k without consuming anything. The
// result is utf8.RuneError with size 0 at the end of input.
func (l *lexer) peek(k int) (rune, int) {
	if l.off+k >= len(l.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off+k:])
}

// advance consumes n bytes holding r runes.
func (l *lexer) advance(n, r int) {
	l.off += n
	l.col += r
}

// next scans the next token. At the end of input, the result is the Empty
// sentinel.
func (l *lexer) next() (Token, error) {
	for {
		r, sz := l.peek(0)
		if sz == 0 {
			return Token{Kind: Empty, Pos: l.col}, nil
		}
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			l.advance(sz, 1)
			continue
		case '0' <= r && r <= '9':
			return l.scanNum()
		case unicode.IsLetter(r):
			tok.Kind = Variable
			tok.Name = l.scanIdent()
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.Kind = Operator
			tok.Op = byte(r)
		case r == '=':
			tok.Kind = Equals
		case r == '(':
			tok.Kind = BracketLeft
		case r == ')':
			tok.Kind = BracketRight
		default:
			return tok, &Error{Kind: UndefinedCharacter, Col: l.col, Text: string(r)}
		}
		l.advance(sz, 1)
		return tok, nil
	}
}

// scanNum scans a decimal literal: digits, an optional fraction, and an
// optional exponent. The exponent is only part of the literal if at least one
// digit follows the marker and its sign, so "2e" is the number 2 followed by
// the identifier e.
func (l *lexer) scanNum() (Token, error) {
	tok := Token{Kind: Number, Pos: l.col}
	start := l.off
	l.digits()
	if r, _ := l.peek(0); r == '.' {
		l.advance(1, 1)
		l.digits()
	}
	if r, _ := l.peek(0); r == 'e' || r == 'E' {
		k := 1
		if s, _ := l.peek(1); s == '+' || s == '-' {
			k++
		}
		if d, _ := l.peek(k); '0' <= d && d <= '9' {
			l.advance(k, k)
			l.digits()
		}
	}
	text := l.src[start:l.off]
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Underflow also reports ErrRange, but with a usable rounded result.
		if errors.Is(err, strconv.ErrRange) && math.IsInf(x, 0) {
			return tok, &Error{Kind: NumberTooLarge, Col: tok.Pos, Text: text}
		}
		if !errors.Is(err, strconv.ErrRange) {
			// The scan above only accepts valid syntax.
			panic("rpncalc: invalid number scanned: " + strconv.Quote(text))
		}
	}
	tok.Num = x
	return tok, nil
}

func (l *lexer) digits() {
	for {
		r, _ := l.peek(0)
		if r < '0' || r > '9' {
			return
		}
		l.advance(1, 1)
	}
}

// scanIdent scans the maximal run of letters and digits starting at a letter.
func (l *lexer) scanIdent() string {
	start := l.off
	for {
		r, sz := l.peek(0)
		if sz == 0 || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return l.src[start:l.off]
		}
		l.advance(sz, 1)
	}
}

// Tokenize splits a line into an infix token sequence terminated by one Empty
// token. Whitespace is ignored. limit bounds the number of tokens, excluding the
// sentinel; if limit is not positive, DefaultMaxTokens is used.
func Tokenize(line string, limit int) ([]Token, error) {
	if limit <= 0 {
		limit = DefaultMaxTokens
	}
	scan := lex(line)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == Empty {
			return append(toks, tok), nil
		}
		if len(toks) == limit {
			return nil, &Error{Kind: TooManyTokens, Col: tok.Pos, Text: tok.text()}
		}
		toks = append(toks, tok)
	}
}
