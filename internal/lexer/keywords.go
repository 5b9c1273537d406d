package lexer

// booleanLiterals maps the boolean keyword spellings (ASCII and CJK) to the
// NUMBER token they produce. Bool is a NUMBER at the lexer/parser boundary
// per the spec; the interpreter is what gives it its own value kind.
var booleanLiterals = map[string]bool{
	"true":  true,
	"真":     true,
	"false": false,
	"假":     false,
}

// logicalWordOperators maps the word spellings of and/or/not (ASCII and
// CJK) to the same operator kinds their symbolic spellings (&&, ||, !)
// produce. Recognised while scanning an identifier, not via the operator
// trie, because they look like ordinary names.
var logicalWordOperators = map[string]Kind{
	"and": ANDAND,
	"与":   ANDAND,
	"or":  OROR,
	"或":   OROR,
	"not": BANG,
	"非":   BANG,
}

// wordComparisonOperators maps the CJK comparison-word spellings to the
// same operator kinds their symbolic spellings (==, !=, <, >, <=, >=)
// produce. Every rune making up these words (等, 于, 不, 小, 大) is itself
// a valid identifier character, so scanIdentifier always scans the whole
// word before lookupIdentifier ever sees it. The same holds for
// "与"/"或"/"非" in logicalWordOperators: none of these words reach the
// operator trie.
var wordComparisonOperators = map[string]Kind{
	"等于":   EQEQ,
	"不等于":  NOTEQ,
	"小于":   LESS,
	"大于":   GREATER,
	"小于等于": LESSEQ,
	"大于等于": GREATEREQ,
}

// wordKeywordsByValue lists the reserved words (ASCII and CJK) that the
// lexer leaves as plain NAME tokens: the parser recognises them by their
// literal text, not by a dedicated token kind. Kept here so the set is
// documented in one place even though lookupIdentifier never special-cases
// them.
var wordKeywordsByValue = map[string]bool{
	"if": true, "若": true, "如果": true,
	"elif": true, "又若": true, "又如": true,
	"else": true, "否则": true, "不然": true,
	"del": true, "删除": true,
	"pass": true,
	"exit": true,
}

// lookupIdentifier classifies a scanned identifier: a boolean literal and
// its value, a logical or comparison operator kind, or neither (ordinary NAME, which
// includes the by-value keywords in wordKeywordsByValue).
func lookupIdentifier(ident string) (kind Kind, value any, isSpecial bool) {
	if b, ok := booleanLiterals[ident]; ok {
		return NUMBER, b, true
	}
	if k, ok := logicalWordOperators[ident]; ok {
		return k, nil, true
	}
	if k, ok := wordComparisonOperators[ident]; ok {
		return k, nil, true
	}
	return NAME, nil, false
}

// IsStatementKeyword reports whether literal is one of
// if/elif/else/del/pass/exit (any spelling). Used by the parser, exported so it can live next to the
// table it reads without duplicating the word lists.
func IsStatementKeyword(literal string) bool {
	return wordKeywordsByValue[literal]
}
