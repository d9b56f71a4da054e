package parser

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokSymbol // one of `{ } ( ) [ ] ; : = , . !`
	tokKeyword
)

var keywords = map[string]bool{
	"let":   true,
	"if":    true,
	"else":  true,
	"while": true,
}

type token struct {
	kind   tokenKind
	text   string
	number int32
	line   int
	col    int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}
