package token

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// objectExprGrammar matches either a bare mesh-object name or a
// region-scoped expression of the form Object[Region].
type objectExprGrammar struct {
	Object string  `parser:"@Ident"`
	Region *string `parser:"( \"[\" @Ident \"]\" )?"`
}

var objectExprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Bracket", Pattern: `[\[\]]`},
})

var objectExprParser = participle.MustBuild[objectExprGrammar](
	participle.Lexer(objectExprLexer),
)

// ParseObjectExpr parses an object expression into an object name and an
// optional region name. The region is empty for bare object names.
// Unmatched or empty brackets are a *ParseError.
func ParseObjectExpr(expr string) (object, region string, err error) {
	if strings.TrimSpace(expr) == "" {
		return "", "", &ParseError{Input: expr, Detail: "empty object expression"}
	}

	parsed, perr := objectExprParser.ParseString("", expr)
	if perr != nil {
		return "", "", &ParseError{Input: expr, Err: perr}
	}

	if parsed.Region != nil {
		region = *parsed.Region
	}
	return parsed.Object, region, nil
}
