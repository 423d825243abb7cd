package token

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/vk/simscene/internal/model"
)

// moleculeGrammar matches a species name with an optional one-character
// orientation suffix appended with no separator.
// Examples: "A", "A'", "B,", "C;"
type moleculeGrammar struct {
	Name   string  `parser:"@Ident"`
	Suffix *string `parser:"@Orient?"`
}

// moleculeLexer tokenizes molecule references. The three orientation
// characters are not valid identifier characters, so the split between
// name and suffix is unambiguous.
var moleculeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Orient", Pattern: `[',;]`},
})

var moleculeParser = participle.MustBuild[moleculeGrammar](
	participle.Lexer(moleculeLexer),
)

// ParseMolecule parses a single reactant/product mention into a species
// name and an orientation. A trailing ' means up, , means down, ; means
// mix; no suffix means mix with the whole token as the species name.
func ParseMolecule(tok string) (string, model.Orientation, error) {
	if strings.TrimSpace(tok) == "" {
		return "", model.OrientMix, &ParseError{Input: tok, Detail: "empty molecule token"}
	}

	parsed, err := moleculeParser.ParseString("", tok)
	if err != nil {
		return "", model.OrientMix, &ParseError{Input: tok, Err: err}
	}

	orient := model.OrientMix
	if parsed.Suffix != nil {
		switch *parsed.Suffix {
		case "'":
			orient = model.OrientUp
		case ",":
			orient = model.OrientDown
		case ";":
			orient = model.OrientMix
		}
	}
	return parsed.Name, orient, nil
}
