package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/gistview"
)

// TokenTypeOf maps a chroma token type to a gistview token type.
// Returns "" for token types rendered as plain text.
func TokenTypeOf(tt chromalib.TokenType) gistview.TokenType {
	switch tt {
	// Keywords, including type keywords
	case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
		chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved,
		chromalib.KeywordType:
		return gistview.TokenKeyword

	// Comments
	case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
		chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
		chromalib.CommentSpecial:
		return gistview.TokenComment

	// Strings
	case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
		chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
		chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
		chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
		chromalib.StringSymbol:
		return gistview.TokenString

	// Numbers
	case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
		chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
		return gistview.TokenNumber

	// Function names
	case chromalib.NameFunction, chromalib.NameFunctionMagic:
		return gistview.TokenFunction

	default:
		return ""
	}
}
