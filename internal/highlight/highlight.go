// Package highlight adapts chroma into the synchronous highlight function the
// diff renderers consume. Highlighting is best-effort: any failure returns
// the code unchanged.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultStyle = "monokai"

// Func colorizes one line of source code for the given file path.
type Func func(code, filePath string) string

// New returns a highlight function using the named chroma style. An unknown
// style name falls back to chroma's default.
func New(styleName string) Func {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	return func(code, filePath string) string {
		lexer := lexers.Match(filepath.Base(filePath))
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)

		iterator, err := lexer.Tokenise(nil, code)
		if err != nil {
			return code
		}
		var b strings.Builder
		if err := formatter.Format(&b, style, iterator); err != nil {
			return code
		}
		out := b.String()
		// Chroma guarantees a trailing newline on tokenised input; diff line
		// content never contains one, so drop any newline it introduced.
		if !strings.Contains(code, "\n") {
			out = strings.ReplaceAll(out, "\n", "")
		}
		return out
	}
}

// Default is a highlight function with the default style.
func Default() Func {
	return New(defaultStyle)
}
