package field

import (
	"strings"

	"fieldline/internal/match"
)

// Style selects how an external name is derived from an internal one.
type Style int

const (
	StyleSame   Style = iota // keep the internal name
	StyleCamel               // orderId
	StylePascal              // OrderId
	StyleSnake               // order_id
	StyleKebab               // order-id
)

var styleNames = map[string]Style{
	"":       StyleSame,
	"same":   StyleSame,
	"camel":  StyleCamel,
	"pascal": StylePascal,
	"snake":  StyleSnake,
	"kebab":  StyleKebab,
}

// ParseStyle maps a style name ("same", "camel", "pascal", "snake", "kebab")
// to a Style.
func ParseStyle(name string) (Style, bool) {
	s, ok := styleNames[strings.ToLower(name)]
	return s, ok
}

// Apply converts an identifier to the style.
func (s Style) Apply(name string) string {
	if s == StyleSame {
		return name
	}

	tokens := match.TokenizeIdent(name)
	if len(tokens) == 0 {
		return name
	}

	switch s {
	case StyleSnake:
		return strings.Join(tokens, "_")
	case StyleKebab:
		return strings.Join(tokens, "-")
	case StyleCamel, StylePascal:
		var sb strings.Builder

		for i, t := range tokens {
			if i == 0 && s == StyleCamel {
				sb.WriteString(t)
				continue
			}

			sb.WriteString(capitalize(t))
		}

		return sb.String()
	default:
		return name
	}
}

// Styled returns a field whose external name is derived from internal.
func Styled(internal string, style Style) Field {
	return OfNames(internal, style.Apply(internal))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
