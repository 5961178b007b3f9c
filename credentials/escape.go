package credentials

import "strings"

// escapePairs lists the characters rewritten before persistence and their
// two-character escape forms. Backslash must come first so already-produced
// escapes are not escaped again.
var escapePairs = [][2]string{
	{"\\", "\\\\"},
	{"'", "\\'"},
	{"\"", "\\\""},
	{"\n", "\\n"},
	{"\r", "\\r"},
	{"\t", "\\t"},
	{"\x00", "\\0"},
}

// Escape rewrites control and quote characters in a password to their
// escaped forms. It never fails; any input produces output.
func Escape(value string) string {
	for _, p := range escapePairs {
		value = strings.ReplaceAll(value, p[0], p[1])
	}
	return value
}

// Unescape reverses Escape. A single left-to-right scan decodes each escape
// exactly once; sequential reverse replacement would mangle inputs like a
// literal backslash followed by "n".
func Unescape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' || i+1 == len(value) {
			b.WriteByte(c)
			continue
		}
		i++
		switch value[i] {
		case '\\':
			b.WriteByte('\\')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		default:
			// Unknown escape: keep both bytes.
			b.WriteByte('\\')
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// MaxUsernameLength bounds stored usernames; longer values come from corrupt
// blocks and would bloat the credentials table.
const MaxUsernameLength = 500

// TruncatedUsername is the result of a username length check.
type TruncatedUsername struct {
	Value          string
	WasTruncated   bool
	OriginalLength int
}

// TruncateUsername caps a username at MaxUsernameLength characters,
// reporting the original length so the caller can log the truncation.
// Counting is rune-based so a multi-byte value is not cut mid-character.
func TruncateUsername(username string) TruncatedUsername {
	runes := []rune(username)
	if len(runes) <= MaxUsernameLength {
		return TruncatedUsername{Value: username, OriginalLength: len(runes)}
	}
	return TruncatedUsername{
		Value:          string(runes[:MaxUsernameLength]),
		WasTruncated:   true,
		OriginalLength: len(runes),
	}
}
