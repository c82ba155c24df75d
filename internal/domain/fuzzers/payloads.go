package fuzzers

import "golang.org/x/text/unicode/norm"

// FieldSeparators are Unicode space, line and paragraph separators.
func FieldSeparators() []string {
	return []string{
		" ", "\u00a0", "\u1680", "\u2000", "\u2001", "\u2002", "\u2003", "\u2004",
		"\u2005", "\u2006", "\u2007", "\u2008", "\u2009", "\u200a", "\u2028", "\u2029",
		"\u202f", "\u205f", "\u3000",
	}
}

// HeaderSeparators is the subset of separators an HTTP client will put on the wire.
func HeaderSeparators() []string {
	return []string{" ", "\u00a0", "\u2000", "\u3000"}
}

// ControlChars are control and format characters, including bidi and zero-width marks.
func ControlChars() []string {
	return []string{
		"\r\n", "\u0000", "\u0007", "\u0008", "\u001b", "\u007f", "\u0085",
		"\u00ad", "\u200b", "\u200e", "\u200f", "\u202e", "\u2060", "\ufeff",
	}
}

// HeaderControlChars are control and format characters encoded as multi-byte UTF-8,
// which HTTP clients accept in header values.
func HeaderControlChars() []string {
	return []string{"\u0085", "\u00ad", "\u200b", "\u200e", "\u202e", "\ufeff"}
}

// SingleCodePointEmojis are emojis made of exactly one code point.
func SingleCodePointEmojis() []string {
	return []string{"\U0001f47b", "\U0001f525", "\u2705", "\u2603", "\U0001f4a9"}
}

// MultiCodePointEmojis are emoji sequences, flags and ZWJ joins.
// Every code point in them is either an other-symbol or a format character.
func MultiCodePointEmojis() []string {
	return []string{
		"\U0001f469\u200d\U0001f680",
		"\U0001f468\u200d\U0001f469\u200d\U0001f467",
		"\U0001f1f7\U0001f1f4",
		"\U0001f3f4\u200d\u2620",
		"\U0001f441\u200d\U0001f5e8",
	}
}

// OnlyWhitespaces are values made entirely of separators.
func OnlyWhitespaces() []string {
	return []string{" ", "   ", "\u00a0\u00a0", "\u2000\u2001\u2002", "\u3000"}
}

// OnlyControlChars are values made entirely of control characters.
func OnlyControlChars() []string {
	return []string{"\u0000", "\r\n", "\u200b\u200b", "\u0007\u0008", "\ufeff"}
}

var precomposed = []string{"\u00c5ngstr\u00f6m", "caf\u00e9", "na\u00efve", "\u00dcn\u00efc\u00f6d\u00e9", "se\u00f1or"}

// DecomposedUnicode returns precomposed words in canonical decomposition (NFD).
// They render identically but no longer compare equal byte-for-byte.
func DecomposedUnicode() []string {
	out := make([]string, 0, len(precomposed))
	for _, word := range precomposed {
		out = append(out, norm.NFD.String(word))
	}

	return out
}
