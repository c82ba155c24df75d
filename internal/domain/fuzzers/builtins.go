package fuzzers

import m "github.com/mouse-blink/nego/internal/model"

func needsSampleValue(item Item) string {
	if item.Value == "" {
		return "no sample value to combine the payload with"
	}

	return ""
}

func whitespaceFields(name, description string, kind m.StrategyKind, policy m.ExpectationPolicy) Fuzzer {
	return Fuzzer{
		Name:        name,
		Description: description,
		Target:      m.TargetField,
		Kind:        kind,
		Policy:      policy,
		Payloads:    FieldSeparators,
		Applies:     needsSampleValue,
	}
}

func builtins() []Fuzzer {
	leadingEmojisTrimValidate := Fuzzer{
		Name:        "LeadingMultiCodePointEmojisInFieldsTrimValidate",
		Description: "prefix value with multi code point emojis",
		Target:      m.TargetField,
		Kind:        m.StrategyPrefix,
		Policy:      ExpectOnly2XXFields,
		Payloads:    MultiCodePointEmojis,
		Applies:     needsSampleValue,
	}

	leadingEmojisValidateTrim := leadingEmojisTrimValidate
	leadingEmojisValidateTrim.Name = "LeadingMultiCodePointEmojisInFieldsValidateTrim"
	leadingEmojisValidateTrim.Policy = leadingEmojisTrimValidate.Policy.
		WithRequiredField(m.Family4XX).
		WithOptionalField(m.Family4XX).
		WithPatternMismatchField(m.Family4XX)

	trailingEmojisTrimValidate := Fuzzer{
		Name:        "TrailingSingleCodePointEmojisInFieldsTrimValidate",
		Description: "trail value with single code point emojis",
		Target:      m.TargetField,
		Kind:        m.StrategyTrail,
		Policy:      ExpectOnly2XXFields,
		Payloads:    SingleCodePointEmojis,
		Applies:     needsSampleValue,
	}

	trailingEmojisValidateTrim := trailingEmojisTrimValidate
	trailingEmojisValidateTrim.Name = "TrailingSingleCodePointEmojisInFieldsValidateTrim"
	trailingEmojisValidateTrim.Policy = trailingEmojisTrimValidate.Policy.AllFields(m.Family4XX)

	return []Fuzzer{
		whitespaceFields("LeadingWhitespacesInFieldsTrimValidate",
			"prefix value with unicode separators", m.StrategyPrefix, ExpectOnly2XXFields),
		whitespaceFields("LeadingWhitespacesInFieldsValidateTrim",
			"prefix value with unicode separators", m.StrategyPrefix, ExpectOnly4XXFields),
		whitespaceFields("TrailingWhitespacesInFieldsTrimValidate",
			"trail value with unicode separators", m.StrategyTrail, ExpectOnly2XXFields),
		whitespaceFields("TrailingWhitespacesInFieldsValidateTrim",
			"trail value with unicode separators", m.StrategyTrail, ExpectOnly4XXFields),
		leadingEmojisTrimValidate,
		leadingEmojisValidateTrim,
		trailingEmojisTrimValidate,
		trailingEmojisValidateTrim,
		{
			Name:        "OnlyWhitespacesInFields",
			Description: "replace value with unicode separators only",
			Target:      m.TargetField,
			Kind:        m.StrategyReplace,
			Policy:      Expect4XXOnRequired,
			Payloads:    OnlyWhitespaces,
		},
		{
			Name:        "OnlyControlCharsInFields",
			Description: "replace value with control characters only",
			Target:      m.TargetField,
			Kind:        m.StrategyReplace,
			Policy:      Expect4XXOnRequired,
			Payloads:    OnlyControlChars,
		},
		{
			Name:        "LeadingControlCharsInFields",
			Description: "prefix value with control characters",
			Target:      m.TargetField,
			Kind:        m.StrategyPrefix,
			Policy:      ExpectOnly4XXFields,
			Payloads:    ControlChars,
			Applies:     needsSampleValue,
		},
		{
			Name:        "WithinControlCharsInFields",
			Description: "insert control characters in the middle of the value",
			Target:      m.TargetField,
			Kind:        m.StrategyInsert,
			Policy:      ExpectOnly4XXFields,
			Payloads:    ControlChars,
			Applies:     needsSampleValue,
		},
		{
			Name:        "DecomposedUnicodeInFields",
			Description: "replace value with canonically decomposed unicode text",
			Target:      m.TargetField,
			Kind:        m.StrategyReplace,
			Policy:      Expect4XXOnRequired.WithRequiredField(m.Family2XX),
			Payloads:    DecomposedUnicode,
		},
		{
			Name:        "LeadingWhitespacesInHeaders",
			Description: "prefix header value with unicode separators",
			Target:      m.TargetHeader,
			Kind:        m.StrategyPrefix,
			Policy:      ExpectOnly2XXHeaders,
			Payloads:    HeaderSeparators,
			Applies:     needsSampleValue,
		},
		{
			Name:        "TrailingWhitespacesInHeaders",
			Description: "trail header value with unicode separators",
			Target:      m.TargetHeader,
			Kind:        m.StrategyTrail,
			Policy:      ExpectOnly2XXHeaders,
			Payloads:    HeaderSeparators,
			Applies:     needsSampleValue,
		},
		{
			Name:        "OnlyWhitespacesInHeaders",
			Description: "replace header value with unicode separators only",
			Target:      m.TargetHeader,
			Kind:        m.StrategyReplace,
			Policy:      Expect4XXHeaders,
			Payloads:    HeaderSeparators,
		},
		{
			Name:        "LeadingControlCharsInHeaders",
			Description: "prefix header value with control characters",
			Target:      m.TargetHeader,
			Kind:        m.StrategyPrefix,
			Policy:      ExpectOnly4XXHeaders,
			Payloads:    HeaderControlChars,
			Applies:     needsSampleValue,
		},
		{
			Name:        "TrailingControlCharsInHeaders",
			Description: "trail header value with control characters",
			Target:      m.TargetHeader,
			Kind:        m.StrategyTrail,
			Policy:      ExpectOnly4XXHeaders,
			Payloads:    HeaderControlChars,
			Applies:     needsSampleValue,
		},
	}
}
