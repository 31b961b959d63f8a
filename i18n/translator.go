package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "identifier" or "module").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"unresolved_identifier": "identifier {identifier} is not defined",
		"unknown_module":        "module {module} is not declared",
		"non_constant":          "{identifier} is not a constant value",
		"invalid_enum_source":   "{identifier} must be an array of strings to be used as enum values",
		"invalid_fragment":      "{identifier} is a value, not a schema",
		"invalid_value":         "{identifier} is a schema, not a value",
		"identifier_cycle":      "identifier {identifier} refers to itself",
		"import_cycle":          "import of {identifier} leads back to itself",
		"invalid_variant":       "discriminated union variants must be objects",
		"invalid_root":          "collection schema must be an object",
		"duplicate_collection":  "collection {collection} is declared more than once",
		"invalid_declaration":   "invalid declaration",
	},
	"ja": {
		"unresolved_identifier": "識別子 {identifier} が定義されていません",
		"unknown_module":        "モジュール {module} が宣言されていません",
		"non_constant":          "{identifier} は定数ではありません",
		"invalid_enum_source":   "{identifier} を enum の値として使うには文字列の配列が必要です",
		"invalid_fragment":      "{identifier} は値であり、スキーマではありません",
		"invalid_value":         "{identifier} はスキーマであり、値ではありません",
		"identifier_cycle":      "識別子 {identifier} が自分自身を参照しています",
		"import_cycle":          "{identifier} のインポートが循環しています",
		"invalid_variant":       "判別共用体のバリアントはオブジェクトである必要があります",
		"invalid_root":          "コレクションのスキーマはオブジェクトである必要があります",
		"duplicate_collection":  "コレクション {collection} が重複して宣言されています",
		"invalid_declaration":   "宣言が不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		msg, ok = dict["en"][code]
	}
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
