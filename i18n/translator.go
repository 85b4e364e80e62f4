package i18n

// Translator produces localized diagnostic text for message codes. data
// carries the values to embed (for example, "schema", "data", "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "mismatch":
			return data["schema"] + " は " + data["data"] + " と一致しません"
		case "instance_of":
			return data["data"] + " は " + data["type"] + " のインスタンスではありません"
		case "predicate_false":
			return data["pred"] + "(" + data["data"] + ") が真になりません"
		case "host_failure":
			return data["target"] + "(" + data["data"] + ") が " + data["cause"] + " を送出しました"
		case "missing_keys":
			return "キーが不足しています: " + data["keys"]
		case "wrong_keys":
			return "不正なキー " + data["keys"] + " が " + data["data"] + " に含まれます"
		case "no_match":
			return data["schema"] + " は " + data["data"] + " を検証できませんでした"
		}
	default: // "en"
		switch code {
		case "mismatch":
			return data["schema"] + " does not match " + data["data"]
		case "instance_of":
			return data["data"] + " should be instance of " + data["type"]
		case "predicate_false":
			return data["pred"] + "(" + data["data"] + ") should evaluate to true"
		case "host_failure":
			return data["target"] + "(" + data["data"] + ") raised " + data["cause"]
		case "missing_keys":
			return "missing keys: " + data["keys"]
		case "wrong_keys":
			return "wrong keys " + data["keys"] + " in " + data["data"]
		case "no_match":
			return data["schema"] + " did not validate " + data["data"]
		}
	}
	return code
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
