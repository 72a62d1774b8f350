package models

// SupportedLanguages 情绪平衡器支持的输出语言
var SupportedLanguages = []string{
	"English", "Hindi", "Gujarati", "Marathi", "Bengali",
	"Tamil", "Spanish", "French", "Japanese",
}

// languageTags 语言名到BCP-47语音tag的映射，供客户端TTS使用
var languageTags = map[string]string{
	"English":  "en-US",
	"Hindi":    "hi-IN",
	"Gujarati": "gu-IN",
	"Marathi":  "mr-IN",
	"Bengali":  "bn-IN",
	"Tamil":    "ta-IN",
	"Spanish":  "es-ES",
	"French":   "fr-FR",
	"Japanese": "ja-JP",
}

// IsSupportedLanguage 判断语言是否在支持列表内
func IsSupportedLanguage(language string) bool {
	_, ok := languageTags[language]
	return ok
}

// LanguageTag 返回语言对应的BCP-47 tag，未知语言返回空串
func LanguageTag(language string) string {
	return languageTags[language]
}
