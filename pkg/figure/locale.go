package figure

import "strings"

// Engine locale tags.
const (
	LocaleEnglish = "en-US"
	LocaleChinese = "zh-CN"
)

// LocaleFor maps an interface language code to an engine locale tag.
func LocaleFor(lang string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(lang)), "zh") {
		return LocaleChinese
	}
	return LocaleEnglish
}
