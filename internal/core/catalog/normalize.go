package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize 將文字轉為 NFC、小寫並去除前後空白
//
// 組合字與分解字（"ö" 與 "o"+U+0308）視為相同；不移除重音，
// 因此 "doner" 與 "döner" 仍是不同的關鍵字。
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFC.String(s)))
}

// IsBlank 判斷文字是否為空或只有空白
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
