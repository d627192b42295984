package utils

import (
	"regexp"
)

// 3~6 位十六进制颜色，例如 #fff、#49B64E
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{3,6}$`)

// IsHexColor 校验标签颜色值
func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// Truncate 按字符数截断展示用字符串（日志里防止超长名称刷屏）
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
