package utils

import (
	"fmt"
	"math"
)

// FormatFileSize 把字节数格式化成人类可读的大小（如 "3.2 GB"）。
// 展示口径沿用旧版前端：1024 进制，保留两位小数并去掉结尾的 0。
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(i))
	s := fmt.Sprintf("%.2f", value)
	// 去掉无意义的小数位："890.00" -> "890"，"3.20" -> "3.2"
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s + " " + units[i]
}
