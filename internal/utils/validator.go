package utils

import (
	"io"
	"net/http"
	"regexp"
	"strings"
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	// 允许英文大小写、数字和下划线
	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9_]+$`, username); !matched {
		return false, "用户名只能包含英文大小写、数字和下划线"
	}

	// 不能是纯数字
	if matched, _ := regexp.MatchString(`^[0-9]+$`, username); matched {
		return false, "用户名不能为纯数字"
	}

	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "密码最少8位"
	}

	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9[:punct:]]+$`, password); !matched {
		return false, "密码只能包含英文大小写、数字和符号"
	}

	hasLetter, _ := regexp.MatchString(`[a-zA-Z]`, password)
	hasNum, _ := regexp.MatchString(`[0-9]`, password)
	if !hasLetter || !hasNum {
		return false, "密码必须包含至少一个字母和一个数字"
	}

	return true, ""
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

// ValidateEmail 宽松的邮箱格式校验。
func ValidateEmail(email string) (bool, string) {
	if len(email) > 255 || !emailPattern.MatchString(email) {
		return false, "邮箱格式不正确"
	}
	return true, ""
}

// ValidateArchiveContent checks if the uploaded file is really a ZIP archive.
// 允许按内容 (magic bytes) 或按 .zip 扩展名放行，与旧版 multer 过滤器行为一致。
func ValidateArchiveContent(reader io.ReadSeeker, filename string) (bool, string) {
	buffer := make([]byte, 512)
	_, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "读取文件内容失败"
	}

	// 重置读取位置
	if _, err := reader.Seek(0, 0); err != nil {
		return false, "重置文件读取位置失败"
	}

	contentType := http.DetectContentType(buffer)
	if contentType == "application/zip" || contentType == "application/x-zip-compressed" {
		return true, ""
	}
	if strings.HasSuffix(strings.ToLower(filename), ".zip") {
		return true, ""
	}

	return false, "只允许上传 ZIP 压缩包"
}
