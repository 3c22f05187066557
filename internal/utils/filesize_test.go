package utils

import "testing"

// 测试内容：验证文件大小格式化的单位换算和小数修剪。
func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{3435973837, "3.2 GB"},
	}
	for _, c := range cases {
		got := FormatFileSize(c.input)
		if got != c.want {
			t.Fatalf("FormatFileSize(%d) = %q, 期望 %q", c.input, got, c.want)
		}
	}
}
