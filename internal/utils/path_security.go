package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SecureJoin 将相对路径安全拼接到 basePath 下。
//
// 禁止绝对路径输入，规范化后拒绝 ".." 越界，结果必须位于 basePath 内，
// 并且 base 到目标的链路上不允许出现符号链接。
// 下载接口与删除托管文件前都必须经过这里。
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	cleanRel := filepath.Clean(relativePath)
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("非法路径: 不允许绝对路径")
	}

	targetAbs, err := filepath.Abs(filepath.Join(baseAbs, cleanRel))
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	if err := ensureWithinBase(baseAbs, targetAbs); err != nil {
		return "", err
	}

	// 从目标逐级向上回溯到基目录，已存在的节点不能是符号链接
	current := targetAbs
	for {
		info, statErr := os.Lstat(current)
		if statErr == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				return "", fmt.Errorf("检测到符号链接穿透风险: %s", current)
			}
		} else if !os.IsNotExist(statErr) {
			return "", fmt.Errorf("检查路径失败: %w", statErr)
		}

		if samePath(current, baseAbs) {
			break
		}
		parent := filepath.Dir(current)
		if samePath(parent, current) {
			return "", fmt.Errorf("非法路径: 无法定位到安全基目录")
		}
		current = parent
	}

	return targetAbs, nil
}

// ensureWithinBase 判断 targetAbs 是否严格位于 baseAbs 目录树内。
// Windows 下先校验卷标一致，防止跨盘绕过。
func ensureWithinBase(baseAbs, targetAbs string) error {
	baseVol := filepath.VolumeName(baseAbs)
	targetVol := filepath.VolumeName(targetAbs)
	if baseVol != "" || targetVol != "" {
		if !strings.EqualFold(baseVol, targetVol) {
			return fmt.Errorf("非法路径: 路径跨磁盘卷")
		}
	}

	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return fmt.Errorf("非法路径: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("非法路径: 目标超出基目录")
	}
	return nil
}

// samePath 判断两个路径是否指向同一路径，Windows 上不区分大小写。
func samePath(a, b string) bool {
	a = filepath.Clean(a)
	b = filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
