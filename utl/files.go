package utl

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
)

// STDIN 表示从标准输入读取的路径
const STDIN = "-"

// ReadSource 读取文件内容，路径为"-"时从stdin读取
func ReadSource(path string, stdin io.Reader) (string, error) {
	if path == STDIN {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("读取标准输入失败: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("读取文件 %s 失败: %w", path, err)
	}
	return string(data), nil
}

// SourceName 返回用于错误信息的来源名称
func SourceName(path string) string {
	return lo.Ternary(path == STDIN, "<stdin>", path)
}
