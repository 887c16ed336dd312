package document

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadParagraphs 读取纯文本文件并按行返回段落
// 空行作为空段落保留，用于在输出中维持段落间距
func ReadParagraphs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer f.Close()

	var paragraphs []string
	scanner := bufio.NewScanner(f)
	// 段落可能很长，放宽单行缓冲上限
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		paragraphs = append(paragraphs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return paragraphs, nil
}

// WriteParagraphs 将段落逐行写入纯文本文件
func WriteParagraphs(paragraphs []string, path string) error {
	var b strings.Builder
	for _, paragraph := range paragraphs {
		b.WriteString(paragraph)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}
