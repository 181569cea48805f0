package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回文本渲染宽度（像素）
type MeasureFunc func(s string) float64

// FaceMeasure 返回使用指定字体测量宽度的 MeasureFunc
func FaceMeasure(face text.Face) MeasureFunc {
	return func(s string) float64 {
		if face == nil {
			return 0
		}
		w, _ := text.Measure(s, face, 0)
		return w
	}
}

// WrapText 将文本按最大宽度自动换行
//
// 参数:
//   - s: 要换行的文本
//   - maxWidth: 最大宽度（像素）
//   - measure: 宽度测量函数
//
// 返回:
//   - []string: 换行后的文本（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(s string, maxWidth float64, measure MeasureFunc) []string {
	if s == "" || measure == nil || maxWidth <= 0 || measure(s) <= maxWidth {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		current = ""

		// 单词本身超宽，按字符切分
		for measure(word) > maxWidth {
			cut := breakIndex(word, maxWidth, measure)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// breakIndex 返回 word 中不超过 maxWidth 的最长前缀的字节长度（至少一个字符）
func breakIndex(word string, maxWidth float64, measure MeasureFunc) int {
	cut := 0
	for i, r := range word {
		end := i + len(string(r))
		if measure(word[:end]) > maxWidth {
			break
		}
		cut = end
	}
	if cut == 0 {
		for _, r := range word {
			return len(string(r))
		}
	}
	return cut
}
