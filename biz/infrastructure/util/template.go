package util

import "strings"

// RenderTemplate 对模板做单遍 {name} 占位符替换。
// 替换值按字面插入且不再参与扫描，学生作文或标准答案里
// 出现的花括号不会二次展开；values 中没有的占位符原样保留。
func RenderTemplate(tmpl string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '{' {
			b.WriteByte(tmpl[i])
			i++
			continue
		}
		j := strings.IndexByte(tmpl[i+1:], '}')
		if j < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		name := tmpl[i+1 : i+1+j]
		if v, ok := values[name]; ok {
			b.WriteString(v)
		} else {
			// 未声明的占位符保留原文，方便在输出里发现模板问题
			b.WriteString(tmpl[i : i+j+2])
		}
		i += j + 2
	}
	return b.String()
}
