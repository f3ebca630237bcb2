package util

import "testing"

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		values map[string]string
		want   string
	}{
		{
			name:   "basic substitution",
			tmpl:   "年級：{grade_level}，類型：{submission_type}",
			values: map[string]string{"grade_level": "七年級", "submission_type": "段落寫作評閱"},
			want:   "年級：七年級，類型：段落寫作評閱",
		},
		{
			name:   "value containing braces is not rescanned",
			tmpl:   "內容：{essay_content}",
			values: map[string]string{"essay_content": "I like {grade_level} and {json}", "grade_level": "xxx"},
			want:   "內容：I like {grade_level} and {json}",
		},
		{
			name:   "unknown placeholder kept verbatim",
			tmpl:   "保留 {not_declared} 原樣",
			values: map[string]string{"grade_level": "七年級"},
			want:   "保留 {not_declared} 原樣",
		},
		{
			name:   "unclosed brace copied through",
			tmpl:   "結尾 {grade_level",
			values: map[string]string{"grade_level": "七年級"},
			want:   "結尾 {grade_level",
		},
		{
			name:   "empty value",
			tmpl:   "答案：{standard_answer_if_any}。",
			values: map[string]string{"standard_answer_if_any": ""},
			want:   "答案：。",
		},
		{
			name:   "adjacent placeholders",
			tmpl:   "{a}{b}",
			values: map[string]string{"a": "1", "b": "2"},
			want:   "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderTemplate(tt.tmpl, tt.values); got != tt.want {
				t.Errorf("RenderTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}
