package grading

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"essay-grader/biz/infrastructure/consts"
)

func payloadOf(t *testing.T, category string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(FormatExample(category)), &m); err != nil {
		t.Fatalf("example for %s broken: %v", category, err)
	}
	return m
}

// 格式范例必须能通过自身的校验，否则模板里的范例就是误导
func TestExamplesPassValidation(t *testing.T) {
	tests := []struct {
		category string
		kind     consts.SchemaKind
	}{
		{consts.CategoryParagraph, consts.SchemaParagraph},
		{consts.CategoryQuiz, consts.SchemaQuiz},
		{consts.CategoryWorksheet, consts.SchemaWorksheet},
		{consts.CategoryReadingWriting, consts.SchemaWorksheet},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if _, err := Validate(tt.kind, any(payloadOf(t, tt.category))); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestValidateTopLevelNotObject(t *testing.T) {
	for _, payload := range []any{"text", []any{1, 2}, 42.0, nil} {
		if _, err := Validate(consts.SchemaParagraph, payload); !errors.Is(err, consts.ErrSchemaViolation) {
			t.Errorf("payload %v: err = %v, want ErrSchemaViolation", payload, err)
		}
	}
}

func TestValidateMissingFieldNamed(t *testing.T) {
	m := payloadOf(t, consts.CategoryParagraph)
	delete(m, "rubric_evaluation")

	_, err := Validate(consts.SchemaParagraph, m)
	if !errors.Is(err, consts.ErrSchemaViolation) {
		t.Fatalf("err = %v, want ErrSchemaViolation", err)
	}
	if !strings.Contains(err.Error(), "rubric_evaluation") {
		t.Errorf("err %q does not name the field", err.Error())
	}
}

func TestValidateRubricScoreType(t *testing.T) {
	m := payloadOf(t, consts.CategoryParagraph)
	rubric := m["rubric_evaluation"].(map[string]any)
	items := rubric["structure_performance"].([]any)
	items[0].(map[string]any)["score"] = "8"

	// 分数项的 score 是整数，字符串不做弱类型转换
	if _, err := Validate(consts.SchemaParagraph, m); !errors.Is(err, consts.ErrSchemaViolation) {
		t.Fatalf("err = %v, want ErrSchemaViolation", err)
	}
}

func TestValidateQuizNestedMissing(t *testing.T) {
	m := payloadOf(t, consts.CategoryQuiz)
	summary := m["summary_feedback_for_student"].(map[string]any)
	delete(summary, "total_score_display")

	_, err := Validate(consts.SchemaQuiz, m)
	if !errors.Is(err, consts.ErrSchemaViolation) {
		t.Fatalf("err = %v, want ErrSchemaViolation", err)
	}
	if !strings.Contains(err.Error(), "total_score_display") {
		t.Errorf("err %q does not name the field", err.Error())
	}
}

func TestValidateWorksheetKindMismatch(t *testing.T) {
	// 段落结果拿去按學習單校验，必要字段全缺
	m := payloadOf(t, consts.CategoryParagraph)
	if _, err := Validate(consts.SchemaWorksheet, m); !errors.Is(err, consts.ErrSchemaViolation) {
		t.Fatalf("err = %v, want ErrSchemaViolation", err)
	}
}

func TestResultMarshalActiveVariantOnly(t *testing.T) {
	result, err := Validate(consts.SchemaQuiz, any(payloadOf(t, consts.CategoryQuiz)))
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err = json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["error_analysis_table"]; !ok {
		t.Error("quiz fields missing from marshaled result")
	}
	if _, ok := m["rubric_evaluation"]; ok {
		t.Error("inactive variant leaked into marshaled result")
	}
}

func TestResultMarshalNoVariant(t *testing.T) {
	if _, err := json.Marshal(&Result{}); err == nil {
		t.Error("marshal should fail when no variant is active")
	}
}
