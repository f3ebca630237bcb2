package consts

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestWithDetailKeepsIdentity(t *testing.T) {
	err := ErrSchemaViolation.WithDetail("缺少必要欄位 %s", "sections")
	if !errors.Is(err, ErrSchemaViolation) {
		t.Error("detailed error lost its identity")
	}
	if errors.Is(err, ErrMalformedJSON) {
		t.Error("detailed error matches a foreign kind")
	}
	if !strings.Contains(err.Error(), "sections") {
		t.Errorf("detail lost: %q", err.Error())
	}

	// 二次包装仍指回最初的错误类别
	twice := err.WithDetail("again")
	if !errors.Is(twice, ErrSchemaViolation) {
		t.Error("double wrapping lost identity")
	}
}

func TestHTTPStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNoContent, http.StatusBadRequest},
		{ErrUnsupportedCategory.WithDetail("口說"), http.StatusBadRequest},
		{ErrTemplateLoad, http.StatusInternalServerError},
		{ErrModelBlocked.WithDetail("SAFETY"), http.StatusInternalServerError},
		{ErrMalformedJSON, http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatusOf(tt.err); got != tt.want {
			t.Errorf("HTTPStatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestLookupCategory(t *testing.T) {
	for _, category := range []string{CategoryParagraph, CategoryQuiz, CategoryWorksheet, CategoryReadingWriting} {
		spec, ok := LookupCategory(category)
		if !ok {
			t.Errorf("category %s missing from dispatch table", category)
			continue
		}
		if spec.TemplateFile != category+".txt" {
			t.Errorf("template file = %s", spec.TemplateFile)
		}
	}
	if _, ok := LookupCategory("口說測驗"); ok {
		t.Error("unknown category should not resolve")
	}

	ws, _ := LookupCategory(CategoryWorksheet)
	rw, _ := LookupCategory(CategoryReadingWriting)
	if ws.Schema != rw.Schema {
		t.Error("worksheet and reading-writing should share a result schema")
	}
	if !ws.NeedsAnswerKey || !rw.NeedsAnswerKey {
		t.Error("both worksheet categories require answer key lookup")
	}
}
