package apigateway

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"essay-grader/biz/infrastructure/consts"
)

type formFile struct {
	field, name, mime, content string
}

func buildForm(t *testing.T, values map[string]string, files []formFile) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range values {
		if err := w.WriteField(name, value); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		h.Set("Content-Type", f.mime)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err = part.Write([]byte(f.content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func TestParseGradeFormFieldGating(t *testing.T) {
	form := buildForm(t,
		map[string]string{
			consts.FieldCategory:    consts.CategoryWorksheet,
			consts.FieldGradeLevel:  "七年級",
			consts.FieldLearnSheets: "L2",
		},
		[]formFile{
			{consts.FieldLearningSheetFile, "sheet1.png", "image/png", "sheet page 1"},
			{consts.FieldLearningSheetFile, "sheet2.png", "image/png", "sheet page 2"},
			// 与类型不符的字段即使带了文件也忽略
			{consts.FieldEssayImage, "essay.jpg", "image/jpeg", "essay page"},
			{consts.FieldStandardAnswerImage, "answer.jpg", "image/jpeg", "answer page"},
		})

	req, err := parseGradeForm(form)
	if err != nil {
		t.Fatalf("parseGradeForm() error = %v", err)
	}
	if req.Category != consts.CategoryWorksheet || req.GradeLevel != "七年級" || req.LearnSheets != "L2" {
		t.Errorf("form values not mapped: %+v", req)
	}
	if len(req.StudentImages) != 2 {
		t.Fatalf("student images = %d, want 2 from the worksheet field", len(req.StudentImages))
	}
	if got := string(req.StudentImages[0].Data); got != "sheet page 1" {
		t.Errorf("first image content = %q, upload order lost", got)
	}
	if req.StudentImages[0].MIMEType != "image/png" || req.StudentImages[0].Name != "sheet1.png" {
		t.Errorf("image metadata = %+v", req.StudentImages[0])
	}
	if len(req.AnswerImages) != 0 {
		t.Error("answer images should only be read for 測驗寫作評改")
	}
}

func TestParseGradeFormQuizAnswerImages(t *testing.T) {
	form := buildForm(t,
		map[string]string{consts.FieldCategory: consts.CategoryQuiz},
		[]formFile{
			{consts.FieldEssayImage, "essay.jpg", "image/jpeg", "essay page"},
			{consts.FieldStandardAnswerImage, "answer.jpg", "image/jpeg", "answer page"},
		})

	req, err := parseGradeForm(form)
	if err != nil {
		t.Fatalf("parseGradeForm() error = %v", err)
	}
	if len(req.StudentImages) != 1 || string(req.StudentImages[0].Data) != "essay page" {
		t.Errorf("student images = %+v", req.StudentImages)
	}
	if len(req.AnswerImages) != 1 || string(req.AnswerImages[0].Data) != "answer page" {
		t.Errorf("answer images = %+v", req.AnswerImages)
	}
}

func TestParseGradeFormUnknownCategory(t *testing.T) {
	form := buildForm(t, map[string]string{consts.FieldCategory: "口說測驗"}, nil)
	_, err := parseGradeForm(form)
	if !errors.Is(err, consts.ErrUnsupportedCategory) {
		t.Fatalf("err = %v, want ErrUnsupportedCategory", err)
	}
	if status := consts.HTTPStatusOf(err); status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
}
