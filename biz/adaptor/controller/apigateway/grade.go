package apigateway

import (
	"context"
	"io"
	"mime/multipart"

	"essay-grader/biz/application/dto/grading"
	"essay-grader/biz/infrastructure/consts"
	"essay-grader/biz/infrastructure/util/log"
	"essay-grader/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Grade 批改一份提交。multipart 表单：文字字段 + 按提交类型选用的图片字段。
func Grade(ctx context.Context, c *app.RequestContext) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, consts.ErrInvalidParams.WithDetail("%s", err))
		return
	}

	req, err := parseGradeForm(form)
	if err != nil {
		fail(c, err)
		return
	}

	log.CtxInfo(ctx, "grade req: category=%s grade=%s text_len=%d images=%d",
		req.Category, req.GradeLevel, len(req.Text), len(req.StudentImages))

	p := provider.Get()
	resp, err := p.GradingService.Grade(ctx, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(hconsts.StatusOK, resp)
}

// GetGradeLogs 分页查询当前用户的批改记录
func GetGradeLogs(ctx context.Context, c *app.RequestContext) {
	var req grading.GetLogsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.GradingService.GetGradeLogs(ctx, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(hconsts.StatusOK, resp)
}

// parseGradeForm 从 multipart 表单装配批改请求。
// 只读取该提交类型约定的图片字段，其余字段即使带了文件也忽略；
// 参考答案图片只有 測驗寫作評改 会读取。
func parseGradeForm(form *multipart.Form) (*grading.GradeReq, error) {
	category := formValue(form, consts.FieldCategory)
	spec, ok := consts.LookupCategory(category)
	if !ok {
		return nil, consts.ErrUnsupportedCategory.WithDetail("%s", category)
	}

	req := &grading.GradeReq{
		Category:            category,
		GradeLevel:          formValue(form, consts.FieldGradeLevel),
		Text:                formValue(form, consts.FieldText),
		BookRange:           formValue(form, consts.FieldBookRange),
		LearnSheets:         formValue(form, consts.FieldLearnSheets),
		WorksheetCategory:   formValue(form, consts.FieldWorksheetCategory),
		StandardAnswerText:  formValue(form, consts.FieldStandardAnswerText),
		ScoringInstructions: formValue(form, consts.FieldScoringInstructions),
	}

	var err error
	if req.StudentImages, err = readFiles(form.File[spec.FileField]); err != nil {
		return nil, consts.ErrInvalidParams.WithDetail("%s", err)
	}
	if category == consts.CategoryQuiz {
		if req.AnswerImages, err = readFiles(form.File[consts.FieldStandardAnswerImage]); err != nil {
			return nil, consts.ErrInvalidParams.WithDetail("%s", err)
		}
	}
	return req, nil
}

func formValue(form *multipart.Form, name string) string {
	if vals := form.Value[name]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func readFiles(headers []*multipart.FileHeader) ([]grading.ImageFile, error) {
	var images []grading.ImageFile
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, grading.ImageFile{
			Name:     fh.Filename,
			MIMEType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}
	return images, nil
}

func fail(c *app.RequestContext, err error) {
	status := consts.HTTPStatusOf(err)
	log.Error("grade request failed with %d: %v", status, err)
	c.JSON(status, map[string]any{
		"code":   status,
		"detail": err.Error(),
	})
}
