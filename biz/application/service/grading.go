package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"essay-grader/biz/adaptor"
	"essay-grader/biz/application/dto/basic"
	"essay-grader/biz/application/dto/grading"
	"essay-grader/biz/infrastructure/config"
	"essay-grader/biz/infrastructure/consts"
	"essay-grader/biz/infrastructure/gemini"
	"essay-grader/biz/infrastructure/lock"
	"essay-grader/biz/infrastructure/repository/answerkey"
	"essay-grader/biz/infrastructure/repository/record"
	"essay-grader/biz/infrastructure/util"
	logx "essay-grader/biz/infrastructure/util/log"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// OCRClient 图片文字识别
type OCRClient interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}

// TextStore 模板与标准答案的只读存储
type TextStore interface {
	ReadText(ctx context.Context, key string) (string, error)
}

// ModelInvoker 批改模型调用
type ModelInvoker interface {
	Generate(ctx context.Context, parts []gemini.Part) (*gemini.RawResponse, error)
}

type IGradingService interface {
	Grade(ctx context.Context, req *grading.GradeReq) (resp *grading.Result, err error)
	GetGradeLogs(ctx context.Context, req *grading.GetLogsReq) (resp *grading.GetLogsResp, err error)
}

type GradingService struct {
	Config       *config.Config
	OCR          OCRClient
	Store        TextStore
	Model        ModelInvoker
	RecordMapper *record.MongoMapper
	AnswerKeys   *answerkey.MySQLMapper
	Redis        *redis.Redis
}

var GradingServiceSet = wire.NewSet(
	wire.Struct(new(GradingService), "*"),
	wire.Bind(new(IGradingService), new(*GradingService)),
)

// Grade 批改一份提交：取得作业内容、装配提示词、调用模型并校验结果
func (s *GradingService) Grade(ctx context.Context, req *grading.GradeReq) (*grading.Result, error) {
	spec, ok := consts.LookupCategory(req.Category)
	if !ok {
		return nil, consts.ErrUnsupportedCategory.WithDetail("%s", req.Category)
	}

	meta := adaptor.ExtractUserMeta(ctx)

	// 同一用户同一时刻只允许一次批改
	if s.Redis != nil && meta.GetUserId() != "" {
		mutex := lock.NewGradeMutex(ctx, s.Redis, meta.GetUserId(), 120)
		if err := mutex.Lock(); err != nil {
			return nil, err
		}
		defer mutex.Unlock()
	}

	content, images, err := s.acquireContent(ctx, req, spec)
	if err != nil {
		return nil, err
	}

	standardAnswer := s.resolveStandardAnswer(ctx, req)
	answerKeyJSON := s.resolveAnswerKey(ctx, req, spec)

	prompt, err := s.renderPrompt(ctx, req, spec, content, standardAnswer, answerKeyJSON)
	if err != nil {
		return nil, err
	}

	parts := []gemini.Part{{Text: prompt}}
	if len(images) > 0 {
		parts = append(parts, gemini.Part{Text: "以下是學生提交的原始作業圖片，請批改時一併參考："})
		for _, img := range images {
			parts = append(parts, gemini.Part{Blob: &gemini.Blob{MIMEType: img.MIMEType, Data: img.Data}})
		}
	}

	raw, err := s.Model.Generate(ctx, parts)
	if err != nil {
		logx.CtxError(ctx, "model call failed: %v", err)
		return nil, consts.ErrModelCall.WithDetail("%s", err)
	}

	result, err := NormalizeResponse(spec.Schema, raw)
	if err != nil {
		// 完整原始文本只进日志，对外只返回类别化的错误信息
		logx.CtxError(ctx, "normalize failed: %v, raw=%s", err, strings.Join(raw.Fragments, ""))
		return nil, err
	}

	s.saveRecord(ctx, meta, req, content, result)
	return result, nil
}

// acquireContent 取得待批改文本：纯文本优先；否则逐张 OCR，
// 单张失败跳过并保持剩余图片顺序，全部失败才算错误
func (s *GradingService) acquireContent(ctx context.Context, req *grading.GradeReq, spec consts.CategorySpec) (string, []grading.ImageFile, error) {
	if strings.TrimSpace(req.Text) != "" {
		return req.Text, nil, nil
	}
	if len(req.StudentImages) == 0 {
		return "", nil, consts.ErrNoContent
	}

	texts := s.ocrAll(ctx, req.StudentImages)
	if len(texts) == 0 {
		return "", nil, consts.ErrNoContent.WithDetail("所有圖片的文字識別均失敗")
	}
	return strings.Join(texts, "\n\n"), req.StudentImages, nil
}

// ocrAll 逐张识别，容忍单张失败，结果保持输入顺序
func (s *GradingService) ocrAll(ctx context.Context, images []grading.ImageFile) []string {
	return lo.FilterMap(images, func(img grading.ImageFile, _ int) (string, bool) {
		text, err := s.OCR.DetectText(ctx, img.Data)
		if err != nil {
			logx.CtxError(ctx, "ocr failed for %s: %v", img.Name, err)
			return "", false
		}
		if strings.TrimSpace(text) == "" {
			return "", false
		}
		return text, true
	})
}

// resolveStandardAnswer 測驗寫作評改 的参考答案：文字优先，其次识别答案图片。
// 参考答案是可选输入，取不到不阻断批改；其余提交类型即使带了
// 该字段也不注入。
func (s *GradingService) resolveStandardAnswer(ctx context.Context, req *grading.GradeReq) string {
	if req.Category != consts.CategoryQuiz {
		return ""
	}
	if strings.TrimSpace(req.StandardAnswerText) != "" {
		return req.StandardAnswerText
	}
	if len(req.AnswerImages) == 0 {
		return ""
	}
	texts := s.ocrAll(ctx, req.AnswerImages)
	if len(texts) == 0 {
		logx.CtxInfo(ctx, "standard answer images yielded no text, grading without reference answer")
		return ""
	}
	return strings.Join(texts, "\n\n")
}

// resolveAnswerKey 解析当前课次的结构化标准答案。
// 任何一步失配（选择字段缺失、目录无此项、文件缺失、课次键不存在）
// 都记录日志并降级为空，批改照常进行。
func (s *GradingService) resolveAnswerKey(ctx context.Context, req *grading.GradeReq, spec consts.CategorySpec) string {
	if !spec.NeedsAnswerKey {
		return ""
	}

	var categoryKey, lessonKey string
	switch req.Category {
	case consts.CategoryWorksheet:
		if req.LearnSheets == "" || req.WorksheetCategory == "" {
			logx.CtxInfo(ctx, "worksheet selectors missing, skip answer key")
			return ""
		}
		categoryKey, lessonKey = req.WorksheetCategory, req.LearnSheets
	case consts.CategoryReadingWriting:
		if req.BookRange == "" {
			logx.CtxInfo(ctx, "book range missing, skip answer key")
			return ""
		}
		categoryKey, lessonKey = consts.ReadingWritingAnswerCategory, req.BookRange
	default:
		return ""
	}

	objectName := s.lookupAnswerFile(ctx, req.GradeLevel, categoryKey)
	if objectName == "" {
		logx.CtxInfo(ctx, "no answer key file for grade=%s category=%s", req.GradeLevel, categoryKey)
		return ""
	}

	doc, err := s.Store.ReadText(ctx, s.answerPrefix()+objectName)
	if err != nil {
		logx.CtxError(ctx, "read answer key %s failed: %v", objectName, err)
		return ""
	}

	var lessons map[string]json.RawMessage
	if err = json.Unmarshal([]byte(doc), &lessons); err != nil {
		logx.CtxError(ctx, "answer key %s is not valid json: %v", objectName, err)
		return ""
	}
	lesson, ok := lessons[lessonKey]
	if !ok {
		logx.CtxInfo(ctx, "lesson %s not found in %s", lessonKey, objectName)
		return ""
	}

	var v any
	if err = json.Unmarshal(lesson, &v); err != nil {
		return ""
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(pretty)
}

// lookupAnswerFile 先查 MySQL 目录，目录未配置或未命中时回落到内置映射
func (s *GradingService) lookupAnswerFile(ctx context.Context, gradeLevel, categoryKey string) string {
	if s.AnswerKeys != nil {
		objectName, err := s.AnswerKeys.Lookup(ctx, gradeLevel, categoryKey)
		if err == nil {
			return objectName
		}
		logx.CtxInfo(ctx, "answer key catalog miss for %s%s: %v", gradeLevel, categoryKey, err)
	}
	return consts.AnswerKeyFiles[gradeLevel+categoryKey]
}

func (s *GradingService) promptPrefix() string {
	if s.Config.Storage.PromptPrefix != "" {
		return s.Config.Storage.PromptPrefix
	}
	return consts.DefaultPromptPrefix
}

func (s *GradingService) answerPrefix() string {
	if s.Config.Storage.AnswerPrefix != "" {
		return s.Config.Storage.AnswerPrefix
	}
	return consts.DefaultAnswerPrefix
}

// renderPrompt 从存储加载该类型的模板并做占位符替换
func (s *GradingService) renderPrompt(ctx context.Context, req *grading.GradeReq, spec consts.CategorySpec,
	content, standardAnswer, answerKeyJSON string) (string, error) {
	tmpl, err := s.Store.ReadText(ctx, s.promptPrefix()+spec.TemplateFile)
	if err != nil {
		logx.CtxError(ctx, "load template %s failed: %v", spec.TemplateFile, err)
		return "", consts.ErrTemplateLoad.WithDetail("%s", spec.TemplateFile)
	}

	return util.RenderTemplate(tmpl, map[string]string{
		"Book":                                 req.BookRange,
		"learnsheet":                           req.LearnSheets,
		"grade_level":                          req.GradeLevel,
		"submission_type":                      req.Category,
		"essay_content":                        content,
		"standard_answer_if_any":               standardAnswer,
		"scoring_instructions_if_any":          req.ScoringInstructions,
		"json_format_example_str":              grading.FormatExample(req.Category),
		"current_lesson_standard_answers_json": answerKeyJSON,
	}), nil
}

// saveRecord 异步留痕，失败只记日志不影响返回
func (s *GradingService) saveRecord(ctx context.Context, meta *basic.UserMeta, req *grading.GradeReq, content string, result *grading.Result) {
	if s.RecordMapper == nil {
		return
	}
	response, err := json.Marshal(result)
	if err != nil {
		logx.CtxError(ctx, "marshal result failed: %v", err)
		return
	}

	r := &record.Record{
		UserId:     meta.GetUserId(),
		Category:   req.Category,
		GradeLevel: req.GradeLevel,
		Content:    content,
		Response:   string(response),
		Status:     0,
		CreateTime: time.Now(),
	}
	gopool.CtxGo(ctx, func() {
		insertCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.RecordMapper.Insert(insertCtx, r); err != nil {
			logx.Error("record insert failed: %v", err)
		}
	})
}

// GetGradeLogs 分页查询当前用户的批改记录
func (s *GradingService) GetGradeLogs(ctx context.Context, req *grading.GetLogsReq) (*grading.GetLogsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	page, pageSize := int64(1), consts.PageSize
	if opts := req.PaginationOptions; opts != nil {
		if opts.Page != nil && *opts.Page > 0 {
			page = *opts.Page
		}
		if opts.Limit != nil && *opts.Limit > 0 {
			pageSize = *opts.Limit
		}
	}

	data, total, err := s.RecordMapper.FindManyByUser(ctx, meta.GetUserId(), page, pageSize)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	var logs []*grading.Log
	for _, val := range data {
		l := &grading.Log{}
		if err = copier.Copy(l, val); err != nil {
			return nil, err
		}
		l.Id = val.ID.Hex()
		l.CreateTime = val.CreateTime.Unix()
		logs = append(logs, l)
	}

	return &grading.GetLogsResp{
		Total: total,
		Logs:  logs,
	}, nil
}
