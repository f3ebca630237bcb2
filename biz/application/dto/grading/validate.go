package grading

import (
	"errors"
	"strings"

	"essay-grader/biz/infrastructure/consts"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Validate 把已解析的 JSON 结构校验并装配成提交类型指定的结果。
// 必要字段缺失、类型不符、分数联合字段非法都会返回 ErrSchemaViolation，
// 错误信息里带上第一个出问题的字段名。
func Validate(kind consts.SchemaKind, payload any) (*Result, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, consts.ErrSchemaViolation.WithDetail("頂層應為 JSON 物件")
	}

	switch kind {
	case consts.SchemaParagraph:
		var out ParagraphResult
		if err := decodeStrict(m, &out); err != nil {
			return nil, err
		}
		return &Result{Kind: kind, Paragraph: &out}, nil
	case consts.SchemaQuiz:
		var out QuizResult
		if err := decodeStrict(m, &out); err != nil {
			return nil, err
		}
		return &Result{Kind: kind, Quiz: &out}, nil
	case consts.SchemaWorksheet:
		var out WorksheetResult
		if err := decodeStrict(m, &out); err != nil {
			return nil, err
		}
		if err := checkScoreBreakdown(&out); err != nil {
			return nil, err
		}
		return &Result{Kind: kind, Worksheet: &out}, nil
	}
	return nil, consts.ErrSchemaViolation.WithDetail("未知的結果結構")
}

// 允许缺省的字段（WorksheetResult 的两个总结性字段）
var optionalFields = map[string]struct{}{
	"overall_feedback_title": {},
	"overall_feedback":       {},
}

// decodeStrict 按字段名解码到结果结构，并检查必要字段是否齐全。
// mapstructure 不做字符串到数字的弱类型转换，类型错误会带字段路径返回。
func decodeStrict(m map[string]any, out any) error {
	md := new(mapstructure.Metadata)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   out,
		Metadata: md,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(m); err != nil {
		detail := err.Error()
		var merr *mapstructure.Error
		if errors.As(err, &merr) && len(merr.Errors) > 0 {
			detail = merr.Errors[0]
		}
		return consts.ErrSchemaViolation.WithDetail("%s", detail)
	}
	for _, path := range md.Unset {
		if isOptionalField(path) {
			continue
		}
		return consts.ErrSchemaViolation.WithDetail("缺少必要欄位 %s", path)
	}
	return nil
}

// path 形如 sections[0].questions_feedback[1].comment
func isOptionalField(path string) bool {
	last := path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		last = path[i+1:]
	}
	_, ok := optionalFields[last]
	return ok
}

// checkScoreBreakdown 校验分数联合字段：字符串或数字皆可，其余类型拒绝
func checkScoreBreakdown(w *WorksheetResult) error {
	for i := range w.ScoreBreakdownTable {
		item := &w.ScoreBreakdownTable[i]
		if !scoreOK(item.MaxScore) {
			return consts.ErrSchemaViolation.WithDetail("欄位 score_breakdown_table[%d].max_score 應為字串或數字", i)
		}
		if !scoreOK(item.ObtainedScore) {
			return consts.ErrSchemaViolation.WithDetail("欄位 score_breakdown_table[%d].obtained_score 應為字串或數字", i)
		}
	}
	return nil
}

func scoreOK(v any) bool {
	switch v.(type) {
	case string:
		return true
	case bool, nil:
		// cast 会把布尔转成数字，这里要先排除
		return false
	}
	_, err := cast.ToFloat64E(v)
	return err == nil
}
