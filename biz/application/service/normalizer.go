package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"essay-grader/biz/application/dto/grading"
	"essay-grader/biz/infrastructure/consts"
	"essay-grader/biz/infrastructure/gemini"
)

// 模型偶尔会无视 responseMimeType 把 JSON 包进 markdown 代码块里
var jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// ExtractJSONBody 剥掉 ```json 围栏，没有围栏时原样返回去除首尾空白的文本。
// 对已剥过的文本再调用一次结果不变。
func ExtractJSONBody(text string) string {
	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// NormalizeResponse 把模型的原始回应逐级校验成指定结构的批改结果。
// 失败路径彼此可用 errors.Is 区分：
// 无候选 ErrModelBlocked、空文本 ErrEmptyResponse、非 JSON 形状
// ErrInvalidJSONShape、解析失败 ErrMalformedJSON、结构不符 ErrSchemaViolation。
// 纯函数，不做任何 IO。
func NormalizeResponse(kind consts.SchemaKind, raw *gemini.RawResponse) (*grading.Result, error) {
	if raw == nil || !raw.HasCandidate {
		reason := consts.UnknownBlockReason
		if raw != nil && raw.BlockReason != "" {
			reason = raw.BlockReason
		}
		return nil, consts.ErrModelBlocked.WithDetail("原因：%s", reason)
	}

	text := strings.Join(raw.Fragments, "")
	if text == "" {
		return nil, consts.ErrEmptyResponse
	}

	cleaned := ExtractJSONBody(text)
	if cleaned == "" || (cleaned[0] != '{' && cleaned[0] != '[') {
		return nil, consts.ErrInvalidJSONShape
	}

	var payload any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, consts.ErrMalformedJSON.WithDetail("%s", err)
	}

	return grading.Validate(kind, payload)
}
