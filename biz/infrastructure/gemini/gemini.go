package gemini

import (
	"context"

	"essay-grader/biz/infrastructure/config"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// Part 发给模型的一段内容，文本或图片二选一
type Part struct {
	Text string
	Blob *Blob
}

// Blob 内联图片
type Blob struct {
	MIMEType string
	Data     []byte
}

// RawResponse 模型回应的纯数据视图，不带任何传输层对象，
// 归一化器只依赖这里的字段
type RawResponse struct {
	// HasCandidate 是否至少有一个候选
	HasCandidate bool
	// BlockReason 无候选时的阻挡原因，可能为空
	BlockReason string
	// Fragments 第一个候选的文本片段，保持模型返回顺序
	Fragments []string
}

// Engine Gemini 调用封装，进程启动时创建一次
type Engine struct {
	client      *genai.Client
	model       string
	datastore   string
	temperature float32
	topP        float32
	maxTokens   int32
}

func NewEngine(cfg *config.Config) (*Engine, error) {
	var opts []option.ClientOption
	if cfg.Gemini.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Gemini.CredentialsFile))
	}
	client, err := genai.NewClient(context.Background(), cfg.Gemini.Project, cfg.Gemini.Location, opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		client:      client,
		model:       cfg.Gemini.Model,
		datastore:   cfg.Gemini.Datastore,
		temperature: float32(cfg.Gemini.Temperature),
		topP:        float32(cfg.Gemini.TopP),
		maxTokens:   cfg.Gemini.MaxOutputTokens,
	}, nil
}

func (e *Engine) Close() error {
	return e.client.Close()
}

// retrievalTool 标准答案出处的检索工具：配置了 Vertex AI Search
// 数据存储时挂数据存储，否则回落到 Google 搜索
func retrievalTool(datastore string) *genai.Tool {
	if datastore != "" {
		return &genai.Tool{
			Retrieval: &genai.Retrieval{
				VertexAISearch: &genai.VertexAISearch{Datastore: datastore},
			},
		}
	}
	return &genai.Tool{
		GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{},
	}
}

// Generate 单轮调用，要求模型输出 JSON，关闭全部安全拦截，
// 并挂载检索工具让模型能查标准答案出处
func (e *Engine) Generate(ctx context.Context, parts []Part) (*RawResponse, error) {
	m := e.client.GenerativeModel(e.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(e.temperature),
		TopP:             ptrFloat32(e.topP),
		MaxOutputTokens:  ptrInt32(e.maxTokens),
		ResponseMIMEType: "application/json",
	}
	m.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}
	m.Tools = []*genai.Tool{retrievalTool(e.datastore)}

	gparts := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.Blob != nil {
			gparts = append(gparts, genai.Blob{MIMEType: p.Blob.MIMEType, Data: p.Blob.Data})
		} else {
			gparts = append(gparts, genai.Text(p.Text))
		}
	}

	resp, err := m.GenerateContent(ctx, gparts...)
	if err != nil {
		return nil, err
	}

	out := new(RawResponse)
	if len(resp.Candidates) == 0 {
		if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockedReasonUnspecified {
			out.BlockReason = fb.BlockReason.String()
			if fb.BlockReasonMessage != "" {
				out.BlockReason = fb.BlockReasonMessage
			}
		}
		return out, nil
	}

	out.HasCandidate = true
	cand := resp.Candidates[0]
	if cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.Fragments = append(out.Fragments, string(text))
			}
		}
	}
	return out, nil
}

func ptrFloat32(v float32) *float32 {
	return &v
}

func ptrInt32(v int32) *int32 {
	return &v
}
