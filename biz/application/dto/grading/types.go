package grading

import (
	"encoding/json"
	"errors"

	"essay-grader/biz/application/dto/basic"
	"essay-grader/biz/infrastructure/consts"
)

// ImageFile 一张已读入内存的上传图片
type ImageFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

// GradeReq 批改请求，由控制器从 multipart 表单装配
type GradeReq struct {
	Category            string
	GradeLevel          string
	Text                string
	BookRange           string
	LearnSheets         string
	WorksheetCategory   string
	StandardAnswerText  string
	ScoringInstructions string
	StudentImages       []ImageFile
	AnswerImages        []ImageFile
}

// GetLogsReq 查询批改记录
type GetLogsReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type Log struct {
	Id         string `json:"id"`
	Category   string `json:"category"`
	GradeLevel string `json:"gradeLevel"`
	Content    string `json:"content"`
	Response   string `json:"response"`
	CreateTime int64  `json:"createTime"`
}

type GetLogsResp struct {
	Total int64  `json:"total"`
	Logs  []*Log `json:"logs"`
}

// ---------------------------------------------------------------------------
// 批改结果的四种输出结构。學習單批改 与 讀寫習作評分 共用 WorksheetResult。
// mapstructure 标签与 json 一致，校验时按 json 名解码。

type ErrorAnalysisItem struct {
	OriginalSentence string `json:"original_sentence" mapstructure:"original_sentence"`
	ErrorType        string `json:"error_type" mapstructure:"error_type"`
	ErrorContent     string `json:"error_content" mapstructure:"error_content"`
	Suggestion       string `json:"suggestion" mapstructure:"suggestion"`
}

type RubricItem struct {
	Item    string `json:"item" mapstructure:"item"`
	Score   int    `json:"score" mapstructure:"score"`
	Comment string `json:"comment" mapstructure:"comment"`
}

type RubricEvaluation struct {
	StructurePerformance []RubricItem `json:"structure_performance" mapstructure:"structure_performance"`
	ContentLanguage      []RubricItem `json:"content_language" mapstructure:"content_language"`
}

type OverallAssessment struct {
	TotalScore     string `json:"total_score" mapstructure:"total_score"`
	SuggestedGrade string `json:"suggested_grade" mapstructure:"suggested_grade"`
	GradeBasis     string `json:"grade_basis" mapstructure:"grade_basis"`
	GeneralComment string `json:"general_comment" mapstructure:"general_comment"`
}

type ParagraphResult struct {
	SubmissionType         string              `json:"submissionType" mapstructure:"submissionType"`
	ErrorAnalysis          []ErrorAnalysisItem `json:"error_analysis" mapstructure:"error_analysis"`
	RubricEvaluation       RubricEvaluation    `json:"rubric_evaluation" mapstructure:"rubric_evaluation"`
	OverallAssessment      OverallAssessment   `json:"overall_assessment" mapstructure:"overall_assessment"`
	ModelParagraph         string              `json:"model_paragraph" mapstructure:"model_paragraph"`
	TeacherSummaryFeedback string              `json:"teacher_summary_feedback" mapstructure:"teacher_summary_feedback"`
}

type ErrorAnalysisTableItem struct {
	OriginalSentence   string `json:"original_sentence" mapstructure:"original_sentence"`
	ErrorType          string `json:"error_type" mapstructure:"error_type"`
	ProblemDescription string `json:"problem_description" mapstructure:"problem_description"`
	Suggestion         string `json:"suggestion" mapstructure:"suggestion"`
}

type SummaryFeedback struct {
	SummaryFeedback       string `json:"summary_feedback" mapstructure:"summary_feedback"`
	TotalScoreDisplay     string `json:"total_score_display" mapstructure:"total_score_display"`
	SuggestedGradeDisplay string `json:"suggested_grade_display" mapstructure:"suggested_grade_display"`
	GradeBasisDisplay     string `json:"grade_basis_display" mapstructure:"grade_basis_display"`
}

type RevisedDemonstration struct {
	OriginalWithErrorsHighlighted string `json:"original_with_errors_highlighted" mapstructure:"original_with_errors_highlighted"`
	SuggestedRevision             string `json:"suggested_revision" mapstructure:"suggested_revision"`
}

type QuizResult struct {
	SubmissionType            string                   `json:"submissionType" mapstructure:"submissionType"`
	ErrorAnalysisTable        []ErrorAnalysisTableItem `json:"error_analysis_table" mapstructure:"error_analysis_table"`
	SummaryFeedbackForStudent SummaryFeedback          `json:"summary_feedback_for_student" mapstructure:"summary_feedback_for_student"`
	RevisedDemonstration      RevisedDemonstration     `json:"revised_demonstration" mapstructure:"revised_demonstration"`
	PositiveLearningFeedback  string                   `json:"positive_learning_feedback" mapstructure:"positive_learning_feedback"`
}

type QuestionFeedback struct {
	QuestionNumber      string `json:"question_number" mapstructure:"question_number"`
	StudentAnswer       string `json:"student_answer" mapstructure:"student_answer"`
	IsCorrect           string `json:"is_correct" mapstructure:"is_correct"`
	Comment             string `json:"comment" mapstructure:"comment"`
	CorrectAnswer       string `json:"correct_answer" mapstructure:"correct_answer"`
	AnswerSourceQuery   string `json:"answer_source_query" mapstructure:"answer_source_query"`
	AnswerSourceContent string `json:"answer_source_content" mapstructure:"answer_source_content"`
}

type SectionFeedback struct {
	SectionTitle      string             `json:"section_title" mapstructure:"section_title"`
	QuestionsFeedback []QuestionFeedback `json:"questions_feedback" mapstructure:"questions_feedback"`
	SectionSummary    string             `json:"section_summary" mapstructure:"section_summary"`
}

// ScoreBreakdownItem 的分数字段允许字符串或数字，校验时单独检查
type ScoreBreakdownItem struct {
	Section       string `json:"section" mapstructure:"section"`
	MaxScore      any    `json:"max_score" mapstructure:"max_score"`
	ObtainedScore any    `json:"obtained_score" mapstructure:"obtained_score"`
}

type WorksheetResult struct {
	SubmissionType           string               `json:"submissionType" mapstructure:"submissionType"`
	Title                    string               `json:"title" mapstructure:"title"`
	Sections                 []SectionFeedback    `json:"sections" mapstructure:"sections"`
	OverallScoreSummaryTitle string               `json:"overall_score_summary_title" mapstructure:"overall_score_summary_title"`
	ScoreBreakdownTable      []ScoreBreakdownItem `json:"score_breakdown_table" mapstructure:"score_breakdown_table"`
	FinalTotalScoreText      string               `json:"final_total_score_text" mapstructure:"final_total_score_text"`
	FinalSuggestedGradeTitle string               `json:"final_suggested_grade_title" mapstructure:"final_suggested_grade_title"`
	FinalSuggestedGradeText  string               `json:"final_suggested_grade_text" mapstructure:"final_suggested_grade_text"`
	OverallFeedbackTitle     *string              `json:"overall_feedback_title,omitempty" mapstructure:"overall_feedback_title"`
	OverallFeedback          *string              `json:"overall_feedback,omitempty" mapstructure:"overall_feedback"`
}

// Result 批改结果的带判别式联合：每次只有一个分支非空，
// 分支由提交类型的分发表决定
type Result struct {
	Kind      consts.SchemaKind `json:"-"`
	Paragraph *ParagraphResult  `json:"-"`
	Quiz      *QuizResult       `json:"-"`
	Worksheet *WorksheetResult  `json:"-"`
}

// MarshalJSON 只序列化当前生效的分支
func (r *Result) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case consts.SchemaParagraph:
		return json.Marshal(r.Paragraph)
	case consts.SchemaQuiz:
		return json.Marshal(r.Quiz)
	case consts.SchemaWorksheet:
		return json.Marshal(r.Worksheet)
	}
	return nil, errors.New("grading: result has no active variant")
}
