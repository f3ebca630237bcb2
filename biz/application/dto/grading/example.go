package grading

import (
	"encoding/json"

	"essay-grader/biz/infrastructure/consts"
)

// FormatExample 返回注入模板的 JSON 输出格式范例。
// 范例由结果结构本身序列化而来，schema 调整后范例自动跟上。
// 未知类型回落到段落写作，与原服务一致。
func FormatExample(category string) string {
	var v any
	switch category {
	case consts.CategoryQuiz:
		v = quizExample()
	case consts.CategoryWorksheet:
		v = worksheetExample(consts.CategoryWorksheet, "📋 學習單批改結果")
	case consts.CategoryReadingWriting:
		v = worksheetExample(consts.CategoryReadingWriting, "📘 讀寫習作批改結果")
	default:
		v = paragraphExample()
	}
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data)
}

func paragraphExample() *ParagraphResult {
	return &ParagraphResult{
		SubmissionType: consts.CategoryParagraph,
		ErrorAnalysis: []ErrorAnalysisItem{
			{
				OriginalSentence: "[學生原句]",
				ErrorType:        "[錯誤類型，如拼寫錯誤、文法錯誤]",
				ErrorContent:     "[具體錯誤說明]",
				Suggestion:       "[修改建議]",
			},
			{
				OriginalSentence: "[學生原句]",
				ErrorType:        "[錯誤類型]",
				ErrorContent:     "[具體錯誤說明]",
				Suggestion:       "[修改建議]",
			},
		},
		RubricEvaluation: RubricEvaluation{
			StructurePerformance: []RubricItem{
				{Item: "Task Fulfillment and Purpose", Score: 8, Comment: "[依據評分規準生成評語]"},
				{Item: "Cohesion and Coherence", Score: 7, Comment: "[依據評分規準生成評語]"},
			},
			ContentLanguage: []RubricItem{
				{Item: "Grammar and Sentence Structure", Score: 6, Comment: "[依據評分規準生成評語]"},
				{Item: "Vocabulary and Word Choice", Score: 7, Comment: "[依據評分規準生成評語]"},
			},
		},
		OverallAssessment: OverallAssessment{
			TotalScore:     "68/100",
			SuggestedGrade: "C+",
			GradeBasis:     "[依據學生年級標準評量]",
			GeneralComment: "[整體評語]",
		},
		ModelParagraph:         "[修改後的示範段落]",
		TeacherSummaryFeedback: "[給學生的總結回饋]",
	}
}

func quizExample() *QuizResult {
	return &QuizResult{
		SubmissionType: consts.CategoryQuiz,
		ErrorAnalysisTable: []ErrorAnalysisTableItem{
			{
				OriginalSentence:   "[學生原句]",
				ErrorType:          "[錯誤類型]",
				ProblemDescription: "[問題描述]",
				Suggestion:         "[修改建議]",
			},
		},
		SummaryFeedbackForStudent: SummaryFeedback{
			SummaryFeedback:       "[總結回饋]",
			TotalScoreDisplay:     "92 / 100",
			SuggestedGradeDisplay: "A-",
			GradeBasisDisplay:     "[評分依據]",
		},
		RevisedDemonstration: RevisedDemonstration{
			OriginalWithErrorsHighlighted: "[原文，錯誤處以 <strong> 標記]",
			SuggestedRevision:             "[修改後全文]",
		},
		PositiveLearningFeedback: "[正向學習回饋]",
	}
}

func worksheetExample(submissionType, title string) *WorksheetResult {
	feedbackTitle := "📚 總結性回饋建議（可複製給學生）"
	feedback := "[針對學生整體表現生成正面總結性回饋]"
	return &WorksheetResult{
		SubmissionType: submissionType,
		Title:          title,
		Sections: []SectionFeedback{
			{
				SectionTitle: "[考卷上的大標題與配分]",
				QuestionsFeedback: []QuestionFeedback{
					{
						QuestionNumber:      "1",
						StudentAnswer:       "[學生實際的答案]",
						IsCorrect:           "[✅/❌]",
						Comment:             "[根據學生答案正確或錯誤生成內容]",
						CorrectAnswer:       "[標準答案中對應題號的正確答案]",
						AnswerSourceQuery:   "[標準答案實際出處(search_tool(query=''))]",
						AnswerSourceContent: "[標準答案實際的內容]",
					},
				},
				SectionSummary: "[根據學生在此部分的表現生成總結，並依照配分計分]",
			},
		},
		OverallScoreSummaryTitle: "✅ 總分統計與等第建議",
		ScoreBreakdownTable: []ScoreBreakdownItem{
			{Section: "[考卷上的大標題]", MaxScore: "[根據考卷上的配分]", ObtainedScore: "[計算此部分得分]"},
		},
		FinalTotalScoreText:      "總分：100 學生分數：[學生得分]",
		FinalSuggestedGradeTitle: "🔺等第建議",
		FinalSuggestedGradeText:  "[根據總分生成建議等第與說明]",
		OverallFeedbackTitle:     &feedbackTitle,
		OverallFeedback:          &feedback,
	}
}
