package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID         = "_id"
	UserID     = "user_id"
	Status     = "status"
	CreateTime = "create_time"
)

// 提交类型，与前端约定的四种批改模式
const (
	CategoryParagraph      = "段落寫作評閱"
	CategoryQuiz           = "測驗寫作評改"
	CategoryWorksheet      = "學習單批改"
	CategoryReadingWriting = "讀寫習作評分"
)

// SchemaKind 指定该类型批改结果对应的校验结构
type SchemaKind int

const (
	SchemaParagraph SchemaKind = iota + 1
	SchemaQuiz
	SchemaWorksheet // 學習單批改 与 讀寫習作評分 共用
)

// 表单字段名
const (
	FieldCategory            = "submissionType"
	FieldGradeLevel          = "gradeLevel"
	FieldText                = "text"
	FieldBookRange           = "bookrange"
	FieldLearnSheets         = "learnsheets"
	FieldWorksheetCategory   = "worksheetCategory"
	FieldStandardAnswerText  = "standardAnswerText"
	FieldScoringInstructions = "scoringInstructions"
	FieldEssayImage          = "essayImage"
	FieldLearningSheetFile   = "learningSheetFile"
	FieldReadingWritingFile  = "readingWritingFile"
	FieldStandardAnswerImage = "standardAnswerImage"
)

// CategorySpec 按提交类型集中声明文件字段、模板与校验结构，
// 避免在各组件里散落对类型字符串的判断
type CategorySpec struct {
	Label          string     // 提交类型标识，同时是模板文件名的主干
	FileField      string     // 学生作业图片所在的表单字段
	TemplateFile   string     // 存储中的模板文件名
	Schema         SchemaKind // 结果校验结构
	NeedsAnswerKey bool       // 是否需要查找结构化标准答案
}

var categorySpecs = map[string]CategorySpec{
	CategoryParagraph: {
		Label:        CategoryParagraph,
		FileField:    FieldEssayImage,
		TemplateFile: CategoryParagraph + ".txt",
		Schema:       SchemaParagraph,
	},
	CategoryQuiz: {
		Label:        CategoryQuiz,
		FileField:    FieldEssayImage,
		TemplateFile: CategoryQuiz + ".txt",
		Schema:       SchemaQuiz,
	},
	CategoryWorksheet: {
		Label:          CategoryWorksheet,
		FileField:      FieldLearningSheetFile,
		TemplateFile:   CategoryWorksheet + ".txt",
		Schema:         SchemaWorksheet,
		NeedsAnswerKey: true,
	},
	CategoryReadingWriting: {
		Label:          CategoryReadingWriting,
		FileField:      FieldReadingWritingFile,
		TemplateFile:   CategoryReadingWriting + ".txt",
		Schema:         SchemaWorksheet,
		NeedsAnswerKey: true,
	},
}

// LookupCategory 返回提交类型的分发表项，未知类型返回 false
func LookupCategory(category string) (CategorySpec, bool) {
	spec, ok := categorySpecs[category]
	return spec, ok
}

// 讀寫習作評分的标准答案类别固定，不来自表单
const ReadingWritingAnswerCategory = "讀寫習作參考答案"

// AnswerKeyFiles 是 (年级+答案类别) 到存储文件名的静态映射，
// 配置了 MySQL 目录时仅作为兜底
var AnswerKeyFiles = map[string]string{
	"七年級全英提問學習單參考答案": "全英提問學習單參考答案(01_1下).txt",
	"八年級全英提問學習單參考答案": "全英提問學習單參考答案(01_2下).txt",
	"九年級全英提問學習單參考答案": "全英提問學習單參考答案(01_3下).txt",
	"七年級差異化學習單參考答案":  "差異化學習單參考答案(01_1下).txt",
	"八年級差異化學習單參考答案":  "差異化學習單參考答案(01_2下).txt",
	"九年級差異化學習單參考答案":  "差異化學習單參考答案(01_3下).txt",
	"七年級讀寫習作參考答案":    "113_1習作標準答案.txt",
	"八年級讀寫習作參考答案":    "113_2習作標準答案.txt",
	"九年級讀寫習作參考答案":    "113_3習作標準答案.txt",
}

// 存储路径前缀默认值
const (
	DefaultPromptPrefix = "ai_english_prompt/"
	DefaultAnswerPrefix = "ai_english_file/"
)

// 模型未提供拦截原因时的占位串
const UnknownBlockReason = "未知原因"

// http
const (
	ContentTypeJson = "application/json"
)
