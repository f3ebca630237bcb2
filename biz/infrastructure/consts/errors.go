package consts

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
	base *Errno // WithDetail 包装时指向原始错误，保证 errors.Is 可判别
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Is 使 errors.Is 能把带详情的错误匹配回原始 Errno
func (en *Errno) Is(target error) bool {
	t, ok := target.(*Errno)
	if !ok {
		return false
	}
	return en == t || en.base == t
}

// WithDetail 在保持错误类别不变的前提下附加诊断信息
func (en *Errno) WithDetail(format string, args ...any) *Errno {
	root := en
	if en.base != nil {
		root = en.base
	}
	return &Errno{
		err:  fmt.Errorf("%s: %s", root.err.Error(), fmt.Sprintf(format, args...)),
		code: root.code,
		base: root,
	}
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// HTTPStatusOf 把错误映射为对外的 HTTP 状态码：
// 入参类错误为 400，其余一律 500
func HTTPStatusOf(err error) int {
	var en *Errno
	if errors.As(err, &en) && en.code == codes.InvalidArgument {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// 入参错误，对应 HTTP 400
var (
	ErrInvalidParams       = NewErrno(codes.InvalidArgument, errors.New("參數錯誤"))
	ErrNoContent           = NewErrno(codes.InvalidArgument, errors.New("必須提供純文字輸入或圖片檔案"))
	ErrUnsupportedCategory = NewErrno(codes.InvalidArgument, errors.New("不支持的提交類型"))
)

// 下游与模型回应处理错误，对应 HTTP 500
var (
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrOCR               = NewErrno(codes.Code(1005), errors.New("OCR 識別失敗"))
	ErrTemplateLoad      = NewErrno(codes.Code(1031), errors.New("載入評分模板失敗"))
	ErrModelCall         = NewErrno(codes.Code(1032), errors.New("呼叫 AI 模型失敗"))
	ErrModelBlocked      = NewErrno(codes.Code(1033), errors.New("AI 模型未返回任何回應，可能已被安全設定阻擋"))
	ErrEmptyResponse     = NewErrno(codes.Code(1034), errors.New("AI 模型返回了空的回應內容"))
	ErrInvalidJSONShape  = NewErrno(codes.Code(1035), errors.New("AI 模型返回了無效的 JSON 內容"))
	ErrMalformedJSON     = NewErrno(codes.Code(1036), errors.New("AI 模型返回的 JSON 格式錯誤"))
	ErrSchemaViolation   = NewErrno(codes.Code(1037), errors.New("AI 模型返回的結果不符合輸出格式"))
	ErrRecord            = NewErrno(codes.Code(1038), errors.New("批改記錄寫入失敗"))
)

// 调用与并发控制错误
var (
	ErrCall    = NewErrno(codes.Unknown, errors.New("調用接口失敗，請重試"))
	ErrOneCall = NewErrno(codes.Code(3001), errors.New("同一時刻僅可以批改一份作業，請等待上一份批改結束"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("無效的 id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失敗"))
)
