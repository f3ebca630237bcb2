package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// 统一的日志出口，包一层 logx 以保持调用点简洁

func Info(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.Errorf(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Errorf(format, v...)
}
