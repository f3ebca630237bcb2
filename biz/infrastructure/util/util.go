package util

import "encoding/json"

// JSONF 把对象序列化成字符串，仅用于日志输出
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
