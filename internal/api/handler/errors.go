package handler

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
// NLP能力不可用不在此列：它永远不对客户端暴露，相关组件直接降级输出
var (
	ErrInputMissing = errors.New("缺少必需的输入")
	ErrFileTooLarge = errors.New("上传文件超过大小限制")
	ErrParseFailure = errors.New("简历解析失败")
)

// RequestError 包含详细信息的请求处理错误
type RequestError struct {
	SubmissionUUID string
	Op             string
	BaseErr        error
	Detail         string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.SubmissionUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.SubmissionUUID)
}

func (e *RequestError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *RequestError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewInputMissingError(detail string) error {
	return &RequestError{
		Op:      "validate",
		BaseErr: ErrInputMissing,
		Detail:  detail,
	}
}

func NewFileTooLargeError(uuid, detail string) error {
	return &RequestError{
		SubmissionUUID: uuid,
		Op:             "validate",
		BaseErr:        ErrFileTooLarge,
		Detail:         detail,
	}
}

func NewParseError(uuid, detail string) error {
	return &RequestError{
		SubmissionUUID: uuid,
		Op:             "parse",
		BaseErr:        ErrParseFailure,
		Detail:         detail,
	}
}
