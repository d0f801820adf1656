package myErrors

import (
	"errors"
	"fmt"
)

// ErrEmptyPool 表示生成某个实体时，它必须引用的上游 ID 池为空。
// 对可选引用（父级、特色图）调用方直接省略该引用；只有在引用完全
// 不可省略时才返回此错误。
var ErrEmptyPool = errors.New("faker: 上游 ID 池为空")

// ErrUniqueExhausted 表示唯一值追踪器在限定尝试次数内无法再产出新的唯一值。
// 此时必须立即报错，而不是无限重试。
var ErrUniqueExhausted = errors.New("faker: 唯一值空间已耗尽")

// CreationError 表示外部内容存储（数据库插入、REST 创建、媒体下载）拒绝了
// 一次创建请求。批次执行器会捕获此类错误并降级为逐项警告，绝不中断整个批次。
type CreationError struct {
	Resource string // 实体名称，例如 "post"、"product category"
	Err      error  // 底层原因
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("创建 %s 失败: %v", e.Resource, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// NewCreationError 包装一个来自外部协作方的失败。
func NewCreationError(resource string, err error) *CreationError {
	return &CreationError{Resource: resource, Err: err}
}
