package ballistics

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter 所有参数校验错误都包装该哨兵错误
// 调用者可使用 errors.Is 检查：
//
//	if errors.Is(err, ballistics.ErrInvalidParameter) {
//	    // 显示错误提示
//	}
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// InvalidParameterError 描述一个不合法的输入字段
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap 使 errors.Is(err, ErrInvalidParameter) 成立
func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}
