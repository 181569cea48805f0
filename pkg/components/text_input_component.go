package components

// TextInputComponent 文本输入框组件
// 用于输入发射参数（速度、角度、炮管长度）
type TextInputComponent struct {
	// Name 字段标识（如 "speed"），用于校验错误时定位输入框
	Name string
	// Label 输入框上方的说明文字
	Label string

	// Text 当前输入的文本
	Text string

	// Width, Height 输入框尺寸（像素）
	Width  float64
	Height float64

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int               // 最大字符数（0 = 无限制）
	Placeholder string            // 占位符文本（输入框为空时显示）
	AcceptRune  func(r rune) bool // 字符过滤器，nil 表示接受所有可打印字符

	// IsFocused 是否获得焦点（接收键盘输入）
	IsFocused bool
	// Invalid 当前值是否被校验拒绝（渲染为红色边框）
	Invalid bool

	// PaddingLeft 文字左内边距（像素）
	PaddingLeft float64
}
