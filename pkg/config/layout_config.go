package config

// 布局配置常量
// 本文件定义了窗口、输入表单和绘图表面的布局参数

// Window Configuration (窗口配置)
const (
	// WindowWidth 窗口逻辑宽度
	WindowWidth = SurfaceWidth

	// WindowHeight 窗口逻辑高度 = 表单高度 + 绘图表面高度
	WindowHeight = FormHeight + SurfaceHeight

	// WindowTitle 窗口标题
	WindowTitle = "Projectile Motion"
)

// Surface Configuration (绘图表面配置)
// 绘图表面位于表单下方，使用独立的离屏图像
const (
	// SurfaceWidth 默认绘图表面宽度（像素）
	SurfaceWidth = 800

	// SurfaceHeight 默认绘图表面高度（像素）
	SurfaceHeight = 600

	// SurfaceOffsetY 绘图表面在窗口中的纵向偏移
	SurfaceOffsetY = FormHeight
)

// Form Configuration (输入表单配置)
const (
	// FormHeight 表单区域高度
	FormHeight = 80.0

	// FormPaddingX 表单左边距
	FormPaddingX = 16.0

	// FormRowY 输入框所在行的纵坐标
	FormRowY = 28.0

	// InputWidth 输入框宽度
	InputWidth = 120.0

	// InputHeight 输入框高度
	InputHeight = 28.0

	// InputSpacing 相邻输入框之间的水平间距（包含标签宽度）
	InputSpacing = 190.0

	// InputLabelOffsetY 输入框标签相对输入框的纵向偏移（负值表示在上方）
	InputLabelOffsetY = -20.0

	// InputMaxLength 输入框最大字符数
	InputMaxLength = 12

	// ButtonWidth Fire 按钮宽度
	ButtonWidth = 100.0

	// ButtonHeight Fire 按钮高度
	ButtonHeight = 32.0

	// UIFontSize 表单文字字号
	UIFontSize = 16.0

	// ErrorBannerY 校验错误提示的纵坐标
	ErrorBannerY = 62.0
)
