package systems

import (
	"log"
	"unicode"

	"github.com/decker502/projectile/pkg/components"
	"github.com/decker502/projectile/pkg/ecs"
	"github.com/decker502/projectile/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NumericRune 数值输入框的字符过滤器
// 接受数字、小数点、正负号和科学计数法的 e/E
func NumericRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E'
}

// TextInputSystem 文本输入系统
// 处理输入框的焦点切换、键盘输入、光标闪烁
//
// 焦点规则：
//   - 点击输入框获得焦点，点击其他位置失去焦点
//   - Tab 按实体创建顺序切换到下一个输入框
//   - Enter 触发 OnSubmit
type TextInputSystem struct {
	entityManager *ecs.EntityManager

	// OnSubmit 在有焦点的输入框中按下 Enter 时调用
	OnSubmit func()
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	if pressed, x, y := utils.IsPointerJustPressed(); pressed {
		s.FocusAt(float64(x), float64(y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.FocusNext()
	}

	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}

	if s.FocusedEntity() != 0 && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)) {
		s.submit()
	}
}

// FocusAt 让包含屏幕坐标 (x, y) 的输入框获得焦点，其余输入框失去焦点
//
// 返回:
//   - bool: 是否有输入框获得焦点
func (s *TextInputSystem) FocusAt(x, y float64) bool {
	var target ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if (utils.Rect{X: pos.X, Y: pos.Y, Width: input.Width, Height: input.Height}).Contains(x, y) {
			target = id
			break
		}
	}

	s.Focus(target)
	return target != 0
}

// Focus 让指定输入框获得焦点，id 为 0 时清除所有焦点
func (s *TextInputSystem) Focus(id ecs.EntityID) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		focused := entityID == id
		if focused && !input.IsFocused {
			// 获得焦点时光标移到末尾并立即显示
			input.CursorPosition = len([]rune(input.Text))
			input.CursorBlinkTimer = 0
			input.CursorVisible = true
		}
		input.IsFocused = focused
	}
}

// FocusNext 把焦点移到下一个输入框（循环），没有焦点时聚焦第一个
func (s *TextInputSystem) FocusNext() {
	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)
	if len(entities) == 0 {
		return
	}

	next := entities[0]
	current := s.FocusedEntity()
	for i, id := range entities {
		if id == current {
			next = entities[(i+1)%len(entities)]
			break
		}
	}
	s.Focus(next)
}

// FocusedEntity 返回当前获得焦点的输入框，没有时返回 0
func (s *TextInputSystem) FocusedEntity() ecs.EntityID {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.IsFocused {
			return id
		}
	}
	return 0
}

func (s *TextInputSystem) submit() {
	if s.OnSubmit != nil {
		s.OnSubmit()
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// repeatKey 第1帧立即响应，按住 30 帧后每隔 3 帧响应一次
func repeatKey(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	touched := false

	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		s.insertText(input, string(runes))
		touched = true
	}
	if repeatKey(ebiten.KeyBackspace) {
		s.deleteCharBefore(input)
		touched = true
	}
	if repeatKey(ebiten.KeyDelete) {
		s.deleteCharAfter(input)
		touched = true
	}
	if repeatKey(ebiten.KeyArrowLeft) {
		s.moveCursorLeft(input)
		touched = true
	}
	if repeatKey(ebiten.KeyArrowRight) {
		s.moveCursorRight(input)
		touched = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		touched = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		touched = true
	}

	// 有操作时光标应该可见
	if touched {
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}
}

// insertText 在光标位置插入文本
// 不被过滤器接受的字符会被丢弃
func (s *TextInputSystem) insertText(input *components.TextInputComponent, text string) {
	accept := input.AcceptRune
	if accept == nil {
		accept = unicode.IsPrint
	}

	var filtered []rune
	for _, r := range text {
		if accept(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] %s: max length reached (%d)", input.Name, input.MaxLength)
		return
	}

	pos := min(max(input.CursorPosition, 0), len(runes))
	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:pos]...)
	result = append(result, filtered...)
	result = append(result, runes[pos:]...)

	input.Text = string(result)
	input.CursorPosition = pos + len(filtered)
	input.Invalid = false
}

// deleteCharBefore 删除光标前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CursorPosition <= 0 || input.CursorPosition > len(runes) {
		return
	}

	input.Text = string(append(runes[:input.CursorPosition-1:input.CursorPosition-1], runes[input.CursorPosition:]...))
	input.CursorPosition--
	input.Invalid = false
}

// deleteCharAfter 删除光标后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CursorPosition < 0 || input.CursorPosition >= len(runes) {
		return
	}

	input.Text = string(append(runes[:input.CursorPosition:input.CursorPosition], runes[input.CursorPosition+1:]...))
	input.Invalid = false
}

// moveCursorLeft 光标左移
func (s *TextInputSystem) moveCursorLeft(input *components.TextInputComponent) {
	if input.CursorPosition > 0 {
		input.CursorPosition--
	}
}

// moveCursorRight 光标右移
func (s *TextInputSystem) moveCursorRight(input *components.TextInputComponent) {
	if input.CursorPosition < len([]rune(input.Text)) {
		input.CursorPosition++
	}
}
