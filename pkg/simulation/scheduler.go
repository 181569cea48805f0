package simulation

import "time"

// FrameCallback 帧回调，参数为单调递增的时间戳
type FrameCallback func(ts time.Duration)

// FrameScheduler 宿主提供的帧回调原语（"在下一次重绘前调用"）
type FrameScheduler interface {
	RequestFrame(cb FrameCallback)
}

// FrameQueue 单线程的帧回调队列
//
// 语义与浏览器 requestAnimationFrame 相同：Flush 只执行调用前已登记的回调，
// 回调执行期间登记的新回调留到下一次 Flush。
// 游戏循环每个 Update 调用一次 Flush；测试和命令行工具用 Drive 按固定步长推进。
type FrameQueue struct {
	pending []FrameCallback
}

// NewFrameQueue 创建空队列
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame 登记一个回调
func (q *FrameQueue) RequestFrame(cb FrameCallback) {
	if cb == nil {
		return
	}
	q.pending = append(q.pending, cb)
}

// Flush 以时间戳 ts 执行当前已登记的所有回调
//
// 返回:
//   - int: 执行的回调数量
func (q *FrameQueue) Flush(ts time.Duration) int {
	batch := q.pending
	q.pending = nil

	for _, cb := range batch {
		cb(ts)
	}
	return len(batch)
}

// Pending 返回等待执行的回调数量
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Drive 从 start 开始按 step 步长反复 Flush，直到队列为空或达到 maxFlushes 次
//
// 返回:
//   - int: 实际执行的 Flush 次数
func (q *FrameQueue) Drive(start, step time.Duration, maxFlushes int) int {
	n := 0
	for ts := start; q.Pending() > 0 && n < maxFlushes; ts += step {
		q.Flush(ts)
		n++
	}
	return n
}
