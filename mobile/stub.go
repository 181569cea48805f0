//go:build !mobile

// stub.go - 桌面构建占位
//
// 不带 -tags mobile 时 mobile/data 目录不存在，embed 无法编译，
// 因此绑定入口只在移动端构建中出现；这里只保留导出符号。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
