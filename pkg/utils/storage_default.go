//go:build !android

package utils

// EnsureStorageDir 确保存档目录存在
// 非 Android 平台上 gdata 会自行创建目录
func EnsureStorageDir() error {
	return nil
}
