package task

// Manager 后台任务管理器
type Manager struct{}

// NewManager 创建一个新的任务管理器
func NewManager() *Manager {
	return &Manager{}
}
