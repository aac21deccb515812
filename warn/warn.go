package warn

import (
	"encoding/json"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Priority 告警优先级
type Priority int

// 告警优先级常量定义
const (
	PriorityLow    Priority = iota // 低优先级
	PriorityMedium                 // 中优先级
	PriorityHigh                   // 高优先级
)

// priorityString 优先级名称映射
var priorityString = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

// String 返回优先级的字符串表示
func (p Priority) String() string {
	if name, ok := priorityString[p]; ok {
		return name
	}
	return "Unknown"
}

// Entry 单条告警记录（按主题聚合计数）
type Entry struct {
	Topic    string   `json:"topic"`    // 告警主题
	Message  string   `json:"message"`  // 告警内容
	Priority Priority `json:"priority"` // 优先级
	Count    int      `json:"count"`    // 触发次数
}

// Manager 告警管理器
// 数值退化等非致命状况通过旁路告警上报，主返回值照常产出
// 并发安全，可被多个工作协程同时记录
type Manager struct {
	mu      sync.Mutex
	logger  *zap.Logger
	entries map[string]*Entry
	order   []string // 记录主题首次出现顺序，保证输出稳定
}

// NewManager 创建告警管理器
// logger 为 nil 时在记录时取全局 zap 日志器
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger:  logger,
		entries: make(map[string]*Entry),
	}
}

// SetLogger 替换底层日志器
func (m *Manager) SetLogger(logger *zap.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

// Record 记录一条告警并写入日志
func (m *Manager) Record(topic, message string, priority Priority) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[topic]
	if !ok {
		e = &Entry{Topic: topic, Message: message, Priority: priority}
		m.entries[topic] = e
		m.order = append(m.order, topic)
	}
	e.Count++
	logger := m.logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Warn(message,
		zap.String("topic", topic),
		zap.Stringer("priority", priority),
		zap.Int("count", e.Count),
	)
}

// Count 返回指定主题的告警触发次数
func (m *Manager) Count(topic string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[topic]; ok {
		return e.Count
	}
	return 0
}

// Entries 返回全部告警记录（按首次出现顺序）
func (m *Manager) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]Entry, 0, len(m.order))
	for _, topic := range m.order {
		list = append(list, *m.entries[topic])
	}
	return list
}

// Reset 清空全部告警记录
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*Entry)
	m.order = nil
}

// Render 格式化输出全部告警记录
func (m *Manager) Render(w io.Writer) error {
	return json.NewEncoder(w).Encode(m.Entries())
}

// std 包级默认管理器
var std = NewManager(nil)

// Default 返回包级默认管理器
func Default() *Manager { return std }

// Record 使用默认管理器记录告警
func Record(topic, message string, priority Priority) {
	std.Record(topic, message, priority)
}

// Count 使用默认管理器查询告警计数
func Count(topic string) int { return std.Count(topic) }

// Reset 清空默认管理器
func Reset() { std.Reset() }
