package common

// ChatRequest 对应 /api/chat 的请求体
type ChatRequest struct {
	Message      string `json:"message"`
	SystemPrompt string `json:"system_prompt"` // 可选, 为空时使用默认系统提示词
}

// RecommendRequest 对应 /api/recommend 的请求体
type RecommendRequest struct {
	Preference  string `json:"preference"`
	ProductType string `json:"product_type"` // "phone" 或 "laptop", 其余值按 "phone" 处理
}
