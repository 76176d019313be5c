package config

// Llm DeepSeek兼容的chat-completions服务配置
type Llm struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Model   string `json:"model" mapstructure:"model" yaml:"model"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

// Prompt 系统提示词配置, 为空时使用enum中的默认值
type Prompt struct {
	Default        string `json:"default" mapstructure:"default" yaml:"default"`
	Recommendation string `json:"recommendation" mapstructure:"recommendation" yaml:"recommendation"`
}
