package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gitee.com/taoJie_1/shop-advisor/global"
	"github.com/sashabaranov/go-openai"
)

// initLlm 根据配置构建LLM客户端并做连通性检查
// 客户端构建不会失败; 连通性检查失败只作为警告, 不阻塞启动
func (i *Initializer) initLlm() error {
	cfg := global.Config.Llm
	if cfg.Auth == "" {
		global.Log.Warn("未配置LLM API密钥 (llm.auth / DEEPSEEK_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(cfg.Auth)
	clientConfig.BaseURL = cfg.Url
	// 对外调用的硬上限, 超时归类为Timeout错误
	clientConfig.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}
	global.Llm = openai.NewClientWithConfig(clientConfig)

	reqCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := global.Llm.ListModels(reqCtx); err != nil {
		return fmt.Errorf("无法连接到LLM服务 (url: %s): %w", cfg.Url, err)
	}
	return nil
}
