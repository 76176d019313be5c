package user

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/internal/llm"
	"gitee.com/taoJie_1/shop-advisor/model/enum"
)

type ILlmService interface {
	// 通用聊天中转, systemPrompt为空时使用默认系统提示词
	Chat(ctx context.Context, message string, systemPrompt string) (string, error)
	// 推荐中转, 返回LLM的原始推荐文本
	Recommend(ctx context.Context, preference string, productType enum.ProductType) (string, error)
}

// LlmService 封装与LLM相关的业务逻辑: 决定提示词, 把调用细节委托给llmClient
type LlmService struct {
	llmClient llm.Service
}

// NewLlmService 创建一个新的LlmService实例
func NewLlmService() *LlmService {
	return &LlmService{
		// 在这里进行依赖注入, 将全局对象传递给底层的llm客户端
		llmClient: llm.NewClient(
			global.Log,
			global.Llm,
			&global.Config.Llm,
		),
	}
}

func (s *LlmService) Chat(ctx context.Context, message string, systemPrompt string) (string, error) {
	if systemPrompt == "" {
		systemPrompt = global.Config.Prompt.Default
	}
	return s.llmClient.ChatCompletion(ctx, systemPrompt, message)
}

func (s *LlmService) Recommend(ctx context.Context, preference string, productType enum.ProductType) (string, error) {
	systemPrompt := global.Config.Prompt.Recommendation
	// 配置的提示词未声明规范格式时, 追加格式要求, 否则解析器无从下手
	if !strings.Contains(systemPrompt, enum.FormatRequirementMarker) {
		systemPrompt += enum.RecommendationFormatAppendix
	}

	content := fmt.Sprintf("请根据以上要求为我推荐%s，我的需求是：%s", productType, preference)
	return s.llmClient.ChatCompletion(ctx, systemPrompt, content)
}
