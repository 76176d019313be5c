package user

import (
	"context"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/internal/parser"
	"gitee.com/taoJie_1/shop-advisor/model/enum"
)

type IRecommendService interface {
	// Recommend 返回结构化推荐结果; 解析不出任何记录时result为nil,
	// raw为LLM原始文本, 调用方应原样返回raw
	Recommend(ctx context.Context, preference string, productType enum.ProductType) (result *parser.RecommendationResult, raw string, err error)
}

// RecommendService 推荐业务编排: 中转 -> 解析 -> 失败回退原始文本
type RecommendService struct {
	llmService ILlmService
}

func NewRecommendService(llmService ILlmService) *RecommendService {
	return &RecommendService{llmService: llmService}
}

func (s *RecommendService) Recommend(ctx context.Context, preference string, productType enum.ProductType) (*parser.RecommendationResult, string, error) {
	answer, err := s.llmService.Recommend(ctx, preference, productType)
	if err != nil {
		return nil, "", err
	}

	result, skips, ok := parser.ParseRecommendations(answer)
	for _, skip := range skips {
		global.Log.Warnf("跳过推荐片段, %s", skip)
	}
	if !ok {
		// 解析降级不是错误: 回退为原始文本, 由调用方以 {"message": raw} 返回
		global.Log.Warn("无法解析推荐结果, 返回原始文本")
		return nil, answer, nil
	}

	result.ProductType = string(productType)
	return result, "", nil
}
