package user

import (
	"context"
	"fmt"

	"gitee.com/taoJie_1/shop-advisor/internal/parser"
	"gitee.com/taoJie_1/shop-advisor/model/enum"
)

type IAnalysisService interface {
	// Analyze 对设备做多维度评分, 返回各维度评分与LLM的完整评语
	Analyze(ctx context.Context, device string) (scores map[string]string, raw string, err error)
}

// AnalysisService 设备评分业务: 构建评分提示词, 中转后提取各维度评分
type AnalysisService struct {
	llmService ILlmService
}

func NewAnalysisService(llmService ILlmService) *AnalysisService {
	return &AnalysisService{llmService: llmService}
}

const scorePromptTemplate = `
你是一个专业的电子产品评测专家。请对以下设备进行专业、全面的评分：
设备名称: %s

评分要求:
1. 提供以下6个维度的评分（10分制，保留1位小数）：
   - 处理器性能
   - 电池续航
   - 屏幕显示
   - 摄像头质量
   - 系统流畅度
   - 性价比

2. 最后给出一个总体评分（10分制，保留1位小数）

3. 评分格式要求（严格按照此格式输出）：
   处理器性能: X.X分
   电池续航: X.X分
   屏幕显示: X.X分
   摄像头质量: X.X分
   系统流畅度: X.X分
   性价比: X.X分
   总评: X.X分

4. 简要说明每个评分原因（100字以内，性价比部分在150字左右，总评在250字左右，并且写明价格，对于电脑的评分，可以对特定方面如：摄像头质量等方面相对降低评分标准）
`

func (s *AnalysisService) Analyze(ctx context.Context, device string) (map[string]string, string, error) {
	prompt := fmt.Sprintf(scorePromptTemplate, device)
	answer, err := s.llmService.Chat(ctx, prompt, string(enum.SystemPromptScoring))
	if err != nil {
		return nil, "", err
	}

	return parser.ParseScores(answer), answer, nil
}
