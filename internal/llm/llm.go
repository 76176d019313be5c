package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"gitee.com/taoJie_1/shop-advisor/model/config"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// 中转层错误分类, 由controller统一映射为HTTP状态码
var (
	// 上游返回200但choices内容为空
	ErrEmptyCompletion = errors.New("AI返回了空内容")
	// 上游返回200但响应结构不符合预期
	ErrMalformedResponse = errors.New("AI返回数据格式不正确")
	// 网络层超时
	ErrTimeout = errors.New("API调用超时")
	// 其他网络层失败
	ErrTransport = errors.New("网络请求错误")
)

// ProviderError 上游返回非200, 携带上游的状态码和错误内容
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("API调用失败: %d - %s", e.Status, e.Body)
}

// client 封装与LLM交互的底层逻辑
type client struct {
	log       *logrus.Logger
	llmClient *openai.Client
	llmConfig *config.Llm
}

type Service interface {
	// 调用LLM进行一次对话, 返回首个choice的内容
	ChatCompletion(ctx context.Context, systemPrompt string, content string) (string, error)
}

// NewClient 创建一个新的LLM客户端实例, 并通过依赖注入初始化
func NewClient(log *logrus.Logger, llmClient *openai.Client, llmConfig *config.Llm) Service {
	return &client{
		log:       log,
		llmClient: llmClient,
		llmConfig: llmConfig,
	}
}

func (c *client) ChatCompletion(ctx context.Context, systemPrompt string, content string) (string, error) {
	if c.llmClient == nil || c.llmConfig == nil || c.llmConfig.Model == "" {
		return "", errors.New("LLM客户端未初始化")
	}

	req := openai.ChatCompletionRequest{
		Model: c.llmConfig.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content,
			},
		},
		Stream: false,
	}

	resp, err := c.llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		classified := c.classify(err)
		c.log.Errorf("LLM API调用失败: %v", classified)
		return "", classified
	}

	if len(resp.Choices) == 0 {
		c.log.Errorf("AI返回数据格式不正确: %+v", resp)
		return "", ErrMalformedResponse
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", ErrEmptyCompletion
	}
	return answer, nil
}

// classify 把SDK与网络层错误归入中转层的错误分类
func (c *client) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ProviderError{Status: reqErr.HTTPStatusCode, Body: reqErr.Error()}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
