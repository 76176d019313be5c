package user

import (
	"context"
	"strings"
	"testing"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/model/enum"
)

// captureLlm 记录发送给底层客户端的提示词与内容
type captureLlm struct {
	systemPrompt string
	content      string
}

func (c *captureLlm) ChatCompletion(ctx context.Context, systemPrompt string, content string) (string, error) {
	c.systemPrompt = systemPrompt
	c.content = content
	return "ok", nil
}

func TestChatUsesDefaultPrompt(t *testing.T) {
	global.Config.Prompt.Default = "默认提示词"
	capture := &captureLlm{}
	s := &LlmService{llmClient: capture}

	if _, err := s.Chat(context.Background(), "你好", ""); err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if capture.systemPrompt != "默认提示词" {
		t.Errorf("systemPrompt = %q", capture.systemPrompt)
	}

	if _, err := s.Chat(context.Background(), "你好", "自定义提示词"); err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if capture.systemPrompt != "自定义提示词" {
		t.Errorf("systemPrompt = %q, 自定义提示词应覆盖默认值", capture.systemPrompt)
	}
}

// 提示词未声明规范格式时追加格式要求
func TestRecommendAppendsFormatRequirement(t *testing.T) {
	global.Config.Prompt.Recommendation = "你是一个电子产品推荐助手。"
	capture := &captureLlm{}
	s := &LlmService{llmClient: capture}

	if _, err := s.Recommend(context.Background(), "预算3000元", enum.ProductTypePhone); err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if !strings.Contains(capture.systemPrompt, "重要提示：请按照以下格式返回推荐结果") {
		t.Errorf("应追加格式要求, systemPrompt = %q", capture.systemPrompt)
	}
	if capture.content != "请根据以上要求为我推荐phone，我的需求是：预算3000元" {
		t.Errorf("content = %q", capture.content)
	}
}

// 已声明规范格式的提示词保持原样
func TestRecommendKeepsDeclaredFormat(t *testing.T) {
	prompt := "你是推荐助手，结果请以规范格式返回。"
	global.Config.Prompt.Recommendation = prompt
	capture := &captureLlm{}
	s := &LlmService{llmClient: capture}

	if _, err := s.Recommend(context.Background(), "预算3000元", enum.ProductTypeLaptop); err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if capture.systemPrompt != prompt {
		t.Errorf("systemPrompt被改写: %q", capture.systemPrompt)
	}
	if !strings.Contains(capture.content, "laptop") {
		t.Errorf("content应包含产品类型: %q", capture.content)
	}
}
