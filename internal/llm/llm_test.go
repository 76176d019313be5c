package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitee.com/taoJie_1/shop-advisor/model/config"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// newTestClient 构建指向本地假LLM服务的客户端
func newTestClient(t *testing.T, handler http.HandlerFunc) Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	clientConfig := openai.DefaultConfig("test-key")
	clientConfig.BaseURL = srv.URL + "/v1"
	clientConfig.HTTPClient = &http.Client{Timeout: 2 * time.Second}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return NewClient(log, openai.NewClientWithConfig(clientConfig), &config.Llm{
		Url:     srv.URL + "/v1",
		Model:   "deepseek-chat",
		Timeout: 2,
	})
}

func TestChatCompletionSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"你好，我是AI助手。"}}]}`))
	})

	answer, err := c.ChatCompletion(context.Background(), "系统提示词", "你好")
	if err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if answer != "你好，我是AI助手。" {
		t.Errorf("answer = %q", answer)
	}
}

// 上游非200应归类为ProviderError并携带上游状态码
func TestChatCompletionProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Insufficient Balance","type":"invalid_request_error"}}`))
	})

	_, err := c.ChatCompletion(context.Background(), "系统提示词", "你好")
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("期望ProviderError, 实际 %T: %v", err, err)
	}
	if provErr.Status != http.StatusPaymentRequired {
		t.Errorf("Status = %d, 期望 %d", provErr.Status, http.StatusPaymentRequired)
	}
}

// 上游200但没有choices视为响应结构异常
func TestChatCompletionMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.ChatCompletion(context.Background(), "系统提示词", "你好")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("期望ErrMalformedResponse, 实际: %v", err)
	}
}

// 上游200但内容为空
func TestChatCompletionEmptyContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":""}}]}`))
	})

	_, err := c.ChatCompletion(context.Background(), "系统提示词", "你好")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("期望ErrEmptyCompletion, 实际: %v", err)
	}
}

// 超过客户端超时时间应归类为Timeout
func TestChatCompletionTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	})

	_, err := c.ChatCompletion(context.Background(), "系统提示词", "你好")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("期望ErrTimeout, 实际: %v", err)
	}
}

// 连接失败归类为TransportError
func TestChatCompletionTransportError(t *testing.T) {
	clientConfig := openai.DefaultConfig("test-key")
	clientConfig.BaseURL = "http://127.0.0.1:1/v1" //不可达端口
	clientConfig.HTTPClient = &http.Client{Timeout: time.Second}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	c := NewClient(log, openai.NewClientWithConfig(clientConfig), &config.Llm{Model: "deepseek-chat"})

	_, err := c.ChatCompletion(context.Background(), "系统提示词", "你好")
	if !errors.Is(err, ErrTransport) {
		t.Errorf("期望ErrTransport, 实际: %v", err)
	}
}
