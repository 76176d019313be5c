package enum

import (
	"strings"
	"testing"
)

// TestRecommendationPromptConsistency 确保推荐提示词要求的参数标签与解析器
// 使用的字段词表保持严格一致, 防止修改提示词后解析器提取不到字段。
func TestRecommendationPromptConsistency(t *testing.T) {
	prompt := string(SystemPromptRecommendation)

	specFields := []string{"处理器", "显卡", "内存", "存储", "屏幕", "电池", "重量", "适用人群"}
	for _, field := range specFields {
		if !strings.Contains(prompt, field) {
			t.Errorf("推荐提示词应包含规格字段: %s", field)
		}
	}

	markers := []string{"产品型号", "价格区间", "选购建议", "根据您的需求"}
	for _, marker := range markers {
		if !strings.Contains(prompt, marker) {
			t.Errorf("推荐提示词应包含解析标记: %s", marker)
		}
	}
}

// 格式附加说明同样要求全部规格字段
func TestFormatAppendixConsistency(t *testing.T) {
	fields := []string{"产品型号", "价格区间", "处理器", "显卡", "内存", "存储", "屏幕", "电池", "重量", "适用人群", "选购建议"}
	for _, field := range fields {
		if !strings.Contains(RecommendationFormatAppendix, field) {
			t.Errorf("格式附加说明应包含: %s", field)
		}
	}
}

func TestNormalizeProductType(t *testing.T) {
	tests := []struct {
		in   string
		want ProductType
	}{
		{"phone", ProductTypePhone},
		{"laptop", ProductTypeLaptop},
		{"", ProductTypePhone},
		{"tablet", ProductTypePhone},
		{"Laptop", ProductTypePhone},
	}
	for _, tt := range tests {
		if got := NormalizeProductType(tt.in); got != tt.want {
			t.Errorf("NormalizeProductType(%q) = %q, 期望 %q", tt.in, got, tt.want)
		}
	}
}
