package user

import (
	"net/http"
	"testing"

	"gitee.com/taoJie_1/shop-advisor/model/enum"
)

// 可被解析的推荐回复
const parseableReply = `根据您的需求"轻薄便携"，为您推荐以下laptop产品：两款轻薄本各有侧重。

1. 产品型号: 联想小新Pro 16 2024
   价格区间: 5000~6000元
   处理器: R7-8845H
   内存: 32GB LPDDR5X
   适用人群: 办公人群

2. 产品型号: 华硕灵耀14 2024
   价格区间: 6000~7000元
   处理器: Ultra 7 155H
   内存: 32GB
   适用人群: 商务人群`

func TestHandleRecommendStructured(t *testing.T) {
	stub := &relayStub{answer: parseableReply}
	engine := setupApiRouter(t, stub)

	w := postJSON(engine, "/api/recommend", `{"preference":"轻薄便携","product_type":"laptop"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)

	recs, ok := body["recommendations"].([]interface{})
	if !ok || len(recs) != 2 {
		t.Fatalf("recommendations = %v", body["recommendations"])
	}
	if body["product_type"] != "laptop" {
		t.Errorf("product_type = %v, 期望回显 laptop", body["product_type"])
	}
	if body["intro"] != "两款轻薄本各有侧重。" {
		t.Errorf("intro = %v", body["intro"])
	}
}

// 无法解析时回退为 {"message": 原始文本}, 状态码仍为200
func TestHandleRecommendFallbackRawText(t *testing.T) {
	raw := "很抱歉，请告诉我更多关于预算和用途的信息。"
	stub := &relayStub{answer: raw}
	engine := setupApiRouter(t, stub)

	w := postJSON(engine, "/api/recommend", `{"preference":"随便推荐"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != raw {
		t.Errorf("message = %v, 期望原始文本", body["message"])
	}
	if _, exists := body["recommendations"]; exists {
		t.Error("回退响应不应包含recommendations")
	}
}

// 非法的产品类型按phone处理
func TestHandleRecommendNormalizesProductType(t *testing.T) {
	stub := &relayStub{answer: "随便说点什么"}
	engine := setupApiRouter(t, stub)

	tests := []struct {
		body string
		want enum.ProductType
	}{
		{`{"preference":"拍照好","product_type":"tablet"}`, enum.ProductTypePhone},
		{`{"preference":"拍照好"}`, enum.ProductTypePhone},
		{`{"preference":"拍照好","product_type":"laptop"}`, enum.ProductTypeLaptop},
	}
	for _, tt := range tests {
		w := postJSON(engine, "/api/recommend", tt.body)
		if w.Code != http.StatusOK {
			t.Fatalf("状态码 = %d", w.Code)
		}
		if stub.productType() != tt.want {
			t.Errorf("body %s: 产品类型 = %q, 期望 %q", tt.body, stub.productType(), tt.want)
		}
	}
}

// 空需求必须在任何对外调用之前被拦截
func TestHandleRecommendEmptyPreference(t *testing.T) {
	stub := &relayStub{}
	engine := setupApiRouter(t, stub)

	w := postJSON(engine, "/api/recommend", `{"preference":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("状态码 = %d, 期望 400", w.Code)
	}
	body := decodeBody(t, w)
	if _, ok := body["error"]; !ok {
		t.Error("响应应包含error键")
	}
	if stub.calls() != 0 {
		t.Errorf("不应发起对外调用, 实际调用 %d 次", stub.calls())
	}
}

func TestHandleRecommendMissingBody(t *testing.T) {
	stub := &relayStub{}
	engine := setupApiRouter(t, stub)

	w := postJSON(engine, "/api/recommend", ``)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("状态码 = %d, 期望 400", w.Code)
	}
}
