package user

import (
	"errors"
	"strings"

	"gitee.com/taoJie_1/shop-advisor/model/common"
)

type IValidator interface {
	ValidateChatRequest(data *common.ChatRequest) error
	ValidateRecommendRequest(data *common.RecommendRequest) error
}

type Validator struct{}

// 校验在任何网络调用之前完成

func (v *Validator) ValidateChatRequest(data *common.ChatRequest) error {
	if strings.TrimSpace(data.Message) == "" {
		return errors.New("消息不能为空")
	}
	return nil
}

func (v *Validator) ValidateRecommendRequest(data *common.RecommendRequest) error {
	if strings.TrimSpace(data.Preference) == "" {
		return errors.New("请输入您的需求")
	}
	return nil
}
