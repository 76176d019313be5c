package global

import (
	"time"

	"gitee.com/taoJie_1/shop-advisor/model/config"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// 全局变量
// 启动后均为只读, 业务逻辑禁止修改
var (
	Config *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log    *logrus.Logger
	Tz     *time.Location
	Llm    *openai.Client
)
