package initialize

import (
	"flag"
	"fmt"
	"os"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/model/config"
	"gitee.com/taoJie_1/shop-advisor/model/enum"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "cleanlog": 清除过期日志;`)
}

// New 创建一个新的初始化器, 并加载配置
// 配置文件可选, 不存在时使用默认值和环境变量
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	explicit := configPath != ""
	if configPath == "" {
		configPath = `config.yaml`
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 沿用旧版服务的环境变量命名, 便于纯环境变量部署
	bindEnvs(v)

	if err := v.ReadInConfig(); err != nil {
		if explicit || !os.IsNotExist(err) {
			panic("读取配置失败[u9ij]: " + configPath + err.Error())
		}
	} else {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			fmt.Println("配置文件变化[djiads]: ", e.Name)
			if err := v.Unmarshal(global.Config); err != nil {
				fmt.Println(err)
			}
			handleConfig(global.Config)
		})
	}

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[dhfal]: " + err.Error())
	}

	handleConfig(global.Config)

	return &Initializer{}
}

func bindEnvs(v *viper.Viper) {
	_ = v.BindEnv("llm.auth", "DEEPSEEK_API_KEY")
	_ = v.BindEnv("llm.url", "DEEPSEEK_API_URL")
	_ = v.BindEnv("llm.model", "DEEPSEEK_MODEL")
	_ = v.BindEnv("prompt.default", "DEFAULT_SYSTEM_PROMPT")
	_ = v.BindEnv("prompt.recommendation", "RECOMMENDATION_SYSTEM_PROMPT")
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	if c.ProjectName == "" {
		c.ProjectName = "AI数码导购"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":5000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "Asia/Shanghai"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}
	if c.Llm.Url == "" {
		c.Llm.Url = "https://api.deepseek.com/v1"
	}
	if c.Llm.Model == "" {
		c.Llm.Model = "deepseek-chat"
	}
	if c.Llm.Timeout == 0 {
		c.Llm.Timeout = 60
	}
	if c.Prompt.Default == "" {
		c.Prompt.Default = string(enum.SystemPromptDefault)
	}
	if c.Prompt.Recommendation == "" {
		c.Prompt.Recommendation = string(enum.SystemPromptRecommendation)
	}
}
