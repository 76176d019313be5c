package initialize

import (
	"fmt"
	"io"
	"os"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/utils"
	"github.com/sirupsen/logrus"
)

// InitLog 初始化logrus日志库
func (i *Initializer) InitLog() error {
	if err := utils.CreateFile(global.Config.RunLogPath); err != nil {
		return fmt.Errorf("创建文件错误[oirdtug]: %w", err)
	}

	global.Log = logrus.New()
	global.Log.SetFormatter(&logrus.JSONFormatter{})
	if global.Config.Debug {
		global.Log.SetLevel(logrus.DebugLevel)
	} else {
		global.Log.SetLevel(logrus.InfoLevel)
	}

	runfile, err := os.OpenFile(global.Config.RunLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("打开文件错误[0atrpf]: %w", err)
	}
	global.Log.SetOutput(io.MultiWriter(os.Stdout, runfile))
	i.logFileCloser = runfile
	return nil
}
