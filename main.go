package main

import (
	"flag"
	"fmt"

	"tokenservice/internal/config"
	"tokenservice/internal/handler"
	"tokenservice/internal/svc"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/tokenservice.yaml", "the config file")

func main() {
	flag.Parse()

	// .env 中的 API_KEY 会展开到配置文件
	if err := godotenv.Load(); err != nil {
		logx.Infof("未找到 .env 文件，使用系统环境变量: %v", err)
	}

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	proc.AddShutdownListener(ctx.Close)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	fmt.Printf("🔗 %s token %s\n", c.Chain.Name, c.Token.Address)
	server.Start()
}
