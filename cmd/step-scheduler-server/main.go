package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pgy/step-scheduler/pkg/api"
	"github.com/pgy/step-scheduler/pkg/config"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "./configs/scheduler.yaml", "调度器配置文件路径")
	host := flag.String("host", "", "监听地址（覆盖配置文件）")
	port := flag.Int("port", 0, "监听端口（覆盖配置文件）")
	flag.Parse()

	log.Printf("Step Scheduler Server v%s", Version)

	// 1. 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("配置文件不可用（%v），使用默认配置", err)
		cfg = config.DefaultConfig()
	}
	if *host != "" {
		cfg.StepScheduler.Server.Host = *host
	}
	if *port > 0 {
		cfg.StepScheduler.Server.Port = *port
	}

	// 2. 创建API服务器
	serverConfig := api.ServerConfig{
		Host:         cfg.StepScheduler.Server.Host,
		Port:         cfg.StepScheduler.Server.Port,
		ReadTimeout:  cfg.StepScheduler.Server.ReadTimeout,
		WriteTimeout: cfg.StepScheduler.Server.WriteTimeout,
	}

	apiServer := api.NewAPIServer(serverConfig, Version)

	// 3. 在goroutine中启动API服务器
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API服务器错误: %v", err)
		}
	}()

	log.Printf("✅ Step Scheduler Server started on %s", apiServer.Addr())

	// 4. 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 5. 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConfig.WriteTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("关闭API服务器失败: %v", err)
	}

	log.Println("✅ 服务已停止")
}
