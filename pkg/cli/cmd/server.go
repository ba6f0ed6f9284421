package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgy/step-scheduler/pkg/api"
	"github.com/pgy/step-scheduler/pkg/cli/output"
	"github.com/pgy/step-scheduler/pkg/config"
)

var (
	serverHost       string
	serverPort       int
	serverConfigPath string
)

// serverCmd server子命令
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "HTTP API服务管理命令",
}

// serverStartCmd 启动HTTP API服务
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "启动HTTP API服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if serverConfigPath != "" {
			loaded, err := config.LoadConfig(serverConfigPath)
			if err != nil {
				output.Error("加载配置失败: %v", err)
				return err
			}
			cfg = loaded
		}

		// 命令行参数覆盖配置文件
		if cmd.Flags().Changed("host") {
			cfg.StepScheduler.Server.Host = serverHost
		}
		if cmd.Flags().Changed("port") {
			cfg.StepScheduler.Server.Port = serverPort
		}

		serverConfig := api.ServerConfig{
			Host:         cfg.StepScheduler.Server.Host,
			Port:         cfg.StepScheduler.Server.Port,
			ReadTimeout:  cfg.StepScheduler.Server.ReadTimeout,
			WriteTimeout: cfg.StepScheduler.Server.WriteTimeout,
		}

		apiServer := api.NewAPIServer(serverConfig, Version)

		// 在goroutine中启动API服务器
		go func() {
			if err := apiServer.Start(); err != nil {
				log.Printf("API服务器错误: %v", err)
			}
		}()

		output.Success("Step Scheduler Server started on %s", apiServer.Addr())

		// 等待中断信号
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("正在关闭服务...")

		// 优雅关闭
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConfig.WriteTimeout)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("关闭API服务器失败: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	serverStartCmd.Flags().StringVar(&serverHost, "host", "0.0.0.0", "监听地址")
	serverStartCmd.Flags().IntVar(&serverPort, "port", 8080, "监听端口")
	serverStartCmd.Flags().StringVarP(&serverConfigPath, "config", "c", "", "配置文件路径")

	serverCmd.AddCommand(serverStartCmd)
}
