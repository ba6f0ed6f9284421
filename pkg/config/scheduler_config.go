package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SchedulerConfig 调度器框架配置（对外导出）
type SchedulerConfig struct {
	StepScheduler struct {
		General struct {
			InstanceName string `yaml:"instance_name"`
			LogLevel     string `yaml:"log_level"`
		} `yaml:"general"`
		Server struct {
			Host         string        `yaml:"host"`
			Port         int           `yaml:"port"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
		} `yaml:"server"`
		Output struct {
			Separator string `yaml:"separator"`
		} `yaml:"output"`
	} `yaml:"step-scheduler"`
}

// LoadConfig 从YAML文件加载配置（对外导出）
func LoadConfig(path string) (*SchedulerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	cfg := &SchedulerConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// DefaultConfig 获取默认配置（对外导出）
func DefaultConfig() *SchedulerConfig {
	cfg := &SchedulerConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// GetServerAddr 获取服务器监听地址
func (c *SchedulerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.StepScheduler.Server.Host, c.StepScheduler.Server.Port)
}

// GetSeparator 获取输出分隔符
func (c *SchedulerConfig) GetSeparator() string {
	return c.StepScheduler.Output.Separator
}

// ApplyDefaults 应用默认值
func (c *SchedulerConfig) ApplyDefaults() {
	// General默认值
	if c.StepScheduler.General.InstanceName == "" {
		c.StepScheduler.General.InstanceName = "step-scheduler"
	}
	if c.StepScheduler.General.LogLevel == "" {
		c.StepScheduler.General.LogLevel = "info"
	}

	// Server默认值
	if c.StepScheduler.Server.Host == "" {
		c.StepScheduler.Server.Host = "0.0.0.0"
	}
	if c.StepScheduler.Server.Port <= 0 {
		c.StepScheduler.Server.Port = 8080
	}
	if c.StepScheduler.Server.ReadTimeout <= 0 {
		c.StepScheduler.Server.ReadTimeout = 30 * time.Second
	}
	if c.StepScheduler.Server.WriteTimeout <= 0 {
		c.StepScheduler.Server.WriteTimeout = 30 * time.Second
	}
}
