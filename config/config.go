package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App    *App    `json:"app" yaml:"app"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
	MySQL  *MySQL  `json:"mysql" yaml:"mysql"`
	Jwt    *Jwt    `json:"jwt" yaml:"jwt"`
	Server *Server `json:"server" yaml:"server"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse %s error: %v", filename, err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
