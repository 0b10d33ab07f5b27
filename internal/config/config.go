// Package config 定义typedemo的配置，用go-zero的conf加载。
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/errorx"
	"github.com/zeromicro/go-zero/core/logx"
)

// DefaultPath -f未指定时尝试读取的配置文件
const DefaultPath = "etc/typedemo.yaml"

// defaultYAML 没有配置文件时使用，日志只保留错误级别，避免打扰交互
const defaultYAML = `
Name: typedemo
Log:
  Encoding: plain
  Level: error
  Stat: false
`

type (
	Config struct {
		Name string `json:",default=typedemo"`
		Log  logx.LogConf
		// Strict 值读取失败时输出提示并结束，而不是沿用零值
		Strict bool `json:",optional"`
		// Diagnostics 运行期间启动gops agent
		Diagnostics bool `json:",optional"`
		Report      ReportConf `json:",optional"`
	}

	ReportConf struct {
		// Path 非空时把每次运行的结果写成JSON
		Path string `json:",optional"`
	}
)

// Load 从path加载配置。explicit为false且文件不存在时返回默认配置，
// 显式指定的文件不存在或内容非法都是错误。
func Load(path string, explicit bool) (Config, error) {
	var c Config
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default()
		}
		return c, errorx.Wrap(err, "stat config")
	}
	if err := conf.Load(path, &c); err != nil {
		return c, errorx.Wrap(err, "load config "+path)
	}
	return c, nil
}

// Default 返回内置默认配置
func Default() (Config, error) {
	return fromYAML(defaultYAML)
}

func fromYAML(text string) (Config, error) {
	var c Config
	if err := conf.LoadFromYamlBytes([]byte(text), &c); err != nil {
		return c, errorx.Wrap(err, "load default config")
	}
	return c, nil
}
