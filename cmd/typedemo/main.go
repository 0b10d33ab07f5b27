// typedemo 读入一个char、int或float，输出它的4个后继值和类型大小。
//
// 运行：
//
//	go run ./cmd/typedemo
//	go run ./cmd/typedemo -f etc/typedemo.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"

	"typedemo/internal/config"
	"typedemo/internal/report"
	"typedemo/internal/typedemo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run 除了命令行参数错误和显式指定的配置文件无法加载外，总是返回0
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("typedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("f", config.DefaultPath, "the config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "f" {
			explicit = true
		}
	})

	c, err := config.Load(*configFile, explicit)
	if err != nil {
		fmt.Fprintf(stderr, "typedemo: %v\n", err)
		return 1
	}
	if err := logx.SetUp(c.Log); err != nil {
		fmt.Fprintf(stderr, "typedemo: setup log: %v\n", err)
		return 1
	}
	// stdout只留给演示输出
	logx.SetWriter(logx.NewWriter(stderr))
	defer logx.Close()

	if c.Diagnostics {
		if err := agent.Listen(agent.Options{}); err != nil {
			logx.Errorw("start gops agent failed", logx.Field("error", err.Error()))
		} else {
			defer agent.Close()
		}
	}

	opts := []typedemo.Option{typedemo.WithStrict(c.Strict)}
	if c.Report.Path != "" {
		opts = append(opts, typedemo.WithReporter(report.NewFileReporter(c.Report.Path)))
	}

	ctx := logx.ContextWithFields(context.Background(), logx.Field("service", c.Name))
	if _, err := typedemo.New(stdin, stdout, opts...).Run(ctx); err != nil {
		logx.WithContext(ctx).Errorw("run finished with error", logx.Field("error", err.Error()))
	}
	return 0
}
