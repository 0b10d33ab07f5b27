// Package report 将一次演示的结果写成JSON文件。
package report

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/errorx"
	"github.com/zeromicro/go-zero/core/logx"

	"typedemo/internal/typedemo"
)

// FileReporter 把Result写到固定路径，每次运行覆盖上一次的报告
type FileReporter struct {
	path string
}

// NewFileReporter 创建写入path的FileReporter
func NewFileReporter(path string) *FileReporter {
	return &FileReporter{path: path}
}

// Report 先写临时文件再rename，读者不会看到写了一半的报告
func (r *FileReporter) Report(ctx context.Context, res typedemo.Result) error {
	data, err := sonic.ConfigStd.MarshalIndent(res, "", "  ")
	if err != nil {
		return errorx.Wrap(err, "encode report")
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errorx.Wrap(err, "create report dir")
	}
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return errorx.Wrap(err, "create report file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errorx.Wrap(err, "write report")
	}
	if err := tmp.Close(); err != nil {
		return errorx.Wrap(err, "close report")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errorx.Wrap(err, "rename report")
	}

	logx.WithContext(ctx).Infow("report written",
		logx.Field("path", r.path),
		logx.Field("kind", res.Kind.String()))
	return nil
}

// Load 读取Report写出的文件
func Load(path string) (typedemo.Result, error) {
	var res typedemo.Result
	data, err := os.ReadFile(path)
	if err != nil {
		return res, errorx.Wrap(err, "read report")
	}
	if err := sonic.ConfigStd.Unmarshal(data, &res); err != nil {
		return res, errorx.Wrap(err, "decode report")
	}
	return res, nil
}
