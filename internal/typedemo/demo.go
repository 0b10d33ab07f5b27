// Package typedemo 演示基本数据类型：按选择符读入一个char、int或float，
// 输出它本身、以固定步长计算的4个后继值以及该类型占用的字节数。
package typedemo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"

	"typedemo/internal/scan"
)

var (
	// ErrMalformedInput 严格模式下值读取失败时返回
	ErrMalformedInput = errors.New("malformed input")
	// ErrOutput 输出无法写入，与输入是否合法无关
	ErrOutput = errors.New("write output")
)

const (
	promptType  = "Enter type (c for char, i for int, f for float): "
	promptChar  = "Enter a character: "
	promptInt   = "Enter an integer: "
	promptFloat = "Enter a float: "
)

//go:generate mockgen -source=demo.go -destination=mock_reporter_test.go -package=typedemo

// Reporter 接收每次运行的结果，例如写入JSON报告。
type Reporter interface {
	Report(ctx context.Context, res Result) error
}

// Result 一次运行的记录
type Result struct {
	Selector   string   `json:"selector"`
	Kind       Kind     `json:"kind"`
	Original   string   `json:"original,omitempty"`
	Successors []string `json:"successors,omitempty"`
	// Codes 只用于char：原值在前，随后是各后继值的编码
	Codes     []int   `json:"codes,omitempty"`
	Size      uintptr `json:"size,omitempty"`
	Malformed bool    `json:"malformed,omitempty"`
}

// Option 是Demo的函数选项
type Option func(*Demo)

// WithStrict 开启严格模式：值读取失败时输出提示并结束该分支，而不是沿用零值继续。
func WithStrict(strict bool) Option {
	return func(d *Demo) {
		d.strict = strict
	}
}

// WithReporter 设置运行结束后接收Result的Reporter
func WithReporter(r Reporter) Option {
	return func(d *Demo) {
		d.reporter = r
	}
}

// Demo 持有一次演示的输入输出
type Demo struct {
	in       *scan.Reader
	out      *bufio.Writer
	strict   bool
	reporter Reporter
}

// New 创建从in读取、向out输出的Demo
func New(in io.Reader, out io.Writer, opts ...Option) *Demo {
	d := &Demo{
		in:  scan.NewReader(in),
		out: bufio.NewWriter(out),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run 执行一次完整的演示。非法选择符不算错误；
// 返回的error只来自严格模式下的非法值、context取消或输出失败。
func (d *Demo) Run(ctx context.Context) (res Result, err error) {
	defer func() {
		if ferr := d.out.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flush output: %w: %w", ErrOutput, ferr)
		}
	}()

	sel, err := prompt(ctx, d, promptType, d.in.ReadChar)
	if err != nil && (ctx.Err() != nil || errors.Is(err, ErrOutput)) {
		return res, err
	}
	if err == nil {
		res.Selector = string([]byte{sel})
	}
	res.Kind = KindOf(sel)
	if err != nil {
		// 读不到选择符时与C一样落入非法分支
		res.Kind = KindInvalid
	}
	logx.WithContext(ctx).Infow("type selected",
		logx.Field("selector", res.Selector),
		logx.Field("kind", res.Kind.String()))

	switch res.Kind {
	case KindChar:
		err = d.runChar(ctx, &res)
	case KindInt:
		err = d.runInt(ctx, &res)
	case KindFloat:
		err = d.runFloat(ctx, &res)
	default:
		err = nil
		d.printf("Invalid type.\n")
	}

	if d.reporter != nil {
		if rerr := d.reporter.Report(ctx, res); rerr != nil {
			logx.WithContext(ctx).Errorw("report run failed", logx.Field("error", rerr.Error()))
		}
	}
	return res, err
}

func (d *Demo) runChar(ctx context.Context, res *Result) error {
	b, err := prompt(ctx, d, promptChar, d.in.ReadChar)
	if err = d.checkRead(ctx, res, err, "Invalid character.\n"); err != nil {
		return err
	}
	ch := Char(b)
	res.Original = string([]byte{b})
	res.Codes = append(res.Codes, int(ch))
	d.printf("Original character: %s, ASCII: %d\n", []byte{byte(ch)}, ch)
	d.printf("Next %d characters:\n", SuccessorCount)
	for _, next := range Successors(ch, Step, SuccessorCount) {
		d.printf("%s (ASCII: %d)\n", []byte{byte(next)}, next)
		res.Successors = append(res.Successors, string([]byte{byte(next)}))
		res.Codes = append(res.Codes, int(next))
	}
	res.Size = KindChar.Size()
	d.printf("Size of char: %d byte\n", res.Size)
	return nil
}

func (d *Demo) runInt(ctx context.Context, res *Result) error {
	n, err := prompt(ctx, d, promptInt, d.in.ReadInt32)
	if err = d.checkRead(ctx, res, err, "Invalid integer.\n"); err != nil {
		return err
	}
	res.Original = fmt.Sprintf("%d", n)
	d.printf("Original integer: %d\n", n)
	d.printf("Next %d integers:\n", SuccessorCount)
	for _, next := range Successors(n, Step, SuccessorCount) {
		d.printf("%d\n", next)
		res.Successors = append(res.Successors, fmt.Sprintf("%d", next))
	}
	res.Size = KindInt.Size()
	d.printf("Size of int: %d bytes\n", res.Size)
	return nil
}

func (d *Demo) runFloat(ctx context.Context, res *Result) error {
	f, err := prompt(ctx, d, promptFloat, d.in.ReadFloat32)
	if err = d.checkRead(ctx, res, err, "Invalid float.\n"); err != nil {
		return err
	}
	res.Original = formatFloat(f)
	d.printf("Original float: %s\n", res.Original)
	d.printf("Next %d floats:\n", SuccessorCount)
	for _, next := range Successors(f, Step, SuccessorCount) {
		text := formatFloat(next)
		d.printf("%s\n", text)
		res.Successors = append(res.Successors, text)
	}
	res.Size = KindFloat.Size()
	d.printf("Size of float: %d bytes\n", res.Size)
	return nil
}

// checkRead 处理值读取失败。宽松模式下只记录日志，调用方继续使用零值；
// 严格模式下输出invalid并返回ErrMalformedInput。
func (d *Demo) checkRead(ctx context.Context, res *Result, err error, invalid string) error {
	if err == nil {
		return nil
	}
	if cerr := ctx.Err(); cerr != nil {
		return cerr
	}
	if errors.Is(err, ErrOutput) {
		return err
	}
	res.Malformed = true
	logx.WithContext(ctx).Errorw("read value failed",
		logx.Field("kind", res.Kind.String()),
		logx.Field("strict", d.strict),
		logx.Field("error", err.Error()))
	if !d.strict {
		return nil
	}
	d.printf("%s", invalid)
	return fmt.Errorf("read %s: %w: %w", res.Kind, ErrMalformedInput, err)
}

// prompt 输出提示语并在阻塞读取前刷出缓冲区
func prompt[T any](ctx context.Context, d *Demo, text string, read func() (T, error)) (T, error) {
	var zero T
	d.printf("%s", text)
	if err := d.out.Flush(); err != nil {
		return zero, fmt.Errorf("flush prompt: %w: %w", ErrOutput, err)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return read()
}

// formatFloat 等价于C的printf("%.2f")：无穷和NaN输出inf、-inf、nan、-nan，
// 而不是Go的+Inf、NaN
func formatFloat(f Float) string {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v) && math.Signbit(v):
		return "-nan"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (d *Demo) printf(format string, args ...any) {
	// bufio.Writer的错误是粘滞的，统一在Flush时检查
	_, _ = fmt.Fprintf(d.out, format, args...)
}
