// Package scan 提供与C语言scanf(" %c")、scanf("%d")、scanf("%f")行为一致的格式化读取。
//
// 匹配失败时不消费任何输入（前导空白除外），调用方拿到零值和错误，
// 之后的读取从失败位置继续，这正是scanf转换失败时的表现。
package scan

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoMatch 表示输入存在，但开头不是所需类型的字面量。
var ErrNoMatch = errors.New("scan: input does not match")

// maxToken 单个数字字面量的最长前瞻字节数
const maxToken = 512

// Reader 在bufio.Reader之上实现scanf风格的读取，依靠Peek做前瞻。
type Reader struct {
	br *bufio.Reader
}

// NewReader 包装r。若r本身已是足够大的*bufio.Reader，bufio.NewReaderSize会直接复用它。
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, maxToken*2)}
}

// isSpace 与C的isspace一致：空格、\t、\n、\v、\f、\r
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// SkipSpace 跳过前导空白，返回遇到的读错误（包括io.EOF）。
func (r *Reader) SkipSpace() error {
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(b) {
			return r.br.UnreadByte()
		}
	}
}

// ReadChar 对应scanf(" %c")：跳过空白后读取一个字节。
func (r *Reader) ReadChar() (byte, error) {
	if err := r.SkipSpace(); err != nil {
		return 0, err
	}
	return r.br.ReadByte()
}

// peek 返回当前可前瞻的字节，最多maxToken个。到达EOF时返回已有部分。
func (r *Reader) peek() ([]byte, error) {
	buf, err := r.br.Peek(maxToken)
	if len(buf) > 0 {
		return buf, nil
	}
	return nil, err
}

// ReadInt32 对应scanf("%d")。
// 十进制串按64位解析，溢出时像strtol一样饱和，再截断为32位。
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.SkipSpace(); err != nil {
		return 0, err
	}
	buf, err := r.peek()
	if err != nil {
		return 0, err
	}
	n := matchInt(buf)
	if n == 0 {
		return 0, ErrNoMatch
	}
	lit := string(buf[:n])
	if _, err := r.br.Discard(n); err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		// 只可能是ErrRange
		if lit[0] == '-' {
			v = math.MinInt64
		} else {
			v = math.MaxInt64
		}
	}
	return int32(v), nil
}

// matchInt 返回buf开头[+-]?[0-9]+的长度，不匹配时为0。
func matchInt(buf []byte) int {
	i := 0
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}
	start := i
	for i < len(buf) && isDigit(buf[i]) {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// ReadFloat32 对应scanf("%f")，支持小数、指数以及inf/infinity/nan。
// 超出float32范围的值按strtof的约定变为±Inf。
func (r *Reader) ReadFloat32() (float32, error) {
	if err := r.SkipSpace(); err != nil {
		return 0, err
	}
	buf, err := r.peek()
	if err != nil {
		return 0, err
	}
	n := matchFloat(buf)
	if n == 0 {
		return 0, ErrNoMatch
	}
	lit := string(buf[:n])
	if _, err := r.br.Discard(n); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(lit, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrNoMatch
	}
	return float32(v), nil
}

// matchFloat 返回buf开头浮点字面量的长度，不匹配时为0。
func matchFloat(buf []byte) int {
	i := 0
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}
	if n := matchSpecial(buf[i:]); n > 0 {
		return i + n
	}

	intDigits := 0
	for i < len(buf) && isDigit(buf[i]) {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(buf) && buf[i] == '.' {
		j := i + 1
		for j < len(buf) && isDigit(buf[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	// 指数部分必须带数字，否则e留在输入中
	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		j := i + 1
		if j < len(buf) && (buf[j] == '+' || buf[j] == '-') {
			j++
		}
		k := j
		for k < len(buf) && isDigit(buf[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// matchSpecial 匹配不区分大小写的infinity、inf、nan。
func matchSpecial(buf []byte) int {
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(buf) >= len(word) && strings.EqualFold(string(buf[:len(word)]), word) {
			return len(word)
		}
	}
	return 0
}
