package typedemo

import (
	"fmt"
	"unsafe"
)

// Kind 由类型选择符得到的类型枚举
type Kind int

const (
	KindInvalid Kind = iota
	KindChar
	KindInt
	KindFloat
)

// 各类型在本实现中对应的原生Go类型：
// char对应x86上有符号的C char，int与float对应32位的C int、C float。
type (
	Char  = int8
	Int   = int32
	Float = float32
)

// KindOf 将选择符映射为Kind，c/i/f以外的字节都是KindInvalid。
func KindOf(selector byte) Kind {
	switch selector {
	case 'c':
		return KindChar
	case 'i':
		return KindInt
	case 'f':
		return KindFloat
	default:
		return KindInvalid
	}
}

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Size 返回该类型的存储字节数，KindInvalid返回0。
func (k Kind) Size() uintptr {
	switch k {
	case KindChar:
		return unsafe.Sizeof(Char(0))
	case KindInt:
		return unsafe.Sizeof(Int(0))
	case KindFloat:
		return unsafe.Sizeof(Float(0))
	default:
		return 0
	}
}

// MarshalText 让Kind在报告中以名称而不是数字出现
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range []Kind{KindInvalid, KindChar, KindInt, KindFloat} {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}
