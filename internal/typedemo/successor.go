package typedemo

// Scalar 可以计算后继值的原生类型
type Scalar interface {
	~int8 | ~int32 | ~float32
}

// SuccessorCount 每次演示输出的后继值个数
const SuccessorCount = 4

// Step 后继值之间的步长，整型为3，浮点为3.0
const Step = 3

// Successors 返回v + step*k (k = 1..n)。
// 运算在T自身的位宽内进行，整型溢出按补码回绕。
func Successors[T Scalar](v, step T, n int) []T {
	out := make([]T, 0, n)
	for k := 1; k <= n; k++ {
		out = append(out, v+step*T(k))
	}
	return out
}
