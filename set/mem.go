package set

import (
	"sync/atomic"
	"unsafe"
)

var usedMemory int64 = 0

// IncreaseUsedMemory increases the used memory counter
func IncreaseUsedMemory(v any) {
	n := estimateMemoryUsage(v)
	atomic.AddInt64(&usedMemory, n)
}

// DecreaseUsedMemory decreases the used memory counter
func DecreaseUsedMemory(v any) {
	n := estimateMemoryUsage(v)
	atomic.AddInt64(&usedMemory, -n)
}

// UsedMemory returns the approximate number of bytes held by set elements
// across every container in the process.
func UsedMemory() int64 {
	return atomic.LoadInt64(&usedMemory)
}

func estimateMemoryUsage(v any) int64 {
	switch value := v.(type) {
	case int:
		return int64(unsafe.Sizeof(value))
	case float64:
		return int64(unsafe.Sizeof(value))
	case string:
		// 16 bytes for string header on 64-bit system + actual string content
		return int64(16 + len(value))
	case []string:
		n := int64(24)
		for _, s := range value {
			n += int64(16 + len(s))
		}
		return n
	default:
		return 0
	}
}
