package utils

import (
	"fmt"
	"math"
)

// bitsUnits bits 数量的缩写单位
var bitsUnits = []string{"K", "M", "B", "T"}

// FormatBits 格式化 bits 数量用于显示
// 小于 1000 时显示整数（向下取整），更大的数值显示一位小数加单位，如 "12.3K"
func FormatBits(bits float64) string {
	if bits < 0 {
		return "-" + FormatBits(-bits)
	}
	if bits < 1000 {
		return fmt.Sprintf("%d", int64(math.Floor(bits)))
	}

	value := bits
	unit := ""
	for _, u := range bitsUnits {
		if value < 1000 {
			break
		}
		value /= 1000
		unit = u
	}
	// 向下截断到一位小数，避免 999.95K 显示为 1000.0K
	value = math.Floor(value*10) / 10
	return fmt.Sprintf("%.1f%s", value, unit)
}
