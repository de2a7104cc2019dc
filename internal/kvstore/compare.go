package kvstore

import (
	"strconv"
	"strings"
)

// Compare 层级键比较器。
//
// 逐段比较：两段都是无符号整数时按数值比较；数字段排在非数字段
// 之前；其余按不区分大小写的字典序。所有共有段相等时，段数少的
// 路径在前。用于子键与枚举结果的稳定排序，使 "items:2" 排在
// "items:10" 之前。
func Compare(a, b string) int {
	as := strings.Split(a, KeyDelimiter)
	bs := strings.Split(b, KeyDelimiter)
	n := min(len(as), len(bs))

	for i := 0; i < n; i++ {
		x, y := as[i], bs[i]
		xn, xerr := strconv.ParseUint(x, 10, 64)
		yn, yerr := strconv.ParseUint(y, 10, 64)

		switch {
		case xerr == nil && yerr == nil:
			if xn != yn {
				if xn < yn {
					return -1
				}
				return 1
			}
			// 数值相同写法不同（"01" 与 "1"）按字面序定序，
			// 保证枚举顺序与序列绑定的去重结果可复现
			if c := strings.Compare(x, y); c != 0 {
				return c
			}
		case xerr == nil:
			return -1
		case yerr == nil:
			return 1
		default:
			if c := strings.Compare(strings.ToUpper(x), strings.ToUpper(y)); c != 0 {
				return c
			}
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}
