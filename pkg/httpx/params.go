package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — приводит v к диапазону [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseBoundedInt — целочисленный query-параметр с дефолтом и границами.
// Нечисловое значение не ошибка: возвращается def (тоже зажатый в границы).
func ParseBoundedInt(c *gin.Context, name string, def, lo, hi int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		v = def
	}
	return ClampInt(v, lo, hi)
}
