package utils

import (
	"fmt"
	"strings"
	"time"
)

// To24Hour 将表单里的 12 小时制时间（如 "9:30 PM"）转换为档案服务要求的 24 小时制 "HH:MM"。
// 已经是 24 小时制（"21:30"）的输入原样规整后返回。
func To24Hour(clock string) (string, error) {
	s := strings.TrimSpace(clock)
	if s == "" {
		return "", fmt.Errorf("empty clock value")
	}

	for _, layout := range []string{"3:04 PM", "03:04 PM", "3:04PM", "03:04PM"} {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t.Format("15:04"), nil
		}
	}

	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04"), nil
	}

	return "", fmt.Errorf("unrecognized clock value %q", clock)
}
