package changetrack

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// UnknownLabel is what unrecognized enum codes render as. A bad code must
	// never block the rest of the mutation from being recorded.
	UnknownLabel = "未知"

	trueLabel  = "是"
	falseLabel = "否"
)

// 異動紀錄的日期一律以台灣時間呈現
var displayZone = time.FixedZone("UTC+8", 8*60*60)

// Bool renders booleans as 是/否. Already-formatted labels pass through.
func Bool() Formatter {
	return func(raw any) any {
		switch v := raw.(type) {
		case nil:
			return nil
		case bool:
			return boolLabel(v)
		case *bool:
			if v == nil {
				return nil
			}
			return boolLabel(*v)
		case string:
			if v == "" {
				return nil
			}
			if v == trueLabel || v == falseLabel {
				return v
			}
			return UnknownLabel
		}
		return UnknownLabel
	}
}

func boolLabel(b bool) string {
	if b {
		return trueLabel
	}
	return falseLabel
}

// Date normalizes dates to a YYYY-MM-DD calendar string in UTC+8. Two
// timestamps on the same calendar day compare equal. Unparseable input
// renders as nil, matching the original log format.
func Date() Formatter {
	return func(raw any) any {
		switch v := raw.(type) {
		case nil:
			return nil
		case time.Time:
			if v.IsZero() {
				return nil
			}
			return v.In(displayZone).Format(dateLayout)
		case *time.Time:
			if v == nil || v.IsZero() {
				return nil
			}
			return v.In(displayZone).Format(dateLayout)
		case string:
			if v == "" {
				return nil
			}
			// 已經是 YYYY-MM-DD 就不再轉換
			if t, err := time.Parse(dateLayout, v); err == nil {
				return t.Format(dateLayout)
			}
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t.In(displayZone).Format(dateLayout)
			}
			return nil
		}
		return nil
	}
}

// Coded maps an enum code through a fixed code→label table. Unknown codes
// render as 未知 rather than failing. Already-resolved labels pass through.
func Coded(labels map[int]string) Formatter {
	known := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		known[l] = struct{}{}
	}
	return func(raw any) any {
		if raw == nil {
			return nil
		}
		if code, ok := asInt(raw); ok {
			if label, ok := labels[code]; ok {
				return label
			}
			return UnknownLabel
		}
		if s, ok := raw.(string); ok {
			if s == "" {
				return nil
			}
			if _, ok := known[s]; ok {
				return s
			}
		}
		return UnknownLabel
	}
}

// MultiCoded renders a multi-valued coded field as one 、-joined string of
// resolved labels. An empty value, or a value containing only the zero code,
// renders as the none sentinel.
func MultiCoded(labels map[int]string, none string) Formatter {
	return func(raw any) any {
		switch v := raw.(type) {
		case nil:
			return nil
		case string:
			if v == "" {
				return nil
			}
			return v
		case []int:
			return joinCodes(v, labels, none)
		case []any:
			codes := make([]int, 0, len(v))
			for _, item := range v {
				if code, ok := asInt(item); ok {
					codes = append(codes, code)
				}
			}
			return joinCodes(codes, labels, none)
		}
		return none
	}
}

func joinCodes(codes []int, labels map[int]string, none string) string {
	if len(codes) == 0 {
		return none
	}
	for _, c := range codes {
		if c == 0 {
			return none
		}
	}
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		if label, ok := labels[c]; ok {
			parts = append(parts, label)
		} else {
			parts = append(parts, UnknownLabel)
		}
	}
	return strings.Join(parts, "、")
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}
