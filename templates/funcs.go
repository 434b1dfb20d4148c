package templates

import (
	ht "html/template"
	"strings"
	"time"

	"github.com/telsin/filegrid/pkg/fuzzytime"
)

func templateFuncMap() ht.FuncMap {
	return ht.FuncMap{
		"strappend": strappend,
		"hasPrefix": hasPrefix,
		"toFuzzyTime": toFuzzyTime,
		"toPreciseTime": toPreciseTime,
	}
}

func strappend(s ...string) string {
	var res strings.Builder
	for _, item := range s {
		res.WriteString(item)
	}
	return res.String()
}

func hasPrefix(s1 string, prefix string) bool {
	return strings.HasPrefix(s1, prefix)
}

func toFuzzyTime(s any) string {
	var timestamp int64
	switch v := s.(type) {
	case time.Time:
		timestamp = v.Unix()
	case int64:
		timestamp = v
	case int:
		timestamp = int64(v)
	default:
		return ""
	}
	return fuzzytime.TimeToFuzzyTimeString(time.Unix(timestamp, 0))
}

func toPreciseTime(s any) string {
	var timestamp int64
	switch v := s.(type) {
	case time.Time:
		timestamp = v.Unix()
	case int64:
		timestamp = v
	case int:
		timestamp = int64(v)
	default:
		return ""
	}
	return time.Unix(timestamp, 0).UTC().Format(time.RFC3339)
}
