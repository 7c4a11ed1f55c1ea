package report

import (
	"callscan/internal/engine/usage"
	"encoding/json"
	"strconv"
	"strings"
)

// FormatNode renders a result on a single line in the style of Node's
// console.log: { app: { callNum: 2, callLines: [ 6, 10 ] } }. Unlike Node it
// never breaks long arrays across lines.
func FormatNode(res usage.Result) string {
	names := res.Names()
	if len(names) == 0 {
		return "{}"
	}

	entries := make([]string, 0, len(names))
	for _, name := range names {
		u := res[name]
		lines := make([]string, 0, len(u.CallLines))
		for _, line := range u.CallLines {
			lines = append(lines, strconv.Itoa(line))
		}
		entries = append(entries, nodeKey(name)+": { callNum: "+strconv.Itoa(u.CallNum)+", callLines: [ "+strings.Join(lines, ", ")+" ] }")
	}
	return "{ " + strings.Join(entries, ", ") + " }"
}

// nodeKey quotes keys that util.inspect would quote: anything outside
// [a-zA-Z_][a-zA-Z_0-9]*.
func nodeKey(name string) string {
	if isPlainIdentifier(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "\\'") + "'"
}

func isPlainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// FormatJSON renders a result as compact JSON with names in sorted order.
func FormatJSON(res usage.Result) (string, error) {
	if res == nil {
		res = usage.Result{}
	}
	data, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
