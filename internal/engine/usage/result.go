package usage

import (
	"callscan/internal/core/errors"
	"callscan/internal/shared/util"
	"fmt"
	"slices"
)

// Usage records how often a name is referenced and on which lines.
// CallNum always equals len(CallLines).
type Usage struct {
	CallNum   int   `json:"callNum"`
	CallLines []int `json:"callLines"`
}

// Result maps an identifier name to its usage.
type Result map[string]*Usage

// Add records one occurrence of name on line.
func (r Result) Add(name string, line int) {
	u, ok := r[name]
	if !ok {
		r[name] = &Usage{CallNum: 1, CallLines: []int{line}}
		return
	}
	u.CallNum++
	u.CallLines = append(u.CallLines, line)
}

// Names returns the recorded names in sorted order.
func (r Result) Names() []string {
	return util.SortedStringKeys(r)
}

// Total returns the number of occurrences across all names.
func (r Result) Total() int {
	total := 0
	for _, u := range r {
		total += u.CallNum
	}
	return total
}

// Equal reports whether both results hold the same names, counts and lines.
func (r Result) Equal(other Result) bool {
	if len(r) != len(other) {
		return false
	}
	for name, u := range r {
		o, ok := other[name]
		if !ok || u.CallNum != o.CallNum || !slices.Equal(u.CallLines, o.CallLines) {
			return false
		}
	}
	return true
}

// Validate checks that every entry has a count matching its lines and that
// lines are 1-based and non-decreasing.
func (r Result) Validate() error {
	for _, name := range r.Names() {
		u := r[name]
		if u == nil {
			return invalidEntry(name, "nil usage")
		}
		if u.CallNum != len(u.CallLines) {
			return invalidEntry(name, fmt.Sprintf("callNum %d does not match %d call lines", u.CallNum, len(u.CallLines)))
		}
		for i, line := range u.CallLines {
			if line < 1 {
				return invalidEntry(name, fmt.Sprintf("line %d is not 1-based", line))
			}
			if i > 0 && line < u.CallLines[i-1] {
				return invalidEntry(name, fmt.Sprintf("line %d follows line %d", line, u.CallLines[i-1]))
			}
		}
	}
	return nil
}

func invalidEntry(name, msg string) error {
	return errors.AddContext(errors.New(errors.CodeInternal, msg), "name", name)
}
