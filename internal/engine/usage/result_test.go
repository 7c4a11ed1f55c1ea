package usage

import (
	"testing"

	"callscan/internal/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAdd(t *testing.T) {
	res := make(Result)
	res.Add("app", 6)
	res.Add("app", 10)
	res.Add("router", 3)

	assert.Equal(t, &Usage{CallNum: 2, CallLines: []int{6, 10}}, res["app"])
	assert.Equal(t, &Usage{CallNum: 1, CallLines: []int{3}}, res["router"])
	assert.Equal(t, []string{"app", "router"}, res.Names())
	assert.Equal(t, 3, res.Total())
	require.NoError(t, res.Validate())
}

func TestResultValidate(t *testing.T) {
	tests := []struct {
		name string
		res  Result
	}{
		{"count mismatch", Result{"app": {CallNum: 2, CallLines: []int{6}}}},
		{"zero line", Result{"app": {CallNum: 1, CallLines: []int{0}}}},
		{"decreasing lines", Result{"app": {CallNum: 2, CallLines: []int{10, 6}}}},
		{"nil usage", Result{"app": nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.res.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeInternal))
		})
	}
}

func TestResultEqual(t *testing.T) {
	a := Result{"app": {CallNum: 2, CallLines: []int{6, 10}}}
	b := Result{"app": {CallNum: 2, CallLines: []int{6, 10}}}
	c := Result{"app": {CallNum: 2, CallLines: []int{6, 11}}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Result{}))
	assert.True(t, Result{}.Equal(Result{}))
}
