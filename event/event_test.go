package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlopt/event"
)

func TestNew_CopiesParams(t *testing.T) {
	params := []any{1, "x2"}
	e := event.New(event.BBBranch, params...)
	params[0] = 99

	assert.Equal(t, event.BBBranch, e.Key)
	assert.Equal(t, []any{1, "x2"}, e.Params)
}

func TestString(t *testing.T) {
	assert.Equal(t, "bb.done.exhausted", event.New(event.BBExhausted).String())
	assert.Equal(t, "bb.branch(0, 1, 7.5)", event.New(event.BBBranch, 0, 1, 7.5).String())
}
