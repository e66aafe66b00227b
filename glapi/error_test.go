package glapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanolsn/rtui/glapi"
	"github.com/nanolsn/rtui/glapi/gltest"
)

func TestCheckError(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	assert.NoError(t, glapi.CheckError(f))

	f.PushError(glapi.OUT_OF_MEMORY)
	f.PushError(glapi.INVALID_ENUM)

	err := glapi.CheckError(f)
	assert.Equal(t, glapi.OutOfMemory, err)
	assert.Equal(t, glapi.InvalidEnum, glapi.CheckError(f))
	assert.NoError(t, glapi.CheckError(f))
}

func TestMustCheckError(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	assert.NotPanics(t, func() { glapi.MustCheckError(f) })

	f.PushError(glapi.INVALID_FRAMEBUFFER_OPERATION)
	assert.PanicsWithError(t, "gl: invalid framebuffer operation", func() { glapi.MustCheckError(f) })
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "gl: context lost", glapi.ContextLost.Error())
	assert.Equal(t, "gl: unknown error 0x1234", glapi.Error(0x1234).Error())
}
