package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"cd", "mkdir", "q", "quit", "touch"}, r.Names())
	for _, name := range r.Names() {
		cmd, ok := r.Lookup(name)
		require.True(t, ok)
		_, hasHandler := handlers[cmd.Kind]
		assert.True(t, hasHandler, name)
		assert.NotEmpty(t, cmd.Description, name)
	}
	q, _ := r.Lookup("q")
	quitCmd, _ := r.Lookup("quit")
	assert.Equal(t, q.Kind, quitCmd.Kind)
}

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(Command{Kind: KindQuit, Name: "x"}, Command{Kind: KindTouch, Name: "x"})
	assert.ErrorContains(t, err, "duplicate")
	_, err = NewRegistry(Command{Kind: KindQuit})
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "cd", KindChangeDir.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestArgSpecParse(t *testing.T) {
	args, err := ArgSpec{"PATH"}.Parse([]string{"--", "-x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-x"}, args)

	args, err = ArgSpec{"PATH"}.Parse([]string{"-"})
	require.NoError(t, err, "a lone dash is a value")
	assert.Equal(t, []string{"-"}, args)

	_, err = ArgSpec{"PATH"}.Parse([]string{""})
	assert.EqualError(t, err, "empty argument: PATH")

	_, err = ArgSpec(nil).Parse([]string{"extra"})
	assert.EqualError(t, err, "unexpected argument: extra")
}
