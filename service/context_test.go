package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatmesh/chatmesh/llm"
)

func TestNewContextDefaults(t *testing.T) {
	c := NewContext()
	require.NotNil(t, c.LLM)
	require.NotNil(t, c.Logger)
	assert.Equal(t, "openai", c.LLM.Info().Provider)
}

func TestNewContextOverrides(t *testing.T) {
	mock := llm.NewMockChatModel("test")
	c := NewContext(func(c *Context) { c.LLM = mock })
	assert.Same(t, mock, c.LLM)
}
