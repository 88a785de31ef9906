package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedName(t *testing.T) {
	name := QualifiedName("files", "read_file")
	assert.Equal(t, "files__read_file", name)

	server, tool, ok := SplitQualifiedName(name)
	assert.True(t, ok)
	assert.Equal(t, "files", server)
	assert.Equal(t, "read_file", tool)

	server, tool, ok = SplitQualifiedName("a__b__c")
	assert.True(t, ok)
	assert.Equal(t, "a", server)
	assert.Equal(t, "b__c", tool)

	for _, bad := range []string{"", "plain", "__tool", "server__"} {
		_, _, ok := SplitQualifiedName(bad)
		assert.False(t, ok, bad)
	}
}

func TestErrorOutput(t *testing.T) {
	out := ErrorOutput("call-1", errors.New("invalid character 'b'"))
	assert.Equal(t, "call-1", out.ResponseCallID())
	assert.Equal(t, "err: invalid character 'b'", out.Output.Content)
	if assert.NotNil(t, out.Output.Success) {
		assert.False(t, *out.Output.Success)
	}
}
