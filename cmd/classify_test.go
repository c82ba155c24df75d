package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/nego/internal/domain"
)

func TestClassifyCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newClassifyCmd)

	mockWorkflow.EXPECT().Classify(domain.ClassifyArgs{
		Values:   []string{" abc", "abc "},
		Supplied: "john",
	}).Return(nil)

	cmd.SetArgs([]string{"classify", "--value", "john", " abc", "abc "})
	require.NoError(t, cmd.Execute())
}

func TestClassifyCmd_RequiresValue(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newClassifyCmd)

	cmd.SetArgs([]string{"classify"})
	assert.Error(t, cmd.Execute())
}
