package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/mouse-blink/nego/internal/domain/mocks"
)

func newTestRoot(t *testing.T, children ...func() *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	for _, child := range children {
		cmd.AddCommand(child())
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, mockWorkflow, out
}

func TestRootCmd_Help(t *testing.T) {
	cmd, _, out := newTestRoot(t, newRunCmd, newListCmd, newViewCmd, newClassifyCmd)

	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	help := out.String()
	assert.Contains(t, help, "malformed variants")
	for _, sub := range []string{"run", "list", "view", "classify"} {
		assert.Contains(t, help, sub)
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newRunCmd)

	cmd.SetArgs([]string{"fuzz"})
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_VerboseLowersLogLevel(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newListCmd)
	t.Cleanup(func() { logLevel.Set(0) })

	mockWorkflow.EXPECT().ListFuzzers(mock.Anything).Return(nil)

	cmd.SetArgs([]string{"--verbose", "list"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "DEBUG", logLevel.Level().String())
}
