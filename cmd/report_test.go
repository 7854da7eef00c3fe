package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/mouse-blink/linepatch/internal/domain/mocks"
	m "github.com/mouse-blink/linepatch/internal/model"
)

func TestReportCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("ShowReport", m.Path("run.yaml")).Return(nil)

	cmd.SetArgs([]string{"report", "run.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestReportCmd_Error(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	boom := errors.New("no such report")
	mockWorkflow.On("ShowReport", m.Path("missing.yaml")).Return(boom)

	cmd.SetArgs([]string{"report", "missing.yaml"})
	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestReportCmd_RequiresFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"report"})
	assert.Error(t, cmd.Execute())
}
