package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	domainmocks "kmeroracle.dev/pkg/kmeroracle/internal/domain/mocks"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

func TestCompareCmd_PassesFilesAndMode(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCompareCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Compare", mock.Anything, domain.CompareArgs{
		Subject:   "themisto.txt",
		Reference: "reference.txt",
		Kind:      m.PseudoalignmentDump,
		Mode:      m.CompareExact,
	}).Return(nil)

	cmd.SetArgs([]string{"compare", "themisto.txt", "reference.txt", "--mode", "exact", "--kind", "pseudoalignment"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestCompareCmd_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"one file", []string{"compare", "a.txt"}},
		{"unknown kind", []string{"compare", "a.txt", "b.txt", "--kind", "graph"}},
		{"unknown mode", []string{"compare", "a.txt", "b.txt", "--mode", "loose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd := newRootCmd()
			cmd.AddCommand(newCompareCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			cmd.SetArgs(tt.args)
			require.Error(t, cmd.Execute())
		})
	}
}
