package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	domainmocks "kmeroracle.dev/pkg/kmeroracle/internal/domain/mocks"
)

func TestGenQueriesCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenQueriesCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("GenerateQueries", mock.Anything,
		domain.DefaultMutationParams("genome.fasta.gz", "queries.fasta.gz")).Return(nil)

	cmd.SetArgs([]string{"gen-queries", "genome.fasta.gz", "queries.fasta.gz"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestGenQueriesCmd_Overrides(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenQueriesCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("GenerateQueries", mock.Anything, domain.MutationParams{
		Reference:   "genome.fasta",
		Output:      "out.fasta.gz",
		Start:       0,
		Length:      500,
		Generations: 10,
		Seed:        7,
	}).Return(nil)

	cmd.SetArgs([]string{"gen-queries", "genome.fasta", "out.fasta.gz", "--start", "0", "--length", "500", "--generations", "10", "--seed", "7"})
	err := cmd.Execute()
	require.NoError(t, err)
}
