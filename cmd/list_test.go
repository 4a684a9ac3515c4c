package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	domainmocks "kmeroracle.dev/pkg/kmeroracle/internal/domain/mocks"
)

func TestListCmd_PassesSelection(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return args.ShardIndex == 0 && args.TotalShards == 2 && args.Only != nil && args.Matrix == nil
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--shard", "0/2", "--only", "roaring"})
	err := cmd.Execute()
	require.NoError(t, err)
}
