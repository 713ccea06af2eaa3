package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-gateway/internal/domain/entity"
)

type mockRemote struct {
	reply string
	err   error
	calls int
}

func (m *mockRemote) Call(_ context.Context, _, _ string) (string, error) {
	m.calls++
	return m.reply, m.err
}

func TestOrchestratorGenerate(t *testing.T) {
	kb := NewKnowledgeBase([]Rule{
		{Triggers: []string{"hello"}, Reply: "greeting"},
	})

	t.Run("empty prompt is invalid input", func(t *testing.T) {
		remote := &mockRemote{}
		orch := NewOrchestrator(kb, remote, true, "persona", zap.NewNop())

		_, err := orch.Generate(context.Background(), entity.GenerateRequest{Prompt: ""})
		assert.ErrorIs(t, err, entity.ErrEmptyPrompt)

		_, err = orch.Generate(context.Background(), entity.GenerateRequest{Prompt: "   "})
		assert.ErrorIs(t, err, entity.ErrEmptyPrompt)
		assert.Zero(t, remote.calls)
	})

	t.Run("knowledge base hit never reaches the remote", func(t *testing.T) {
		remote := &mockRemote{}
		orch := NewOrchestrator(kb, remote, true, "persona", zap.NewNop())

		envelope, err := orch.Generate(context.Background(), entity.GenerateRequest{Prompt: "Hello there"})
		require.NoError(t, err)
		assert.Equal(t, entity.SourceLocal, envelope.Source)
		assert.Equal(t, "greeting", envelope.Reply)
		assert.Zero(t, remote.calls)
	})

	t.Run("missing credential degrades without any network call", func(t *testing.T) {
		remote := &mockRemote{reply: "should never be seen"}
		orch := NewOrchestrator(kb, remote, false, "persona", zap.NewNop())

		envelope, err := orch.Generate(context.Background(), entity.GenerateRequest{Prompt: "something unmatched"})
		require.NoError(t, err)
		assert.Equal(t, entity.SourceFallback, envelope.Source)
		assert.Nil(t, envelope.Detail)
		assert.Zero(t, remote.calls)
	})

	t.Run("remote success is tagged gemini", func(t *testing.T) {
		remote := &mockRemote{reply: "model answer"}
		orch := NewOrchestrator(kb, remote, true, "persona", zap.NewNop())

		envelope, err := orch.Generate(context.Background(), entity.GenerateRequest{Prompt: "something unmatched"})
		require.NoError(t, err)
		assert.Equal(t, entity.SourceGemini, envelope.Source)
		assert.Equal(t, "model answer", envelope.Reply)
		assert.Equal(t, 1, remote.calls)
	})

	t.Run("remote exhaustion degrades to fallback with detail", func(t *testing.T) {
		remote := &mockRemote{err: &entity.RemoteError{
			Kind:           entity.KindRateLimited,
			StatusCode:     429,
			ProviderDetail: "quota exceeded",
		}}
		orch := NewOrchestrator(kb, remote, true, "persona", zap.NewNop())

		envelope, err := orch.Generate(context.Background(), entity.GenerateRequest{Prompt: "something unmatched"})
		require.NoError(t, err)
		assert.Equal(t, entity.SourceFallback, envelope.Source)
		require.NotNil(t, envelope.Detail)
		assert.Equal(t, 429, envelope.Detail.StatusCode)
		assert.Equal(t, "quota exceeded", envelope.Detail.Provider)
	})

	t.Run("non-remote failures propagate for the 500 path", func(t *testing.T) {
		internalErr := errors.New("kb table corrupt")
		remote := &mockRemote{err: internalErr}
		orch := NewOrchestrator(kb, remote, true, "persona", zap.NewNop())

		_, err := orch.Generate(context.Background(), entity.GenerateRequest{Prompt: "something unmatched"})
		assert.ErrorIs(t, err, internalErr)
	})
}
