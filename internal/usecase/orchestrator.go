package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-gateway/internal/domain/entity"
	"portfolio-gateway/internal/domain/repository"

	"go.uber.org/zap"
)

// Canned degradation texts. The gateway never surfaces a raw provider
// failure to the visitor.
const (
	fallbackNoCredential = "I can't reach my AI brain right now, but you can still " +
		"browse the site or use the contact form to get in touch with Kalu directly."
	fallbackRemoteFailed = "I'm getting a lot of questions right now and my AI brain " +
		"needs a short breather. Please try again in a moment, or use the contact form."
)

// Orchestrator composes the local knowledge base, the remote caller and
// the canned fallbacks into a single reply pipeline.
type Orchestrator struct {
	kb            *KnowledgeBase
	remote        repository.RemoteCaller
	hasCredential bool
	defaultSystem string
	logger        *zap.Logger
}

func NewOrchestrator(kb *KnowledgeBase, remote repository.RemoteCaller, hasCredential bool, defaultSystem string, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		kb:            kb,
		remote:        remote,
		hasCredential: hasCredential,
		defaultSystem: defaultSystem,
		logger:        logger,
	}
}

// Generate produces the reply envelope for a prompt. Exactly one of
// KB match, remote success or fallback fills the reply; the source tag
// records which one fired.
func (o *Orchestrator) Generate(ctx context.Context, req entity.GenerateRequest) (*entity.ReplyEnvelope, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, entity.ErrEmptyPrompt
	}

	// 1. Local knowledge base short-circuits the remote path entirely.
	if reply, ok := o.kb.Match(req.Prompt); ok {
		return &entity.ReplyEnvelope{Reply: reply, Source: entity.SourceLocal}, nil
	}

	// 2. Without a credential we degrade immediately, no network call.
	if !o.hasCredential {
		return &entity.ReplyEnvelope{Reply: fallbackNoCredential, Source: entity.SourceFallback}, nil
	}

	system := req.System
	if system == "" {
		system = o.defaultSystem
	}

	// 3. Remote generation; all failure kinds degrade to a 200 fallback.
	reply, err := o.remote.Call(ctx, req.Prompt, system)
	if err != nil {
		var re *entity.RemoteError
		if errors.As(err, &re) {
			o.logger.Warn("remote generation exhausted, serving fallback",
				zap.String("kind", re.Kind.String()),
				zap.Int("status", re.StatusCode),
			)
			return &entity.ReplyEnvelope{
				Reply:  fallbackRemoteFailed,
				Source: entity.SourceFallback,
				Detail: re.ToDetail(),
			}, nil
		}
		// Not a remote failure: genuine internal fault, let the
		// delivery layer turn it into a 500.
		return nil, err
	}

	return &entity.ReplyEnvelope{Reply: reply, Source: entity.SourceGemini}, nil
}
