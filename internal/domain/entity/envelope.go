package entity

// Source identifies which path produced the reply text.
type Source string

const (
	SourceLocal    Source = "local"    // knowledge base hit
	SourceGemini   Source = "gemini"   // remote model success
	SourceFallback Source = "fallback" // canned degradation text
)

type GenerateRequest struct {
	Prompt string `json:"prompt"`
	System string `json:"system"`
}

// ReplyEnvelope is the wire response for /api/generate. Exactly one of
// the three sources produces Reply; Detail is diagnostic only and never
// blocks the user-visible text.
type ReplyEnvelope struct {
	Reply  string  `json:"reply"`
	Source Source  `json:"source"`
	Detail *Detail `json:"detail,omitempty"`
}

// Detail carries the remote failure that forced a fallback reply.
type Detail struct {
	StatusCode int    `json:"status_code,omitempty"`
	Provider   string `json:"provider,omitempty"`
	Message    string `json:"message"`
}
