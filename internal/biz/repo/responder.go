package repo

import "context"

// ResponderRepo is the generative-AI collaborator. Each call is stateless
// given the synthesized prompt; no streaming, no conversation memory.
type ResponderRepo interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}
