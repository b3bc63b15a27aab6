// Package ai enriches free-text task descriptions into structured metadata.
// It is an optional collaborator: the scheduling engine never calls it and
// stays deterministic whether or not enrichment is enabled.
package ai

import "context"

type Provider interface {
	EnrichTask(ctx context.Context, description string) (*TaskDraft, error)
}
