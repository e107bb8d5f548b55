package openai

import (
	"strings"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

func buildClassificationPrompt() string {
	types := domain.AllStoreTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	return `You are an expert retail classifier.
Assign the most appropriate store type to the user's query.
Return strict JSON object with a single key:
store (string, one of: ` + strings.Join(names, ", ") + `).
No markdown, no extra keys.`
}
