package graph

import (
	"regexp"
	"sort"
	"strings"
)

// keyPhrasePattern is the closed vocabulary of course concepts the graph is
// built from. Matching is case-insensitive and tolerates hyphen/space
// variants of compound phrases.
var keyPhrasePattern = regexp.MustCompile(`(?i)\b(` +
	`naive bayes|logistic regression|deep learning|` +
	`semantic parsing|syntactic parsing|dependency parsing|semantic roles?|` +
	`context[- ]free grammar|cfgs?|cky|chart parsing|` +
	`neural networks?|recurrent neural networks?|rnns?|` +
	`transformers?|self[- ]attention|multi[- ]head attention|` +
	`generative ai|large language models?|llms?|` +
	`pretrain (?:and|&) prompt|pretrain (?:and|&) finetune` +
	`)\b`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// normalizePhrase canonicalizes a matched phrase: lowercase, hyphens as
// spaces, internal whitespace collapsed.
func normalizePhrase(phrase string) string {
	phrase = strings.ToLower(phrase)
	phrase = strings.ReplaceAll(phrase, "-", " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(phrase, " "))
}

// extractConcepts returns the distinct normalized key phrases found in the
// text, sorted for deterministic downstream ordering. A phrase occurring
// twice in the same text counts once.
func extractConcepts(text string) []string {
	matches := keyPhrasePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		normed := normalizePhrase(match)
		if normed == "" {
			continue
		}
		seen[normed] = struct{}{}
	}

	concepts := make([]string, 0, len(seen))
	for concept := range seen {
		concepts = append(concepts, concept)
	}
	sort.Strings(concepts)
	return concepts
}
