// Package tokens merges ordered style-token sequences into a single conflict-free string.
//
// A token is an opaque unit of styling (typically one utility class). Tokens that
// govern the same style property share a conflict key; when several tokens share a
// key, the last one wins. Tokens the classifier does not recognise are passed
// through untouched.
//
//	tokens.Merge("px-2 py-1 bg-red-500", "p-3 bg-[#B91C1C]")
//	// "p-3 bg-[#B91C1C]"
package tokens

import (
	"strings"
)

// Class describes how a single token participates in conflict resolution.
type Class struct {
	// Scope groups tokens that only apply under the same condition (e.g. "dark:hover:").
	// Tokens with different scopes never conflict.
	Scope string
	// Group identifies the style property the token sets.
	Group string
	// Covers lists groups that this group overrides entirely (a shorthand over its longhands).
	Covers []string
}

// Key returns the conflict key for the class.
func (c Class) Key() string {
	return c.Scope + c.Group
}

// Classifier maps a token to its Class. ok is false for tokens with no recognised conflict key.
type Classifier interface {
	Classify(token string) (class Class, ok bool)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(token string) (Class, bool)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(token string) (Class, bool) {
	return f(token)
}

// Merger deduplicates token sequences using a Classifier. It holds no mutable
// state and is safe for concurrent use.
type Merger struct {
	classifier Classifier
}

// NewMerger creates a Merger. A nil classifier falls back to the utility-class classifier.
func NewMerger(classifier Classifier) *Merger {
	if classifier == nil {
		classifier = UtilityClassifier()
	}
	return &Merger{classifier: classifier}
}

var defaultMerger = NewMerger(nil)

// Default returns the shared Merger using the utility-class classifier.
func Default() *Merger {
	return defaultMerger
}

// Merge joins and deduplicates the supplied token strings with the default Merger.
func Merge(parts ...string) string {
	return defaultMerger.Merge(parts...)
}

// Merge tokenizes every part, resolves conflicts and returns the space-joined survivors.
func (m *Merger) Merge(parts ...string) string {
	return strings.Join(m.MergeTokens(Split(parts...)), " ")
}

// MergeTokens resolves conflicts across an already tokenized sequence.
//
// The scan runs right to left so the last occurrence of a key is the one kept;
// survivors are returned in the order of their last occurrence. Identical tokens
// always collapse to their last occurrence, recognised or not.
func (m *Merger) MergeTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	seenKeys := make(map[string]struct{}, len(tokens))
	seenTokens := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if token == "" {
			continue
		}
		if _, dup := seenTokens[token]; dup {
			continue
		}
		seenTokens[token] = struct{}{}

		class, ok := m.classifier.Classify(token)
		if !ok {
			kept = append(kept, token)
			continue
		}

		key := class.Key()
		if _, taken := seenKeys[key]; taken {
			continue
		}
		seenKeys[key] = struct{}{}
		for _, covered := range class.Covers {
			seenKeys[class.Scope+covered] = struct{}{}
		}
		kept = append(kept, token)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// Split breaks each part on whitespace and returns the flattened, non-empty tokens.
func Split(parts ...string) []string {
	var out []string
	for _, part := range parts {
		out = append(out, strings.Fields(part)...)
	}
	return out
}

// Join concatenates parts without resolving conflicts, dropping empty segments.
func Join(parts ...string) string {
	return strings.Join(Split(parts...), " ")
}

// If returns token when cond holds and the empty string otherwise.
func If(cond bool, token string) string {
	if cond {
		return token
	}
	return ""
}
