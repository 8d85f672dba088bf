package advisor

import (
	"strings"
)

// Matcher selects the template that answers a free-text question.
type Matcher interface {
	Match(question string) (Template, bool)
}

// PrefixMatcher matches a question against the first three words of each
// template question, case insensitively. The first template in list order
// wins; there is no ranking between multiple matches.
//
// The policy is fragile when template prefixes collide, but it is the
// documented, compatible behavior. Swap in a different Matcher for anything
// smarter.
type PrefixMatcher struct {
	templates []Template
}

// NewPrefixMatcher returns a PrefixMatcher over the given templates.
func NewPrefixMatcher(templates []Template) *PrefixMatcher {
	return &PrefixMatcher{templates: templates}
}

func (m *PrefixMatcher) Match(question string) (Template, bool) {
	q := strings.ToLower(question)

	for _, template := range m.templates {
		words := strings.Fields(strings.ToLower(template.Question))
		if len(words) > 3 {
			words = words[:3]
		}

		if strings.Contains(q, strings.Join(words, " ")) {
			return template, true
		}
	}

	return Template{}, false
}
