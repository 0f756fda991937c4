package trending_usecase

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"newslens/driver/article_store"
)

const maxTrends = 7

// fallbackTrends is returned when no word clears the frequency threshold.
var fallbackTrends = []string{"Technology", "Science", "Innovation", "AI", "Research"}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "shall": {}, "to": {}, "of": {}, "in": {}, "for": {}, "on": {}, "with": {}, "at": {}, "by": {}, "from": {},
	"as": {}, "into": {}, "through": {}, "during": {}, "before": {}, "after": {}, "above": {}, "below": {}, "between": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "not": {}, "so": {}, "yet": {}, "both": {}, "either": {}, "neither": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {}, "he": {}, "she": {}, "they": {}, "we": {}, "you": {},
	"i": {}, "me": {}, "my": {}, "your": {}, "his": {}, "her": {}, "our": {}, "their": {}, "what": {}, "which": {}, "who": {},
	"how": {}, "why": {}, "when": {}, "where": {}, "all": {}, "each": {}, "every": {}, "any": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "no": {}, "only": {}, "own": {}, "same": {}, "than": {}, "too": {},
	"very": {}, "just": {}, "about": {}, "up": {}, "out": {}, "off": {}, "over": {}, "new": {}, "now": {}, "also": {},
	"get": {}, "got": {}, "one": {}, "two": {}, "first": {}, "last": {}, "long": {}, "make": {}, "many": {}, "much": {},
	"says": {}, "said": {}, "say": {}, "like": {}, "even": {}, "still": {}, "way": {}, "well": {}, "back": {}, "use": {},
	"here": {}, "there": {}, "need": {}, "want": {}, "take": {}, "come": {}, "know": {}, "see": {}, "think": {}, "look": {},
}

// TrendingUsecase extracts trending terms from the stored article titles by
// word frequency. No provider calls are involved.
type TrendingUsecase struct {
	store *article_store.Store
}

func NewTrendingUsecase(store *article_store.Store) *TrendingUsecase {
	return &TrendingUsecase{store: store}
}

// Execute counts significant title words across articles, once per article,
// and returns the top terms appearing in at least two titles, title-cased.
func (u *TrendingUsecase) Execute(ctx context.Context) []string {
	counts := make(map[string]int)

	for _, article := range u.store.List() {
		seen := make(map[string]struct{})
		for _, word := range tokenize(article.Title) {
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			counts[word]++
		}
	}

	type wordCount struct {
		word  string
		count int
	}
	ranked := make([]wordCount, 0, len(counts))
	for word, count := range counts {
		if count >= 2 {
			ranked = append(ranked, wordCount{word, count})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) == 0 {
		out := make([]string, len(fallbackTrends))
		copy(out, fallbackTrends)
		return out
	}

	if len(ranked) > maxTrends {
		ranked = ranked[:maxTrends]
	}

	trends := make([]string, len(ranked))
	for i, wc := range ranked {
		trends[i] = titleCase(wc.word)
	}
	return trends
}

// tokenize lowercases the title, strips everything but letters, digits and
// spaces, and keeps words longer than three characters that are not stop
// words.
func tokenize(title string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	var words []string
	for _, word := range strings.Fields(b.String()) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		words = append(words, word)
	}
	return words
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
