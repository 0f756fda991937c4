package insights_usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"newslens/domain"
	"newslens/driver/article_store"
)

// TopicCount is one topic with its article count.
type TopicCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopicShare is one topic with its share of all articles.
type TopicShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// TopicGrowth is one topic with a growth indicator string.
type TopicGrowth struct {
	Name   string `json:"name"`
	Growth string `json:"growth"`
}

// Insights summarizes the topic distribution of the stored articles.
type Insights struct {
	TopTrend      TopicCount  `json:"topTrend"`
	MostReadTopic TopicShare  `json:"mostReadTopic"`
	Emerging      TopicGrowth `json:"emerging"`
}

// InsightsUsecase computes topic-distribution insights from article metadata.
// Purely algorithmic, no provider calls.
type InsightsUsecase struct {
	store *article_store.Store
}

func NewInsightsUsecase(store *article_store.Store) *InsightsUsecase {
	return &InsightsUsecase{store: store}
}

// Execute counts articles per topic, ignores Uncategorized, and derives the
// dominant topic, its share of the whole store, and the smallest topic still
// backed by at least two articles.
func (u *InsightsUsecase) Execute(ctx context.Context) Insights {
	articles := u.store.List()

	counts := make(map[string]int)
	for _, article := range articles {
		topic := article.Topic
		if topic == "" {
			topic = domain.TopicUncategorized
		}
		counts[topic]++
	}

	type topicCount struct {
		name  string
		count int
	}
	ranked := make([]topicCount, 0, len(counts))
	for name, count := range counts {
		if name == domain.TopicUncategorized {
			continue
		}
		ranked = append(ranked, topicCount{name, count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	total := len(articles)
	if total == 0 {
		total = 1
	}

	insights := Insights{
		TopTrend:      TopicCount{Name: "Technology", Count: 0},
		MostReadTopic: TopicShare{Name: "General", Percentage: 0},
		Emerging:      TopicGrowth{Name: "Niche Topics", Growth: "+0%"},
	}

	if len(ranked) > 0 {
		top := ranked[0]
		insights.TopTrend = TopicCount{Name: top.name, Count: top.count}
		insights.MostReadTopic = TopicShare{
			Name:       top.name,
			Percentage: roundPercent(top.count, total),
		}
	}

	// Emerging is the smallest topic still appearing at least twice.
	for i := len(ranked) - 1; i >= 0; i-- {
		if ranked[i].count >= 2 {
			insights.Emerging = TopicGrowth{
				Name:   ranked[i].name,
				Growth: fmt.Sprintf("+%d%%", roundPercent(ranked[i].count, total)),
			}
			break
		}
	}

	return insights
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
