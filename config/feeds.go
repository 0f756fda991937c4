package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultFeedURLs is the built-in feed list used when no feeds file is
// configured.
var defaultFeedURLs = []string{
	"https://techcrunch.com/feed/",
	"https://www.theverge.com/rss/index.xml",
	"https://feeds.arstechnica.com/arstechnica/index",
	"https://www.wired.com/feed/rss",
	"https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml",
	"https://feeds.bbci.co.uk/news/technology/rss.xml",
	"https://www.sciencedaily.com/rss/all.xml",
	"https://lifehacker.com/feed/rss",
}

type feedsFile struct {
	Feeds []string `yaml:"feeds"`
}

// LoadFeedURLs returns the feed list from the YAML file at path, or the
// built-in defaults when path is empty.
func LoadFeedURLs(path string) ([]string, error) {
	if path == "" {
		urls := make([]string, len(defaultFeedURLs))
		copy(urls, defaultFeedURLs)
		return urls, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds file %s: %w", path, err)
	}

	var parsed feedsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse feeds file %s: %w", path, err)
	}

	if len(parsed.Feeds) == 0 {
		return nil, fmt.Errorf("feeds file %s contains no feeds", path)
	}

	return parsed.Feeds, nil
}
