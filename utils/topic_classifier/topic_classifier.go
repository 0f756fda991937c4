package topic_classifier

import "strings"

// topicKeywords maps each topic to the title keywords that indicate it. The
// order of entries matters: when two topics score equally, the earlier one
// wins.
var topicKeywords = []struct {
	Topic    string
	Keywords []string
}{
	{"AI & ML", []string{"ai", "artificial intelligence", "machine learning", "deep learning", "neural", "llm", "gpt", "chatgpt", "openai", "anthropic", "gemini", "copilot", "model", "transformer", "groq", "claude", "diffusion", "generative", "nlp", "computer vision", "training", "inference", "agent", "rag"}},
	{"Web Dev", []string{"react", "nextjs", "next.js", "angular", "vue", "svelte", "javascript", "typescript", "css", "html", "frontend", "backend", "fullstack", "node", "deno", "bun", "api", "rest", "graphql", "web dev", "framework", "tailwind", "webpack", "vite"}},
	{"Science", []string{"science", "research", "study", "discovery", "physics", "chemistry", "biology", "genome", "dna", "evolution", "experiment", "laboratory", "scientist", "nature", "cell", "quantum", "molecule", "fossil", "species", "organism"}},
	{"Startups", []string{"startup", "founder", "venture", "funding", "seed", "series a", "series b", "ipo", "valuation", "unicorn", "accelerator", "incubator", "entrepreneur", "pitch", "y combinator", "techstars"}},
	{"Crypto", []string{"crypto", "bitcoin", "ethereum", "blockchain", "defi", "nft", "token", "web3", "mining", "wallet", "solana", "binance", "coinbase", "stablecoin", "dao"}},
	{"Design", []string{"design", "ui", "ux", "figma", "interface", "typography", "color", "layout", "prototype", "wireframe", "accessibility", "aesthetic", "branding", "logo"}},
	{"DevOps", []string{"devops", "docker", "kubernetes", "k8s", "ci/cd", "pipeline", "deploy", "infrastructure", "terraform", "aws", "azure", "gcp", "cloud", "server", "monitoring", "container", "linux", "nginx"}},
	{"Security", []string{"security", "hack", "breach", "vulnerability", "malware", "phishing", "ransomware", "encryption", "firewall", "cyber", "privacy", "zero-day", "exploit", "password", "authentication"}},
	{"Politics", []string{"politics", "election", "government", "congress", "senate", "president", "legislation", "policy", "democrat", "republican", "vote", "campaign", "regulation", "law", "court"}},
	{"Business", []string{"business", "revenue", "profit", "market", "stock", "earnings", "ceo", "acquisition", "merger", "layoff", "company", "enterprise", "corporate", "industry", "economy", "trade", "gdp"}},
	{"Health", []string{"health", "medical", "doctor", "hospital", "disease", "treatment", "vaccine", "drug", "fda", "clinical", "patient", "diagnosis", "surgery", "mental health", "wellness", "fitness"}},
	{"Sports", []string{"sports", "nba", "nfl", "mlb", "soccer", "football", "basketball", "tennis", "golf", "olympics", "championship", "tournament", "athlete", "coach", "game", "match", "score"}},
	{"Entertainment", []string{"movie", "film", "tv", "show", "netflix", "streaming", "music", "album", "concert", "celebrity", "actor", "director", "oscar", "emmy", "gaming", "playstation", "xbox", "nintendo"}},
	{"Climate", []string{"climate", "carbon", "emissions", "renewable", "solar", "wind", "energy", "sustainability", "pollution", "warming", "environmental", "green", "electric vehicle", "ev", "battery"}},
	{"Space", []string{"space", "nasa", "spacex", "rocket", "satellite", "mars", "moon", "orbit", "astronaut", "telescope", "galaxy", "asteroid", "launch", "cosmic", "starship", "james webb"}},
}

const Uncategorized = "Uncategorized"

// Classify maps an article title to one topic label. Each keyword found as a
// substring of the lowercased title contributes its own length to the topic's
// score, so longer, more specific matches outweigh generic ones. Ties keep
// the earlier topic; no match yields Uncategorized.
func Classify(title string) string {
	lower := strings.ToLower(title)
	bestMatch := Uncategorized
	bestScore := 0

	for _, entry := range topicKeywords {
		score := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				score += len(keyword)
			}
		}
		if score > bestScore {
			bestScore = score
			bestMatch = entry.Topic
		}
	}

	return bestMatch
}

// Topics returns the fixed topic vocabulary in table order, without the
// Uncategorized sentinel. The analysis prompt reuses this list so providers
// classify into the same vocabulary.
func Topics() []string {
	out := make([]string, 0, len(topicKeywords))
	for _, entry := range topicKeywords {
		out = append(out, entry.Topic)
	}
	return out
}
