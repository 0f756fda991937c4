package topic_classifier

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "space keywords",
			title: "NASA launches new rocket to Mars",
			want:  "Space",
		},
		{
			name:  "empty title",
			title: "",
			want:  Uncategorized,
		},
		{
			name:  "no keyword matches",
			title: "Morning roundup",
			want:  Uncategorized,
		},
		{
			name:  "multi-word keyword outweighs short generic match",
			title: "The artificial intelligence shift",
			want:  "AI & ML",
		},
		{
			name:  "security breach",
			title: "Massive data breach exposes millions of passwords",
			want:  "Security",
		},
		{
			name:  "crypto",
			title: "Bitcoin and Ethereum rally as stablecoin rules land",
			want:  "Crypto",
		},
		{
			name:  "case insensitive",
			title: "KUBERNETES DEPLOY BEST PRACTICES",
			want:  "DevOps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.title); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	title := "OpenAI releases new model for computer vision training"
	first := Classify(title)
	for i := 0; i < 10; i++ {
		if got := Classify(title); got != first {
			t.Fatalf("Classify is not deterministic: %q vs %q", got, first)
		}
	}
}

func TestTopics_ExcludesUncategorized(t *testing.T) {
	topics := Topics()
	if len(topics) != 15 {
		t.Fatalf("expected 15 topics, got %d", len(topics))
	}
	for _, topic := range topics {
		if topic == Uncategorized {
			t.Errorf("Topics() must not contain %q", Uncategorized)
		}
	}
	if topics[0] != "AI & ML" {
		t.Errorf("expected first topic to be AI & ML, got %q", topics[0])
	}
}
