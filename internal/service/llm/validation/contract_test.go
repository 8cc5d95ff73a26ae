package validation

import (
	"strings"
	"testing"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

func tags(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + string(rune('a'+i))
	}
	return out
}

func TestCheck_Hashtags(t *testing.T) {
	tests := []struct {
		name   string
		out    llm.HashtagsResult
		issues []string
	}{
		{
			name: "five five three",
			out:  llm.HashtagsResult{TrendingHashtags: tags("trend", 5), NicheHashtags: tags("niche", 5), BrandedHashtags: tags("brand", 3)},
		},
		{
			name: "no branded means eight trending",
			out:  llm.HashtagsResult{TrendingHashtags: tags("trend", 8), NicheHashtags: tags("niche", 5), BrandedHashtags: []string{}},
		},
		{
			name:   "no branded with five trending",
			out:    llm.HashtagsResult{TrendingHashtags: tags("trend", 5), NicheHashtags: tags("niche", 5)},
			issues: []string{"trendingHashtags must contain exactly 8"},
		},
		{
			name:   "two branded",
			out:    llm.HashtagsResult{TrendingHashtags: tags("trend", 5), NicheHashtags: tags("niche", 5), BrandedHashtags: tags("brand", 2)},
			issues: []string{"brandedHashtags must contain 3 or 0"},
		},
		{
			name:   "four niche",
			out:    llm.HashtagsResult{TrendingHashtags: tags("trend", 5), NicheHashtags: tags("niche", 4), BrandedHashtags: tags("brand", 3)},
			issues: []string{"nicheHashtags must contain exactly 5"},
		},
		{
			name: "hash prefix",
			out: llm.HashtagsResult{
				TrendingHashtags: []string{"#trenda", "trendb", "trendc", "trendd", "trende"},
				NicheHashtags:    tags("niche", 5),
				BrandedHashtags:  tags("brand", 3),
			},
			issues: []string{"trendingHashtags[0]"},
		},
		{
			name: "blank tag",
			out: llm.HashtagsResult{
				TrendingHashtags: tags("trend", 5),
				NicheHashtags:    []string{"nichea", "  ", "nichec", "niched", "nichee"},
				BrandedHashtags:  tags("brand", 3),
			},
			issues: []string{"nicheHashtags[1] is empty"},
		},
		{
			name: "duplicate across lists ignores case",
			out: llm.HashtagsResult{
				TrendingHashtags: tags("trend", 5),
				NicheHashtags:    []string{"TrendA", "nicheb", "nichec", "niched", "nichee"},
				BrandedHashtags:  tags("brand", 3),
			},
			issues: []string{`nicheHashtags[0] "TrendA" repeats a tag from trendingHashtags`},
		},
		{
			name: "duplicate within a list",
			out: llm.HashtagsResult{
				TrendingHashtags: tags("trend", 5),
				NicheHashtags:    tags("niche", 5),
				BrandedHashtags:  []string{"brand", "other", "Brand"},
			},
			issues: []string{"brandedHashtags[2]"},
		},
	}

	v := NewValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := v.Check(&tc.out)
			if len(issues) != len(tc.issues) {
				t.Fatalf("expected %d issue(s), got %d: %v", len(tc.issues), len(issues), issues)
			}
			for i, want := range tc.issues {
				if !strings.Contains(issues[i], want) {
					t.Errorf("issue %d = %q, want it to contain %q", i, issues[i], want)
				}
			}
		})
	}
}

func TestCheckRemix(t *testing.T) {
	formats := []llm.RemixFormat{llm.FormatBlogPost, llm.FormatTwitterThread}

	if issues := CheckRemix(llm.RemixResult{"blogPost": "post", "twitterThread": "1/2 ..."}, formats); len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}

	issues := CheckRemix(llm.RemixResult{"blogPost": "post", "linkedinPost": "extra"}, formats)
	if len(issues) != 2 {
		t.Fatalf("expected missing and extra issues, got %v", issues)
	}
	if !strings.Contains(issues[0], "twitterThread") || !strings.Contains(issues[1], "linkedinPost") {
		t.Fatalf("unexpected issue text: %v", issues)
	}

	if issues := CheckRemix(llm.RemixResult{"blogPost": " ", "twitterThread": "ok"}, formats); len(issues) != 1 {
		t.Fatalf("expected empty-format issue, got %v", issues)
	}

	out := llm.RemixResult{"blogPost": "post"}
	if issues := NewValidator().Check(&out); issues != nil {
		t.Fatalf("map results carry no tags, got %v", issues)
	}
}

func TestCheck_Ideas(t *testing.T) {
	v := NewValidator()
	idea := llm.Idea{Title: "t", Description: "d", Angle: "a"}

	if issues := v.Check(&llm.IdeasResult{Ideas: []llm.Idea{idea, idea, idea}}); len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}

	issues := v.Check(&llm.IdeasResult{Ideas: []llm.Idea{idea, {Title: "t", Angle: " "}}})
	if len(issues) != 2 {
		t.Fatalf("expected description and angle issues, got %v", issues)
	}
	if !strings.HasPrefix(issues[0], "ideas[1].description") || !strings.HasPrefix(issues[1], "ideas[1].angle") {
		t.Fatalf("unexpected issue paths: %v", issues)
	}

	if issues := CheckIdeaCount(&llm.IdeasResult{Ideas: []llm.Idea{idea, idea}}, 3); len(issues) != 1 {
		t.Fatalf("expected count issue, got %v", issues)
	}
	if issues := CheckIdeaCount(&llm.IdeasResult{Ideas: []llm.Idea{idea}}, 1); len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
}

func TestCheck_Optimize(t *testing.T) {
	v := NewValidator()
	valid := llm.OptimizeResult{
		OptimizedTitle:            "Title",
		OptimizedDescription:      "Description",
		OptimizedTags:             "a,b",
		RecommendedPostingTime:    "2025-01-31T18:00:00Z",
		EngagementPredictionScore: 72.5,
	}
	if issues := v.Check(&valid); len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}

	bad := valid
	bad.RecommendedPostingTime = "Tuesday evening"
	bad.EngagementPredictionScore = 120
	issues := v.Check(&bad)
	if len(issues) != 2 {
		t.Fatalf("expected posting time and score issues, got %v", issues)
	}
	if !strings.Contains(issues[0], "ISO-8601") || !strings.Contains(issues[1], "at most 100") {
		t.Fatalf("unexpected issue text: %v", issues)
	}

	bad = valid
	bad.EngagementPredictionScore = -1
	if issues := v.Check(&bad); len(issues) != 1 || !strings.Contains(issues[0], "at least 0") {
		t.Fatalf("expected negative score issue, got %v", issues)
	}
}

func TestParsePostingTime(t *testing.T) {
	for _, s := range []string{
		"2025-01-31T18:00:00Z",
		"2025-01-31T18:00:00+05:30",
		"2025-01-31T18:00:00.123Z",
		"2025-01-31T18:00:00",
		"2025-01-31T18:00",
	} {
		if _, err := ParsePostingTime(s); err != nil {
			t.Errorf("%q: unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePostingTime("next friday"); err == nil {
		t.Errorf("expected an error for free text")
	}
}

func TestCheck_ScriptCaptionsPrompt(t *testing.T) {
	v := NewValidator()

	script := llm.ScriptResult{Script: "s", Hooks: llm.Hooks{Curious: "c", Controversial: "c", Educational: "e"}}
	issues := v.Check(&script)
	if len(issues) != 1 || issues[0] != "hooks.fomo is required" {
		t.Fatalf("expected fomo issue, got %v", issues)
	}

	script.Hooks.Fomo = "   "
	if issues := v.Check(&script); len(issues) != 1 || issues[0] != "hooks.fomo is empty" {
		t.Fatalf("expected blank fomo issue, got %v", issues)
	}

	if issues := v.Check(&llm.CaptionsResult{Captions: "c"}); len(issues) != 1 {
		t.Fatalf("expected subtitles issue, got %v", issues)
	}
	if issues := v.Check(&llm.ThumbnailPromptResult{}); len(issues) != 1 {
		t.Fatalf("expected prompt issue, got %v", issues)
	}
}
