package prompts

import (
	"strings"
	"testing"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

func TestScriptPrompt_OptionalFragments(t *testing.T) {
	g := NewGenerator()

	base := &llm.ScriptRequest{Topic: "Espresso", TargetAudience: "Students", VideoLength: "5 minutes"}
	p := g.ScriptPrompt(base)
	if strings.Contains(p, "Platform:") || strings.Contains(p, "Tone:") {
		t.Fatalf("optional fragments must be omitted when empty:\n%s", p)
	}
	for _, want := range []string{"Topic: Espresso", "Target Audience: Students", "Video Length: 5 minutes", "'fomo'"} {
		if !strings.Contains(p, want) {
			t.Fatalf("missing %q in prompt:\n%s", want, p)
		}
	}

	full := *base
	full.Platform = "TikTok"
	full.Tone = "Playful"
	p = g.ScriptPrompt(&full)
	if !strings.Contains(p, "Platform: TikTok") || !strings.Contains(p, "Tone: Playful") {
		t.Fatalf("optional fragments missing:\n%s", p)
	}
}

func TestPromptsArePure(t *testing.T) {
	g := NewGenerator()
	req := &llm.HashtagsRequest{VideoTitle: "Latte art", VideoDescription: "Pouring a tulip"}
	if g.HashtagsPrompt(req) != g.HashtagsPrompt(req) {
		t.Fatalf("same request rendered two different prompts")
	}
}

func TestHashtagsPrompt_Counts(t *testing.T) {
	p := NewGenerator().HashtagsPrompt(&llm.HashtagsRequest{VideoTitle: "T", VideoDescription: "D"})
	for _, want := range []string{"exactly 5 trending", "5 niche", "3 branded", "8 trending hashtags in total", "'#'"} {
		if !strings.Contains(p, want) {
			t.Fatalf("missing %q in prompt:\n%s", want, p)
		}
	}
}

func TestIdeasPrompt_Count(t *testing.T) {
	n := 7
	p := NewGenerator().IdeasPrompt(&llm.IdeasRequest{Topic: "Chess", Count: &n})
	if !strings.Contains(p, "Generate 7 viral video ideas") || !strings.Contains(p, "exactly 7 objects") {
		t.Fatalf("count not rendered:\n%s", p)
	}
	if strings.Contains(p, "tailored for") {
		t.Fatalf("platform fragment must be omitted:\n%s", p)
	}
}

func TestRemixPrompt_OnlyRequestedFormats(t *testing.T) {
	req := &llm.RemixRequest{
		SourceContent: strings.Repeat("source ", 10),
		Formats:       []llm.RemixFormat{llm.FormatTwitterThread},
	}
	p := NewGenerator().RemixPrompt(req)
	if !strings.Contains(p, "For 'twitterThread'") {
		t.Fatalf("requested guideline missing:\n%s", p)
	}
	if strings.Contains(p, "For 'blogPost'") || strings.Contains(p, "For 'linkedinPost'") {
		t.Fatalf("unrequested guideline rendered:\n%s", p)
	}
	if !strings.Contains(p, "exactly 1 key(s): twitterThread") {
		t.Fatalf("key count missing:\n%s", p)
	}
}

func TestThumbnailPrompt_OptionalFragments(t *testing.T) {
	g := NewGenerator()

	p := g.ThumbnailPrompt(&llm.ThumbnailPromptRequest{VideoTitle: "Ten chess traps"})
	if strings.Contains(p, "Video Description:") || strings.Contains(p, "Style:") {
		t.Fatalf("optional fragments must be omitted:\n%s", p)
	}

	p = g.ThumbnailPrompt(&llm.ThumbnailPromptRequest{VideoTitle: "Ten chess traps", VideoDescription: "Openings", Style: "anime"})
	if !strings.Contains(p, "Video Description: Openings") || !strings.Contains(p, "Style: anime") {
		t.Fatalf("optional fragments missing:\n%s", p)
	}
}

func TestOptimizeAndCaptionsPrompts(t *testing.T) {
	g := NewGenerator()

	p := g.OptimizePrompt(&llm.OptimizeRequest{VideoTitle: "T", CurrentViewCount: 1200})
	if !strings.Contains(p, "Current View Count: 1200") || !strings.Contains(p, "ISO-8601") {
		t.Fatalf("unexpected optimize prompt:\n%s", p)
	}

	p = g.CaptionsPrompt(&llm.CaptionsRequest{Language: "Spanish"})
	if !strings.Contains(p, "Language: Spanish") {
		t.Fatalf("language missing:\n%s", p)
	}
}
