package prompts

import (
	"fmt"
	"strings"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

// Generator creates prompts for LLM services.
// Every method is pure: the same request always renders the same text.
type Generator struct{}

// NewGenerator creates a new prompt generator
func NewGenerator() *Generator {
	return &Generator{}
}

// ScriptPrompt creates a prompt for a video script and its four hooks
func (g *Generator) ScriptPrompt(request *llm.ScriptRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an AI assistant designed to help video creators generate video scripts and engaging hooks.\n\n")
	sb.WriteString("Based on the topic, target audience, and video length, generate a video script and a set of hooks. ")
	sb.WriteString("The hooks should be attention grabbing and suitable for the given topic and audience.\n\n")

	sb.WriteString(fmt.Sprintf("Topic: %s\n", request.Topic))
	sb.WriteString(fmt.Sprintf("Target Audience: %s\n", request.TargetAudience))
	sb.WriteString(fmt.Sprintf("Video Length: %s\n", request.VideoLength))

	if request.Platform != "" {
		sb.WriteString(fmt.Sprintf("Platform: %s (follow the pacing and conventions of this platform)\n", request.Platform))
	}
	if request.Tone != "" {
		sb.WriteString(fmt.Sprintf("Tone: %s\n", request.Tone))
	}
	sb.WriteString("\n")

	sb.WriteString("Response format: JSON with fields 'script' and 'hooks'.\n")
	sb.WriteString("'hooks' must be an object with exactly these four fields, all non-empty:\n")
	sb.WriteString("- 'curious': a hook that piques curiosity\n")
	sb.WriteString("- 'controversial': a hook that presents a controversial statement\n")
	sb.WriteString("- 'educational': a hook that promises educational value\n")
	sb.WriteString("- 'fomo': a hook that creates fear of missing out\n")
	sb.WriteString("Do not include any explanations, just return the JSON object.")

	return sb.String()
}

// HashtagsPrompt creates a prompt for trending, niche and branded hashtags
func (g *Generator) HashtagsPrompt(request *llm.HashtagsRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an expert in social media marketing, specializing in hashtag generation for video content.\n\n")
	sb.WriteString("Given the video title and description, generate trending, niche, and branded hashtags to maximize discoverability.\n\n")

	sb.WriteString(fmt.Sprintf("Video Title: %s\n", request.VideoTitle))
	sb.WriteString(fmt.Sprintf("Video Description: %s\n\n", request.VideoDescription))

	sb.WriteString("Response format: JSON with fields 'trendingHashtags', 'nicheHashtags' and 'brandedHashtags'. ")
	sb.WriteString("Each field is an array of strings.\n")
	sb.WriteString("Do not include the '#' symbol in the hashtags.\n")
	sb.WriteString("Do not repeat hashtags, neither within a list nor across the three lists.\n")
	sb.WriteString(fmt.Sprintf("Return exactly %d trending hashtags, %d niche hashtags and %d branded hashtags.\n",
		llm.HashtagTrendingCount, llm.HashtagNicheCount, llm.HashtagBrandedCount))
	sb.WriteString(fmt.Sprintf("If there are no branded hashtags, return an empty 'brandedHashtags' array and add %d more trending hashtags, for %d trending hashtags in total.\n",
		llm.HashtagBrandedCount, llm.HashtagTrendingNoBrand))
	sb.WriteString("Do not include any explanations, just return the JSON object.")

	return sb.String()
}

// IdeasPrompt creates a prompt for a fixed number of video ideas
func (g *Generator) IdeasPrompt(request *llm.IdeasRequest) string {
	var sb strings.Builder

	count := request.N()

	sb.WriteString("You are a creative content strategist. ")
	sb.WriteString(fmt.Sprintf("Generate %d viral video ideas for the topic \"%s\"", count, request.Topic))
	if request.Platform != "" {
		sb.WriteString(fmt.Sprintf(" tailored for %s", request.Platform))
	}
	sb.WriteString(".\n\n")

	sb.WriteString("For each idea, provide:\n")
	sb.WriteString("- 'title': a catchy title\n")
	sb.WriteString("- 'description': a short description of the video content\n")
	sb.WriteString("- 'angle': the unique angle or hook, i.e. why this will work\n\n")
	sb.WriteString("Examples of angles: \"Controversial Take\", \"Beginner Guide\", \"Storytelling\", \"Data-Driven\", \"Behind the Scenes\".\n\n")

	sb.WriteString(fmt.Sprintf("Response format: JSON with a single field 'ideas' containing exactly %d objects, each with non-empty 'title', 'description' and 'angle'.\n", count))
	sb.WriteString("Do not include any explanations, just return the JSON object.")

	return sb.String()
}
