package prompts

import (
	"fmt"
	"strings"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

// remixGuidelines describes the expected shape of every remix format
var remixGuidelines = map[llm.RemixFormat]string{
	llm.FormatBlogPost:         "Write a well-structured blog post (introduction, body, conclusion) based on the source.",
	llm.FormatTwitterThread:    "Create an engaging thread (approx 5-10 tweets). Number them (e.g., 1/x).",
	llm.FormatLinkedInPost:     "Write a professional, insightful post with a strong hook and call-to-action.",
	llm.FormatShortVideoScript: "Write a 30-60 second video script with Scene, Hook, Body, and CTA.",
}

// OptimizePrompt creates a prompt for optimizing title, description, tags and posting time
func (g *Generator) OptimizePrompt(request *llm.OptimizeRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an expert in optimizing video content for maximum visibility and engagement on platforms like YouTube.\n\n")
	sb.WriteString("Given the following information about a video, provide optimized content and recommendations:\n\n")

	sb.WriteString(fmt.Sprintf("Current Title: %s\n", request.VideoTitle))
	sb.WriteString(fmt.Sprintf("Current Description: %s\n", request.VideoDescription))
	sb.WriteString(fmt.Sprintf("Current Tags: %s\n", request.VideoTags))
	sb.WriteString(fmt.Sprintf("Video Content Summary: %s\n", request.VideoContentSummary))
	sb.WriteString(fmt.Sprintf("Current View Count: %d\n", request.CurrentViewCount))
	sb.WriteString(fmt.Sprintf("Current Like Count: %d\n", request.CurrentLikeCount))
	sb.WriteString(fmt.Sprintf("Current Comment Count: %d\n\n", request.CurrentCommentCount))

	sb.WriteString("Instructions:\n")
	sb.WriteString("1. 'optimizedTitle': an engaging title that includes relevant keywords.\n")
	sb.WriteString("2. 'optimizedDescription': a clear summary of the video content that encourages viewers to watch.\n")
	sb.WriteString("3. 'optimizedTags': relevant tags that improve search visibility, comma separated.\n")
	sb.WriteString("4. 'recommendedPostingTime': the optimal posting date and time as an ISO-8601 date-time (e.g. 2025-01-31T18:00:00Z), ")
	sb.WriteString("considering audience activity patterns, platform algorithms and the current view, like and comment counts.\n")
	sb.WriteString("5. 'engagementPredictionScore': a number between 0 and 100 predicting the engagement level of the optimized content.\n\n")

	sb.WriteString("Keep the optimized title and description concise and attention-grabbing.\n")
	sb.WriteString("Response format: JSON with exactly the five fields above.\n")
	sb.WriteString("Do not include any explanations, just return the JSON object.")

	return sb.String()
}

// CaptionsPrompt creates a prompt for captions and subtitles of the attached video
func (g *Generator) CaptionsPrompt(request *llm.CaptionsRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an expert video caption and subtitle generator.\n\n")
	sb.WriteString("You will generate captions and subtitles for the attached video in the specified language.\n\n")
	sb.WriteString(fmt.Sprintf("Language: %s\n\n", request.Language))

	sb.WriteString("Response format: JSON with fields 'captions' and 'subtitles', both non-empty strings.\n")
	sb.WriteString("'captions' is the transcript of the spoken content; 'subtitles' is the same content split into timed subtitle lines.\n")
	sb.WriteString("Do not include any explanations, just return the JSON object.")

	return sb.String()
}

// RemixPrompt creates a prompt that repurposes source content into the requested formats
func (g *Generator) RemixPrompt(request *llm.RemixRequest) string {
	var sb strings.Builder

	names := make([]string, 0, len(request.Formats))
	for _, f := range request.Formats {
		names = append(names, string(f))
	}

	sb.WriteString("You are an expert content strategist and copywriter.\n")
	sb.WriteString("Your task is to repurpose the following source content into specific formats.\n\n")

	sb.WriteString("Source Content:\n")
	sb.WriteString(fmt.Sprintf("\"%s\"\n\n", request.SourceContent))

	sb.WriteString(fmt.Sprintf("Target Formats: %s\n\n", strings.Join(names, ", ")))

	sb.WriteString("Instructions:\n")
	sb.WriteString("1. Review the 'Target Formats' list carefully.\n")
	sb.WriteString("2. You MUST generate a response for EVERY single format listed in 'Target Formats'.\n")
	sb.WriteString("3. Do NOT skip any format, and do NOT add formats that were not requested.\n\n")

	sb.WriteString("Format Guidelines:\n")
	for _, f := range request.Formats {
		if guideline, ok := remixGuidelines[f]; ok {
			sb.WriteString(fmt.Sprintf("- For '%s': %s\n", f, guideline))
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Output Requirements:\n")
	sb.WriteString(fmt.Sprintf("- Return a JSON object with exactly %d key(s): %s.\n", len(names), strings.Join(names, ", ")))
	sb.WriteString("- Each value is the generated text for that format.\n")
	sb.WriteString("Do not include any explanations, just return the JSON object.")

	return sb.String()
}

// ThumbnailPrompt creates a prompt that asks for an image-generation prompt
func (g *Generator) ThumbnailPrompt(request *llm.ThumbnailPromptRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an expert prompt engineer for image generation models like Imagen and Midjourney.\n")
	sb.WriteString("Create a highly detailed and effective image generation prompt for a video thumbnail based on the following:\n\n")

	sb.WriteString(fmt.Sprintf("Video Title: %s\n", request.VideoTitle))
	if request.VideoDescription != "" {
		sb.WriteString(fmt.Sprintf("Video Description: %s\n", request.VideoDescription))
	}
	if request.Style != "" {
		sb.WriteString(fmt.Sprintf("Style: %s\n", request.Style))
	}
	sb.WriteString("\n")

	sb.WriteString("The prompt should include details about composition, lighting, subject, and mood. ")
	sb.WriteString("It should be optimized to produce a high-click-through-rate (CTR) thumbnail at 1280x720.\n\n")

	sb.WriteString("Response format: JSON with a single field 'prompt' containing the image generation prompt.\n")
	sb.WriteString("Do not include any explanations, just return the JSON object.")

	return sb.String()
}
