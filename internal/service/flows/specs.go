package flows

import (
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/prompts"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/validation"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/utils/datauri"
)

// request is implemented by every flow input
type request[T any] interface {
	*T
	Normalize()
}

// flow binds a feature to its template, output schema and output checks.
// Rules that only look at the output live in validate tags on Out.
type flow[In any, Out any, PIn request[In]] struct {
	feature llm.Feature
	name    prompts.PromptName
	render  func(*prompts.Generator, PIn) string
	schema  func(PIn) *llm.Schema
	media   func(PIn) (*llm.Media, error) // nil when the flow takes no media
	check   func(PIn, *Out) []string      // nil when no rule depends on the request
}

var scriptFlow = flow[llm.ScriptRequest, llm.ScriptResult, *llm.ScriptRequest]{
	feature: llm.FeatureScriptAndHooks,
	name:    prompts.PromptScriptAndHooks,
	render:  (*prompts.Generator).ScriptPrompt,
	schema: func(*llm.ScriptRequest) *llm.Schema {
		return llm.Object("A video script with a set of engaging hooks.",
			[]string{"script", "hooks"},
			map[string]*llm.Schema{
				"script": llm.String("The generated video script."),
				"hooks": llm.Object("A set of engaging hooks for the video.",
					[]string{"curious", "controversial", "educational", "fomo"},
					map[string]*llm.Schema{
						"curious":       llm.String("A hook that piques curiosity."),
						"controversial": llm.String("A hook that presents a controversial statement."),
						"educational":   llm.String("A hook that promises educational value."),
						"fomo":          llm.String("A hook that creates fear of missing out."),
					}),
			})
	},
}

var hashtagsFlow = flow[llm.HashtagsRequest, llm.HashtagsResult, *llm.HashtagsRequest]{
	feature: llm.FeatureHashtags,
	name:    prompts.PromptHashtags,
	render:  (*prompts.Generator).HashtagsPrompt,
	schema: func(*llm.HashtagsRequest) *llm.Schema {
		return llm.Object("Hashtags for a video, without the '#' symbol.",
			[]string{"trendingHashtags", "nicheHashtags", "brandedHashtags"},
			map[string]*llm.Schema{
				"trendingHashtags": llm.StringList("A list of trending hashtags.",
					llm.HashtagTrendingCount, llm.HashtagTrendingNoBrand),
				"nicheHashtags": llm.StringList("A list of niche-specific hashtags.",
					llm.HashtagNicheCount, llm.HashtagNicheCount),
				"brandedHashtags": llm.StringList("A list of branded hashtags.",
					0, llm.HashtagBrandedCount),
			})
	},
}

var ideasFlow = flow[llm.IdeasRequest, llm.IdeasResult, *llm.IdeasRequest]{
	feature: llm.FeatureVideoIdeas,
	name:    prompts.PromptVideoIdeas,
	render:  (*prompts.Generator).IdeasPrompt,
	schema: func(in *llm.IdeasRequest) *llm.Schema {
		idea := llm.Object("A single video idea.",
			[]string{"title", "description", "angle"},
			map[string]*llm.Schema{
				"title":       llm.String("The title of the video idea."),
				"description": llm.String("A brief description of the video content."),
				"angle":       llm.String("The unique angle or hook for this idea."),
			})
		return llm.Object("Generated video ideas.",
			[]string{"ideas"},
			map[string]*llm.Schema{
				"ideas": {
					Type:        llm.TypeArray,
					Description: "A list of generated video ideas.",
					Items:       idea,
					MinItems:    in.N(),
					MaxItems:    in.N(),
				},
			})
	},
	check: func(in *llm.IdeasRequest, out *llm.IdeasResult) []string {
		return validation.CheckIdeaCount(out, in.N())
	},
}

var optimizeFlow = flow[llm.OptimizeRequest, llm.OptimizeResult, *llm.OptimizeRequest]{
	feature: llm.FeatureOptimizeContent,
	name:    prompts.PromptOptimizeContent,
	render:  (*prompts.Generator).OptimizePrompt,
	schema: func(*llm.OptimizeRequest) *llm.Schema {
		posting := llm.String("The recommended posting time for the video in ISO-8601 format.")
		posting.Format = "date-time"
		return llm.Object("Optimized video content and recommendations.",
			[]string{"optimizedTitle", "optimizedDescription", "optimizedTags",
				"recommendedPostingTime", "engagementPredictionScore"},
			map[string]*llm.Schema{
				"optimizedTitle":            llm.String("The optimized title of the video."),
				"optimizedDescription":      llm.String("The optimized description of the video."),
				"optimizedTags":             llm.String("The optimized tags of the video, comma separated."),
				"recommendedPostingTime":    posting,
				"engagementPredictionScore": llm.Number("Predicted engagement level between 0 and 100."),
			})
	},
}

var captionsFlow = flow[llm.CaptionsRequest, llm.CaptionsResult, *llm.CaptionsRequest]{
	feature: llm.FeatureCaptions,
	name:    prompts.PromptCaptions,
	render:  (*prompts.Generator).CaptionsPrompt,
	schema: func(*llm.CaptionsRequest) *llm.Schema {
		return llm.Object("Captions and subtitles for the video.",
			[]string{"captions", "subtitles"},
			map[string]*llm.Schema{
				"captions":  llm.String("The generated video captions."),
				"subtitles": llm.String("The generated video subtitles."),
			})
	},
	media: func(in *llm.CaptionsRequest) (*llm.Media, error) {
		uri, err := datauri.Parse(in.VideoDataURI)
		if err != nil {
			return nil, err
		}
		return &llm.Media{MIMEType: uri.MIMEType, Data: uri.Data}, nil
	},
}

var remixFlow = flow[llm.RemixRequest, llm.RemixResult, *llm.RemixRequest]{
	feature: llm.FeatureRemix,
	name:    prompts.PromptRemix,
	render:  (*prompts.Generator).RemixPrompt,
	// Only the requested formats are declared, so the schema itself pins the key set
	schema: func(in *llm.RemixRequest) *llm.Schema {
		names := make([]string, 0, len(in.Formats))
		props := make(map[string]*llm.Schema, len(in.Formats))
		for _, f := range in.Formats {
			names = append(names, string(f))
			props[string(f)] = llm.String("Remixed " + string(f) + " content.")
		}
		return llm.Object("Source content remixed into the requested formats.", names, props)
	},
	check: func(in *llm.RemixRequest, out *llm.RemixResult) []string {
		return validation.CheckRemix(*out, in.Formats)
	},
}

var thumbnailPromptFlow = flow[llm.ThumbnailPromptRequest, llm.ThumbnailPromptResult, *llm.ThumbnailPromptRequest]{
	feature: llm.FeatureThumbnailPrompt,
	name:    prompts.PromptThumbnail,
	render:  (*prompts.Generator).ThumbnailPrompt,
	schema: func(*llm.ThumbnailPromptRequest) *llm.Schema {
		return llm.Object("An image generation prompt for a video thumbnail.",
			[]string{"prompt"},
			map[string]*llm.Schema{
				"prompt": llm.String("A detailed and descriptive prompt for an image generation model."),
			})
	},
}
