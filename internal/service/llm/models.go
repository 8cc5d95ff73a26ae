package llm

import (
	"strings"
)

// Feature identifies a flow
type Feature string

const (
	FeatureScriptAndHooks  Feature = "scriptAndHooks"
	FeatureHashtags        Feature = "hashtags"
	FeatureVideoIdeas      Feature = "videoIdeas"
	FeatureOptimizeContent Feature = "optimizeContent"
	FeatureCaptions        Feature = "captions"
	FeatureRemix           Feature = "remix"
	FeatureThumbnailPrompt Feature = "thumbnailPrompt"
)

// RemixFormat is one of the target shapes of the remix flow
type RemixFormat string

const (
	FormatBlogPost         RemixFormat = "blogPost"
	FormatTwitterThread    RemixFormat = "twitterThread"
	FormatLinkedInPost     RemixFormat = "linkedinPost"
	FormatShortVideoScript RemixFormat = "shortVideoScript"
)

// RemixFormats lists the allowed remix formats in display order
var RemixFormats = []RemixFormat{
	FormatBlogPost,
	FormatTwitterThread,
	FormatLinkedInPost,
	FormatShortVideoScript,
}

// ThumbnailStyles lists the accepted thumbnail style names
var ThumbnailStyles = []string{"minimal", "cinematic", "anime", "realistic", "cartoon", "3d"}

const (
	DefaultIdeaCount = 5
	MaxIdeaCount     = 10

	HashtagTrendingCount   = 5
	HashtagNicheCount      = 5
	HashtagBrandedCount    = 3
	HashtagTrendingNoBrand = HashtagTrendingCount + HashtagBrandedCount
)

// ScriptRequest is the input of the script & hooks flow
type ScriptRequest struct {
	Topic          string `json:"topic" validate:"required,min=1"`
	TargetAudience string `json:"targetAudience" validate:"required,min=1"`
	VideoLength    string `json:"videoLength" validate:"required"`
	Platform       string `json:"platform,omitempty"`
	Tone           string `json:"tone,omitempty"`
}

// Normalize trims surrounding whitespace from every field
func (r *ScriptRequest) Normalize() {
	trim(&r.Topic, &r.TargetAudience, &r.VideoLength, &r.Platform, &r.Tone)
}

// Hooks are the four opening lines returned with a script
type Hooks struct {
	Curious       string `json:"curious" validate:"required,notblank"`
	Controversial string `json:"controversial" validate:"required,notblank"`
	Educational   string `json:"educational" validate:"required,notblank"`
	Fomo          string `json:"fomo" validate:"required,notblank"`
}

// ScriptResult is the output of the script & hooks flow
type ScriptResult struct {
	Script string `json:"script" validate:"required,notblank"`
	Hooks  Hooks  `json:"hooks"`
}

// HashtagsRequest is the input of the hashtag flow
type HashtagsRequest struct {
	VideoTitle       string `json:"videoTitle" validate:"required,min=1"`
	VideoDescription string `json:"videoDescription" validate:"required,min=1"`
}

// Normalize trims surrounding whitespace from every field
func (r *HashtagsRequest) Normalize() {
	trim(&r.VideoTitle, &r.VideoDescription)
}

// HashtagsResult is the output of the hashtag flow. List sizes and
// uniqueness across lists are checked at struct level.
type HashtagsResult struct {
	TrendingHashtags []string `json:"trendingHashtags" validate:"dive,required,notblank,startsnotwith=#"`
	NicheHashtags    []string `json:"nicheHashtags" validate:"len=5,dive,required,notblank,startsnotwith=#"`
	BrandedHashtags  []string `json:"brandedHashtags" validate:"dive,required,notblank,startsnotwith=#"`
}

// IdeasRequest is the input of the video ideas flow. Count is a pointer so an
// omitted count can be told apart from an explicit zero.
type IdeasRequest struct {
	Topic    string `json:"topic" validate:"required,min=1"`
	Count    *int   `json:"count,omitempty" validate:"required,min=1,max=10"`
	Platform string `json:"platform,omitempty"`
}

// Normalize trims fields and applies the default count
func (r *IdeasRequest) Normalize() {
	trim(&r.Topic, &r.Platform)
	if r.Count == nil {
		n := DefaultIdeaCount
		r.Count = &n
	}
}

// N returns the requested number of ideas
func (r *IdeasRequest) N() int {
	if r.Count == nil {
		return DefaultIdeaCount
	}
	return *r.Count
}

// Idea is a single generated video concept
type Idea struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Angle       string `json:"angle" validate:"required,notblank"`
}

// IdeasResult is the output of the video ideas flow
type IdeasResult struct {
	Ideas []Idea `json:"ideas" validate:"dive"`
}

// OptimizeRequest is the input of the content optimization flow
type OptimizeRequest struct {
	VideoTitle          string `json:"videoTitle" validate:"required,min=1"`
	VideoDescription    string `json:"videoDescription" validate:"required,min=1"`
	VideoTags           string `json:"videoTags" validate:"required,min=1"`
	VideoContentSummary string `json:"videoContentSummary" validate:"required,min=1"`
	CurrentViewCount    int64  `json:"currentViewCount" validate:"min=0"`
	CurrentLikeCount    int64  `json:"currentLikeCount" validate:"min=0"`
	CurrentCommentCount int64  `json:"currentCommentCount" validate:"min=0"`
}

// Normalize trims surrounding whitespace from every text field
func (r *OptimizeRequest) Normalize() {
	trim(&r.VideoTitle, &r.VideoDescription, &r.VideoTags, &r.VideoContentSummary)
}

// OptimizeResult is the output of the content optimization flow
type OptimizeResult struct {
	OptimizedTitle            string  `json:"optimizedTitle" validate:"required,notblank"`
	OptimizedDescription      string  `json:"optimizedDescription" validate:"required,notblank"`
	OptimizedTags             string  `json:"optimizedTags" validate:"required,notblank"`
	RecommendedPostingTime    string  `json:"recommendedPostingTime" validate:"postingtime"`
	EngagementPredictionScore float64 `json:"engagementPredictionScore" validate:"gte=0,lte=100"`
}

// CaptionsRequest is the input of the captions & subtitles flow
type CaptionsRequest struct {
	VideoDataURI string `json:"videoDataUri" validate:"required,videodatauri"`
	Language     string `json:"language" validate:"required,min=1"`
}

// Normalize trims surrounding whitespace from every field
func (r *CaptionsRequest) Normalize() {
	trim(&r.VideoDataURI, &r.Language)
}

// CaptionsResult is the output of the captions & subtitles flow
type CaptionsResult struct {
	Captions  string `json:"captions" validate:"required,notblank"`
	Subtitles string `json:"subtitles" validate:"required,notblank"`
}

// RemixRequest is the input of the content remix flow
type RemixRequest struct {
	SourceContent string        `json:"sourceContent" validate:"required,min=50"`
	Formats       []RemixFormat `json:"formats" validate:"required,min=1,unique,dive,oneof=blogPost twitterThread linkedinPost shortVideoScript"`
}

// Normalize trims the source content and format names
func (r *RemixRequest) Normalize() {
	trim(&r.SourceContent)
	for i := range r.Formats {
		r.Formats[i] = RemixFormat(strings.TrimSpace(string(r.Formats[i])))
	}
}

// RemixResult maps every requested format to its generated text
type RemixResult map[RemixFormat]string

// ThumbnailPromptRequest is the input of the thumbnail prompt assist flow
type ThumbnailPromptRequest struct {
	VideoTitle       string `json:"videoTitle" validate:"required,min=5"`
	VideoDescription string `json:"videoDescription,omitempty"`
	Style            string `json:"style,omitempty" validate:"omitempty,oneof=minimal cinematic anime realistic cartoon 3d"`
}

// Normalize trims fields and lower-cases the style name
func (r *ThumbnailPromptRequest) Normalize() {
	trim(&r.VideoTitle, &r.VideoDescription, &r.Style)
	r.Style = strings.ToLower(r.Style)
}

// ThumbnailPromptResult is the output of the thumbnail prompt assist flow
type ThumbnailPromptResult struct {
	Prompt string `json:"prompt" validate:"required,notblank"`
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
