package prompts

// PromptName identifies a template when it is sent to a backend
type PromptName string

const (
	PromptScriptAndHooks  PromptName = "generateVideoScriptsAndHooksPrompt"
	PromptHashtags        PromptName = "generateRelevantHashtagsPrompt"
	PromptVideoIdeas      PromptName = "generateVideoIdeasPrompt"
	PromptOptimizeContent PromptName = "optimizeVideoContentPrompt"
	PromptCaptions        PromptName = "generateVideoCaptionsAndSubtitlesPrompt"
	PromptRemix           PromptName = "remixContentPrompt"
	PromptThumbnail       PromptName = "generateThumbnailPromptPrompt"
)
