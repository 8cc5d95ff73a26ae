package api

// This file contains model definitions for Swagger documentation

// ErrorResponse represents an error response
// @Description Error response
type ErrorResponse struct {
	Success bool        `json:"success" example:"false"`         // Success status
	Error   string      `json:"error" example:"Invalid request"` // Error message
	Details interface{} `json:"details,omitempty"`               // Failing fields or output issues
}

// SuccessResponse represents a success response
// @Description Success response
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"` // Success status
	Data    interface{} `json:"data"`                   // Response data
}

// ScriptRequest documents the scriptAndHooks request
// @Description scriptAndHooks request payload
type ScriptRequest struct {
	Topic          string `json:"topic" example:"Home espresso for beginners"`
	TargetAudience string `json:"targetAudience" example:"College students on a budget"`
	VideoLength    string `json:"videoLength" example:"5 minutes"`
	Platform       string `json:"platform,omitempty" example:"YouTube"`
	Tone           string `json:"tone,omitempty" example:"Playful"`
}

// RemixRequest documents the remix request
// @Description remix request payload
type RemixRequest struct {
	SourceContent string   `json:"sourceContent" example:"Long-form transcript of at least fifty characters..."`
	Formats       []string `json:"formats" example:"blogPost,twitterThread"`
}
