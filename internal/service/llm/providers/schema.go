package providers

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

var geminiTypes = map[llm.SchemaType]genai.Type{
	llm.TypeString:  genai.TypeString,
	llm.TypeNumber:  genai.TypeNumber,
	llm.TypeInteger: genai.TypeInteger,
	llm.TypeBoolean: genai.TypeBoolean,
	llm.TypeArray:   genai.TypeArray,
	llm.TypeObject:  genai.TypeObject,
}

// toGeminiSchema converts an output shape into the genai response schema.
// Gemini accepts only "enum" as a string format, so other string formats
// are left out and checked after decoding.
func toGeminiSchema(s *llm.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        geminiTypes[s.Type],
		Description: s.Description,
		Enum:        s.Enum,
		Items:       toGeminiSchema(s.Items),
	}
	if s.Format != "" && (s.Type != llm.TypeString || s.Format == "enum") {
		out.Format = s.Format
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
		out.Required = append([]string(nil), s.Required...)
	}
	return out
}

// toJSONSchema converts an output shape into a strict JSON Schema document.
// Strict mode requires every object to list all of its properties as
// required and to forbid additional properties.
func toJSONSchema(s *llm.Schema) map[string]interface{} {
	if s == nil {
		return nil
	}

	out := map[string]interface{}{
		"type": string(s.Type),
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}

	switch s.Type {
	case llm.TypeObject:
		props := make(map[string]interface{}, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = toJSONSchema(prop)
		}
		required := s.Required
		if required == nil {
			required = []string{}
		}
		out["properties"] = props
		out["required"] = required
		out["additionalProperties"] = false
	case llm.TypeArray:
		out["items"] = toJSONSchema(s.Items)
		if s.MinItems > 0 {
			out["minItems"] = s.MinItems
		}
		if s.MaxItems > 0 {
			out["maxItems"] = s.MaxItems
		}
	}
	return out
}
