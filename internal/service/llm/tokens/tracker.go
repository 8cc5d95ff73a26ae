package tokens

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-redis/redis/v8"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

// DayLayout is the date format of usage keys and of the day query parameter
const DayLayout = "2006-01-02"

// DefaultTTL is how long daily counters are kept
const DefaultTTL = 30 * 24 * time.Hour

// Models maps model names to pricing information
var Models = map[string]ModelInfo{
	"gpt-4o-mini": {
		TokensPerPromptDollar: 1000000.0 / 0.15, // $0.15 per 1M prompt tokens
		TokensPerOutputDollar: 1000000.0 / 0.60, // $0.60 per 1M completion tokens
		Provider:              "openai",
	},
	"gpt-4o": {
		TokensPerPromptDollar: 1000000.0 / 2.50,
		TokensPerOutputDollar: 1000000.0 / 10.0,
		Provider:              "openai",
	},
	"gemini-1.5-flash": {
		TokensPerPromptDollar: 1000000.0 / 0.075,
		TokensPerOutputDollar: 1000000.0 / 0.30,
		Provider:              "gemini",
	},
	"gemini-1.5-pro": {
		TokensPerPromptDollar: 1000000.0 / 1.25,
		TokensPerOutputDollar: 1000000.0 / 5.0,
		Provider:              "gemini",
	},
}

// ModelInfo contains pricing information for a model
type ModelInfo struct {
	TokensPerPromptDollar float64 // Tokens per dollar for input
	TokensPerOutputDollar float64 // Tokens per dollar for output
	Provider              string  // Provider name
}

// Entry is one completed generation call
type Entry struct {
	Timestamp time.Time
	Feature   llm.Feature
	Usage     llm.Usage
}

// FeatureUsage is the daily total of one feature
type FeatureUsage struct {
	Calls            int64   `json:"calls"`
	PromptTokens     int64   `json:"promptTokens"`
	CompletionTokens int64   `json:"completionTokens"`
	CostUSD          float64 `json:"costUsd"`
}

// UsageTracker keeps per-feature daily counters in a Redis hash.
// A tracker without a Redis client records nothing.
type UsageTracker struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

// NewUsageTracker creates a new usage tracker. A ttl <= 0 uses DefaultTTL.
func NewUsageTracker(client *redis.Client, ttl time.Duration) *UsageTracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &UsageTracker{
		redisClient: client,
		keyPrefix:   "novacreate:usage:",
		ttl:         ttl,
	}
}

// Enabled reports whether counters are persisted
func (t *UsageTracker) Enabled() bool {
	return t != nil && t.redisClient != nil
}

// Key returns the hash key holding the counters of day
func (t *UsageTracker) Key(day time.Time) string {
	return t.keyPrefix + day.UTC().Format(DayLayout)
}

// TokensToCost converts tokens to cost for a given model. Unknown models cost nothing.
func TokensToCost(model string, promptTokens, completionTokens int) float64 {
	info, ok := Models[model]
	if !ok {
		return 0
	}
	return float64(promptTokens)/info.TokensPerPromptDollar +
		float64(completionTokens)/info.TokensPerOutputDollar
}

// Record adds one call to the daily counters of its feature
func (t *UsageTracker) Record(ctx context.Context, entry Entry) error {
	if !t.Enabled() {
		return nil
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	key := t.Key(entry.Timestamp)
	feature := string(entry.Feature)
	cost := TokensToCost(entry.Usage.Model, entry.Usage.PromptTokens, entry.Usage.CompletionTokens)

	_, err := t.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, feature+":calls", 1)
		pipe.HIncrBy(ctx, key, feature+":prompt_tokens", int64(entry.Usage.PromptTokens))
		pipe.HIncrBy(ctx, key, feature+":completion_tokens", int64(entry.Usage.CompletionTokens))
		if cost > 0 {
			pipe.HIncrByFloat(ctx, key, feature+":cost_usd", cost)
		}
		pipe.Expire(ctx, key, t.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// Daily returns the per-feature totals of day
func (t *UsageTracker) Daily(ctx context.Context, day time.Time) (map[llm.Feature]FeatureUsage, error) {
	result := make(map[llm.Feature]FeatureUsage)
	if !t.Enabled() {
		return result, nil
	}

	fields, err := t.redisClient.HGetAll(ctx, t.Key(day)).Result()
	if err != nil {
		if err == redis.Nil {
			return result, nil
		}
		return nil, fmt.Errorf("failed to read usage: %w", err)
	}

	return ParseCounters(fields), nil
}

// ParseCounters folds raw hash fields of the form <feature>:<counter> into totals.
// Unknown counters and malformed values are skipped.
func ParseCounters(fields map[string]string) map[llm.Feature]FeatureUsage {
	result := make(map[llm.Feature]FeatureUsage)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		idx := strings.LastIndex(name, ":")
		if idx <= 0 {
			continue
		}
		feature := llm.Feature(name[:idx])
		value := fields[name]
		usage := result[feature]

		switch name[idx+1:] {
		case "calls":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				continue
			}
			usage.Calls = n
		case "prompt_tokens":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				continue
			}
			usage.PromptTokens = n
		case "completion_tokens":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				continue
			}
			usage.CompletionTokens = n
		case "cost_usd":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			usage.CostUSD = f
		default:
			continue
		}
		result[feature] = usage
	}
	return result
}

// EstimateTokens estimates the number of tokens in a string
// This is a very rough approximation; different models tokenize differently
func EstimateTokens(text string) int {
	// Roughly 4 characters per token for English text
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	if n < 4 {
		return 1
	}
	return n / 4
}
