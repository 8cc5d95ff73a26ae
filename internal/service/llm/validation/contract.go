package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

// Layouts accepted for recommendedPostingTime, most specific first
var postingTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParsePostingTime parses an ISO-8601 date-time as produced by the model
func ParsePostingTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range postingTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func isPostingTime(fl validator.FieldLevel) bool {
	_, err := ParsePostingTime(fl.Field().String())
	return err == nil
}

// hashtagsStructLevel checks the rules that span the three lists: branded
// is 3 or empty, an empty branded list is made up by three extra trending
// tags, and no tag repeats within or across lists, ignoring case.
func hashtagsStructLevel(sl validator.StructLevel) {
	out := sl.Current().Interface().(llm.HashtagsResult)

	wantTrending := llm.HashtagTrendingCount
	switch len(out.BrandedHashtags) {
	case llm.HashtagBrandedCount:
	case 0:
		wantTrending = llm.HashtagTrendingNoBrand
	default:
		sl.ReportError(out.BrandedHashtags, "brandedHashtags", "BrandedHashtags",
			"brandedcount", strconv.Itoa(llm.HashtagBrandedCount))
	}
	if len(out.TrendingHashtags) != wantTrending {
		sl.ReportError(out.TrendingHashtags, "trendingHashtags", "TrendingHashtags",
			"len", strconv.Itoa(wantTrending))
	}

	seen := make(map[string]string)
	lists := []struct {
		name, field string
		tags        []string
	}{
		{"trendingHashtags", "TrendingHashtags", out.TrendingHashtags},
		{"nicheHashtags", "NicheHashtags", out.NicheHashtags},
		{"brandedHashtags", "BrandedHashtags", out.BrandedHashtags},
	}
	for _, list := range lists {
		for i, tag := range list.tags {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" {
				continue
			}
			if first, dup := seen[key]; dup {
				sl.ReportError(tag, fmt.Sprintf("%s[%d]", list.name, i), fmt.Sprintf("%s[%d]", list.field, i),
					"crossunique", first)
				continue
			}
			seen[key] = list.name
		}
	}
}

// CheckIdeaCount verifies exactly n ideas were returned
func CheckIdeaCount(out *llm.IdeasResult, n int) []string {
	if len(out.Ideas) != n {
		return []string{fmt.Sprintf("ideas has %d entries, want %d", len(out.Ideas), n)}
	}
	return nil
}

// CheckRemix verifies the key set equals the requested formats exactly
func CheckRemix(out llm.RemixResult, formats []llm.RemixFormat) []string {
	var issues []string

	requested := make(map[llm.RemixFormat]bool, len(formats))
	for _, f := range formats {
		requested[f] = true
		text, ok := out[f]
		switch {
		case !ok:
			issues = append(issues, fmt.Sprintf("missing format %q", f))
		case strings.TrimSpace(text) == "":
			issues = append(issues, fmt.Sprintf("format %q is empty", f))
		}
	}

	var extra []string
	for key := range out {
		if !requested[key] {
			extra = append(extra, string(key))
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		issues = append(issues, fmt.Sprintf("unrequested format %q", key))
	}
	return issues
}
