package filesystem

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// header is the loosely typed front matter block as decoded by the YAML or TOML parser.
type header map[string]any

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -0700 MST",
}

// Header keys, with the aliases content authors commonly use.
var (
	keysTitle       = []string{"title"}
	keysDescription = []string{"description", "excerpt"}
	keysSummary     = []string{"summary"}
	keysTags        = []string{"tags", "keywords"}
	keysCategory    = []string{"category", "categories"}
	keysPublished   = []string{"date", "publishedAt", "published_at", "published", "pubDate"}
	keysUpdated     = []string{"updated", "updatedAt", "updated_at", "lastmod", "modified"}
	keysDraft       = []string{"draft"}
	keysFeatured    = []string{"featured"}
	keysAuthor      = []string{"author"}
	keysVersion     = []string{"version"}
	keysSection     = []string{"section"}
	keysWeight      = []string{"weight", "order"}
)

// toMetadata coerces the header into the typed variant for sourceType.
func (h header) toMetadata(sourceType domain.SourceType) (domain.Metadata, error) {
	common, err := h.common()
	if err != nil {
		return nil, err
	}

	switch sourceType {
	case domain.SourceBlog:
		return domain.BlogMeta{
			CommonMeta: common,
			Summary:    h.str(keysSummary),
		}, nil
	case domain.SourceRelease:
		return domain.ReleaseMeta{
			CommonMeta: common,
			Version:    h.str(keysVersion),
		}, nil
	case domain.SourceDoc:
		weight, err := h.integer(keysWeight)
		if err != nil {
			return nil, err
		}
		return domain.DocMeta{
			CommonMeta: common,
			Section:    h.str(keysSection),
			Weight:     weight,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, sourceType)
	}
}

func (h header) common() (domain.CommonMeta, error) {
	published, err := h.date(keysPublished)
	if err != nil {
		return domain.CommonMeta{}, err
	}
	updated, err := h.date(keysUpdated)
	if err != nil {
		return domain.CommonMeta{}, err
	}

	category := h.str(keysCategory)
	if category == "" {
		// "categories: [a, b]" uses the first entry.
		if list := h.list(keysCategory); len(list) > 0 {
			category = list[0]
		}
	}

	return domain.CommonMeta{
		Title:       h.str(keysTitle),
		Description: h.str(keysDescription),
		Tags:        h.list(keysTags),
		Category:    category,
		PublishedAt: published,
		UpdatedAt:   updated,
		Draft:       h.boolean(keysDraft),
		Featured:    h.boolean(keysFeatured),
		Author:      h.str(keysAuthor),
	}, nil
}

func (h header) lookup(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := h[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str returns a scalar value as a trimmed string. Lists yield "".
func (h header) str(keys []string) string {
	v, ok := h.lookup(keys)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(val)
	default:
		return ""
	}
}

// list returns a list value, or splits a comma-separated string.
func (h header) list(keys []string) []string {
	v, ok := h.lookup(keys)
	if !ok {
		return nil
	}
	var out []string
	switch val := v.(type) {
	case string:
		for _, part := range strings.Split(val, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	case []string:
		out = append(out, val...)
	case []any:
		for _, item := range val {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case nil:
			default:
				out = append(out, fmt.Sprint(s))
			}
		}
	}
	return out
}

func (h header) boolean(keys []string) bool {
	v, ok := h.lookup(keys)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	default:
		return false
	}
}

func (h header) integer(keys []string) (int, error) {
	v, ok := h.lookup(keys)
	if !ok {
		return 0, nil
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case uint64:
		return int(val), nil
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not a number", domain.ErrParse, keys[0], val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s has unexpected type %T", domain.ErrParse, keys[0], v)
	}
}

// date returns the zero time when the key is absent.
func (h header) date(keys []string) (time.Time, error) {
	v, ok := h.lookup(keys)
	if !ok {
		return time.Time{}, nil
	}
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		return parseDate(val)
	default:
		return time.Time{}, fmt.Errorf("%w: %s has unexpected type %T", domain.ErrParse, keys[0], v)
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised date %q", domain.ErrParse, s)
}
