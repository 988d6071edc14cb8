package usecases

import "officetools/internal/domain/catalog"

type ToolLookup interface {
	Get(slug string) (catalog.Tool, bool)
}

// TagStripper removes markup from user text.
type TagStripper interface {
	StripTags(content string) string
}
