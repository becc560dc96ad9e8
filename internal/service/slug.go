package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"docstore/internal/domain"
	"docstore/internal/domain/repositories"
)

// fallbackSlug is used when the desired base reduces to nothing.
const fallbackSlug = "doc"

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a title: lowercase, trimmed,
// non-alphanumerics stripped (keeping spaces and hyphens), whitespace and
// hyphen runs collapsed to single hyphens.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return s
}

// SlugAllocator hands out slugs that are unique among existing documents at
// the moment of allocation. The check is a read followed by a later write;
// under truly concurrent creation the store's unique constraint is the
// backstop and surfaces as the same Conflict.
type SlugAllocator struct {
	repo repositories.DocumentRepository
}

// NewSlugAllocator creates a new slug allocator
func NewSlugAllocator(repo repositories.DocumentRepository) *SlugAllocator {
	return &SlugAllocator{repo: repo}
}

// Allocate resolves the slug for a new document. An explicit slug that is
// already taken is a hard Conflict, never silently renamed. A derived slug
// probes base, base-1, base-2, ... until a free candidate is found.
func (a *SlugAllocator) Allocate(ctx context.Context, explicit *string, title string) (string, error) {
	if explicit != nil {
		taken, err := a.repo.SlugExists(ctx, *explicit)
		if err != nil {
			return "", err
		}
		if taken {
			return "", fmt.Errorf("slug %q: %w", *explicit, domain.ErrConflict)
		}
		return *explicit, nil
	}

	base := Slugify(title)
	if base == "" {
		base = fallbackSlug
	}

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := a.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
