package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SlugProber reports whether a slug is already taken in its collection.
// Each repository that owns a slugged table implements it, so the
// generator never has to resolve tables or column names dynamically.
type SlugProber interface {
	SlugTaken(ctx context.Context, slug string) (bool, error)
}

const (
	DefaultSlugSeparator = "-"

	// maxSlugAttempts bounds the incrementing-suffix probe loop. Past it
	// we try one random suffix before giving up.
	maxSlugAttempts = 100
)

// GenerateUniqueSlug returns the first free candidate among
// base, base-1, base-2, ... within the prober's collection.
func GenerateUniqueSlug(ctx context.Context, base, separator string, prober SlugProber) (string, error) {
	if separator == "" {
		separator = DefaultSlugSeparator
	}

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		taken, err := prober.SlugTaken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%s%d", base, separator, i)
	}

	// Incrementing suffixes are exhausted, likely a pathological base.
	candidate = fmt.Sprintf("%s%s%s", base, separator, uuid.NewString()[:8])
	taken, err := prober.SlugTaken(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("failed to probe slug %q: %w", candidate, err)
	}
	if !taken {
		return candidate, nil
	}
	return "", &GenerationError{Base: base}
}
