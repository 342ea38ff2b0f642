package checks

import (
	"context"
	"fmt"

	"custom-hats/core/host"
	"custom-hats/core/merge"
)

// AnchorReport compares the anchor index with the live option collection.
type AnchorReport struct {
	Anchor int      `json:"anchor"`
	Length int      `json:"length"`
	Exists bool     `json:"exists"`
	Valid  bool     `json:"valid"`
	Tail   []string `json:"tail"`
}

// CheckAnchor reports whether anchor is a valid splice position for the current options.
// A missing collection is reported as not valid yet rather than as an error.
func CheckAnchor(ctx context.Context, options host.OptionStore, anchor int) (*AnchorReport, error) {
	opts, ok, err := options.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog options: %w", err)
	}

	return &AnchorReport{
		Anchor: anchor,
		Length: len(opts),
		Exists: ok,
		Valid:  ok && anchor >= 0 && anchor <= len(opts),
		Tail:   merge.TailNames(opts, anchor, host.OptionName),
	}, nil
}
