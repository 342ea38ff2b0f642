package checks

import (
	"context"

	"custom-hats/core/catalog"
)

// BundleReport lists what a bundle resolves to.
type BundleReport struct {
	Path    string   `json:"path"`
	Items   []string `json:"items"`
	Orphans []string `json:"orphans"`
	Status  string   `json:"status"` // "ok", "warning"
}

// CheckBundle resolves source and reports the paired items and the unpaired names.
func CheckBundle(ctx context.Context, source catalog.Source) (*BundleReport, error) {
	c, orphans, err := catalog.Resolve(ctx, source)
	if err != nil {
		return nil, err
	}

	report := &BundleReport{
		Path:    source.Describe(),
		Items:   c.NameList(),
		Orphans: orphans,
		Status:  "ok",
	}
	if report.Orphans == nil {
		report.Orphans = []string{}
	}
	if len(orphans) > 0 || c.Empty() {
		report.Status = "warning"
	}
	return report, nil
}
