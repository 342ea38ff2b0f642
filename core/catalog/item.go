package catalog

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/num/quat"
)

// Identity is the rotation of a model without orientation metadata.
var Identity = quat.Number{Real: 1}

// Model is an opaque handle to an item's visual model.
type Model struct {
	Key      string      `json:"key"`
	Size     int64       `json:"size"`
	Rotation quat.Number `json:"-"`
}

// Icon is an opaque handle to an item's 2D icon.
type Icon struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// Item is a named model and icon pair.
type Item struct {
	Name  string `json:"name"`
	Model Model  `json:"model"`
	Icon  Icon   `json:"icon"`
}

// AssetKind tells models, icons and unrelated files apart.
type AssetKind int

const (
	KindOther AssetKind = iota
	KindModel
	KindIcon
)

func (k AssetKind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindIcon:
		return "icon"
	default:
		return "other"
	}
}

// Asset is one file of a bundle.
type Asset struct {
	Name     string
	Key      string
	Kind     AssetKind
	Size     int64
	Rotation quat.Number
}

// Classifier maps file names to asset kinds by extension.
type Classifier struct {
	models map[string]struct{}
	icons  map[string]struct{}
}

// NewClassifier builds a classifier from extension lists (with or without the leading dot).
func NewClassifier(modelExts, iconExts []string) Classifier {
	return Classifier{models: extSet(modelExts), icons: extSet(iconExts)}
}

// Classify returns the asset name (base name without extension) and kind of key.
func (c Classifier) Classify(key string) (string, AssetKind) {
	base := path.Base(strings.ReplaceAll(key, "\\", "/"))
	ext := path.Ext(base)
	name := strings.TrimSuffix(base, ext)
	ext = strings.ToLower(ext)

	if _, ok := c.models[ext]; ok {
		return name, KindModel
	}
	if _, ok := c.icons[ext]; ok {
		return name, KindIcon
	}
	return name, KindOther
}

func extSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}

// ParseRotation reads a "w,x,y,z" quaternion.
func ParseRotation(s string) (quat.Number, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Identity, fmt.Errorf("rotation %q: want 4 components, got %d", s, len(parts))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Identity, fmt.Errorf("rotation %q: %w", s, err)
		}
		v[i] = f
	}
	return quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]}, nil
}

// FormatRotation is the inverse of ParseRotation.
func FormatRotation(q quat.Number) string {
	return fmt.Sprintf("%g,%g,%g,%g", q.Real, q.Imag, q.Jmag, q.Kmag)
}
