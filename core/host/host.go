package host

import "context"

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// White is the tint given to custom options.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// OptionType is the customization category of an option.
type OptionType string

const (
	TypeHat  OptionType = "Hat"
	TypeFace OptionType = "Face"
	TypeBody OptionType = "Body"
)

// Option is one entry of the host's global customization catalog.
type Option struct {
	Name                string     `json:"name"`
	Texture             string     `json:"texture"`
	Color               Color      `json:"color"`
	Type                OptionType `json:"type"`
	RequiredAchievement string     `json:"required_achievement,omitempty"`
}

// OptionName is the name accessor used by tail scans over options.
func OptionName(o Option) string { return o.Name }

// OptionStore gives access to the global catalog options.
type OptionStore interface {
	// Options returns the current collection. ok is false while the host has not created it yet.
	Options(ctx context.Context) (opts []Option, ok bool, err error)
	// ReplaceOptions writes the whole collection back.
	ReplaceOptions(ctx context.Context, opts []Option) error
}

// Instances locates character instances.
type Instances interface {
	// Preview returns the dummy instance shown in the customization menu, or nil.
	Preview() *Instance
	// ByActor returns the live instance of the given actor number, or nil.
	ByActor(actor int) *Instance
	// Local returns the instance flagged as local, or nil.
	Local() *Instance
	// LocalActor returns the local participant's actor number when connected.
	LocalActor() (int, bool)
}

// Instantiator creates attachments from model handles.
type Instantiator interface {
	// Instantiate creates an attachment called name from model, parented under parent.
	Instantiate(name, model string, parent *Node) (*Attachment, error)
}
