package hats

import (
	"errors"
	"fmt"
)

// Config holds the merge settings of the plugin.
type Config struct {
	// Anchor is the index at which custom entries are spliced into host collections.
	Anchor int `mapstructure:"anchor" default:"23"`
	// ExtensionID is the id this plugin registers with the dispatcher.
	ExtensionID string `mapstructure:"extension_id" default:"custom-hats"`
	// BridgeID is the id of the third-party extension that takes over hat rendering when loaded.
	BridgeID string `mapstructure:"bridge_id" default:"MoreCustomizations"`
	// BridgeCategory is the bridge registry category receiving the items.
	BridgeCategory string `mapstructure:"bridge_category" default:"Hat"`
	// Shader is forced on every material of a created attachment.
	Shader string `mapstructure:"shader" default:"W/Character"`
	// Slot is the name of the node that parents hat attachments.
	Slot string `mapstructure:"slot" default:"Hat"`
	// LoadedExtensions are extension ids announced as present at startup (e.g. the bridge).
	LoadedExtensions []string `mapstructure:"loaded_extensions" default:""`
}

// Validate rejects settings that can never produce a valid merge.
func (c Config) Validate() error {
	if c.Anchor < 0 {
		return fmt.Errorf("hats anchor must not be negative, got %d", c.Anchor)
	}
	if c.ExtensionID == "" {
		return errors.New("hats extension id is required")
	}
	if c.Slot == "" {
		return errors.New("hats slot is required")
	}
	return nil
}
