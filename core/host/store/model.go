package store

import "custom-hats/core/host"

// TableName is the table holding the host's catalog options.
const TableName = "customization_options"

// RequiredColumns lists the columns the store reads and writes.
var RequiredColumns = []string{"id", "position", "name", "texture", "color_r", "color_g", "color_b", "color_a", "type", "required_achievement"}

// OptionRecord is the row representation of a host.Option.
type OptionRecord struct {
	ID                  uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Position            int     `gorm:"column:position;not null;index"`
	Name                string  `gorm:"column:name;size:128;not null"`
	Texture             string  `gorm:"column:texture;size:255"`
	ColorR              float64 `gorm:"column:color_r"`
	ColorG              float64 `gorm:"column:color_g"`
	ColorB              float64 `gorm:"column:color_b"`
	ColorA              float64 `gorm:"column:color_a"`
	Type                string  `gorm:"column:type;size:32"`
	RequiredAchievement string  `gorm:"column:required_achievement;size:128"`
}

// TableName overrides the table name used by gorm.
func (OptionRecord) TableName() string {
	return TableName
}

func toRecord(pos int, o host.Option) OptionRecord {
	return OptionRecord{
		Position:            pos,
		Name:                o.Name,
		Texture:             o.Texture,
		ColorR:              o.Color.R,
		ColorG:              o.Color.G,
		ColorB:              o.Color.B,
		ColorA:              o.Color.A,
		Type:                string(o.Type),
		RequiredAchievement: o.RequiredAchievement,
	}
}

func (r OptionRecord) toOption() host.Option {
	return host.Option{
		Name:                r.Name,
		Texture:             r.Texture,
		Color:               host.Color{R: r.ColorR, G: r.ColorG, B: r.ColorB, A: r.ColorA},
		Type:                host.OptionType(r.Type),
		RequiredAchievement: r.RequiredAchievement,
	}
}
