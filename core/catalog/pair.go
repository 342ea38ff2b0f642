package catalog

import "github.com/samber/lo"

// Pair groups assets by name and keeps the names made of exactly one model and one icon, in
// order of first appearance. The remaining names (incomplete or ambiguous groups) are returned
// as orphans; files of other kinds are ignored entirely.
func Pair(assets []Asset) (items []Item, orphans []string) {
	relevant := lo.Filter(assets, func(a Asset, _ int) bool {
		return a.Kind != KindOther
	})

	groups := make(map[string][]Asset)
	for _, a := range relevant {
		groups[a.Name] = append(groups[a.Name], a)
	}

	for _, name := range lo.Uniq(lo.Map(relevant, func(a Asset, _ int) string { return a.Name })) {
		group := groups[name]
		models := lo.Filter(group, func(a Asset, _ int) bool { return a.Kind == KindModel })
		icons := lo.Filter(group, func(a Asset, _ int) bool { return a.Kind == KindIcon })

		if len(group) != 2 || len(models) != 1 || len(icons) != 1 {
			orphans = append(orphans, name)
			continue
		}

		items = append(items, Item{
			Name:  name,
			Model: Model{Key: models[0].Key, Size: models[0].Size, Rotation: models[0].Rotation},
			Icon:  Icon{Key: icons[0].Key, Size: icons[0].Size},
		})
	}
	return items, orphans
}
