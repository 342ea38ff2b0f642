package hats

import (
	"context"
	"errors"
	"fmt"

	"custom-hats/core/catalog"
	"custom-hats/core/host"
	"custom-hats/core/merge"

	"go.uber.org/zap"
)

// ApplyToInstance merges one attachment per catalog item into inst. It is a no-op when the
// bridge is active or inst already carries the items, and returns ErrNotReady when the
// instance cannot receive them yet.
func (p *Plugin) ApplyToInstance(_ context.Context, inst *host.Instance) error {
	p.timeline.Lock()
	defer p.timeline.Unlock()
	return p.applyToInstance(inst, p.deps.Catalog.Current())
}

func (p *Plugin) applyToInstance(inst *host.Instance, cat *catalog.Catalog) error {
	if p.BridgeActive() {
		return nil
	}
	if cat.Empty() {
		return notReady("catalog not loaded")
	}
	if !p.Inserted() {
		return notReady("catalog options not inserted")
	}
	if inst == nil {
		return notReady("instance not found")
	}
	if len(inst.Attachments) == 0 {
		return notReady(fmt.Sprintf("instance %s has no attachments", inst.ID))
	}

	log := p.logger.With(zap.String("instance", inst.ID), zap.Int("actor", inst.Actor))
	if merge.Inserted(inst.Attachments, p.cfg.Anchor, cat.Names(), host.AttachmentName) {
		log.Debug("Instance already has custom attachments")
		return nil
	}

	slot := inst.Root.FindChild(p.cfg.Slot)
	if slot == nil {
		return notReady(fmt.Sprintf("instance %s has no %s slot", inst.ID, p.cfg.Slot))
	}
	// Nothing is instantiated for an anchor the insert would reject.
	if err := merge.CheckAnchor(len(inst.Attachments), p.cfg.Anchor); err != nil {
		return fmt.Errorf("failed to insert attachments of %s: %w", inst.ID, err)
	}

	created := p.instantiate(log, slot, inst.Attachments[0], cat.Items(), nil)
	merged, err := merge.Insert(inst.Attachments, p.cfg.Anchor, created)
	if err != nil {
		return fmt.Errorf("failed to insert attachments of %s: %w", inst.ID, err)
	}
	inst.Attachments = merged

	log.Debug("Added custom attachments", zap.Int("count", len(created)))
	return nil
}

func (p *Plugin) applyToPreview(cat *catalog.Catalog) error {
	preview := p.deps.Instances.Preview()
	if preview == nil {
		return notReady("preview instance not found")
	}

	slot := preview.Root.FindChild(p.cfg.Slot)
	if slot == nil {
		return notReady(fmt.Sprintf("preview has no %s slot", p.cfg.Slot))
	}
	if merge.Inserted(preview.Attachments, p.cfg.Anchor, cat.Names(), host.AttachmentName) {
		return nil
	}
	if len(preview.Attachments) == 0 || preview.Attachments[0] == nil {
		return notReady("preview has no reference attachment")
	}

	if err := merge.CheckAnchor(len(preview.Attachments), p.cfg.Anchor); err != nil {
		return fmt.Errorf("failed to insert preview attachments: %w", err)
	}

	reference := preview.Attachments[0]
	layer := host.PreviewLayer
	if reference.Node != nil {
		layer = reference.Node.Layer
	}

	created := p.instantiate(p.logger, slot, reference, cat.Items(), &layer)
	merged, err := merge.Insert(preview.Attachments, p.cfg.Anchor, created)
	if err != nil {
		return fmt.Errorf("failed to insert preview attachments: %w", err)
	}
	preview.Attachments = merged

	p.logger.Debug("Added custom attachments to preview", zap.Int("count", len(created)))
	return nil
}

// instantiate creates one inactive attachment per item under slot, styled after reference.
// Items whose model cannot be instantiated are logged and left out.
func (p *Plugin) instantiate(log *zap.Logger, slot *host.Node, reference *host.Attachment, items []catalog.Item, layer *int) []*host.Attachment {
	var refMaterial *host.Material
	if reference != nil && len(reference.Materials) > 0 {
		refMaterial = reference.Materials[0]
	}

	created := make([]*host.Attachment, 0, len(items))
	for _, it := range items {
		a, err := p.deps.Instantiator.Instantiate(it.Name, it.Model.Key, slot)
		if err != nil {
			log.Error("Failed to instantiate attachment", zap.String("item", it.Name), zap.Error(err))
			continue
		}
		if a == nil {
			log.Error("Failed to instantiate attachment", zap.String("item", it.Name), zap.Error(errors.New("no attachment returned")))
			continue
		}

		if layer != nil && a.Node != nil {
			a.Node.SetLayerRecursive(*layer)
		}
		for _, m := range a.Materials {
			m.Instancing = true
			m.Persistent = true
			m.Shader = p.cfg.Shader
			m.CopyFloats(refMaterial)
		}
		if a.Node != nil {
			a.Node.Active = false
		}
		created = append(created, a)
	}
	return created
}

// onAddHatsForCharacter is invoked through the dispatcher, already on the plugin's timeline.
func (p *Plugin) onAddHatsForCharacter(inst *host.Instance) error {
	if inst == nil {
		p.logger.Error("Character announcement without instance")
		return nil
	}

	err := p.applyToInstance(inst, p.deps.Catalog.Current())
	if errors.Is(err, ErrNotReady) {
		p.logger.Debug("Announced instance not updated", zap.String("instance", inst.ID), zap.Error(err))
		return nil
	}
	return err
}
