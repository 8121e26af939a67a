package pptx

import (
	"fmt"
	"strconv"
)

// Slot names a placeholder role on a layout. The lecture template
// family marks its text placeholders with fixed indices; the loader
// resolves those once so callers never deal in raw index literals.
type Slot int

const (
	SlotHeader Slot = iota
	SlotBody
)

// Conventional placeholder indices used by the lecture templates.
const (
	headerPlaceholderIdx = 13
	bodyPlaceholderIdx   = 14
)

// Layout is one slide layout of the template master, with its
// placeholder inventory.
type Layout struct {
	partName     string
	placeholders []placeholder
}

type placeholder struct {
	name   string
	phType string
	idx    int
	hasIdx bool
}

// slot maps a placeholder to the named slot it serves, if any.
func (ph placeholder) slot() (Slot, bool) {
	if !ph.hasIdx {
		return 0, false
	}
	switch ph.idx {
	case headerPlaceholderIdx:
		return SlotHeader, true
	case bodyPlaceholderIdx:
		return SlotBody, true
	}
	return 0, false
}

// cloneable reports whether the placeholder is carried onto slides
// instantiated from the layout. Date, footer and slide-number
// placeholders stay on the layout.
func (ph placeholder) cloneable() bool {
	switch ph.phType {
	case "dt", "ftr", "sldNum":
		return false
	}
	return true
}

// HasSlot reports whether the layout carries the given named slot.
func (l Layout) HasSlot(s Slot) bool {
	for _, ph := range l.placeholders {
		if got, ok := ph.slot(); ok && got == s {
			return true
		}
	}
	return false
}

// readLayouts parses the master's layout list, in declared order, and
// each layout's placeholders.
func (p *Presentation) readLayouts(masterPart string) ([]Layout, error) {
	masterData := p.partData(masterPart)
	if masterData == nil {
		return nil, fmt.Errorf("missing slide master %s", masterPart)
	}

	layoutIDs, err := parseLayoutIDList(masterData)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", masterPart, err)
	}

	masterRels, err := p.readRels(masterPart)
	if err != nil {
		return nil, err
	}

	layouts := make([]Layout, 0, len(layoutIDs))
	for _, rid := range layoutIDs {
		target, ok := masterRels.target(rid)
		if !ok {
			return nil, fmt.Errorf("layout relationship %s not found in %s", rid, masterPart)
		}
		layoutPart := resolveTarget(masterPart, target)
		layout, err := p.readLayout(layoutPart)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, layout)
	}

	return layouts, nil
}

func (p *Presentation) readLayout(layoutPart string) (Layout, error) {
	data := p.partData(layoutPart)
	if data == nil {
		return Layout{}, fmt.Errorf("missing slide layout %s", layoutPart)
	}

	tree, err := parseShapeTree(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parse %s: %w", layoutPart, err)
	}

	layout := Layout{partName: layoutPart}
	for _, sp := range tree.Shapes {
		ph := sp.NvSpPr.NvPr.Ph
		if ph == nil {
			continue
		}
		parsed := placeholder{
			name:   sp.NvSpPr.CNvPr.Name,
			phType: ph.Type,
		}
		if ph.Idx != "" {
			idx, err := strconv.Atoi(ph.Idx)
			if err != nil {
				return Layout{}, fmt.Errorf("bad placeholder idx %q in %s", ph.Idx, layoutPart)
			}
			parsed.idx = idx
			parsed.hasIdx = true
		}
		layout.placeholders = append(layout.placeholders, parsed)
	}

	return layout, nil
}
