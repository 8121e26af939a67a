package pptx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reSlideID = regexp.MustCompile(`id="(\d+)"`)

// AddSlide appends a slide instantiated from the layout at the given
// master position, substituting the supplied slot texts. Slots the
// layout does not carry are skipped silently; a nil map adds a slide
// with no substitutions.
func (p *Presentation) AddSlide(layoutIndex int, texts map[Slot]string) error {
	if layoutIndex < 0 || layoutIndex >= len(p.layouts) {
		return fmt.Errorf("layout %d not in template (have %d layouts)", layoutIndex, len(p.layouts))
	}
	layout := p.layouts[layoutIndex]

	num := p.nextSlideNum
	p.nextSlideNum++
	slidePart := fmt.Sprintf("%s/slides/slide%d.xml", p.pptDir, num)
	slideRelsPart := relsPathFor(slidePart)

	p.setPart(slidePart, buildSlideXML(layout, texts))

	layoutTarget := "../" + strings.TrimPrefix(layout.partName, p.pptDir+"/")
	p.setPart(slideRelsPart, buildRelsXML([]relationship{
		{ID: "rId1", Type: relTypeSlideLayout, Target: layoutTarget},
	}))

	if err := p.registerSlide(slidePart); err != nil {
		return err
	}
	p.slides = append(p.slides, slidePart)

	return nil
}

// SlideSlotText reads the text of a named slot on the given slide,
// reporting whether the slide carries that slot at all.
func (p *Presentation) SlideSlotText(slideIndex int, slot Slot) (string, bool, error) {
	if slideIndex < 0 || slideIndex >= len(p.slides) {
		return "", false, fmt.Errorf("slide %d out of range (have %d slides)", slideIndex, len(p.slides))
	}

	tree, err := parseShapeTree(p.partData(p.slides[slideIndex]))
	if err != nil {
		return "", false, fmt.Errorf("parse %s: %w", p.slides[slideIndex], err)
	}

	want := headerPlaceholderIdx
	if slot == SlotBody {
		want = bodyPlaceholderIdx
	}

	for _, sp := range tree.Shapes {
		ph := sp.NvSpPr.NvPr.Ph
		if ph == nil || ph.Idx == "" {
			continue
		}
		if idx, err := strconv.Atoi(ph.Idx); err == nil && idx == want {
			return sp.TxBody.text(), true, nil
		}
	}

	return "", false, nil
}

// buildSlideXML renders a new slide part: every cloneable layout
// placeholder reappears on the slide so position and style inherit from
// the layout, with slot texts substituted where given.
func buildSlideXML(layout Layout, texts map[Slot]string) []byte {
	var shapes strings.Builder
	shapeID := 2

	for _, ph := range layout.placeholders {
		if !ph.cloneable() {
			continue
		}
		text, hasText := "", false
		if slot, ok := ph.slot(); ok {
			text, hasText = texts[slot]
		}
		writePlaceholderSp(&shapes, shapeID, ph, text, hasText)
		shapeID++
	}

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRel + `" xmlns:p="` + nsPresML + `">`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)
	b.WriteString(shapes.String())
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return []byte(b.String())
}

func writePlaceholderSp(b *strings.Builder, id int, ph placeholder, text string, hasText bool) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/>`, id, escapeXML(ph.name))
	b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph`)
	if ph.phType != "" {
		fmt.Fprintf(b, ` type="%s"`, ph.phType)
	}
	if ph.hasIdx {
		fmt.Fprintf(b, ` idx="%d"`, ph.idx)
	}
	b.WriteString(`/></p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>`)
	if hasText {
		b.WriteString(paragraphsXML(text))
	} else {
		b.WriteString(`<a:p/>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

// registerSlide wires a new slide part into the presentation part, its
// rels and the content types.
func (p *Presentation) registerSlide(slidePart string) error {
	relsName := relsPathFor(p.mainPart)
	relsData := p.partData(relsName)
	if relsData == nil {
		return fmt.Errorf("missing %s", relsName)
	}

	rid := fmt.Sprintf("rId%d", nextRelID(relsData))
	slideTarget := strings.TrimPrefix(slidePart, p.pptDir+"/")
	relEntry := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="%s"/>`, rid, relTypeSlide, slideTarget)
	patched, ok := insertBefore(relsData, "</Relationships>", relEntry)
	if !ok {
		return fmt.Errorf("malformed %s", relsName)
	}
	p.setPart(relsName, patched)

	presData, err := p.ensureSlideIDList(p.partData(p.mainPart))
	if err != nil {
		return err
	}
	entry := fmt.Sprintf(`<p:sldId id="%d" r:id="%s"/>`, nextSlideID(presData), rid)
	presData, ok = insertBefore(presData, "</p:sldIdLst>", entry)
	if !ok {
		return fmt.Errorf("malformed %s", p.mainPart)
	}
	p.setPart(p.mainPart, presData)

	return p.addContentTypeOverride(slidePart, ctSlide)
}

// ensureSlideIDList makes sure the presentation part has an open
// sldIdLst element to append into, creating one in schema position when
// the template has none.
func (p *Presentation) ensureSlideIDList(presData []byte) ([]byte, error) {
	if strings.Contains(string(presData), "</p:sldIdLst>") {
		return presData, nil
	}

	if patched := strings.Replace(string(presData), "<p:sldIdLst/>", "<p:sldIdLst></p:sldIdLst>", 1); patched != string(presData) {
		return []byte(patched), nil
	}

	empty := "<p:sldIdLst></p:sldIdLst>"
	for _, after := range []string{"</p:handoutMasterIdLst>", "</p:notesMasterIdLst>", "</p:sldMasterIdLst>"} {
		if patched, ok := insertAfter(presData, after, empty); ok {
			return patched, nil
		}
	}
	if patched, ok := insertBefore(presData, "<p:sldSz", empty); ok {
		return patched, nil
	}
	if patched, ok := insertBefore(presData, "</p:presentation>", empty); ok {
		return patched, nil
	}
	return nil, fmt.Errorf("no place for sldIdLst in %s", p.mainPart)
}

// nextSlideID picks a slide id above every id already in the list.
// Slide ids start at 256 by convention.
func nextSlideID(presData []byte) int {
	max := 255
	s := string(presData)
	start := strings.Index(s, "<p:sldIdLst")
	end := strings.Index(s, "</p:sldIdLst>")
	if start < 0 || end < 0 || end < start {
		return 256
	}
	for _, m := range reSlideID.FindAllStringSubmatch(s[start:end], -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// addContentTypeOverride registers a new part in [Content_Types].xml.
func (p *Presentation) addContentTypeOverride(partName, contentType string) error {
	data := p.partData(contentTypesPart)
	if data == nil {
		return fmt.Errorf("missing %s", contentTypesPart)
	}
	entry := fmt.Sprintf(`<Override PartName="/%s" ContentType="%s"/>`, partName, contentType)
	patched, ok := insertBefore(data, "</Types>", entry)
	if !ok {
		return fmt.Errorf("malformed %s", contentTypesPart)
	}
	p.setPart(contentTypesPart, patched)
	return nil
}
