package pptx

import (
	"fmt"
	"strings"
)

// NotesText returns a slide's speaker notes, empty when the slide has
// no notes part.
func (p *Presentation) NotesText(slideIndex int) (string, error) {
	if slideIndex < 0 || slideIndex >= len(p.slides) {
		return "", fmt.Errorf("slide %d out of range (have %d slides)", slideIndex, len(p.slides))
	}

	notesPart, ok := p.notesPartFor(p.slides[slideIndex])
	if !ok {
		return "", nil
	}

	tree, err := parseShapeTree(p.partData(notesPart))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", notesPart, err)
	}
	for _, sp := range tree.Shapes {
		if ph := sp.NvSpPr.NvPr.Ph; ph != nil && ph.Type == "body" {
			return sp.TxBody.text(), nil
		}
	}

	return "", nil
}

// SetNotesText replaces a slide's speaker notes, creating the notes
// part when the slide has none yet.
func (p *Presentation) SetNotesText(slideIndex int, text string) error {
	if slideIndex < 0 || slideIndex >= len(p.slides) {
		return fmt.Errorf("slide %d out of range (have %d slides)", slideIndex, len(p.slides))
	}
	slidePart := p.slides[slideIndex]

	if notesPart, ok := p.notesPartFor(slidePart); ok {
		if patched, ok := replaceNotesBodyText(p.partData(notesPart), text); ok {
			p.setPart(notesPart, patched)
		} else {
			// Unknown producer shape; rebuild the part wholesale.
			p.setPart(notesPart, buildNotesXML(text))
		}
		return nil
	}

	return p.createNotesSlide(slidePart, text)
}

// notesPartFor follows a slide's rels to its notes part, if present.
func (p *Presentation) notesPartFor(slidePart string) (string, bool) {
	rels, err := p.readRels(slidePart)
	if err != nil {
		return "", false
	}
	target, ok := rels.firstOfType(relTypeNotesSlide)
	if !ok {
		return "", false
	}
	notesPart := resolveTarget(slidePart, target)
	if p.partData(notesPart) == nil {
		return "", false
	}
	return notesPart, true
}

func (p *Presentation) createNotesSlide(slidePart, text string) error {
	masterPart, err := p.ensureNotesMaster()
	if err != nil {
		return err
	}

	num := p.nextNotesNum
	p.nextNotesNum++
	notesPart := fmt.Sprintf("%s/notesSlides/notesSlide%d.xml", p.pptDir, num)

	p.setPart(notesPart, buildNotesXML(text))
	p.setPart(relsPathFor(notesPart), buildRelsXML([]relationship{
		{ID: "rId1", Type: relTypeNotesMaster, Target: "../" + strings.TrimPrefix(masterPart, p.pptDir+"/")},
		{ID: "rId2", Type: relTypeSlide, Target: "../" + strings.TrimPrefix(slidePart, p.pptDir+"/")},
	}))
	if err := p.addContentTypeOverride(notesPart, ctNotesSlide); err != nil {
		return err
	}

	// Point the slide at its new notes part.
	slideRelsName := relsPathFor(slidePart)
	relsData := p.partData(slideRelsName)
	if relsData == nil {
		relsData = buildRelsXML(nil)
	}
	rid := fmt.Sprintf("rId%d", nextRelID(relsData))
	entry := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="%s"/>`,
		rid, relTypeNotesSlide, "../"+strings.TrimPrefix(notesPart, p.pptDir+"/"))
	patched, ok := insertBefore(relsData, "</Relationships>", entry)
	if !ok {
		return fmt.Errorf("malformed %s", slideRelsName)
	}
	p.setPart(slideRelsName, patched)

	return nil
}

// ensureNotesMaster returns the package's notes master, creating a
// minimal default one the first time notes are added to a deck whose
// template never carried notes.
func (p *Presentation) ensureNotesMaster() (string, error) {
	for _, pt := range p.parts {
		if strings.Contains(pt.name, "/notesMasters/notesMaster") && strings.HasSuffix(pt.name, ".xml") {
			return pt.name, nil
		}
	}

	masterPart := p.pptDir + "/notesMasters/notesMaster1.xml"
	p.setPart(masterPart, []byte(defaultNotesMasterXML))

	var rels []relationship
	if theme := p.firstThemePart(); theme != "" {
		rels = append(rels, relationship{
			ID:     "rId1",
			Type:   relTypeTheme,
			Target: "../" + strings.TrimPrefix(theme, p.pptDir+"/"),
		})
	}
	p.setPart(relsPathFor(masterPart), buildRelsXML(rels))

	if err := p.addContentTypeOverride(masterPart, ctNotesMaster); err != nil {
		return "", err
	}

	relsName := relsPathFor(p.mainPart)
	relsData := p.partData(relsName)
	if relsData == nil {
		return "", fmt.Errorf("missing %s", relsName)
	}
	rid := fmt.Sprintf("rId%d", nextRelID(relsData))
	entry := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="%s"/>`,
		rid, relTypeNotesMaster, strings.TrimPrefix(masterPart, p.pptDir+"/"))
	patched, ok := insertBefore(relsData, "</Relationships>", entry)
	if !ok {
		return "", fmt.Errorf("malformed %s", relsName)
	}
	p.setPart(relsName, patched)

	presData := p.partData(p.mainPart)
	lst := fmt.Sprintf(`<p:notesMasterIdLst><p:notesMasterId r:id="%s"/></p:notesMasterIdLst>`, rid)
	if patched, ok := insertAfter(presData, "</p:sldMasterIdLst>", lst); ok {
		p.setPart(p.mainPart, patched)
	} else if patched, ok := insertBefore(presData, "<p:sldIdLst", lst); ok {
		p.setPart(p.mainPart, patched)
	} else if patched, ok := insertBefore(presData, "</p:presentation>", lst); ok {
		p.setPart(p.mainPart, patched)
	} else {
		return "", fmt.Errorf("no place for notesMasterIdLst in %s", p.mainPart)
	}

	return masterPart, nil
}

func (p *Presentation) firstThemePart() string {
	for _, pt := range p.parts {
		if strings.Contains(pt.name, "/theme/theme") && strings.HasSuffix(pt.name, ".xml") {
			return pt.name
		}
	}
	return ""
}

// replaceNotesBodyText swaps the text of the notes body placeholder
// inside existing notes XML, leaving every other shape untouched.
// Reports false when the part does not use the standard prefix/shape
// layout, in which case the caller rebuilds the part.
func replaceNotesBodyText(data []byte, text string) ([]byte, bool) {
	s := string(data)
	searchFrom := 0
	for {
		spStart := strings.Index(s[searchFrom:], "<p:sp>")
		if spStart < 0 {
			return nil, false
		}
		spStart += searchFrom
		spEnd := strings.Index(s[spStart:], "</p:sp>")
		if spEnd < 0 {
			return nil, false
		}
		spEnd += spStart + len("</p:sp>")

		block := s[spStart:spEnd]
		if strings.Contains(block, `type="body"`) {
			txStart := strings.Index(block, "<p:txBody>")
			txEnd := strings.Index(block, "</p:txBody>")
			if txStart < 0 || txEnd < 0 || txEnd < txStart {
				return nil, false
			}
			patched := s[:spStart] + block[:txStart] +
				"<p:txBody><a:bodyPr/><a:lstStyle/>" + paragraphsXML(text) + "</p:txBody>" +
				block[txEnd+len("</p:txBody>"):] + s[spEnd:]
			return []byte(patched), true
		}

		searchFrom = spEnd
	}
}

func buildNotesXML(text string) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:notes xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRel + `" xmlns:p="` + nsPresML + `">`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Slide Image Placeholder 1"/><p:cNvSpPr><a:spLocks noGrp="1" noRot="1" noChangeAspect="1"/></p:cNvSpPr><p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr><p:spPr/></p:sp>`)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Notes Placeholder 2"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>`)
	b.WriteString(paragraphsXML(text))
	b.WriteString(`</p:txBody></p:sp>`)
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:notes>`)
	return []byte(b.String())
}

const defaultNotesMasterXML = xmlHeader +
	`<p:notesMaster xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRel + `" xmlns:p="` + nsPresML + `">` +
	`<p:cSld><p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
	`</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`</p:notesMaster>`
