package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

const (
	contentTypesPart = "[Content_Types].xml"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

	nsDrawing = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresML  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRel     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels = "http://schemas.openxmlformats.org/package/2006/relationships"

	relTypeOfficeDoc   = nsRel + "/officeDocument"
	relTypeSlide       = nsRel + "/slide"
	relTypeSlideLayout = nsRel + "/slideLayout"
	relTypeSlideMaster = nsRel + "/slideMaster"
	relTypeNotesSlide  = nsRel + "/notesSlide"
	relTypeNotesMaster = nsRel + "/notesMaster"
	relTypeTheme       = nsRel + "/theme"

	ctSlide       = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctNotesSlide  = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ctNotesMaster = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
)

var reRelID = regexp.MustCompile(`Id="rId(\d+)"`)

// relationships is a parsed .rels part.
type relationships struct {
	Rels []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func parseRels(data []byte) (relationships, error) {
	var rels relationships
	if data == nil {
		return rels, fmt.Errorf("no relationships part")
	}
	if err := xml.Unmarshal(data, &rels); err != nil {
		return rels, err
	}
	return rels, nil
}

func (r relationships) target(id string) (string, bool) {
	for _, rel := range r.Rels {
		if rel.ID == id {
			return rel.Target, true
		}
	}
	return "", false
}

func (r relationships) firstOfType(relType string) (string, bool) {
	for _, rel := range r.Rels {
		if rel.Type == relType {
			return rel.Target, true
		}
	}
	return "", false
}

func buildRelsXML(rels []relationship) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + nsPkgRels + `">`)
	for _, rel := range rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`,
			rel.ID, rel.Type, escapeXML(rel.Target))
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

// idList reads the ordered r:id references out of sldIdLst or
// sldLayoutIdLst. The id and r:id attributes share a local name, so
// attributes are walked explicitly instead of letting the decoder pick
// whichever comes first.
type idList struct {
	Entries []idEntry
}

type idEntry struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func (e idEntry) relID() string {
	for _, a := range e.Attrs {
		if a.Name.Local == "id" && a.Name.Space == nsRel {
			return a.Value
		}
	}
	return ""
}

func parseSlideIDList(presData []byte) ([]string, error) {
	var doc struct {
		Entries []idEntry `xml:"sldIdLst>sldId"`
	}
	if err := xml.Unmarshal(presData, &doc); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if rid := e.relID(); rid != "" {
			ids = append(ids, rid)
		}
	}
	return ids, nil
}

func parseLayoutIDList(masterData []byte) ([]string, error) {
	var doc struct {
		Entries []idEntry `xml:"sldLayoutIdLst>sldLayoutId"`
	}
	if err := xml.Unmarshal(masterData, &doc); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if rid := e.relID(); rid != "" {
			ids = append(ids, rid)
		}
	}
	return ids, nil
}

// shapeTree captures the placeholder shapes of a slide, layout or notes
// part. Element matching is by local name, so namespace prefixes do not
// matter.
type shapeTree struct {
	Shapes []shapeXML `xml:"cSld>spTree>sp"`
}

type shapeXML struct {
	NvSpPr struct {
		CNvPr struct {
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
		NvPr struct {
			Ph *phXML `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type phXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

type txBodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

type paragraphXML struct {
	Runs []struct {
		Text string `xml:"t"`
	} `xml:"r"`
}

func parseShapeTree(data []byte) (shapeTree, error) {
	var tree shapeTree
	if err := xml.Unmarshal(data, &tree); err != nil {
		return tree, err
	}
	return tree, nil
}

// text joins run texts within paragraphs and paragraphs with newlines,
// matching how presentation tools flatten a text frame.
func (t *txBodyXML) text() string {
	if t == nil {
		return ""
	}
	lines := make([]string, 0, len(t.Paragraphs))
	for _, para := range t.Paragraphs {
		var line strings.Builder
		for _, run := range para.Runs {
			line.WriteString(run.Text)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// paragraphsXML renders plain text as DrawingML paragraphs, one per
// line.
func paragraphsXML(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			b.WriteString("<a:p/>")
			continue
		}
		b.WriteString("<a:p><a:r><a:t>")
		b.WriteString(escapeXML(line))
		b.WriteString("</a:t></a:r></a:p>")
	}
	return b.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// nextRelID returns one past the highest rIdN in a rels part.
func nextRelID(relsData []byte) int {
	max := 0
	for _, m := range reRelID.FindAllSubmatch(relsData, -1) {
		n := 0
		for _, c := range m[1] {
			n = n*10 + int(c-'0')
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// insertBefore inserts text just before the last occurrence of marker.
func insertBefore(data []byte, marker, insert string) ([]byte, bool) {
	idx := bytes.LastIndex(data, []byte(marker))
	if idx < 0 {
		return nil, false
	}
	out := make([]byte, 0, len(data)+len(insert))
	out = append(out, data[:idx]...)
	out = append(out, insert...)
	out = append(out, data[idx:]...)
	return out, true
}

// insertAfter inserts text just after the first occurrence of marker.
func insertAfter(data []byte, marker, insert string) ([]byte, bool) {
	idx := bytes.Index(data, []byte(marker))
	if idx < 0 {
		return nil, false
	}
	idx += len(marker)
	out := make([]byte, 0, len(data)+len(insert))
	out = append(out, data[:idx]...)
	out = append(out, insert...)
	out = append(out, data[idx:]...)
	return out, true
}
