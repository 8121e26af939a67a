// Package pptx reads and writes the slice of the OOXML presentation
// format the pipeline needs: instantiating slides from template layouts
// and reading or writing per-slide speaker notes. Parts the package does
// not understand are carried through untouched, so decks produced by
// other tools survive a round trip.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

type part struct {
	name string
	data []byte
}

// Presentation is an open .pptx package. Mutations operate directly on
// the package parts; Save writes the result to disk.
type Presentation struct {
	parts     []part
	partIndex map[string]int

	mainPart string   // ppt/presentation.xml
	pptDir   string   // ppt
	slides   []string // slide part names in presentation order
	layouts  []Layout // first master's layouts in declared order

	nextSlideNum int
	nextNotesNum int
}

// Open reads a .pptx package from disk.
func Open(pptxPath string) (*Presentation, error) {
	r, err := zip.OpenReader(pptxPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", pptxPath, err)
	}
	defer r.Close()

	p := &Presentation{partIndex: make(map[string]int)}
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		p.setPart(f.Name, data)
	}

	if p.partData(contentTypesPart) == nil {
		return nil, fmt.Errorf("%s is not a presentation package", pptxPath)
	}
	if err := p.index(); err != nil {
		return nil, fmt.Errorf("index %s: %w", pptxPath, err)
	}

	return p, nil
}

// Save writes the package to disk, preserving part order.
func (p *Presentation) Save(outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}

	zw := zip.NewWriter(f)
	for _, pt := range p.parts {
		w, err := zw.Create(pt.name)
		if err != nil {
			f.Close()
			return fmt.Errorf("write part %s: %w", pt.name, err)
		}
		if _, err := w.Write(pt.data); err != nil {
			f.Close()
			return fmt.Errorf("write part %s: %w", pt.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finish %s: %w", outputPath, err)
	}

	return f.Close()
}

// SlideCount returns the number of slides in presentation order.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// LayoutCount returns the number of layouts on the first slide master.
func (p *Presentation) LayoutCount() int {
	return len(p.layouts)
}

func (p *Presentation) partData(name string) []byte {
	if i, ok := p.partIndex[name]; ok {
		return p.parts[i].data
	}
	return nil
}

func (p *Presentation) setPart(name string, data []byte) {
	if i, ok := p.partIndex[name]; ok {
		p.parts[i].data = data
		return
	}
	p.partIndex[name] = len(p.parts)
	p.parts = append(p.parts, part{name: name, data: data})
}

// index resolves the package structure: main part, slide order, layouts.
func (p *Presentation) index() error {
	p.mainPart = p.resolveMainPart()
	p.pptDir = path.Dir(p.mainPart)

	presData := p.partData(p.mainPart)
	if presData == nil {
		return fmt.Errorf("missing %s", p.mainPart)
	}

	presRels, err := p.readRels(p.mainPart)
	if err != nil {
		return err
	}

	slideIDs, err := parseSlideIDList(presData)
	if err != nil {
		return fmt.Errorf("parse %s: %w", p.mainPart, err)
	}
	for _, rid := range slideIDs {
		target, ok := presRels.target(rid)
		if !ok {
			return fmt.Errorf("slide relationship %s not found", rid)
		}
		p.slides = append(p.slides, resolveTarget(p.mainPart, target))
	}

	if masterTarget, ok := presRels.firstOfType(relTypeSlideMaster); ok {
		masterPart := resolveTarget(p.mainPart, masterTarget)
		layouts, err := p.readLayouts(masterPart)
		if err != nil {
			return err
		}
		p.layouts = layouts
	}

	p.nextSlideNum = p.nextPartNum("/slides/slide")
	p.nextNotesNum = p.nextPartNum("/notesSlides/notesSlide")

	return nil
}

// resolveMainPart follows the package-level rels to the presentation
// part, falling back to the conventional location.
func (p *Presentation) resolveMainPart() string {
	if rels, err := parseRels(p.partData("_rels/.rels")); err == nil {
		if target, ok := rels.firstOfType(relTypeOfficeDoc); ok {
			return strings.TrimPrefix(path.Clean(strings.TrimPrefix(target, "/")), "/")
		}
	}
	return "ppt/presentation.xml"
}

func (p *Presentation) readRels(ownerPart string) (relationships, error) {
	data := p.partData(relsPathFor(ownerPart))
	if data == nil {
		return relationships{}, nil
	}
	rels, err := parseRels(data)
	if err != nil {
		return relationships{}, fmt.Errorf("parse rels of %s: %w", ownerPart, err)
	}
	return rels, nil
}

// nextPartNum returns one past the highest numbered part whose name
// contains the given marker, e.g. "/slides/slide".
func (p *Presentation) nextPartNum(marker string) int {
	max := 0
	for _, pt := range p.parts {
		idx := strings.Index(pt.name, marker)
		if idx < 0 || !strings.HasSuffix(pt.name, ".xml") {
			continue
		}
		numText := strings.TrimSuffix(pt.name[idx+len(marker):], ".xml")
		n := 0
		for _, c := range numText {
			if c < '0' || c > '9' {
				n = 0
				break
			}
			n = n*10 + int(c-'0')
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

func relsPathFor(partName string) string {
	return path.Dir(partName) + "/_rels/" + path.Base(partName) + ".rels"
}

// resolveTarget turns a relationship target into a package part name.
func resolveTarget(ownerPart, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(path.Dir(ownerPart), target))
}
