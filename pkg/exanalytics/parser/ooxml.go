package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

// relationship is one entry of an OOXML .rels part.
type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	Items []relationship `xml:"Relationship"`
}

// byType returns the first relationship whose type ends in kind.
func (r relationships) byType(kind string) (relationship, bool) {
	for _, rel := range r.Items {
		if strings.HasSuffix(strings.ToLower(rel.Type), "/"+kind) {
			return rel, true
		}
	}
	return relationship{}, false
}

func (r relationships) byID(id string) (relationship, bool) {
	for _, rel := range r.Items {
		if rel.ID == id {
			return rel, true
		}
	}
	return relationship{}, false
}

type workbookPart struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// archive wraps an opened xlsx zip.
type archive struct {
	files map[string]*zip.File
}

func newArchive(r *zip.Reader) *archive {
	a := &archive{files: make(map[string]*zip.File, len(r.File))}
	for _, f := range r.File {
		a.files[f.Name] = f
	}
	return a
}

// read returns the part's bytes, or nil when the part does not exist.
func (a *archive) read(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decode unmarshals a part into v. Missing parts report false.
func (a *archive) decode(name string, v interface{}) (bool, error) {
	data, err := a.read(name)
	if err != nil || data == nil {
		return false, err
	}
	return true, xml.Unmarshal(data, v)
}

// rels loads the relationships of a part.
func (a *archive) rels(part string) relationships {
	var r relationships
	_, _ = a.decode(relsPath(part), &r)
	return r
}

// sheetParts returns sheet names with their worksheet part, in workbook order.
func (a *archive) sheetParts() ([][2]string, error) {
	var wb workbookPart
	if ok, err := a.decode("xl/workbook.xml", &wb); !ok || err != nil {
		return nil, err
	}
	rels := a.rels("xl/workbook.xml")

	var out [][2]string
	for _, s := range wb.Sheets {
		rel, ok := rels.byID(s.RID)
		if !ok {
			continue
		}
		out = append(out, [2]string{s.Name, resolveTarget("xl/workbook.xml", rel.Target)})
	}
	return out, nil
}

// relsPath returns the .rels part describing part.
func relsPath(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// resolveTarget resolves a relationship target against its source part.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}
