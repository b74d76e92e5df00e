package parser

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// drawingPart is the subset of xl/drawings/drawingN.xml needed to locate
// chart frames.
type drawingPart struct {
	Anchors []struct {
		Frame *struct {
			NvPr struct {
				CNvPr struct {
					Name string `xml:"name,attr"`
				} `xml:"cNvPr"`
			} `xml:"nvGraphicFramePr"`
			Xfrm struct {
				Off struct {
					X int64 `xml:"x,attr"`
					Y int64 `xml:"y,attr"`
				} `xml:"off"`
				Ext struct {
					Cx int64 `xml:"cx,attr"`
					Cy int64 `xml:"cy,attr"`
				} `xml:"ext"`
			} `xml:"xfrm"`
			Chart struct {
				ID string `xml:"id,attr"`
			} `xml:"graphic>graphicData>chart"`
		} `xml:"graphicFrame"`
	} `xml:",any"`
}

type richText struct {
	Runs []string `xml:"tx>rich>p>r>t"`
}

func (t *richText) text() string {
	if t == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(t.Runs, ""))
}

type formulaRef struct {
	Str string `xml:"strRef>f"`
	Num string `xml:"numRef>f"`
}

func (f *formulaRef) ref() string {
	if f == nil {
		return ""
	}
	if f.Str != "" {
		return strings.TrimSpace(f.Str)
	}
	return strings.TrimSpace(f.Num)
}

type seriesPart struct {
	Tx struct {
		Ref   string `xml:"strRef>f"`
		Cache string `xml:"strRef>strCache>pt>v"`
		V     string `xml:"v"`
	} `xml:"tx"`
	Cat  *formulaRef `xml:"cat"`
	Val  *formulaRef `xml:"val"`
	XVal *formulaRef `xml:"xVal"`
	YVal *formulaRef `xml:"yVal"`
}

type valAttr struct {
	Val string `xml:"val,attr"`
}

// plotChild is any child of c:plotArea: a plot such as c:barChart or an
// axis such as c:valAx.
type plotChild struct {
	XMLName xml.Name
	Series  []seriesPart `xml:"ser"`
	Title   *richText    `xml:"title"`
	Min     *valAttr     `xml:"scaling>min"`
	Max     *valAttr     `xml:"scaling>max"`
}

type chartPart struct {
	Chart struct {
		Title    *richText `xml:"title"`
		PlotArea struct {
			Children []plotChild `xml:",any"`
		} `xml:"plotArea"`
	} `xml:"chart"`
}

// ExtractCharts lists the charts embedded in each sheet of an xlsx file.
func ExtractCharts(xlsxPath string) (map[string][]models.EmbeddedChart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	a := newArchive(&r.Reader)
	sheets, err := a.sheetParts()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.EmbeddedChart)
	for _, s := range sheets {
		name, sheetPath := s[0], s[1]
		rel, ok := a.rels(sheetPath).byType("drawing")
		if !ok {
			continue
		}
		if charts := a.drawingCharts(resolveTarget(sheetPath, rel.Target)); len(charts) > 0 {
			result[name] = charts
		}
	}
	return result, nil
}

func (a *archive) drawingCharts(drawingPath string) []models.EmbeddedChart {
	var d drawingPart
	if ok, err := a.decode(drawingPath, &d); !ok || err != nil {
		return nil
	}
	rels := a.rels(drawingPath)

	var out []models.EmbeddedChart
	for _, anchor := range d.Anchors {
		f := anchor.Frame
		if f == nil || f.Chart.ID == "" {
			continue
		}
		rel, ok := rels.byID(f.Chart.ID)
		if !ok {
			continue
		}
		var cp chartPart
		if ok, err := a.decode(resolveTarget(drawingPath, rel.Target), &cp); !ok || err != nil {
			continue
		}
		c := cp.embedded()
		c.Name = f.NvPr.CNvPr.Name
		c.L = EMUToPixels(f.Xfrm.Off.X)
		c.T = EMUToPixels(f.Xfrm.Off.Y)
		c.W = EMUToPixels(f.Xfrm.Ext.Cx)
		c.H = EMUToPixels(f.Xfrm.Ext.Cy)
		out = append(out, c)
	}
	return out
}

func (cp chartPart) embedded() models.EmbeddedChart {
	c := models.EmbeddedChart{Kind: "unknown", Title: cp.Chart.Title.text()}
	plotFound, axisFound := false, false
	for _, child := range cp.Chart.PlotArea.Children {
		local := child.XMLName.Local
		switch {
		case !plotFound && strings.HasSuffix(local, "Chart"):
			plotFound = true
			c.Kind = local
			for _, s := range child.Series {
				c.Series = append(c.Series, s.model())
			}
		case !axisFound && local == "valAx":
			axisFound = true
			c.YAxisTitle = child.Title.text()
			c.YAxisRange = axisRange(child.Min, child.Max)
		}
	}
	return c
}

func (s seriesPart) model() models.ChartSeries {
	out := models.ChartSeries{
		NameRange: strings.TrimSpace(s.Tx.Ref),
		XRange:    s.Cat.ref(),
		YRange:    s.Val.ref(),
	}
	out.Name = strings.TrimSpace(s.Tx.Cache)
	if out.Name == "" {
		out.Name = strings.TrimSpace(s.Tx.V)
	}
	if out.XRange == "" {
		out.XRange = s.XVal.ref()
	}
	if out.YRange == "" {
		out.YRange = s.YVal.ref()
	}
	return out
}

func axisRange(min, max *valAttr) []float64 {
	if min == nil || max == nil {
		return nil
	}
	lo, err := strconv.ParseFloat(min.Val, 64)
	if err != nil {
		return nil
	}
	hi, err := strconv.ParseFloat(max.Val, 64)
	if err != nil {
		return nil
	}
	return []float64{lo, hi}
}
