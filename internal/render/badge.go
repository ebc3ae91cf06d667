package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/vukan322/gitstreak/internal/core"
)

const (
	badgeWidth  = 560
	badgeHeight = 240

	barSpacing = 6
	barOffsetX = 24
	baselineY  = 60 // inside the chart group, sits on the drawn axis line
)

//go:embed templates/badge.svg.tmpl
var badgeTemplate string

var badgeTmpl = template.Must(template.New("badge").Parse(badgeTemplate))

type badgeBar struct {
	X      int
	Y      int
	Height int
}

type badgeViewModel struct {
	Width  int
	Height int

	CurrentStreak int
	LongestStreak int
	ActiveDays    int
	WindowDays    int

	Bars []badgeBar

	Repos              int
	Stars              int
	Followers          int
	Following          int
	WindowCommits      int
	TotalContributions int
}

// Badge renders the computed metrics and profile scalars into a
// self-contained 560x240 SVG document. It never fails for valid
// non-negative inputs; the error covers template execution only.
func Badge(m core.Metrics, p core.ProfileSummary) ([]byte, error) {
	bars := make([]badgeBar, 0, len(m.BarHeights))
	for i, h := range m.BarHeights {
		bars = append(bars, badgeBar{
			X:      barOffsetX + i*barSpacing,
			Y:      baselineY - h,
			Height: h,
		})
	}

	vm := badgeViewModel{
		Width:              badgeWidth,
		Height:             badgeHeight,
		CurrentStreak:      m.CurrentStreak,
		LongestStreak:      m.LongestStreak,
		ActiveDays:         m.WindowActiveDays,
		WindowDays:         core.WindowDays,
		Bars:               bars,
		Repos:              p.Repos,
		Stars:              p.Stars,
		Followers:          p.Followers,
		Following:          p.Following,
		WindowCommits:      m.WindowTotal,
		TotalContributions: p.TotalContributions,
	}

	var buf bytes.Buffer
	if err := badgeTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render badge: %w", err)
	}
	return buf.Bytes(), nil
}
