package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.943 generate

import (
	"strconv"

	"github.com/Ko-stant/outlook-map/internal/dashboard"
	"github.com/Ko-stant/outlook-map/internal/protocol"
	"github.com/Ko-stant/outlook-map/internal/surface"
)

type IndexData struct {
	Title    string
	SiteName string
	SiteURL  string
	Snapshot protocol.Snapshot
	Chart    dashboard.Chart
	// AllowRegenerate shows the control that asks the server for a new map.
	AllowRegenerate bool
}

// PageTitle prefixes name to the site name, e.g. "Home - Site".
func PageTitle(name, site string) string {
	if site == "" {
		return name
	}
	return name + " - " + site
}

func viewBox(s protocol.Snapshot) string {
	return "0 0 " + num(s.Width) + " " + num(s.Height)
}

func handle(e surface.Element) string {
	return strconv.Itoa(int(e.Handle))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
