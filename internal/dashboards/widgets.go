package dashboards

import (
	"fmt"
	"html"
	"strings"
)

// WidgetKind selects the control rendered for a widget.
type WidgetKind string

const (
	KindSlider      WidgetKind = "slider"
	KindRangeSlider WidgetKind = "range"
	KindNumber      WidgetKind = "number"
	KindDateRange   WidgetKind = "daterange"
	KindCheckboxSet WidgetKind = "checkboxes"
)

// Option is one entry of a checkbox-set widget.
type Option struct {
	Value   string
	Checked bool
}

// Widget describes one dashboard control. ID is the query parameter
// name sent on recompute; range kinds append _min/_max (or use
// date_start/date_end for the date range).
type Widget struct {
	ID    string
	Label string
	Kind  WidgetKind

	Min, Max, Step float64
	Default        float64

	// Range slider defaults.
	LowDefault, HighDefault float64

	// Date range defaults, YYYY-MM-DD.
	DateLow, DateHigh string

	Options []Option
}

// HTML renders the widget's control markup. Every input carries the
// "ctl" class and data attributes the page script reads to rebuild
// the query string on change.
func (w Widget) HTML() string {
	var b strings.Builder
	b.WriteString(`<div class="widget">`)
	fmt.Fprintf(&b, `<label class="widget-label">%s</label>`, html.EscapeString(w.Label))

	switch w.Kind {
	case KindSlider:
		fmt.Fprintf(&b,
			`<input type="range" class="ctl" data-param="%s" min="%s" max="%s" step="%s" value="%s">`+
				`<span class="widget-value" id="val-%s">%s</span>`,
			w.ID, trimFloat(w.Min), trimFloat(w.Max), trimFloat(w.Step), trimFloat(w.Default),
			w.ID, trimFloat(w.Default))
	case KindRangeSlider:
		fmt.Fprintf(&b,
			`<input type="range" class="ctl" data-param="%s_min" min="%s" max="%s" step="%s" value="%s">`+
				`<input type="range" class="ctl" data-param="%s_max" min="%s" max="%s" step="%s" value="%s">`+
				`<span class="widget-value" id="val-%s">%s - %s</span>`,
			w.ID, trimFloat(w.Min), trimFloat(w.Max), trimFloat(w.Step), trimFloat(w.LowDefault),
			w.ID, trimFloat(w.Min), trimFloat(w.Max), trimFloat(w.Step), trimFloat(w.HighDefault),
			w.ID, trimFloat(w.LowDefault), trimFloat(w.HighDefault))
	case KindNumber:
		fmt.Fprintf(&b,
			`<input type="number" class="ctl" data-param="%s" step="%s" value="%s">`,
			w.ID, trimFloat(w.Step), trimFloat(w.Default))
	case KindDateRange:
		fmt.Fprintf(&b,
			`<input type="date" class="ctl" data-param="date_start" value="%s">`+
				`<input type="date" class="ctl" data-param="date_end" value="%s">`,
			w.DateLow, w.DateHigh)
	case KindCheckboxSet:
		for _, opt := range w.Options {
			checked := ""
			if opt.Checked {
				checked = " checked"
			}
			fmt.Fprintf(&b,
				`<label class="widget-option"><input type="checkbox" class="ctl" data-param="%s" value="%s"%s> %s</label>`,
				w.ID, html.EscapeString(opt.Value), checked, html.EscapeString(opt.Value))
		}
	}

	b.WriteString(`</div>`)
	return b.String()
}

// trimFloat formats a float without trailing zeros so slider
// attributes read like hand-written markup.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
