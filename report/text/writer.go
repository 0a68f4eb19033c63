package text

import (
	_ "embed" // use go embed to import template
	"fmt"
	"io"
	"text/template"

	"github.com/gookit/color"

	"github.com/securego/findbugs-report/report"
)

var (
	errorTheme   = color.New(color.FgLightWhite, color.BgRed)
	defaultTheme = color.New(color.FgWhite, color.BgBlack)

	//go:embed template.txt
	templateContent string
)

// WriteSummary writes a (colorized) summary of a report run
func WriteSummary(w io.Writer, result *report.Result, enableColor bool) error {
	t, e := template.
		New("findbugs").
		Funcs(plainTextFuncMap(enableColor)).
		Parse(templateContent)
	if e != nil {
		return e
	}

	return t.Execute(w, result)
}

func plainTextFuncMap(enableColor bool) template.FuncMap {
	if enableColor {
		return template.FuncMap{
			"highlight": highlight,
			"danger":    color.Danger.Render,
			"notice":    color.Notice.Render,
			"success":   color.Success.Render,
		}
	}

	// by default those functions return the given content untouched
	return template.FuncMap{
		"highlight": func(count int) string {
			return fmt.Sprint(count)
		},
		"danger":  fmt.Sprint,
		"notice":  fmt.Sprint,
		"success": fmt.Sprint,
	}
}

// highlight colors non zero counters
func highlight(count int) string {
	if count > 0 {
		return errorTheme.Sprint(count)
	}
	return defaultTheme.Sprint(count)
}
