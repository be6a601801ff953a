package tui

import "strings"

// renderNotice draws the dismissible notice. Failures get the error style.
func renderNotice(text string, failure bool) string {
	title, style, box := "AVISO", titleStyle, noticeStyle
	if failure {
		title, style, box = "ERROR", errorStyle, noticeFailureStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(title))
	b.WriteString("\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter/esc: cerrar"))

	return box.Render(b.String())
}
