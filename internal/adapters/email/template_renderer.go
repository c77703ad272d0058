package email

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"talktrack/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// funcs is shared by the html and text template sets.
var funcs = map[string]any{
	"plural": func(n int, word string) string {
		if n == 1 {
			return word
		}
		return word + "s"
	},
	"closes": func(daysLeft int) string {
		switch daysLeft {
		case 0:
			return "today"
		case 1:
			return "tomorrow"
		default:
			return fmt.Sprintf("in %d days", daysLeft)
		}
	},
}

type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates once. A template named "x" is made of
// x_subject.txt, x.html and x.txt.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: htmltemplate.Must(htmltemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
		text: texttemplate.Must(texttemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.txt")),
	}
}

func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	var b strings.Builder
	if err = r.text.ExecuteTemplate(&b, templateName+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", templateName, err)
	}
	subject = strings.Join(strings.Fields(b.String()), " ")

	b.Reset()
	if err = r.html.ExecuteTemplate(&b, templateName+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", templateName, err)
	}
	htmlBody = b.String()

	b.Reset()
	if err = r.text.ExecuteTemplate(&b, templateName+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render %s text: %w", templateName, err)
	}
	return subject, htmlBody, b.String(), nil
}
