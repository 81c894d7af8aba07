package notify

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func welcomeSubject(name string) string {
	return "Welcome to Our Accounting Services, " + name + "!"
}

func renderWelcome(name, businessName string) (string, error) {
	return render("welcome", struct {
		Name         string
		BusinessName string
	}{name, businessName})
}

func renderTest() (string, error) {
	return render("test", nil)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
