package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// layoutTmpl is the single page shell. Chrome (header/footer) is toggled
// per route by the navigation policy's static table.
var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
{{if .ShowChrome}}<header><nav><a href="/">Biffle</a></nav></header>{{end}}
<main>
<h1>{{.Title}}</h1>
<p>{{.Body}}</p>
</main>
{{if .ShowChrome}}<footer><p>&copy; Biffle</p></footer>{{end}}
</body>
</html>
`))

// callbackTmpl is the payment acknowledgment page. The meta refresh makes
// the follow-up navigation a full page load, so balance-dependent views
// re-initialize from the refreshed session.
var callbackTmpl = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.DelaySeconds}};url={{.RedirectURL}}">
<title>{{.Heading}}</title>
</head>
<body>
<main>
<h1>{{.Heading}}</h1>
<p>{{.Message}}</p>
</main>
</body>
</html>
`))

type pageView struct {
	Title      string
	Body       string
	ShowChrome bool
}

func renderPage(c *gin.Context, page domain.Page, title, body string) {
	view := pageView{
		Title:      title,
		Body:       body,
		ShowChrome: !domain.HideChrome(page.Path()),
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := layoutTmpl.Execute(c.Writer, view); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
