package controllers

import "html/template"

const EventTemplateName = "event.html"

var Templates = template.Must(template.New(EventTemplateName).Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<p><time datetime="{{.StartsAt.Format "2006-01-02T15:04:05Z07:00"}}">{{.StartsAt.Format "2006-01-02 15:04"}}</time>{{with .Location}} · {{.}}{{end}}</p>
{{with .CoverImage}}<img src="{{.}}" alt="">{{end}}
{{with .Description}}<p>{{.}}</p>{{end}}
{{with .TicketURL}}<p><a href="{{.}}">Tickets</a></p>{{end}}
</main>
</body>
</html>
`))
