package render

import (
	"fmt"
	"html"
	"io"
)

func WriteHeader(out io.Writer, title string) {
	fmt.Fprintln(out, "<!DOCTYPE html>")
	fmt.Fprintln(out, `<html lang="en">`)
	fmt.Fprintln(out, "<head>")
	fmt.Fprintln(out, `<meta charset="utf-8">`)
	fmt.Fprintf(out, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintln(out, "</head>")
	fmt.Fprintln(out, "<body>")
	fmt.Fprintf(out, "<h1>%s</h1>\n", html.EscapeString(title))
}

func WriteFooter(out io.Writer) {
	fmt.Fprintln(out, "</body>")
	fmt.Fprintln(out, "</html>")
}
