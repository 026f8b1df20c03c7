package receipt

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
)

var htmlTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Struk #{{.Doc.OrderID}}</title>
<style>
@page { size: 80mm auto; margin: 5mm; }
body { font-family: monospace; font-size: 9pt; width: 70mm; margin: 0 auto; }
.center { text-align: center; }
.title { font-size: 14pt; font-weight: bold; }
.small { font-size: 8pt; }
.row { display: flex; justify-content: space-between; }
.detail { padding-left: 2mm; }
.total { font-weight: bold; }
hr { border: 0; border-top: 1px dashed #000; }
img.qr { display: block; margin: 2mm auto; width: 30mm; height: 30mm; }
</style>
</head>
<body{{if .AutoPrint}} onload="window.print()"{{end}}>
{{range $i, $h := .Doc.Header}}<div class="center{{if eq $i 0}} title{{else}} small{{end}}">{{$h}}</div>
{{end}}<hr>
{{range .Doc.Info}}<div>{{.}}</div>
{{end}}<hr>
{{range .Doc.Items}}<div>{{.Name}}</div>
{{if or .Detail .Subtotal}}<div class="row detail"><span>{{.Detail}}</span><span>{{.Subtotal}}</span></div>
{{end}}{{end}}<hr>
<div class="row total"><span>TOTAL</span><span>{{.Doc.Total}}</span></div>
{{range .Doc.Payment}}<div class="row"><span>{{.Label}}</span><span>{{.Value}}</span></div>
{{end}}{{if .QR}}<img class="qr" alt="#{{.Doc.OrderID}}" src="{{.QR}}">
{{end}}<br>
{{range .Doc.Footer}}<div class="center small">{{.}}</div>
{{end}}</body>
</html>
`))

type htmlView struct {
	Doc       Document
	QR        template.URL
	AutoPrint bool
}

// HTML renders a printable page. With autoPrint the page opens the print
// dialog as soon as it loads. qr is an optional PNG embedded as a data URI.
func HTML(doc Document, qr []byte, autoPrint bool) ([]byte, error) {
	view := htmlView{Doc: doc, AutoPrint: autoPrint}
	if len(qr) > 0 {
		view.QR = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qr))
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render receipt html: %w", err)
	}
	return buf.Bytes(), nil
}
