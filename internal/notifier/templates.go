package notifier

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// Both notifications render an HTML body with a plain-text alternative.
// Optional free-text notes are omitted entirely when empty.

const foodRequestedHTML = `<html>
<body>
<p>Hi {{.OwnerName}},</p>
<p><strong>{{.RequesterEmail}}</strong> has requested your listing <strong>{{.FoodName}}</strong> on {{.RequestedAt}}.</p>
{{if .Note}}<p>Note from the requester:</p>
<blockquote>{{.Note}}</blockquote>
{{end}}<p>Please get in touch with them to arrange the pickup.</p>
<p>— The BiteShare team</p>
</body>
</html>
`

const foodRequestedText = `Hi {{.OwnerName}},

{{.RequesterEmail}} has requested your listing "{{.FoodName}}" on {{.RequestedAt}}.
{{if .Note}}
Note from the requester:
{{.Note}}
{{end}}
Please get in touch with them to arrange the pickup.

- The BiteShare team
`

const bulkOrderHTML = `<html>
<body>
<p>Hi {{.OwnerName}},</p>
<p><strong>{{.CustomerName}}</strong> ({{.CustomerEmail}}) has placed a bulk order for your listing <strong>{{.FoodName}}</strong>.</p>
<ul>
<li>Quantity: {{.Quantity}}</li>
<li>Total price: {{.TotalPrice}}</li>
<li>Delivery date: {{.DeliveryDate}}</li>
<li>Delivery address: {{.DeliveryAddress}}</li>
</ul>
{{if .Notes}}<p>Order notes:</p>
<blockquote>{{.Notes}}</blockquote>
{{end}}<p>— The BiteShare team</p>
</body>
</html>
`

const bulkOrderText = `Hi {{.OwnerName}},

{{.CustomerName}} ({{.CustomerEmail}}) has placed a bulk order for your listing "{{.FoodName}}".

Quantity: {{.Quantity}}
Total price: {{.TotalPrice}}
Delivery date: {{.DeliveryDate}}
Delivery address: {{.DeliveryAddress}}
{{if .Notes}}
Order notes:
{{.Notes}}
{{end}}
- The BiteShare team
`

var (
	foodRequestedHTMLTmpl = htmltemplate.Must(htmltemplate.New("food_requested_html").Parse(foodRequestedHTML))
	foodRequestedTextTmpl = texttemplate.Must(texttemplate.New("food_requested_text").Parse(foodRequestedText))
	bulkOrderHTMLTmpl     = htmltemplate.Must(htmltemplate.New("bulk_order_html").Parse(bulkOrderHTML))
	bulkOrderTextTmpl     = texttemplate.Must(texttemplate.New("bulk_order_text").Parse(bulkOrderText))
)
