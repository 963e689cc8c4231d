package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h2>Your booking is confirmed</h2>
<p>Booking <b>{{.BookingID}}</b> placed on {{.Placed}}.</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Item</th><th>Qty</th><th>Price</th></tr>
  {{range .Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{printf "%.2f" .Price}}</td></tr>
  {{end}}
</table>
<p><b>Total:</b> {{printf "%.2f" .Total}}</p>
<p><b>Delivery site:</b> {{.Site}}</p>
`))

// Confirmation renders the booking confirmation subject and HTML body.
func Confirmation(bookingID string, items []domain.BookingItem, total float64, site string, placed time.Time) (subject, body string, err error) {
	data := struct {
		BookingID string
		Placed    string
		Items     []domain.BookingItem
		Total     float64
		Site      string
	}{
		BookingID: bookingID,
		Placed:    placed.Format("2006-01-02 15:04"),
		Items:     items,
		Total:     total,
		Site:      site,
	}
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Booking %s confirmed", bookingID), buf.String(), nil
}
