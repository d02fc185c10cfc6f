package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

const donationSubject = "Děkujeme za Váš dar"

var donationTmpl = template.Must(template.New("donation").Parse(`<!DOCTYPE html>
<html lang="cs">
<body style="font-family: Georgia, serif; color: #222;">
  <p>Dobrý den, {{.Name}},</p>
  <p>děkujeme za Váš dar ve výši <strong>{{.FormattedAmount}} Kč</strong>, který jste odeslali dne {{.SentDate}}.</p>
  <p>Jakmile platbu spárujeme, pošleme Vám potvrzení o daru pro daňové účely.</p>
  <p>S díky<br>Příběháři</p>
</body>
</html>
`))

// RenderDonation returns the HTML body of the confirmation email.
func RenderDonation(r Recap) (string, error) {
	var buf bytes.Buffer
	if err := donationTmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render donation email: %w", err)
	}
	return buf.String(), nil
}
