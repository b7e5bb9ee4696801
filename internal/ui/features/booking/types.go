package booking

import "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"

var steps = []components.Step{
	{
		Title: "Request an appointment",
		Body:  "Use the online scheduler or call the office. Tell us a little about what brings you in.",
	},
	{
		Title: "We verify your coverage",
		Body:  "Before your first visit we confirm your insurance benefits so there are no billing surprises.",
	},
	{
		Title: "Complete intake paperwork",
		Body:  "Forms arrive by secure email and take about fifteen minutes. Finishing them beforehand keeps your first visit focused on you.",
	},
	{
		Title: "Meet your clinician",
		Body:  "Your first appointment is a comprehensive evaluation, in person or by video. You leave with a treatment plan you helped build.",
	},
}

// paymentPolicy is shown in the payment policy dialog on the
// appointments page.
var paymentPolicy = []string{
	"Copays and self-pay balances are due at the time of service. We accept all major cards, HSA, and FSA.",
	"Appointments cancelled with less than 24 hours notice, and missed appointments, are subject to a $75 fee. The fee is waived for emergencies.",
	"Self-pay rates are available on request and a good-faith estimate is provided before your first visit.",
	"Outstanding balances over 90 days may pause scheduling until resolved. We are always willing to arrange a payment plan.",
}
