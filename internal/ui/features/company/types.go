package company

import "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"

// TeamMember is one clinician profile on the team page.
type TeamMember struct {
	Name       string
	Title      string
	Credential string
	ImageRef   string
	Bio        []string
}

var team = []TeamMember{
	{
		Name:       "Grace Adeyemi",
		Title:      "Founder & Lead Clinician",
		Credential: "Psychiatric Mental Health Nurse Practitioner (PMHNP-BC)",
		ImageRef:   "/static/img/team/grace.png",
		Bio: []string{
			"Grace is a board-certified psychiatric nurse practitioner with over a decade of experience across inpatient, community, and private practice settings.",
			"She founded the practice to give patients what big systems rarely offer: unhurried appointments, direct access to their clinician, and care plans built together.",
			"Grace treats adults and adolescents, with particular interest in mood disorders, anxiety, and ADHD.",
		},
	},
}

var mission = []string{
	"We believe everyone deserves a good place to turn when life gets heavy.",
	"Our practice pairs evidence-based psychiatric treatment with genuine human connection. Appointments are never rushed, follow-ups are never an afterthought, and your treatment plan is built with you, not handed to you.",
	"Care is available in person and by secure video across Minnesota, with new patient appointments typically within one to two weeks.",
}

var faqs = []components.QA{
	{
		Question: "Do you offer telehealth appointments?",
		Answer:   "Yes. Secure video visits are available to anyone located in Minnesota at the time of the appointment. Many patients never need to visit the office at all.",
	},
	{
		Question: "How soon can I be seen?",
		Answer:   "New patient appointments are typically available within one to two weeks. Follow-up visits are usually scheduled within days.",
	},
	{
		Question: "Do you prescribe medication?",
		Answer:   "Yes, when clinically appropriate. Every medication decision is made together after a thorough evaluation, and we monitor closely at every follow-up.",
	},
	{
		Question: "Do you accept my insurance?",
		Answer:   "We accept most major plans. See the Insurances page for the current list, and contact us if your plan is not shown, as the list changes.",
	},
	{
		Question: "What ages do you treat?",
		Answer:   "We see adolescents (12 and up) and adults.",
	},
	{
		Question: "What should I expect at my first appointment?",
		Answer:   "Your first visit is a comprehensive evaluation lasting about an hour. We review your history, current concerns, and goals, then agree on a treatment plan together before you leave.",
	},
	{
		Question: "Can I cancel or reschedule?",
		Answer:   "Yes, with at least 24 hours notice. Late cancellations and missed appointments may incur a fee per our payment policy.",
	},
}

// insurancePlans is the accepted-plan list rendered on the insurances
// page. Ordering matches how the plans are listed in patient paperwork.
var insurancePlans = []string{
	"Blue Cross Blue Shield",
	"HealthPartners",
	"Medica",
	"UCare",
	"United Healthcare",
	"Aetna",
	"Cigna",
	"Minnesota Medical Assistance",
	"Medicare",
}
