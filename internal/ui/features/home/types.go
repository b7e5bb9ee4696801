package home

import "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"

// heroHeadline and friends are the fixed landing page copy.
const (
	heroHeadline = "Your Good Place for Mental Wellness"
	heroSub      = "Compassionate, evidence-based psychiatric care for adults and adolescents, in person and online across Minnesota."
	heroCTA      = "Book an Appointment"
)

var whyFeatures = []components.Feature{
	{
		Icon:  "🕑",
		Title: "Fast Access to Care",
		Body:  "New patient appointments within 1-2 weeks, not months.",
	},
	{
		Icon:  "💻",
		Title: "Telepsychiatry Statewide",
		Body:  "Secure video visits from anywhere in Minnesota.",
	},
	{
		Icon:  "🧭",
		Title: "Personalized Treatment",
		Body:  "Care plans built around your goals, not a one-size-fits-all protocol.",
	},
	{
		Icon:  "🛡",
		Title: "Most Insurances Accepted",
		Body:  "We work with major plans and verify your coverage before your visit.",
	},
}

var testimonials = []components.Testimonial{
	{
		Quote:  "For the first time in years I feel like someone actually listened before reaching for a prescription pad.",
		Author: "J., St Paul",
	},
	{
		Quote:  "Scheduling was painless and the video visits fit around my work day.",
		Author: "M., Duluth",
	},
	{
		Quote:  "My medication finally feels right. The follow-ups made all the difference.",
		Author: "A., Minneapolis",
	},
}
