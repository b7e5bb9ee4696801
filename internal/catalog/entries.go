package catalog

import "fmt"

// Brand color tokens used as card accents. The canonical values live in the
// site configuration; these are the per-entry assignments.
const (
	accentGreen  = "#4CAF50"
	accentBlue   = "#1A435A"
	accentOrange = "#FF9800"
)

// Conditions is the catalog backing the conditions overview grid and each
// condition detail page.
var Conditions = New("conditions", []TopicEntry{
	{
		Slug:       "depression",
		Title:      "Depression",
		Summary:    "Major depression, persistent depressive disorder (dysthymia).",
		ImageRef:   "/static/img/depression.png",
		ThemeColor: accentGreen,
		Details: []string{
			"Persistent feelings of sadness or 'emptiness'",
			"Loss of interest or pleasure in hobbies and activities",
			"Changes in appetite or weight (loss or gain)",
			"Difficulty sleeping (insomnia) or sleeping too much (hypersomnia)",
			"Feeling worthless, hopeless, or excessively guilty",
		},
	},
	{
		Slug:       "anxiety",
		Title:      "Anxiety Disorders",
		Summary:    "Generalized anxiety, social anxiety, and panic disorder.",
		ImageRef:   "/static/img/anxiety.png",
		ThemeColor: accentGreen,
		Details: []string{
			"Persistent, excessive worry or fear (GAD)",
			"Panic attacks (sudden, intense fear)",
			"Avoidance of social situations (Social Anxiety)",
			"Rapid heart rate, sweating, or trembling",
			"Difficulty concentrating or sleeping",
			"Irritability and restlessness",
		},
	},
	{
		Slug:       "bipolar",
		Title:      "Bipolar Disorder",
		Summary:    "Managing mood swings, manic, and depressive episodes.",
		ImageRef:   "/static/img/bipolar.png",
		ThemeColor: accentBlue,
		Details: []string{
			"Careful management of mood stabilizers tailored to your cycle pattern",
			"Therapy focused on recognizing triggers and emotional regulation",
			"Strategies to stabilize sleep, diet, and daily routine",
		},
	},
	{
		Slug:       "ocd",
		Title:      "OCD",
		Summary:    "Obsessive compulsive and related disorders.",
		ImageRef:   "/static/img/ocd.png",
		ThemeColor: accentGreen,
		Details: []string{
			"Intrusive thoughts (obsessions) causing significant anxiety",
			"Repetitive behaviors (compulsions) performed to neutralize anxiety",
			"Exposure and Response Prevention (ERP), the gold-standard therapy",
			"Careful use of SSRIs to reduce obsessive thought intensity",
		},
	},
	{
		Slug:       "schizophrenia",
		Title:      "Schizophrenia",
		Summary:    "Psychosis, thought disorders, and reality testing.",
		ImageRef:   "/static/img/schizophrenia.png",
		ThemeColor: accentBlue,
		Details: []string{
			"Structured psychiatric care focused on symptom control and clarity",
			"Antipsychotic medication management with close monitoring",
			"Support for functional improvement and daily routine",
		},
	},
	{
		Slug:       "adhd",
		Title:      "ADHD",
		Summary:    "Focus, impulsivity, and organizational challenges.",
		ImageRef:   "/static/img/adhd.png",
		ThemeColor: accentOrange,
		Details: []string{
			"Difficulty focusing and sustaining attention",
			"Challenges with organization and executive function",
			"Impulsivity and difficulty waiting turns",
			"Time management and prioritization issues",
			"Careful prescription of stimulants or non-stimulants",
		},
	},
	{
		Slug:       "ptsd",
		Title:      "PTSD & Trauma",
		Summary:    "Coping with trauma symptoms and hypervigilance.",
		ImageRef:   "/static/img/ptsd.png",
		ThemeColor: accentGreen,
		Details: []string{
			"Re-experiencing: intrusive memories, flashbacks, and nightmares",
			"Avoidance of people, places, or thoughts that recall the trauma",
			"Hypervigilance, startle response, and sleep disruption",
			"Trauma-focused psychotherapy (CPT, Prolonged Exposure)",
			"Grounding and coping skills for real-time control",
		},
	},
})

// Services is the catalog backing the services overview page and each
// service detail page.
var Services = New("services", []TopicEntry{
	{
		Slug:       "medication",
		Title:      "Medication Management",
		Summary:    "Careful monitoring and adjustment of medication to support balance, safety, and long term stability.",
		ImageRef:   "/static/img/medication.png",
		ThemeColor: accentGreen,
		Details: []string{
			"Comprehensive evaluation before any prescription",
			"Medication plans tailored to your diagnosis, response, and lifestyle",
			"Regular follow ups to track effectiveness and manage side effects",
			"Coordination with primary care physicians",
		},
	},
	{
		Slug:       "evaluation",
		Title:      "Psychiatric Evaluation",
		Summary:    "A comprehensive assessment to understand your mental health clearly and guide the right treatment path.",
		ImageRef:   "/static/img/evaluation.png",
		ThemeColor: accentBlue,
		Details: []string{
			"A comprehensive discussion lasting about 60 minutes",
			"Review of medical and psychiatric history, symptoms, and goals",
			"A collaborative, personalized treatment plan",
		},
	},
	{
		Slug:       "therapy",
		Title:      "Psychotherapy",
		Summary:    "Supportive, evidence based therapy to help you heal, grow, and regain emotional clarity.",
		ImageRef:   "/static/img/psychotherapy.png",
		ThemeColor: accentGreen,
		Details: []string{
			"Evidence-based modalities: CBT, DBT, trauma-informed care",
			"Standard sessions of 45 to 50 minutes",
			"Frequency determined collaboratively with your provider",
		},
	},
	{
		Slug:       "telepsychiatry",
		Title:      "Telepsychiatry",
		Summary:    "Access confidential and convenient care from anywhere using our secure online system.",
		ImageRef:   "/static/img/telepsychiatry.png",
		ThemeColor: accentOrange,
		Details: []string{
			"All you need is a reliable connection and a private space",
			"Equally effective as in-person care for a wide range of conditions",
			"HIPAA-compliant, encrypted video conferencing",
			"Prescriptions sent electronically to your pharmacy",
		},
	},
})

// ByName resolves a catalog by its registered name.
func ByName(name string) (*Catalog, error) {
	switch name {
	case "conditions":
		return Conditions, nil
	case "services":
		return Services, nil
	default:
		return nil, fmt.Errorf("%w: catalog %q", ErrNotFound, name)
	}
}
