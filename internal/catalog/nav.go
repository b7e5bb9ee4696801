package catalog

import "fmt"

// NavigationItem is one entry in the header menu. An item is either a leaf
// with a Route or a dropdown with SubItems, never both and never neither.
// One level of nesting is supported.
type NavigationItem struct {
	Name     string
	Route    string
	SubItems []NavigationItem
}

// IsDropdown reports whether the item carries a submenu.
func (n NavigationItem) IsDropdown() bool { return len(n.SubItems) > 0 }

// MenuID returns the identifier used for dropdown open-state tracking.
func (n NavigationItem) MenuID() string { return n.Name }

// ValidateNav checks the route-xor-subitems invariant on every item,
// including nested ones.
func ValidateNav(items []NavigationItem) error {
	for _, item := range items {
		hasRoute := item.Route != ""
		hasSub := len(item.SubItems) > 0
		if hasRoute == hasSub {
			return fmt.Errorf("nav item %q: exactly one of route or subitems must be set", item.Name)
		}
		if hasSub {
			for _, sub := range item.SubItems {
				if sub.Route == "" || len(sub.SubItems) > 0 {
					return fmt.Errorf("nav item %q: subitem %q must be a leaf with a route", item.Name, sub.Name)
				}
			}
		}
	}
	return nil
}

// MainNav is the header navigation tree rendered on every page.
var MainNav = []NavigationItem{
	{Name: "Home", Route: "/"},
	{
		Name: "Services",
		SubItems: []NavigationItem{
			{Name: "Medication Management", Route: "/medication"},
			{Name: "Psychiatry Evaluation", Route: "/evaluation"},
			{Name: "Psychotherapy", Route: "/therapy"},
			{Name: "Telepsychiatry", Route: "/telepsychiatry"},
		},
	},
	{
		Name: "About",
		SubItems: []NavigationItem{
			{Name: "Our Team", Route: "/team"},
			{Name: "FAQ", Route: "/faq"},
		},
	},
	{
		Name: "Conditions",
		SubItems: []NavigationItem{
			{Name: "Anxiety", Route: "/anxiety"},
			{Name: "Depression", Route: "/depression"},
			{Name: "ADHD", Route: "/adhd"},
			{Name: "OCD", Route: "/ocd"},
			{Name: "Bipolar Disorder", Route: "/bipolar"},
			{Name: "PTSD", Route: "/ptsd"},
		},
	},
	{Name: "Blog", Route: "/blog"},
	{Name: "Insurances", Route: "/insurances"},
	{Name: "Appointments", Route: "/appointments"},
	{Name: "Contact", Route: "/contact"},
}

// QuickLinks is the fixed subset of routes rendered in the footer.
var QuickLinks = []NavigationItem{
	{Name: "Home", Route: "/"},
	{Name: "About Us", Route: "/about"},
	{Name: "Services", Route: "/services"},
	{Name: "Book Appointment", Route: "/appointments"},
	{Name: "Contact", Route: "/contact"},
}
