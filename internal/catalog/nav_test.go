package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNav(t *testing.T) {
	tests := []struct {
		name    string
		items   []NavigationItem
		wantErr bool
	}{
		{
			name:  "leaf with route",
			items: []NavigationItem{{Name: "Home", Route: "/"}},
		},
		{
			name: "dropdown with leaf subitems",
			items: []NavigationItem{{
				Name:     "About",
				SubItems: []NavigationItem{{Name: "Team", Route: "/team"}},
			}},
		},
		{
			name:    "neither route nor subitems",
			items:   []NavigationItem{{Name: "Broken"}},
			wantErr: true,
		},
		{
			name: "both route and subitems",
			items: []NavigationItem{{
				Name:     "Broken",
				Route:    "/x",
				SubItems: []NavigationItem{{Name: "Y", Route: "/y"}},
			}},
			wantErr: true,
		},
		{
			name: "nested dropdown rejected",
			items: []NavigationItem{{
				Name: "Outer",
				SubItems: []NavigationItem{{
					Name:     "Inner",
					SubItems: []NavigationItem{{Name: "Leaf", Route: "/z"}},
				}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNav(tt.items)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMainNavIsValid(t *testing.T) {
	assert.NoError(t, ValidateNav(MainNav))
	assert.NoError(t, ValidateNav(QuickLinks))
}

func TestMainNavDropdowns(t *testing.T) {
	var dropdowns []string
	for _, item := range MainNav {
		if item.IsDropdown() {
			dropdowns = append(dropdowns, item.MenuID())
		}
	}
	assert.Equal(t, []string{"Services", "About", "Conditions"}, dropdowns)
}
