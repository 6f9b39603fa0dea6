package service

import "github.com/glamslot/booking/internal/core/domain"

var clientNav = []domain.NavItem{
	{Label: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard"},
	{Label: "Book Appointment", Path: "/book", Icon: "calendar-plus"},
	{Label: "My Appointments", Path: "/appointments", Icon: "calendar"},
	{Label: "Favorites", Path: "/favorites", Icon: "heart"},
	{Label: "Payment Methods", Path: "/payment-methods", Icon: "credit-card"},
	{Label: "Settings", Path: "/settings", Icon: "settings"},
}

var salonNav = []domain.NavItem{
	{Label: "Dashboard", Path: "/salon/dashboard", Icon: "layout-dashboard"},
	{Label: "Appointments", Path: "/salon/appointments", Icon: "calendar"},
	{Label: "Services", Path: "/salon/services", Icon: "scissors"},
	{Label: "Staff", Path: "/salon/staff", Icon: "users"},
	{Label: "Clients", Path: "/salon/clients", Icon: "contact"},
	{Label: "Analytics", Path: "/salon/analytics", Icon: "bar-chart-3"},
	{Label: "Settings", Path: "/settings", Icon: "settings"},
}

// Navigation returns the ordered menu for role with the item matching currentPath
// marked active. Unknown roles get the client menu.
func Navigation(role domain.Role, currentPath string) []domain.NavItem {
	src := clientNav
	if role == domain.RoleSalon {
		src = salonNav
	}

	items := make([]domain.NavItem, len(src))
	for i, item := range src {
		item.Active = matchesPath(currentPath, item.Path)
		items[i] = item
	}
	return items
}
