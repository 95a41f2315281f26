package handlers

// HandlerBundle collects every page handler so main.go can hand the route
// table a single assembled unit.
type HandlerBundle struct {
	Auth     *AuthHandler
	Vehicles *VehicleHandler
	Gems     *GemHandler
	Tours    *TourHandler
	Account  *AccountHandler
	Admin    *AdminHandler
	Vendor   *VendorHandler
	Search   *SearchHandler
}
