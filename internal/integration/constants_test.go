package integration_test

const (
	// Admin related constants
	TestAdminName     = "Harbor Master"
	TestAdminEmail    = "admin@harborline.example"
	TestAdminPassword = "Dockside7!"

	// Catalog related constants
	TestMissionName = "Artemis Crewed Flyby"
	TestTripName    = "Dawn Launch Viewing"
	TestBoatName    = "Osprey"

	// Discount related constants
	TestPercentageCode = "LAUNCH10"
	TestFixedCode      = "SEA-CREW"
)
