package domain

// Known targeting values offered by the campaign builder.
var (
	Counties = []string{
		"Bomi", "Bong", "Gbarpolu", "Grand Bassa", "Grand Cape Mount",
		"Grand Gedeh", "Grand Kru", "Lofa", "Margibi", "Maryland",
		"Montserrado", "Nimba", "River Cess", "River Gee", "Sinoe",
	}
	EducationLevels = []string{
		"primary", "secondary", "undergraduate", "graduate", "postgraduate", "professional",
	}
	Professions = []string{
		"teacher", "parent", "student", "administrator", "researcher", "consultant", "other",
	}
)
