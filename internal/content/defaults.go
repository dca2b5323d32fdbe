package content

// Default is the content served when no CONTENT_FILE is configured.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:            "Joachim Cishugi",
			Title:           "Développeur Full Stack Junior",
			YearsExperience: 0,
			About: `Jeune diplômé en programmation avec plusieurs projets personnels incluant un gestionnaire de vol,
un site de statistiques météo provinciale, une application iOS, et un site de présentation des festivals
africains. Passionné par les nouvelles technologies et la création de solutions innovantes, actuellement
engagé dans un projet de gestion des tâches.`,
			Email:  "cishugijoachim@gmail.com",
			GitHub: "https://github.com/Emynado01",
		},
		SkillGroups: []SkillGroup{
			{Name: "FRONTEND", Base: 90, Step: 5, Skills: []string{"React", "Next.js", "React Native"}},
			{Name: "BACKEND", Base: 85, Step: 5, Skills: []string{"Node.js", "JavaScript", "SQL", "MongoDB"}},
			{Name: "OUTILS", Base: 80, Step: 3, Skills: []string{
				"Git", "Visual Studio Code", "Docker", "GitHub", "Figma", "Jira", "Postman", "Prisma",
			}},
		},
		Experiences: []Experience{
			{
				Title:       "Développeur Junior",
				Period:      "2025",
				Description: "Diplômé en programmation, à la recherche de premières expériences professionnelles.",
				Level:       50,
			},
		},
		Projects: []Project{
			{Title: "Gestionnaire de vol", Tech: "React, TypeScript, Node.js", Description: "Système de gestion de réservations de vols.", Status: StatusDone},
			{Title: "Site météo provinciale", Tech: "React, Next.js, API météo", Description: "Affichage des statistiques météo par province.", Status: StatusDone},
			{Title: "Application iOS", Tech: "React Native, Swift", Description: "Application mobile iOS de gestion d'événements.", Status: StatusInProgress},
			{Title: "Site festivals africains", Tech: "Next.js, Tailwind CSS", Description: "Présentation des différents festivals africains.", Status: StatusDone},
			{Title: "Gestion des tâches innovante", Tech: "React, Node.js, MongoDB", Description: "Nouveau projet de gestion des tâches en cours.", Status: StatusInProgress},
		},
	}
}
