package site

// Default returns the record used when no site.yaml is present.
func Default() *Site {
	return &Site{
		Personal: PersonalInfo{
			FullName:   "Jane Doe",
			ShortName:  "Jane",
			BrandName:  "JaneDoe",
			JobTitle:   "Data Scientist",
			Experience: "8+ years",
			Expertise:  "ML, AI, and Data Science",
			ShortBio:   "Jane Doe is a data scientist building production machine learning systems.",
			Email:      "jane@example.com",
			Location:   "United States",
		},
		Hero: Hero{
			Greeting:       "Hi my name is",
			BackgroundText: "DATA SCIENTIST MACHINE LEARNING AI",
			Description: []string{
				"Data scientist with years of experience shipping machine learning to production.",
			},
			CTAText:    "Contact me!",
			ScrollText: "Scroll",
		},
		About: About{
			Title: "Who am I?",
			Journey: Journey{
				Title: "My Journey",
				Paragraphs: []string{
					"I have worked across retail and fintech, solving problems with data.",
				},
			},
			Skills: []string{"Go", "Python", "SQL"},
		},
		BlogIntro: Section{
			Title:       "Latest Blog Posts",
			Description: "Notes on data science, machine learning and building systems.",
		},
		Contact: Contact{
			Title:       "Let's work together!",
			Subtitle:    "Contact",
			Description: "Have a project in mind or just want to talk? I'd love to hear from you.",
			Form: ContactForm{
				NamePlaceholder:    "Your Name",
				EmailPlaceholder:   "Your Email",
				MessagePlaceholder: "Tell me about your project or just say hello!",
				SubmitText:         "Send Message",
			},
		},
		Metadata: Metadata{
			Title:       "Jane Doe - Data Scientist",
			Description: "Personal blog and portfolio of Jane Doe.",
			SiteName:    "Jane Doe",
			ImageAlt:    "Jane Doe portfolio website",
		},
		Blog: Blog{
			PostsPerPage:   10,
			DefaultTopics:  []string{TopicAll, "Machine Learning", "Statistics", "Data Science", "AI", "Python"},
			FeaturedTopics: []string{"Machine Learning", "AI", "Data Science"},
		},
		Images: Images{
			OGImage: "/public/og.png",
		},
		Theme: Theme{
			DefaultTheme:    "dark",
			SupportedThemes: []string{"light", "dark"},
		},
	}
}
