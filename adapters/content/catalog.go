package content

import (
	"github.com/i-shreyansh/portfolio/internal/domain/experience"
	"github.com/i-shreyansh/portfolio/internal/domain/profile"
	"github.com/i-shreyansh/portfolio/internal/domain/project"
	"github.com/i-shreyansh/portfolio/internal/domain/research"
	"github.com/i-shreyansh/portfolio/internal/domain/skill"
)

// Catalog is the complete page content. It is built once at startup and
// never written to afterwards; the repositories hand out copies.
type Catalog struct {
	Profile    profile.Profile    `yaml:"profile"`
	Experience []experience.Entry `yaml:"experience"`
	Research   []research.Entry   `yaml:"research"`
	Projects   []project.Project  `yaml:"projects"`
	Skills     []skill.Category   `yaml:"skills"`
	Coursework []string           `yaml:"coursework"`
}

// Default returns the built-in content.
func Default() *Catalog {
	return &Catalog{
		Profile: profile.Profile{
			Name:      "Shreyansh Manav Shukla",
			ShortName: "Shreyansh",
			Title:     "Machine Learning Engineer | Data Scientist",
			Summary:   "Skilled in Python, AI, and data science. Experienced in designing, optimizing, and deploying intelligent models for NLP, computer vision, and analytics.",
			Background: []string{
				"Machine Learning Engineer and Data Scientist with a strong foundation in AI and data science. I specialize in designing, optimizing, and deploying intelligent models that solve complex real-world challenges.",
				"My expertise spans NLP, computer vision, and advanced analytics, with hands-on experience in research, development, and deployment of ML solutions.",
			},
			AvatarURL: "https://media.licdn.com/dms/image/v2/D5635AQEPc3jUSjzzEQ/profile-framedphoto-shrink_400_400/B56Zkd_ICVKAAc-/0/1757144711663?e=1763056800&v=beta&t=YbqJnCGGe4fVk2xX3nFMaGEgsBKjENhfQ7vlwxYzmHE",
			Contact: profile.Contact{
				Email:    "shreyanshmanavs@gmail.com",
				Phone:    "+91-8126235815",
				Location: "Bareilly, UP, India",
			},
			Links: []profile.SocialLink{
				{Kind: profile.LinkGitHub, Label: "GitHub", URL: "https://github.com/i-Shreyansh"},
				{Kind: profile.LinkLinkedIn, Label: "LinkedIn", URL: "https://linkedin.com/in/shreyansh-manav-shukla"},
				{Kind: profile.LinkKaggle, Label: "Kaggle", URL: "https://kaggle.com/shreyanshmanavshukla"},
				{Kind: profile.LinkLeetCode, Label: "LeetCode", URL: "https://leetcode.com/u/shreyanshmanavs/", FooterOnly: true},
			},
			Education: []profile.Education{
				{
					Degree:      "B.Tech in Computer Science (AI Specialization)",
					Institution: "Bennett University, Greater Noida",
					Detail:      "May 2024 • CGPA: 7.4/10",
				},
				{
					Degree:      "Higher Secondary Education",
					Institution: "S.R. International School, Bareilly",
					Detail:      "12th: 72.4% | 10th: 85.6%",
				},
			},
			ContactPitch:  "I'm always open to discussing new projects, creative ideas, or opportunities to be part of your vision.",
			CopyrightYear: 2024,
		},
		Experience: []experience.Entry{
			{
				Role:         "Research Assistant",
				Organization: "MJP Rohilkhand University",
				Location:     "Bareilly, UP",
				Period:       "June 2024 – Present",
				Description: []string{
					"Working on AI-based IoT framework for crop recommendation",
					"Implementing blockchain-enabled supply chain solutions",
				},
			},
			{
				Role:         "Benefit Associate Intern",
				Organization: "EPAY Systems",
				Location:     "Noida, UP",
				Period:       "Sep 2023 – Jan 2024",
				Description: []string{
					"Managed payroll back-end operations for U.S. clients",
					"Applied data analytics using Pandas for automation",
				},
			},
			{
				Role:         "Machine Learning Intern",
				Organization: "Corizo",
				Location:     "Remote",
				Period:       "Sep 2023 – Oct 2023",
				Description: []string{
					"Completed ML training with mini-projects and MNC-based case studies",
					"Implemented DL models for real-world tasks",
				},
			},
		},
		Research: []research.Entry{
			{
				Institution: "MJP Rohilkhand University",
				Period:      "2024 – Present",
				Supervisors: "Dr. Vinay Rishiwal, Dr. Preeti Yadav",
				Focus:       "AI-based IoT framework using blockchain for smart agriculture",
			},
			{
				Institution: "Bennett University",
				Period:      "2024",
				Supervisors: "Prof. Umesh Gupta, Dr. Ankit Yadav",
				Focus:       "Evaluating deepfake detection architectures for performance vs cost optimization",
			},
		},
		Projects: []project.Project{
			{
				Title:       "Sentiment Analysis on Customer Reviews",
				Description: "Built LSTM model to classify restaurant review sentiments with deployment on Hugging Face Spaces.",
				Tech:        []string{"Python", "TensorFlow", "NLP", "Hugging Face"},
				Date:        "Sep 2024",
			},
			{
				Title:       "Lane Detection System",
				Description: "Developed real-time lane detection system for self-driving cars using image processing techniques.",
				Tech:        []string{"Python", "OpenCV", "Tkinter", "Computer Vision"},
				Date:        "July 2024",
			},
			{
				Title:       "Eagle's Eye - Face Expression Detector",
				Description: "Implemented ML-based emotion recognition system using facial cues and real-time detection.",
				Tech:        []string{"Python", "OpenCV", "Machine Learning", "Tkinter"},
				Date:        "Nov 2021",
			},
			{
				Title:       "go-Corona Updater",
				Description: "Created live COVID-19 dashboard displaying real-time statistics from public APIs.",
				Tech:        []string{"Java", "API Integration", "GUI"},
				Date:        "June 2021",
			},
		},
		Skills: []skill.Category{
			{Label: "Programming", Skills: []string{"Python", "Java", "MySQL", "C++", "HTML", "CSS"}},
			{Label: "Frameworks & Tools", Skills: []string{"TensorFlow", "OpenCV", "Pandas", "Docker", "Kubernetes"}},
			{Label: "Concepts", Skills: []string{"Machine Learning", "Deep Learning", "NLP", "Image Processing", "GenAI"}},
			{Label: "Soft Skills", Skills: []string{"Problem Solving", "Leadership", "Communication", "Time Management"}},
		},
		Coursework: []string{
			"Advanced Machine Learning", "GenAI", "Deep Learning", "Image Processing", "Cloud Computing",
			"Data Structures & Algorithms", "Operating Systems", "DBMS", "Docker & Kubernetes",
		},
	}
}

// Validate checks the invariants the renderer and the feed rely on.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Projects))
	for i := range c.Projects {
		if err := c.Projects[i].Validate(); err != nil {
			return err
		}
		slug := c.Projects[i].Slug()
		if seen[slug] {
			return &DuplicateSlugError{Slug: slug}
		}
		seen[slug] = true
	}
	return nil
}

type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return "duplicate project slug: " + e.Slug
}
