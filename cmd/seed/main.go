package main

import (
	"context"
	"log/slog"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// seed loads the starter skills and sample projects. Safe to rerun:
// every row is upserted on its natural key.
func main() {
	logging.Setup()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	skills := repository.NewPgSkillRepository(pool)
	projects := repository.NewPgProjectRepository(pool)

	for _, s := range seedSkills {
		if err := skills.Upsert(ctx, s); err != nil {
			logging.Fatal("seed skill failed", "name", s.Name, "error", err)
		}
		slog.Info("seeded skill", "name", s.Name)
	}

	for _, p := range seedProjects {
		if err := projects.Upsert(ctx, p.project); err != nil {
			logging.Fatal("seed project failed", "title", p.project.Title, "error", err)
		}
		for _, tech := range p.skills {
			if err := projects.LinkSkill(ctx, p.project.ID, tech); err != nil {
				logging.Fatal("link skill failed",
					"title", p.project.Title, "skill", tech, "error", err)
			}
		}
		slog.Info("seeded project", "title", p.project.Title)
	}

	slog.Info("seed complete", "skills", len(seedSkills), "projects", len(seedProjects))
}

var seedSkills = []*model.Skill{
	{Name: "Python", Category: model.SkillCategoryProgramming, Proficiency: 90, Icon: "🐍",
		Description: "Advanced proficiency in Python for web development, automation, and data processing",
		IsFeatured:  true, Order: 1},
	{Name: "JavaScript", Category: model.SkillCategoryProgramming, Proficiency: 80, Icon: "⚡",
		Description: "Proficient in vanilla JavaScript and modern ES6+ features for interactive experiences",
		Order:       4},
	{Name: "HTML/CSS", Category: model.SkillCategoryProgramming, Proficiency: 95, Icon: "🎨",
		Description: "Expert in modern HTML5 and CSS3, including responsive design and animations",
		IsFeatured:  true, Order: 3},

	{Name: "Django", Category: model.SkillCategoryFramework, Proficiency: 85, Icon: "🎯",
		Description: "Skilled in Django framework for building robust, scalable web applications",
		IsFeatured:  true, Order: 2},
	{Name: "FastAPI", Category: model.SkillCategoryFramework, Proficiency: 75, Icon: "⚡",
		Description: "Modern, fast web framework for building APIs with Python 3.7+ based on standard Python type hints",
		Order:       8},

	{Name: "LangChain", Category: model.SkillCategoryAIML, Proficiency: 70, Icon: "🔗",
		Description: "Framework for developing applications powered by language models and AI agents",
		Order:       10},
	{Name: "LangGraph", Category: model.SkillCategoryAIML, Proficiency: 65, Icon: "📊",
		Description: "Building stateful, multi-actor applications with LLMs using graph-based workflows",
		Order:       11},
	{Name: "LangSmith", Category: model.SkillCategoryAIML, Proficiency: 68, Icon: "🔍",
		Description: "Debugging, testing, and monitoring for LLM applications",
		Order:       12},

	{Name: "PostgreSQL", Category: model.SkillCategoryDatabase, Proficiency: 75, Icon: "🐘",
		Description: "Database design and management with PostgreSQL for robust data solutions",
		IsFeatured:  true, Order: 5},
	{Name: "Redis", Category: model.SkillCategoryDatabase, Proficiency: 70, Icon: "🔴",
		Description: "In-memory data structure store for caching, session management, and real-time applications",
		Order:       9},

	{Name: "Docker", Category: model.SkillCategoryDevOps, Proficiency: 80, Icon: "🐳",
		Description: "Containerization and deployment using Docker for scalable, portable applications",
		IsFeatured:  true, Order: 7},
	{Name: "AWS", Category: model.SkillCategoryDevOps, Proficiency: 72, Icon: "☁️",
		Description: "Amazon Web Services for cloud hosting, storage, and serverless computing",
		Order:       13},
	{Name: "Nginx", Category: model.SkillCategoryDevOps, Proficiency: 75, Icon: "🌐",
		Description: "Web server and reverse proxy for high-performance web applications",
		Order:       14},

	{Name: "Git/GitHub", Category: model.SkillCategoryTools, Proficiency: 88, Icon: "📚",
		Description: "Version control expertise for collaborative development and project management",
		IsFeatured:  true, Order: 6},
	{Name: "Postman", Category: model.SkillCategoryTools, Proficiency: 85, Icon: "📮",
		Description: "API development and testing tool for building and testing REST APIs",
		Order:       15},
	{Name: "Celery", Category: model.SkillCategoryTools, Proficiency: 73, Icon: "🌿",
		Description: "Distributed task queue for Python applications with asynchronous processing",
		Order:       16},
}

type seedProject struct {
	project *model.Project
	// skills are linked by name after the project row exists.
	skills []string
}

var seedProjects = []seedProject{
	{
		project: &model.Project{
			Title:            "Notes App",
			Subtitle:         "Full-Featured Note-Taking Application",
			ShortDescription: "A comprehensive web application built with Django and PostgreSQL, featuring user authentication, CRUD operations, and responsive design.",
			Description: "A full-featured web application that demonstrates proficiency in backend development, " +
				"database management, and user experience design.",
			KeyFeatures: "User authentication and authorization system\n" +
				"Complete CRUD operations for notes\n" +
				"Responsive design that works across all devices\n" +
				"Secure user account management\n" +
				"Clean and intuitive user interface",
			GithubURL:  "https://github.com/example/notes",
			TechTags:   "Django, PostgreSQL, Bootstrap, Python, HTML/CSS",
			Status:     model.ProjectStatusCompleted,
			IsFeatured: true,
			Order:      1,
		},
		skills: []string{"Django", "PostgreSQL", "Python", "HTML/CSS"},
	},
	{
		project: &model.Project{
			Title:            "Portfolio Website",
			Subtitle:         "Cutting-Edge 2025 Design Portfolio",
			ShortDescription: "This very website! Built with cutting-edge 2025 design principles, featuring advanced CSS animations, glassmorphism effects, and immersive user experiences.",
			Description: "A showcase of modern web development techniques and attention to detail, " +
				"representing the pinnacle of 2025 design trends.",
			KeyFeatures: "Holographic gradients with electric cyan, neon pink, and violet accents\n" +
				"Glassmorphism navigation with backdrop blur effects\n" +
				"Dynamic particle system with animated floating particles\n" +
				"Responsive design with mobile-first approach\n" +
				"WCAG 2.1 AA accessibility compliance",
			TechTags:   "Django, Advanced CSS, JavaScript, Responsive Design, Animation",
			Status:     model.ProjectStatusCompleted,
			IsFeatured: true,
			Order:      2,
		},
		skills: []string{"Django", "JavaScript", "HTML/CSS"},
	},
}
