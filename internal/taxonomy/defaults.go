package taxonomy

// defaultConfig is the compiled-in catalog: roughly 150 skills across eight
// categories, the high-value ATS verbs, and ten career roles with
// required/preferred skill profiles.
var defaultConfig = Config{
	Categories: map[string][]string{
		"programming": {
			"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
			"php", "swift", "kotlin", "go", "rust", "scala", "r", "matlab",
			"perl", "shell", "bash", "powershell", "sql", "html", "css",
		},
		"data_science": {
			"machine learning", "deep learning", "neural networks", "nlp",
			"computer vision", "data analysis", "data visualization", "statistics",
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
			"matplotlib", "seaborn", "tableau", "power bi", "excel", "spark",
			"hadoop", "kafka", "airflow", "mlflow", "kubeflow",
		},
		"web_development": {
			"react", "angular", "vue", "node.js", "express", "django", "flask",
			"spring boot", "asp.net", "laravel", "rails", "fastapi", "next.js",
			"nuxt", "gatsby", "svelte", "tailwind", "bootstrap", "sass", "webpack",
			"vite", "redux", "graphql", "rest api", "microservices",
		},
		"database": {
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
			"dynamodb", "oracle", "sql server", "sqlite", "firebase", "neo4j",
		},
		"cloud_devops": {
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab ci",
			"github actions", "terraform", "ansible", "circleci", "travis ci",
			"prometheus", "grafana", "elk stack", "nagios", "nginx", "apache",
		},
		"mobile": {
			"android", "ios", "react native", "flutter", "swift", "kotlin",
			"xamarin", "ionic", "cordova",
		},
		"soft_skills": {
			"leadership", "communication", "teamwork", "problem solving",
			"project management", "agile", "scrum", "kanban", "jira",
			"analytical thinking", "critical thinking", "presentation",
			"negotiation", "time management",
		},
		"testing": {
			"unit testing", "integration testing", "selenium", "jest", "pytest",
			"junit", "cypress", "postman", "jmeter", "quality assurance",
		},
	},
	ATSKeywords: []string{
		// Action verbs
		"developed", "designed", "implemented", "created", "built", "managed",
		"led", "architected", "optimized", "improved", "achieved", "delivered",
		"collaborated", "analyzed", "researched", "launched", "established",
		// Results-oriented
		"increased", "decreased", "reduced", "enhanced", "streamlined",
		"accelerated", "generated", "saved", "won", "exceeded",
		// Technical terms
		"api", "database", "algorithm", "framework", "architecture",
		"deployment", "scalable", "performance", "security", "automation",
	},
	Roles: []RoleRequirements{
		{
			Role: "Data Analyst",
			RequiredSkills: []string{
				"sql", "excel", "python", "tableau", "power bi", "data visualization",
				"statistics", "data analysis", "pandas", "numpy",
			},
			PreferredSkills: []string{
				"r", "sas", "business intelligence", "dashboards", "reporting",
			},
			Keywords: []string{
				"data", "analysis", "analytics", "dashboard", "report", "insight",
				"visualization", "metrics", "kpi",
			},
		},
		{
			Role: "Machine Learning Engineer",
			RequiredSkills: []string{
				"python", "machine learning", "tensorflow", "pytorch", "scikit-learn",
				"deep learning", "neural networks", "algorithm",
			},
			PreferredSkills: []string{
				"nlp", "computer vision", "keras", "spark", "aws", "docker",
				"mlflow", "kubeflow",
			},
			Keywords: []string{
				"ml", "ai", "model", "training", "prediction", "optimization",
				"algorithm", "research",
			},
		},
		{
			Role: "Full Stack Developer",
			RequiredSkills: []string{
				"javascript", "react", "node.js", "html", "css", "sql",
				"rest api", "git",
			},
			PreferredSkills: []string{
				"typescript", "vue", "angular", "express", "mongodb", "docker",
				"aws", "microservices", "graphql",
			},
			Keywords: []string{
				"web", "frontend", "backend", "full stack", "application",
				"responsive", "deployment",
			},
		},
		{
			Role: "Data Scientist",
			RequiredSkills: []string{
				"python", "statistics", "machine learning", "pandas", "numpy",
				"scikit-learn", "data analysis", "sql",
			},
			PreferredSkills: []string{
				"r", "deep learning", "tensorflow", "pytorch", "spark", "hadoop",
				"nlp", "computer vision", "a/b testing",
			},
			Keywords: []string{
				"data science", "research", "model", "statistical", "hypothesis",
				"experiment", "insight", "prediction",
			},
		},
		{
			Role: "Frontend Developer",
			RequiredSkills: []string{
				"javascript", "html", "css", "react", "responsive design",
			},
			PreferredSkills: []string{
				"typescript", "vue", "angular", "sass", "webpack", "tailwind",
				"redux", "next.js", "performance optimization",
			},
			Keywords: []string{
				"frontend", "ui", "ux", "web", "responsive", "interactive",
				"design", "component",
			},
		},
		{
			Role: "Backend Developer",
			RequiredSkills: []string{
				"python", "java", "node.js", "sql", "rest api", "database",
			},
			PreferredSkills: []string{
				"django", "flask", "spring boot", "express", "mongodb", "redis",
				"microservices", "docker", "kubernetes", "aws",
			},
			Keywords: []string{
				"backend", "api", "server", "database", "microservices",
				"scalability", "architecture",
			},
		},
		{
			Role: "Business Analyst",
			RequiredSkills: []string{
				"excel", "sql", "data analysis", "communication", "problem solving",
				"business intelligence",
			},
			PreferredSkills: []string{
				"tableau", "power bi", "project management", "agile", "jira",
				"stakeholder management",
			},
			Keywords: []string{
				"business", "requirements", "analysis", "stakeholder", "process",
				"improvement", "strategy",
			},
		},
		{
			Role: "DevOps Engineer",
			RequiredSkills: []string{
				"docker", "kubernetes", "jenkins", "git", "linux", "bash",
			},
			PreferredSkills: []string{
				"aws", "azure", "gcp", "terraform", "ansible", "prometheus",
				"grafana", "ci/cd", "monitoring",
			},
			Keywords: []string{
				"devops", "deployment", "automation", "infrastructure", "ci/cd",
				"monitoring", "scalability",
			},
		},
		{
			Role: "Mobile Developer",
			RequiredSkills: []string{
				"android", "ios", "kotlin", "swift", "java", "react native",
			},
			PreferredSkills: []string{
				"flutter", "firebase", "rest api", "mobile ui", "app store",
				"play store",
			},
			Keywords: []string{
				"mobile", "app", "android", "ios", "native", "responsive",
				"user experience",
			},
		},
		{
			Role: "Project Manager",
			RequiredSkills: []string{
				"project management", "agile", "scrum", "leadership", "communication",
			},
			PreferredSkills: []string{
				"jira", "kanban", "stakeholder management", "risk management",
				"budgeting", "pmp",
			},
			Keywords: []string{
				"project", "management", "team", "delivery", "planning",
				"coordination", "stakeholder",
			},
		},
	},
}

// Default returns the compiled-in taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultConfig)
	if err != nil {
		// The compiled-in catalog is validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return t
}
