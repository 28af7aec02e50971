package service

// 常见技术技能词表，抽取技能时按词边界匹配
var commonSkills = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "node", "express", "django", "flask", "spring", "rails",
	"html", "css", "sass", "bootstrap", "tailwind",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "dynamodb", "oracle",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "gitlab", "github",
	"git", "linux", "bash", "powershell", "rest", "graphql", "microservices", "api",
	"machine learning", "deep learning", "ai", "nlp", "computer vision", "tensorflow", "pytorch", "scikit-learn",
	"data science", "data analysis", "pandas", "numpy", "matplotlib", "tableau", "power bi",
	"agile", "scrum", "jira", "confluence", "ci/cd", "devops", "testing", "junit", "pytest",
	"react native", "flutter", "android", "ios", "mobile", "frontend", "backend", "full stack",
	"security", "oauth", "jwt", "encryption", "networking", "cloud", "serverless", "lambda",
}

// 简历头部常见的完整职位短语，长的优先
var multiWordTitles = []string{
	"machine learning engineer", "data scientist", "data engineer", "machine learning researcher",
	"artificial intelligence engineer", "software engineer", "product manager", "project manager",
	"data analyst", "business analyst", "research scientist", "devops engineer", "ml engineer",
}

var titleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "scientist", "lead", "director",
	"intern", "designer", "architect", "consultant", "officer", "specialist", "associate", "principal",
}

// 经验条目里的成就动词，出现就认为不是条目头
var achievementWords = []string{
	"achieved", "reduced", "enhanced", "delivered", "built", "developed", "implemented",
	"designed", "created", "managed", "led", "improved", "completed", "strengthened",
	"optimizing", "engineering", "frameworks", "ensuring",
}

var institutionWords = []string{"institute", "university", "college", "school"}

// 项目标题里常见的名词，用来识别没写技术栈括号的项目头
var projectNouns = []string{
	"System", "Analysis", "Platform", "API", "Dashboard", "Application", "Model", "Framework", "Tool",
}
