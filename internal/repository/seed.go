package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type seedUser struct {
	username string
	password string
	role     string
}

type seedRole struct {
	title      string
	department string
	level      string
	desc       string
	skills     string
	salaryMin  int64
	salaryMax  int64
}

type seedMentor struct {
	name          string
	currentRole   string
	previousRoles string
	expertise     string
	bio           string
	contact       string
}

var demoUsers = []seedUser{
	{"demo_employee", "demo123", "Employee"},
	{"demo_hr", "demo123", "HR Manager"},
	{"demo_admin", "demo123", "Admin"},
}

var demoRoles = []seedRole{
	{"Software Developer", "Engineering", "Mid-Level",
		"Develop and maintain software applications using modern programming languages and frameworks. Collaborate with cross-functional teams to design, implement, and deploy scalable solutions.",
		"Python, JavaScript, React, Node.js, SQL, Git, Agile methodologies, Problem-solving", 70000, 120000},
	{"Senior Software Engineer", "Engineering", "Senior",
		"Lead complex software development projects, mentor junior developers, and architect scalable systems. Drive technical decisions and ensure code quality standards.",
		"Advanced Python, System Architecture, Leadership, Code Review, AWS/Cloud, Microservices", 120000, 180000},
	{"Data Scientist", "Data & Analytics", "Mid-Level",
		"Analyze complex datasets to extract business insights, build predictive models, and develop data-driven solutions for strategic decision-making.",
		"Python, R, Machine Learning, Statistics, SQL, Tableau, Data Visualization, A/B Testing", 80000, 140000},
	{"Data Analyst", "Data & Analytics", "Entry-Level",
		"Collect, process, and analyze data to generate reports and insights that support business operations and strategic planning.",
		"SQL, Excel, Tableau, Power BI, Statistics, Data Visualization, Critical thinking", 50000, 80000},
	{"UI/UX Designer", "Design", "Mid-Level",
		"Design user-centered digital experiences, create wireframes and prototypes, and conduct user research to improve product usability.",
		"Figma, Adobe Creative Suite, User Research, Wireframing, Prototyping, Design Systems", 60000, 100000},
	{"Product Manager", "Product", "Mid-Level",
		"Define product strategy, manage product roadmaps, and work with engineering teams to deliver features that meet customer needs and business objectives.",
		"Product Strategy, Agile/Scrum, Market Research, Analytics, Stakeholder Management, Communication", 90000, 150000},
	{"Business Analyst", "Business Operations", "Mid-Level",
		"Analyze business processes, identify improvement opportunities, and work with stakeholders to implement solutions that enhance operational efficiency.",
		"Business Process Analysis, Requirements Gathering, SQL, Project Management, Communication, Problem-solving", 65000, 110000},
	{"Project Manager", "Operations", "Mid-Level",
		"Plan, execute, and oversee projects from initiation to completion, ensuring deliverables are met on time and within budget while managing stakeholder expectations.",
		"Project Management, Agile/Scrum, Risk Management, Communication, Leadership, Stakeholder Management", 70000, 120000},
	{"Customer Success Manager", "Customer Success", "Mid-Level",
		"Build and maintain relationships with key customers, ensure customer satisfaction, and drive product adoption to reduce churn and increase revenue.",
		"Customer Relationship Management, Communication, Problem-solving, Account Management, CRM tools", 60000, 100000},
	{"Sales Representative", "Sales", "Entry-Level",
		"Generate leads, build relationships with prospects, and close deals to meet revenue targets while providing excellent customer service.",
		"Sales techniques, CRM, Communication, Negotiation, Lead generation, Customer service", 45000, 85000},
	{"Marketing Specialist", "Marketing", "Entry-Level",
		"Develop and execute marketing campaigns, create content, and analyze campaign performance to drive brand awareness and lead generation.",
		"Digital Marketing, Content Creation, Social Media, Analytics, SEO/SEM, Campaign Management", 45000, 75000},
	{"Cashier", "Retail", "Entry-Level",
		"Process customer transactions, handle cash and card payments, provide customer service, and maintain accurate transaction records in a retail environment.",
		"Customer service, Cash handling, POS systems, Attention to detail, Communication, Math skills", 25000, 35000},
	{"Customer Support Specialist", "Customer Support", "Entry-Level",
		"Provide technical and general support to customers via phone, email, and chat. Resolve issues, answer questions, and escalate complex problems.",
		"Customer service, Problem-solving, Communication, Ticketing systems, Product knowledge, Patience", 35000, 55000},
	{"Engineering Manager", "Engineering", "Senior",
		"Lead engineering teams, manage technical projects, and drive engineering culture while balancing technical leadership with people management.",
		"Technical Leadership, People Management, Project Management, Strategic Planning, Team Building", 140000, 200000},
	{"HR Manager", "Human Resources", "Senior",
		"Oversee HR operations including recruitment, employee relations, performance management, and policy development to support organizational goals.",
		"HR Management, Recruitment, Employee Relations, Performance Management, Policy Development", 70000, 120000},
	{"DevOps Engineer", "Engineering", "Mid-Level",
		"Manage infrastructure, automate deployment processes, and ensure system reliability and scalability through continuous integration and monitoring.",
		"AWS/Azure, Docker, Kubernetes, CI/CD, Infrastructure as Code, Monitoring, Linux", 80000, 140000},
	{"Quality Assurance Engineer", "Engineering", "Mid-Level",
		"Design and execute test plans, identify software defects, and ensure product quality through manual and automated testing processes.",
		"Testing methodologies, Automation tools, Bug tracking, Test planning, Attention to detail", 60000, 100000},
	{"Financial Analyst", "Finance", "Mid-Level",
		"Analyze financial data, prepare reports, and provide insights to support business planning and investment decisions.",
		"Financial Analysis, Excel, Financial Modeling, Accounting principles, Reporting, Analytics", 60000, 100000},
	{"Content Writer", "Marketing", "Entry-Level",
		"Create engaging content for various platforms including blogs, social media, and marketing materials to support brand messaging and engagement.",
		"Writing, Content Strategy, SEO, Research, Creative thinking, Social Media", 40000, 65000},
	{"Operations Coordinator", "Operations", "Entry-Level",
		"Coordinate daily operations, manage schedules, and ensure smooth workflow across different departments and processes.",
		"Organization, Communication, Project coordination, Process improvement, Multi-tasking", 40000, 65000},
}

var demoMentors = []seedMentor{
	{"Sarah Chen", "Senior Product Manager", "Business Analyst, Junior PM",
		"Product Strategy, User Research, Agile", "10+ years in product management with expertise in B2B SaaS", "sarah.chen@company.com"},
	{"Michael Rodriguez", "Engineering Manager", "Software Engineer, Senior Developer",
		"Technical Leadership, Team Management, Architecture", "Led multiple engineering teams in scaling applications", "michael.r@company.com"},
	{"Lisa Wang", "Data Science Director", "Data Analyst, ML Engineer",
		"Machine Learning, Analytics, Data Strategy", "Specialist in building data-driven organizations", "lisa.wang@company.com"},
	{"Alex Thompson", "Senior UX Designer", "Graphic Designer, UI Designer",
		"User Experience, Design Systems, Research", "Expert in user-centered design with 8+ years experience", "alex.thompson@company.com"},
	{"David Kim", "DevOps Lead", "System Administrator, Software Engineer",
		"Cloud Infrastructure, Automation, Scaling", "Infrastructure expert specializing in AWS and Kubernetes", "david.kim@company.com"},
}

// SeedDemoData inserts the demo users, job roles and mentors. Inserts are
// idempotent, so it is safe to run on every startup. hashPassword is supplied
// by the auth service so the repository stays free of crypto concerns.
func SeedDemoData(db *sqlx.DB, hashPassword func(string) (string, error), logger *zap.Logger) error {
	for _, u := range demoUsers {
		hash, err := hashPassword(u.password)
		if err != nil {
			return err
		}
		_, err = db.Exec(`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)
		                  ON CONFLICT (username) DO NOTHING`, u.username, hash, u.role)
		if err != nil {
			return err
		}
	}

	for _, jr := range demoRoles {
		_, err := db.Exec(`INSERT INTO job_roles (title, department, level, description, skills_required, salary_min, salary_max)
		                   SELECT $1, $2, $3, $4, $5, $6, $7
		                   WHERE NOT EXISTS (SELECT 1 FROM job_roles WHERE title = $1)`,
			jr.title, jr.department, jr.level, jr.desc, jr.skills, jr.salaryMin, jr.salaryMax)
		if err != nil {
			return err
		}
	}

	for _, m := range demoMentors {
		_, err := db.Exec(`INSERT INTO mentors (name, current_job_role, previous_roles, expertise, bio, contact_info)
		                   VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (name) DO NOTHING`,
			m.name, m.currentRole, m.previousRoles, m.expertise, m.bio, m.contact)
		if err != nil {
			return err
		}
	}

	logger.Info("Demo data seeded",
		zap.Int("users", len(demoUsers)),
		zap.Int("roles", len(demoRoles)),
		zap.Int("mentors", len(demoMentors)))
	return nil
}
