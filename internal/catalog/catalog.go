// Package catalog holds the static content the portal shows on both
// tracks. It is loaded into catalog storage at startup; nothing in it
// depends on the session.
package catalog

import "github.com/aanand-mishra/careerpath/internal/types"

// Default returns the built-in catalog. Each call returns fresh slices.
func Default() types.Catalog {
	return types.Catalog{
		JobRoles:              jobRoles(),
		Companies:             companies(),
		CareerRecommendations: careerRecommendations(),
		TechRecommendations:   techRecommendations(),
		Videos:                videos(),
		Internships:           internships(),
		Roadmap:               roadmap(),
	}
}

func jobRoles() []types.JobRole {
	return []types.JobRole{
		{Title: "Full Stack Developer", Company: "TechCorp", Location: "San Francisco, CA", Type: "Full-time", Salary: "$120k - $180k", Skills: []string{"React", "Node.js", "MongoDB", "AWS"}, Posted: "2 days ago", Color: "blue"},
		{Title: "Frontend Engineer", Company: "DesignHub", Location: "Remote", Type: "Full-time", Salary: "$100k - $150k", Skills: []string{"React", "TypeScript", "CSS", "Figma"}, Posted: "1 week ago", Color: "purple"},
		{Title: "Backend Developer", Company: "DataSystems Inc", Location: "New York, NY", Type: "Full-time", Salary: "$110k - $160k", Skills: []string{"Python", "Django", "PostgreSQL", "Redis"}, Posted: "3 days ago", Color: "green"},
		{Title: "DevOps Engineer", Company: "CloudNative", Location: "Austin, TX", Type: "Full-time", Salary: "$130k - $190k", Skills: []string{"Docker", "Kubernetes", "AWS", "CI/CD"}, Posted: "5 days ago", Color: "orange"},
		{Title: "Mobile App Developer", Company: "AppStudio", Location: "Seattle, WA", Type: "Full-time", Salary: "$115k - $170k", Skills: []string{"React Native", "iOS", "Android", "JavaScript"}, Posted: "1 day ago", Color: "teal"},
		{Title: "Data Engineer", Company: "Analytics Pro", Location: "Boston, MA", Type: "Full-time", Salary: "$125k - $185k", Skills: []string{"Python", "Spark", "SQL", "Airflow"}, Posted: "4 days ago", Color: "indigo"},
	}
}

func companies() []types.Company {
	return []types.Company{
		{Name: "Google", Openings: 156, Industry: "Technology", Size: "10,000+", Description: "Leading technology company specializing in internet services and products", Logo: "https://images.unsplash.com/photo-1573804633927-bfcbcd909acd?w=200", Roles: []string{"Software Engineer", "Product Manager", "UX Designer"}},
		{Name: "Amazon", Openings: 342, Industry: "E-commerce & Cloud", Size: "10,000+", Description: "Global e-commerce and cloud computing leader", Logo: "https://images.unsplash.com/photo-1523474253046-8cd2748b5fd2?w=200", Roles: []string{"Full Stack Developer", "DevOps Engineer", "Data Scientist"}},
		{Name: "Microsoft", Openings: 224, Industry: "Software", Size: "10,000+", Description: "Multinational technology corporation producing software and hardware", Logo: "https://images.unsplash.com/photo-1633409361618-c73427e4e206?w=200", Roles: []string{"Cloud Engineer", "Security Analyst", "AI Researcher"}},
		{Name: "Meta", Openings: 89, Industry: "Social Media", Size: "10,000+", Description: "Social technology company focusing on connecting people", Logo: "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=200", Roles: []string{"Frontend Developer", "ML Engineer", "Mobile Developer"}},
		{Name: "Netflix", Openings: 67, Industry: "Entertainment", Size: "5,000 - 10,000", Description: "Streaming service offering movies, TV shows, and original content", Logo: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=200", Roles: []string{"Backend Engineer", "Content Engineer", "Platform Engineer"}},
		{Name: "Salesforce", Openings: 145, Industry: "CRM Software", Size: "10,000+", Description: "Cloud-based software company specializing in customer relationship management", Logo: "https://images.unsplash.com/photo-1560179707-f14e90ef3623?w=200", Roles: []string{"Solutions Architect", "Salesforce Developer", "Technical Consultant"}},
	}
}

func careerRecommendations() []types.CareerRecommendation {
	return []types.CareerRecommendation{
		{Title: "Learn Cloud Computing", Description: "Master AWS, Azure, or Google Cloud to become a Cloud Solutions Architect", Skills: []string{"AWS", "Azure", "Google Cloud", "Terraform"}, PotentialRole: "Cloud Solutions Architect", Salary: "$140k - $200k", Demand: "Very High", Color: "blue"},
		{Title: "Master Machine Learning", Description: "Dive into AI/ML to transition into high-demand data science roles", Skills: []string{"Python", "TensorFlow", "PyTorch", "Statistics"}, PotentialRole: "Machine Learning Engineer", Salary: "$150k - $220k", Demand: "Extremely High", Color: "purple"},
		{Title: "Specialize in Cybersecurity", Description: "Become a security expert with certifications like CISSP or CEH", Skills: []string{"Network Security", "Penetration Testing", "SIEM", "Cryptography"}, PotentialRole: "Security Engineer", Salary: "$130k - $190k", Demand: "Very High", Color: "red"},
		{Title: "Master Mobile Development", Description: "Build cross-platform apps and become a Mobile Development Expert", Skills: []string{"React Native", "Flutter", "iOS", "Android"}, PotentialRole: "Senior Mobile Developer", Salary: "$120k - $180k", Demand: "High", Color: "green"},
		{Title: "Learn Blockchain Technology", Description: "Enter the Web3 space with blockchain and smart contract development", Skills: []string{"Solidity", "Ethereum", "Smart Contracts", "Web3.js"}, PotentialRole: "Blockchain Developer", Salary: "$140k - $210k", Demand: "High", Color: "orange"},
		{Title: "Enhance with System Design", Description: "Master system design to qualify for senior and principal engineering roles", Skills: []string{"Distributed Systems", "Microservices", "Scalability", "Architecture"}, PotentialRole: "Principal Engineer", Salary: "$180k - $300k", Demand: "Very High", Color: "indigo"},
	}
}

func techRecommendations() []types.TechRecommendation {
	return []types.TechRecommendation{
		{Category: "Frontend Development", Technologies: []string{"React.js", "TypeScript", "Tailwind CSS", "Next.js"}, Reason: "Essential for modern web development", Color: "blue"},
		{Category: "Backend Development", Technologies: []string{"Node.js", "Express.js", "Spring Boot", "Django"}, Reason: "Build robust server-side applications", Color: "green"},
		{Category: "Databases", Technologies: []string{"PostgreSQL", "MongoDB", "Redis", "MySQL"}, Reason: "Master data storage and retrieval", Color: "purple"},
		{Category: "DevOps & Cloud", Technologies: []string{"Docker", "Kubernetes", "AWS", "CI/CD"}, Reason: "Deploy and scale applications", Color: "orange"},
	}
}

func videos() []types.Video {
	return []types.Video{
		{Title: "React.js Complete Course for Beginners", Channel: "freeCodeCamp", Duration: "11:48:24", Views: "2.3M views", Thumbnail: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400", Topic: "React"},
		{Title: "Java Full Course", Channel: "Programming with Mosh", Duration: "8:45:12", Views: "1.8M views", Thumbnail: "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=400", Topic: "Java"},
		{Title: "Python for Everybody", Channel: "freeCodeCamp", Duration: "13:24:16", Views: "3.2M views", Thumbnail: "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?w=400", Topic: "Python"},
		{Title: "Node.js and Express.js Course", Channel: "Traversy Media", Duration: "6:18:21", Views: "985K views", Thumbnail: "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=400", Topic: "Backend"},
		{Title: "Database Design Tutorial", Channel: "freeCodeCamp", Duration: "4:32:11", Views: "756K views", Thumbnail: "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?w=400", Topic: "Database"},
		{Title: "AWS Certified Cloud Practitioner", Channel: "freeCodeCamp", Duration: "12:14:38", Views: "1.1M views", Thumbnail: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400", Topic: "Cloud"},
	}
}

func internships() []types.Internship {
	return []types.Internship{
		{Company: "Google", Role: "Software Engineering Intern", Location: "Mountain View, CA", Duration: "Summer 2026", Stipend: "$8,000/month", Skills: []string{"Python", "Java", "Data Structures"}, Color: "blue"},
		{Company: "Microsoft", Role: "Product Management Intern", Location: "Redmond, WA", Duration: "3-6 months", Stipend: "$7,500/month", Skills: []string{"Product Strategy", "Analytics", "Communication"}, Color: "green"},
		{Company: "Amazon", Role: "Full Stack Developer Intern", Location: "Seattle, WA", Duration: "Summer 2026", Stipend: "$7,800/month", Skills: []string{"React", "Node.js", "AWS"}, Color: "orange"},
		{Company: "Meta", Role: "Data Science Intern", Location: "Menlo Park, CA", Duration: "12 weeks", Stipend: "$8,200/month", Skills: []string{"Python", "Machine Learning", "Statistics"}, Color: "purple"},
		{Company: "Netflix", Role: "UI/UX Design Intern", Location: "Los Gatos, CA", Duration: "Summer 2026", Stipend: "$7,000/month", Skills: []string{"Figma", "User Research", "Prototyping"}, Color: "red"},
		{Company: "Salesforce", Role: "Cloud Engineering Intern", Location: "San Francisco, CA", Duration: "3 months", Stipend: "$7,200/month", Skills: []string{"AWS", "Docker", "Kubernetes"}, Color: "teal"},
	}
}

func roadmap() []types.RoadmapPhase {
	return []types.RoadmapPhase{
		{Phase: "Phase 1: Foundation", Duration: "2-3 months", Topics: []string{"Core Programming Fundamentals", "Data Structures & Algorithms", "Version Control (Git)"}, Color: "blue"},
		{Phase: "Phase 2: Web Development", Duration: "3-4 months", Topics: []string{"HTML, CSS, JavaScript", "React.js", "RESTful APIs", "Database Basics"}, Color: "purple"},
		{Phase: "Phase 3: Backend Development", Duration: "2-3 months", Topics: []string{"Java/Python Backend", "Spring Boot/Django", "Database Design", "Authentication & Security"}, Color: "green"},
		{Phase: "Phase 4: Advanced Topics", Duration: "2-3 months", Topics: []string{"Cloud Services (AWS/Azure)", "Docker & CI/CD", "System Design", "Testing & Debugging"}, Color: "orange"},
	}
}
