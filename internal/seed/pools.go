package seed

// Fixed pools the generator draws from. Kept separate from the generation
// logic so the dataset can be tuned without touching it.

var jobTitles = []string{
	"Backend Engineer",
	"Frontend Engineer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Site Reliability Engineer",
	"Data Engineer",
	"Data Scientist",
	"Machine Learning Engineer",
	"Product Manager",
	"Engineering Manager",
	"QA Engineer",
	"Security Engineer",
	"Mobile Developer",
	"UX Designer",
	"Product Designer",
	"Technical Writer",
	"Solutions Architect",
	"Database Administrator",
	"Platform Engineer",
	"Cloud Engineer",
}

var companies = []string{
	"TalentFlow", "Northwind Labs", "Acme Systems", "Brightside",
	"Cobalt Works", "Driftwood", "Emberline", "Fathom Analytics",
	"Gridpoint", "Harbor Tech",
}

var locations = []string{
	"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
	"Boston, MA", "Denver, CO", "Chicago, IL", "Remote",
}

var employmentTypes = []string{
	"Full-time", "Full-time", "Full-time", "Part-time", "Contract", "Remote",
}

var salaryBands = []string{
	"$80k - $110k", "$100k - $130k", "$120k - $150k",
	"$140k - $175k", "$160k - $200k", "Competitive",
}

var requirementsPool = []string{
	"3+ years of relevant experience",
	"Strong communication skills",
	"Experience with cloud platforms",
	"CI/CD pipeline experience",
	"Comfortable in a fast-paced environment",
	"Bachelor's degree or equivalent experience",
	"Experience mentoring junior engineers",
	"Solid testing discipline",
}

var tagPool = []string{
	"engineering", "remote-friendly", "senior", "junior", "urgent",
	"design", "data", "infrastructure", "product",
}

var skillPool = []string{
	"Go", "TypeScript", "React", "Python", "SQL", "Kubernetes",
	"Terraform", "AWS", "GraphQL", "Docker", "Rust", "Figma",
}

var firstNames = []string{
	"Alex", "Jordan", "Sam", "Taylor", "Morgan", "Casey", "Riley",
	"Jamie", "Avery", "Quinn", "Dana", "Robin", "Maria", "James",
	"Priya", "Wei", "Fatima", "Diego", "Nina", "Omar",
}

var lastNames = []string{
	"Smith", "Johnson", "Lee", "Garcia", "Chen", "Patel", "Kim",
	"Nguyen", "Brown", "Davis", "Martinez", "Wilson", "Anderson",
	"Taylor", "Thomas", "Moore",
}

var questionTitles = []string{
	"How many years of professional experience do you have?",
	"Which of these technologies have you used in production?",
	"Describe a challenging project you led.",
	"What interests you about this role?",
	"Are you authorized to work in this location?",
	"What is your expected salary range?",
	"Rate your proficiency with the primary stack.",
	"When could you start?",
	"Have you worked in a distributed team before?",
	"Upload your portfolio or work sample.",
	"Walk through your approach to debugging a production incident.",
	"Which team rituals do you find most valuable?",
}

var optionPool = []string{
	"Yes", "No", "0-2 years", "3-5 years", "6-10 years", "10+ years",
	"Beginner", "Intermediate", "Advanced", "Expert",
}

var noteTemplates = []string{
	"Strong phone screen, moving forward. @hr-team please schedule the next round.",
	"Great portfolio, @design-team should take a look before the onsite.",
	"Asked for a follow-up call next week. @jane-smith can you own this?",
	"Solid systems background but light on frontend. Flagging for @eng-leads.",
	"References checked out. @hr-team ready for offer discussion.",
	"Candidate withdrew, keep warm for future roles.",
}

var authors = []string{
	"Sarah Chen", "Mike Ross", "Elena Alvarez", "Tom Becker", "Aisha Khan",
}
