package career

// ContactInfo holds the ways a candidate can be reached.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    string `json:"level,omitempty"`
}

type Experience struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location,omitempty"`
	EmploymentType string   `json:"employmentType,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	IsCurrent      bool     `json:"isCurrent,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
	Technologies   []string `json:"technologies,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
}

type Project struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Role         string   `json:"role,omitempty"`
	Description  string   `json:"description,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Links        []string `json:"links,omitempty"`
}

type Education struct {
	ID           string `json:"id,omitempty"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// UserProfile is the structured view of a candidate extracted from free text.
// It is replaced as a whole by every successful extraction and never patched.
type UserProfile struct {
	ID             string          `json:"id,omitempty"`
	FullName       string          `json:"fullName" validate:"required"`
	Headline       string          `json:"headline,omitempty"`
	ContactInfo    *ContactInfo    `json:"contactInfo,omitempty"`
	Summary        string          `json:"summary,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Interests      []string        `json:"interests,omitempty"`
}

func (*UserProfile) Kind() RecordKind { return RecordProfile }

func (*UserProfile) sealed() {}
