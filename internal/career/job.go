package career

// JobDescription is the structured view of a job posting. PastedText keeps the
// original posting verbatim and is never requested from the model.
type JobDescription struct {
	ID               string   `json:"id,omitempty"`
	Source           string   `json:"source,omitempty"`
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Location         string   `json:"location,omitempty"`
	Seniority        string   `json:"seniority,omitempty"`
	EmploymentType   string   `json:"employmentType,omitempty"`
	PastedText       string   `json:"pastedText,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	PreferredSkills  []string `json:"preferredSkills,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
}

func (*JobDescription) Kind() RecordKind { return RecordJob }

func (*JobDescription) sealed() {}

// TopKeywords returns at most n leading keywords of the posting.
func (j *JobDescription) TopKeywords(n int) []string {
	if j == nil || n <= 0 {
		return []string{}
	}
	if len(j.Keywords) < n {
		n = len(j.Keywords)
	}
	out := make([]string, n)
	copy(out, j.Keywords[:n])
	return out
}
