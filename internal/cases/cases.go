package cases

import (
	"fmt"
	"strings"
)

// CaseRecord is one administrative case built from a case folder.
type CaseRecord struct {
	Year          string        `json:"year"`
	CaseNumber    string        `json:"case_number"`
	CompositeDate string        `json:"date"`  // year + month + day, not a validated calendar date
	Text          string        `json:"text"`  // Concatenated "[File: name]" blocks
	Files         []string      `json:"files"` // PDFs whose text was appended, in append order
	Failures      []FileFailure `json:"failures,omitempty"`
}

// FileFailure records a PDF whose extraction failed and was skipped.
type FileFailure struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// NewCaseRecord creates an empty record for a case folder.
func NewCaseRecord(year, month, day, caseNumber string) *CaseRecord {
	return &CaseRecord{
		Year:          year,
		CaseNumber:    caseNumber,
		CompositeDate: year + month + day,
		Files:         []string{},
	}
}

// AppendFile appends the extracted text of one file under a file marker.
func (c *CaseRecord) AppendFile(name, text string) {
	c.Text += fmt.Sprintf("\n\n[File: %s]\n%s", name, text)
	c.Files = append(c.Files, name)
}

// AddFailure records a file that could not be extracted.
func (c *CaseRecord) AddFailure(name string, err error) {
	c.Failures = append(c.Failures, FileFailure{File: name, Error: err.Error()})
}

func (c *CaseRecord) String() string {
	return fmt.Sprintf("CaseRecord(year=%s, case_number=%s, date=%s, text_len=%d)",
		c.Year, c.CaseNumber, c.CompositeDate, len(c.Text))
}

// Registration is a property registration record with its own extracted text.
type Registration struct {
	Year   string `json:"year"`
	Number string `json:"number"`
	Date   string `json:"date"`
	Text   string `json:"text,omitempty"`
}

func (r *Registration) String() string {
	return fmt.Sprintf("Registration(year=%s, number=%s, date=%s)", r.Year, r.Number, r.Date)
}

// Property is a real-estate unit identified by its municipal registration id.
type Property struct {
	RegistrationID string        `json:"registration_id"`
	Registration   *Registration `json:"registration"`
	Description    string        `json:"description,omitempty"`
}

func (p *Property) String() string {
	number := ""
	if p.Registration != nil {
		number = p.Registration.Number
	}
	return fmt.Sprintf("Property(registration_id=%s, registration_number=%s, description=%s)",
		p.RegistrationID, number, p.Description)
}

// AssessmentTerm is an assessment issued within a case. It owns its
// registration and property collections.
type AssessmentTerm struct {
	Case          *CaseRecord     `json:"-"`
	Applicant     string          `json:"applicant"`
	IssuingAgent  string          `json:"issuing_agent"`
	Subject       string          `json:"subject"`
	Date          string          `json:"date"`
	Registrations []*Registration `json:"registrations"`
	Properties    []*Property     `json:"properties"`
}

// NewAssessmentTerm creates a term with its own empty collections.
func NewAssessmentTerm(c *CaseRecord, applicant, issuingAgent, subject, date string) *AssessmentTerm {
	return &AssessmentTerm{
		Case:          c,
		Applicant:     applicant,
		IssuingAgent:  issuingAgent,
		Subject:       subject,
		Date:          date,
		Registrations: []*Registration{},
		Properties:    []*Property{},
	}
}

func (t *AssessmentTerm) AddRegistration(r *Registration) {
	t.Registrations = append(t.Registrations, r)
}

func (t *AssessmentTerm) AddProperty(p *Property) {
	t.Properties = append(t.Properties, p)
}

func (t *AssessmentTerm) String() string {
	var sb strings.Builder
	sb.WriteString("AssessmentTerm(")
	if t.Case != nil {
		fmt.Fprintf(&sb, "case_year=%s, case_number=%s, case_date=%s, ",
			t.Case.Year, t.Case.CaseNumber, t.Case.CompositeDate)
	}
	fmt.Fprintf(&sb, "applicant=%s, issuing_agent=%s, subject=%s, date=%s)",
		t.Applicant, t.IssuingAgent, t.Subject, t.Date)
	return sb.String()
}
