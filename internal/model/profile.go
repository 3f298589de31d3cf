package model

// UserProfile is the demographic query evaluated against the catalog.
// Age and Income are always present and non-negative by the time a profile
// reaches the engine; the validator guarantees it.
type UserProfile struct {
	Age        int    `json:"age" yaml:"age"`
	Income     int    `json:"income" yaml:"income"` // annual, INR
	Occupation string `json:"occupation" yaml:"occupation"`
	State      string `json:"state" yaml:"state"`
	Gender     string `json:"gender" yaml:"gender"`
	Category   string `json:"category" yaml:"category"`
	Disability bool   `json:"disability" yaml:"disability"`
}

// Gender values.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Defaults applied when an optional profile field is left unset.
const (
	DefaultOccupation = "Other"
	DefaultState      = "Other"
	DefaultGender     = GenderOther
	DefaultCategory   = "General"
)

// Occupations is the fixed occupation vocabulary offered by the form.
// Rule matching on occupation is substring-based, so free text still works.
var Occupations = []string{
	"Farmer",
	"Street Vendor",
	"Student",
	"Salaried (Private)",
	"Salaried (Government)",
	"Self-Employed",
	"Homemaker",
	"Unemployed",
	"Other",
}

// States is the fixed set of administrative regions offered by the form.
var States = []string{
	"Andhra Pradesh",
	"Bihar",
	"Delhi",
	"Gujarat",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Punjab",
	"Rajasthan",
	"Tamil Nadu",
	"Telangana",
	"Uttar Pradesh",
	"West Bengal",
	"Other",
}

// Categories is the social/administrative classification vocabulary.
// Informational only in the current rule set.
var Categories = []string{"General", "OBC", "SC", "ST", "EWS"}
