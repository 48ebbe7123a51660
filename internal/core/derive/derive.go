// Package derive holds the heuristics used at sign-in to synthesize an
// identity from nothing but an email address. All functions are pure and
// deterministic; sign-up never goes through them because the caller supplies
// every field explicitly.
package derive

import (
	"strings"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// fallbackName is used when the local part yields no usable segments.
const fallbackName = "User"

// NameFromEmail turns the local part of an email into a display name:
// "priya.sharma@x.com" becomes "Priya Sharma". Segments are split on
// '.', '_' and '-'; empty segments are dropped.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var parts []string
	for _, seg := range strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	}) {
		parts = append(parts, capitalize(seg))
	}

	if len(parts) == 0 {
		return fallbackName
	}
	return strings.Join(parts, " ")
}

// RoleFromEmail infers the user's role from the address. The predicates form
// an ordered first-match chain; an address matching several rules resolves to
// the earliest one ("admin.student@university.edu" is an admin).
func RoleFromEmail(email string) domain.Role {
	lower := strings.ToLower(email)
	dom := domainPart(email)

	if strings.Contains(lower, "admin") || strings.Contains(dom, "admin") {
		return domain.RoleAdmin
	}
	if strings.Contains(lower, "placement") ||
		strings.Contains(lower, "officer") ||
		strings.Contains(lower, "career") {
		return domain.RolePlacementOfficer
	}
	if strings.Contains(dom, "student") ||
		strings.Contains(dom, ".edu") ||
		strings.Contains(dom, "university") ||
		strings.Contains(dom, "college") {
		return domain.RoleStudent
	}
	return domain.RoleEmployer
}

// DepartmentFromEmail infers a department for the academic-side roles
// (student, placement-officer, admin). Employers get a company instead.
func DepartmentFromEmail(role domain.Role, email string) string {
	if role == domain.RoleEmployer {
		return ""
	}
	dom := domainPart(email)
	switch {
	case strings.Contains(dom, "cs"), strings.Contains(dom, "computer"):
		return "Computer Science"
	case strings.Contains(dom, "eng"):
		return "Engineering"
	case role == domain.RolePlacementOfficer:
		return "Career Services"
	default:
		return "General"
	}
}

// knownCompanies maps domain fragments to full legal names. Checked in order
// so that more specific fragments win.
var knownCompanies = []struct {
	fragment string
	name     string
}{
	{"infosys", "Infosys Limited"},
	{"tcs", "Tata Consultancy Services"},
	{"wipro", "Wipro Technologies"},
	{"hcl", "HCL Technologies"},
	{"tech", "Tech Mahindra"},
	{"mahindra", "Tech Mahindra"},
}

// CompanyFromEmail infers an employer's company from the email domain.
// Unknown domains fall back to the capitalized first label plus a generic
// suffix: "jane@acme.io" becomes "Acme Technologies".
func CompanyFromEmail(email string) string {
	dom := domainPart(email)
	for _, kc := range knownCompanies {
		if strings.Contains(dom, kc.fragment) {
			return kc.name
		}
	}
	label, _, _ := strings.Cut(dom, ".")
	return capitalize(label) + " Technologies"
}

func domainPart(email string) string {
	_, dom, _ := strings.Cut(email, "@")
	return strings.ToLower(dom)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
