package validate

import (
	"regexp"
	"strings"

	"github.com/hackxperience/hackxperience/internal/types"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	simIDRegex = regexp.MustCompile(`^\d{8}$`)
	urlRegex   = regexp.MustCompile(`^https?://`)
)

func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

func IsSimID(value string) bool {
	return simIDRegex.MatchString(value)
}

func IsURL(value string) bool {
	return urlRegex.MatchString(value)
}

type RegistrationRequest struct {
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	SimID               string  `json:"sim_id"`
	CourseAndUniversity string  `json:"course_and_university"`
	HasTeam             bool    `json:"has_team"`
	IsTeamLead          *bool   `json:"is_team_lead"`
	TeamLeadEmail       *string `json:"team_lead_email"`
	TeamName            *string `json:"team_name"`
	IsVegetarian        bool    `json:"is_vegetarian"`
	TelegramHandle      string  `json:"telegram_handle"`
}

// Registration applies the field-level rules and returns one message per
// failing field, keyed by the JSON field name. An empty map means valid.
func Registration(req RegistrationRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.FullName) == "" {
		errs["full_name"] = "Please enter your full name"
	}

	if !IsEmail(req.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if !IsSimID(req.SimID) {
		errs["sim_id"] = "SIM ID must be 8 digits"
	}

	if strings.TrimSpace(req.CourseAndUniversity) == "" {
		errs["course_and_university"] = "Please enter your course and university"
	}

	if req.HasTeam {
		if req.IsTeamLead == nil {
			errs["is_team_lead"] = "Please select your role in the team"
		}

		if req.TeamName == nil || strings.TrimSpace(*req.TeamName) == "" {
			errs["team_name"] = "Please enter your team name"
		}

		if req.IsTeamLead != nil && !*req.IsTeamLead {
			if req.TeamLeadEmail == nil || *req.TeamLeadEmail == "" {
				errs["team_lead_email"] = "Please enter your team lead's email"
			} else if !IsEmail(*req.TeamLeadEmail) {
				errs["team_lead_email"] = "Please enter a valid team lead email address"
			}
		}
	}

	return errs
}

type SubmissionRequest struct {
	ProjectTitle     string `json:"project_title" form:"project_title"`
	TeamName         string `json:"team_name" form:"team_name"`
	TeamMembers      string `json:"team_members" form:"team_members"`
	ProblemStatement string `json:"problem_statement" form:"problem_statement"`
	DemoVideoURL     string `json:"demo_video_url" form:"demo_video_url"`
	RepoURL          string `json:"repo_url" form:"repo_url"`
	PresentationURL  string `json:"presentation_url" form:"presentation_url"`
}

// Submission validates the shared submission fields. The presentation URL is
// only required in URL mode; in file mode the handler validates the upload
// instead.
func Submission(req SubmissionRequest, requirePresentationURL bool) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.ProjectTitle) == "" {
		errs["project_title"] = "Project title is required"
	}

	if strings.TrimSpace(req.TeamName) == "" {
		errs["team_name"] = "Team name is required"
	}

	if strings.TrimSpace(req.TeamMembers) == "" {
		errs["team_members"] = "Team members information is required"
	}

	if req.ProblemStatement == "" {
		errs["problem_statement"] = "Problem statement is required"
	} else if !types.IsProblemStatement(req.ProblemStatement) {
		errs["problem_statement"] = "Please select a valid problem statement"
	}

	if strings.TrimSpace(req.DemoVideoURL) == "" {
		errs["demo_video_url"] = "Demo video URL is required"
	} else if !IsURL(req.DemoVideoURL) {
		errs["demo_video_url"] = "Please enter a valid URL"
	}

	if strings.TrimSpace(req.RepoURL) == "" {
		errs["repo_url"] = "GitHub repository URL is required"
	} else if !IsURL(req.RepoURL) {
		errs["repo_url"] = "Please enter a valid URL"
	}

	if requirePresentationURL {
		if strings.TrimSpace(req.PresentationURL) == "" {
			errs["presentation_url"] = "Presentation URL is required"
		} else if !IsURL(req.PresentationURL) {
			errs["presentation_url"] = "Please enter a valid URL"
		}
	}

	return errs
}

// IsPresentationFile reports whether an upload looks like a PowerPoint file,
// by MIME type with an extension fallback for browsers that send a generic
// content type.
func IsPresentationFile(filename, contentType string) bool {
	switch contentType {
	case "application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation":
		return true
	}

	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".ppt") || strings.HasSuffix(lower, ".pptx")
}
