package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackxperience/hackxperience/db"
	"github.com/hackxperience/hackxperience/internal/models"
	"github.com/hackxperience/hackxperience/internal/teams"
	"github.com/hackxperience/hackxperience/internal/types"
	"github.com/hackxperience/hackxperience/internal/validate"
	"gorm.io/gorm"
)

const (
	msgEmailTaken    = "This email is already registered. Please use a different email address."
	msgSimIDTaken    = "This SIM ID is already registered. Please check your ID or contact support if you think this is an error."
	msgLeadNotFound  = "Team lead email not found in registrations"
	msgLeadNotLead   = "The provided email belongs to a team member, not a team lead"
	msgTeamNameTaken = "This team name is already taken. Please choose a different team name."

	msgRegistrationExists = "A registration with this information already exists."
	msgRegistrationRetry  = "Error submitting registration. Please try again."
)

// registrationLookup is the read surface the pre-submission checks need.
// Split out so the check sequence is testable without a database.
type registrationLookup interface {
	EmailRegistered(email string) (bool, error)
	SimIDRegistered(simID string) (bool, error)
	FindByEmail(email string) (*models.Registration, error)
	TeamNameTaken(teamName string) (bool, error)
}

type gormRegistrationLookup struct {
	db *gorm.DB
}

func (l gormRegistrationLookup) EmailRegistered(email string) (bool, error) {
	var reg models.Registration
	err := l.db.Where("email = ?", email).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (l gormRegistrationLookup) SimIDRegistered(simID string) (bool, error) {
	var reg models.Registration
	err := l.db.Where("sim_id = ?", simID).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (l gormRegistrationLookup) FindByEmail(email string) (*models.Registration, error) {
	var reg models.Registration
	err := l.db.Where("email = ?", email).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (l gormRegistrationLookup) TeamNameTaken(teamName string) (bool, error) {
	var reg models.Registration
	err := l.db.Where("team_name = ?", teamName).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// precheckRegistration runs the sequential store-backed checks; the first
// failing check wins. It returns the user-facing rejection message, empty when
// all checks pass.
func precheckRegistration(lookup registrationLookup, req validate.RegistrationRequest) (string, error) {
	taken, err := lookup.EmailRegistered(req.Email)
	if err != nil {
		return "", err
	}
	if taken {
		return msgEmailTaken, nil
	}

	taken, err = lookup.SimIDRegistered(req.SimID)
	if err != nil {
		return "", err
	}
	if taken {
		return msgSimIDTaken, nil
	}

	isMember := req.HasTeam && req.IsTeamLead != nil && !*req.IsTeamLead

	if isMember && req.TeamLeadEmail != nil && *req.TeamLeadEmail != "" {
		leadReg, err := lookup.FindByEmail(*req.TeamLeadEmail)
		if err != nil {
			return "", err
		}
		if leadReg == nil {
			return msgLeadNotFound, nil
		}
		if leadReg.IsTeamLead == nil || !*leadReg.IsTeamLead {
			return msgLeadNotLead, nil
		}
	}

	if req.HasTeam && req.TeamName != nil && *req.TeamName != "" {
		taken, err := lookup.TeamNameTaken(*req.TeamName)
		if err != nil {
			return "", err
		}
		if taken {
			return msgTeamNameTaken, nil
		}
	}

	return "", nil
}

// conflictMessage maps a unique-violation column to the same message the
// matching pre-check would have produced, for inserts that race a concurrent
// submission past the checks.
func conflictMessage(column string) string {
	switch column {
	case "email":
		return msgEmailTaken
	case "sim_id":
		return msgSimIDTaken
	case "team_name":
		return msgTeamNameTaken
	default:
		return msgRegistrationExists
	}
}

func CreateRegistration(ctx *gin.Context) {
	var req validate.RegistrationRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := validate.Registration(req); len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	message, err := precheckRegistration(gormRegistrationLookup{db: db.DB}, req)

	if err != nil {
		log.Printf("Database error during registration pre-checks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgRegistrationRetry})
		return
	}

	if message != "" {
		ctx.JSON(http.StatusConflict, gin.H{"error": message})
		return
	}

	registration := models.Registration{
		FullName:            req.FullName,
		Email:               req.Email,
		SimID:               req.SimID,
		CourseAndUniversity: req.CourseAndUniversity,
		HasTeam:             req.HasTeam,
		IsTeamLead:          req.IsTeamLead,
		TeamLeadEmail:       req.TeamLeadEmail,
		TeamName:            req.TeamName,
		IsVegetarian:        req.IsVegetarian,
		TelegramHandle:      req.TelegramHandle,
		RegisteredAt:        time.Now().UTC(),
	}

	if err := db.DB.Create(&registration).Error; err != nil {
		var conflict *db.ConflictError

		if errors.As(db.TranslateError(err), &conflict) {
			ctx.JSON(http.StatusConflict, gin.H{"error": conflictMessage(conflict.Column)})
			return
		}

		log.Printf("Failed to create registration: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgRegistrationRetry})
		return
	}

	BroadcastRefresh(types.TableRegistrations)

	ctx.JSON(http.StatusCreated, gin.H{
		"registration": toRegistrationResponse(registration),
	})
}

type RegistrationResponse struct {
	ID                  uint      `json:"id"`
	FullName            string    `json:"full_name"`
	Email               string    `json:"email"`
	SimID               string    `json:"sim_id"`
	CourseAndUniversity string    `json:"course_and_university"`
	HasTeam             bool      `json:"has_team"`
	IsTeamLead          *bool     `json:"is_team_lead"`
	TeamLeadEmail       *string   `json:"team_lead_email"`
	TeamName            *string   `json:"team_name"`
	IsVegetarian        bool      `json:"is_vegetarian"`
	TelegramHandle      string    `json:"telegram_handle"`
	RegisteredAt        time.Time `json:"registered_at"`
}

func toRegistrationResponse(reg models.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                  reg.ID,
		FullName:            reg.FullName,
		Email:               reg.Email,
		SimID:               reg.SimID,
		CourseAndUniversity: reg.CourseAndUniversity,
		HasTeam:             reg.HasTeam,
		IsTeamLead:          reg.IsTeamLead,
		TeamLeadEmail:       reg.TeamLeadEmail,
		TeamName:            reg.TeamName,
		IsVegetarian:        reg.IsVegetarian,
		TelegramHandle:      reg.TelegramHandle,
		RegisteredAt:        reg.RegisteredAt,
	}
}

func filtersFromQuery(ctx *gin.Context) teams.Filters {
	return teams.Filters{
		Search: ctx.Query("search"),
		Role:   teams.ParseTeamRole(ctx.Query("team")),
		Diet:   teams.ParseDiet(ctx.Query("diet")),
	}
}

func fetchRegistrations() ([]models.Registration, error) {
	var registrations []models.Registration

	err := db.DB.Order("registered_at desc").Find(&registrations).Error

	return registrations, err
}

func ListRegistrations(ctx *gin.Context) {
	registrations, err := fetchRegistrations()

	if err != nil {
		log.Printf("Failed to fetch registrations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve registrations"})
		return
	}

	filtered := teams.Filter(registrations, filtersFromQuery(ctx))

	response := make([]RegistrationResponse, 0, len(filtered))
	for _, reg := range filtered {
		response = append(response, toRegistrationResponse(reg))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"registrations": response,
		"total":         len(response),
	})
}

type TeamResponse struct {
	Name     string                 `json:"name"`
	LeadName string                 `json:"lead_name"`
	Members  []RegistrationResponse `json:"members"`
}

func ListTeams(ctx *gin.Context) {
	registrations, err := fetchRegistrations()

	if err != nil {
		log.Printf("Failed to fetch registrations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve registrations"})
		return
	}

	filtered := teams.FilterTeamView(registrations, filtersFromQuery(ctx))

	grouped, solos := teams.Group(filtered)

	teamResponses := make([]TeamResponse, 0, len(grouped))
	for _, team := range grouped {
		// Data inconsistency is tolerated: a team without an identified
		// lead still renders, with the lead shown as unknown.
		leadName := "Unknown"
		if team.Lead != nil {
			leadName = team.Lead.FullName
		}

		members := make([]RegistrationResponse, 0, len(team.Members))
		for _, member := range team.Members {
			members = append(members, toRegistrationResponse(member))
		}

		teamResponses = append(teamResponses, TeamResponse{
			Name:     team.Name,
			LeadName: leadName,
			Members:  members,
		})
	}

	soloResponses := make([]RegistrationResponse, 0, len(solos))
	for _, reg := range solos {
		soloResponses = append(soloResponses, toRegistrationResponse(reg))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"teams": teamResponses,
		"solos": soloResponses,
	})
}
