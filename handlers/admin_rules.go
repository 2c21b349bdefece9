package handlers

import (
	"net/http"
	"time"

	ruleRepo "clinicbook/database/repository/rule"
	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RuleHandler serves the admin schedule-rule management endpoints.
type RuleHandler struct {
	Rules        ruleRepo.AvailabilityRuleRepository
	Availability availability.AvailabilityService
}

func NewRuleHandler(rules ruleRepo.AvailabilityRuleRepository, svc availability.AvailabilityService) *RuleHandler {
	return &RuleHandler{Rules: rules, Availability: svc}
}

// RuleInput is the admin payload for creating or editing a rule. Times
// arrive as "HH:MM" strings and are converted at this boundary.
type RuleInput struct {
	LocationName    string         `json:"locationName" binding:"required"`
	StartTime       string         `json:"startTime" binding:"required"`
	EndTime         string         `json:"endTime" binding:"required"`
	DurationMinutes int            `json:"durationMinutes" binding:"required"`
	BufferMinutes   int            `json:"bufferMinutes"`
	StartDate       string         `json:"startDate" binding:"required"`
	EndDate         string         `json:"endDate"`
	RecurrenceDays  []time.Weekday `json:"recurrenceDays"`
}

func (in *RuleInput) toRule(id string) (models.AvailabilityRule, error) {
	start, err := models.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return models.AvailabilityRule{}, err
	}
	end, err := models.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return models.AvailabilityRule{}, err
	}
	rule := models.AvailabilityRule{
		ID:              id,
		LocationName:    in.LocationName,
		Start:           start,
		End:             end,
		DurationMinutes: in.DurationMinutes,
		BufferMinutes:   in.BufferMinutes,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		RecurrenceDays:  in.RecurrenceDays,
	}
	if err := rule.Validate(); err != nil {
		return models.AvailabilityRule{}, err
	}
	return rule, nil
}

// saveRule runs the conflict check and persists via save. Conflicting
// rules are rejected with the conflict list unless override=true.
func (h *RuleHandler) saveRule(c *gin.Context, rule models.AvailabilityRule, save func(*models.AvailabilityRule) error) {
	logger := utils.GetLogger()

	conflicts, err := h.Availability.CheckRuleConflicts(c.Request.Context(), rule)
	if err != nil {
		logger.Error("Failed to check rule conflicts", zap.String("location", rule.LocationName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rule conflicts"})
		return
	}
	if len(conflicts) > 0 && c.Query("override") != "true" {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Rule overlaps existing availability rules",
			"code":      availability.CodeConflictingRule,
			"conflicts": conflicts,
		})
		return
	}

	if err := save(&rule); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
			return
		}
		logger.Error("Failed to save availability rule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save availability rule"})
		return
	}

	h.Availability.InvalidateLocation(c.Request.Context(), rule.LocationName)
	c.JSON(http.StatusOK, gin.H{"rule": rule, "conflicts": conflicts})
}

// CreateRuleHandler handles POST /api/admin/rules.
func (h *RuleHandler) CreateRuleHandler(c *gin.Context) {
	var input RuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	rule, err := input.toRule("")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": availability.CodeInvalidRule})
		return
	}
	h.saveRule(c, rule, func(r *models.AvailabilityRule) error {
		return h.Rules.Create(c.Request.Context(), r)
	})
}

// UpdateRuleHandler handles PUT /api/admin/rules/:id. The stored copy of
// the rule being edited is excluded from the conflict check by ID.
func (h *RuleHandler) UpdateRuleHandler(c *gin.Context) {
	id := c.Param("id")
	var input RuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	rule, err := input.toRule(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": availability.CodeInvalidRule})
		return
	}
	existing, err := h.Rules.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		return
	}
	rule.CreatedAt = existing.CreatedAt
	h.saveRule(c, rule, func(r *models.AvailabilityRule) error {
		return h.Rules.Update(c.Request.Context(), r)
	})
}

// CheckRuleHandler handles POST /api/admin/rules/check: a dry-run of the
// conflict detector without saving anything.
func (h *RuleHandler) CheckRuleHandler(c *gin.Context) {
	var input struct {
		RuleInput
		RuleID string `json:"ruleId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	rule, err := input.toRule(input.RuleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": availability.CodeInvalidRule})
		return
	}
	conflicts, err := h.Availability.CheckRuleConflicts(c.Request.Context(), rule)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rule conflicts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": conflicts, "saveable": len(conflicts) == 0})
}

// ListRulesHandler handles GET /api/admin/rules?location=.
func (h *RuleHandler) ListRulesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		rules []models.AvailabilityRule
		err   error
	)
	if location := c.Query("location"); location != "" {
		rules, err = h.Rules.ListByLocation(c.Request.Context(), location)
	} else {
		rules, err = h.Rules.ListAll(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list availability rules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list availability rules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// DeleteRuleHandler handles DELETE /api/admin/rules/:id. Deletion removes
// all future applicability of the rule.
func (h *RuleHandler) DeleteRuleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Rules.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		return
	}
	if err := h.Rules.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete availability rule", zap.String("ruleID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete availability rule"})
		return
	}
	h.Availability.InvalidateLocation(c.Request.Context(), existing.LocationName)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
