package handlers

import (
	"net/http"

	blockRepo "clinicbook/database/repository/block"
	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlockHandler serves the admin block-rule endpoints for holidays,
// closures and partial-day exclusions.
type BlockHandler struct {
	Blocks       blockRepo.BlockRuleRepository
	Availability availability.AvailabilityService
}

func NewBlockHandler(blocks blockRepo.BlockRuleRepository, svc availability.AvailabilityService) *BlockHandler {
	return &BlockHandler{Blocks: blocks, Availability: svc}
}

// BlockInput is the admin payload for placing a block. For timeRange
// blocks the start and end arrive as "HH:MM" strings.
type BlockInput struct {
	LocationName string `json:"locationName" binding:"required"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	Kind         string `json:"kind" binding:"required"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Reason       string `json:"reason"`
}

func (in *BlockInput) toBlock() (models.BlockRule, error) {
	block := models.BlockRule{
		LocationName: in.LocationName,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Kind:         models.BlockKind(in.Kind),
		Reason:       in.Reason,
	}
	if block.Kind == models.BlockTimeRange {
		start, err := models.ParseTimeOfDay(in.Start)
		if err != nil {
			return models.BlockRule{}, err
		}
		end, err := models.ParseTimeOfDay(in.End)
		if err != nil {
			return models.BlockRule{}, err
		}
		block.Start = start
		block.End = end
	}
	if err := block.Validate(); err != nil {
		return models.BlockRule{}, err
	}
	return block, nil
}

// CreateBlockHandler handles POST /api/admin/blocks.
func (h *BlockHandler) CreateBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input BlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	block, err := input.toBlock()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Blocks.Create(c.Request.Context(), &block); err != nil {
		logger.Error("Failed to create block rule", zap.String("location", block.LocationName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create block rule"})
		return
	}

	h.Availability.InvalidateLocation(c.Request.Context(), block.LocationName)
	c.JSON(http.StatusCreated, gin.H{"block": block})
}

// ListBlocksHandler handles GET /api/admin/blocks?location=.
func (h *BlockHandler) ListBlocksHandler(c *gin.Context) {
	logger := utils.GetLogger()

	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
		return
	}

	blocks, err := h.Blocks.ListByLocation(c.Request.Context(), location)
	if err != nil {
		logger.Error("Failed to list block rules", zap.String("location", location), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list block rules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// DeleteBlockHandler handles DELETE /api/admin/blocks/:id.
func (h *BlockHandler) DeleteBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Blocks.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Block rule not found"})
		return
	}
	if err := h.Blocks.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete block rule", zap.String("blockID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete block rule"})
		return
	}
	h.Availability.InvalidateLocation(c.Request.Context(), existing.LocationName)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
