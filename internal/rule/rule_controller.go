package rule

import (
	"net/http"
	"strconv"

	"github.com/gegidze/arena/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RuleController handles rulebook HTTP requests.
type RuleController struct {
	repo RuleRepository
}

func NewRuleController(repo RuleRepository) *RuleController {
	return &RuleController{repo: repo}
}

type RuleRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content" binding:"required"`
	OrderNumber int    `json:"order_number" binding:"gte=0"`
}

// GetAllRules godoc
// @Summary List rules in display order
// @Tags Rules
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Rule}
// @Router /rules [get]
func (rc *RuleController) GetAllRules(c *gin.Context) {
	rules, err := rc.repo.GetAllRules()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rules")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rules retrieved successfully", rules)
}

// AdminCreateRule godoc
// @Summary Create a rule (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body RuleRequest true "Rule data"
// @Success 201 {object} responses.SuccessResponse{data=Rule}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/rules [post]
func (rc *RuleController) AdminCreateRule(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	rule := Rule{
		Title:       req.Title,
		Content:     req.Content,
		OrderNumber: req.OrderNumber,
	}
	if err := rc.repo.CreateRule(&rule); err != nil {
		responses.InternalServerError(c, "Failed to create rule")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Rule created successfully", rule)
}

// AdminUpdateRule godoc
// @Summary Update a rule (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param rule_id path uint true "Rule ID"
// @Param body body RuleRequest true "Rule data"
// @Success 200 {object} responses.SuccessResponse{data=Rule}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/rules/{rule_id} [put]
func (rc *RuleController) AdminUpdateRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid rule ID")
		return
	}

	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	rule, err := rc.repo.GetRuleByID(uint(ruleID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rule")
		return
	}
	if rule == nil {
		responses.NotFound(c, "Rule")
		return
	}

	rule.Title = req.Title
	rule.Content = req.Content
	rule.OrderNumber = req.OrderNumber
	if err := rc.repo.UpdateRule(rule); err != nil {
		responses.InternalServerError(c, "Failed to update rule")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rule updated successfully", rule)
}

// AdminDeleteRule godoc
// @Summary Delete a rule (admin)
// @Tags Admin
// @Produce json
// @Param rule_id path uint true "Rule ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/rules/{rule_id} [delete]
func (rc *RuleController) AdminDeleteRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid rule ID")
		return
	}

	rule, err := rc.repo.GetRuleByID(uint(ruleID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rule")
		return
	}
	if rule == nil {
		responses.NotFound(c, "Rule")
		return
	}

	if err := rc.repo.DeleteRule(rule.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete rule")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rule deleted", nil)
}
