package handler

import (
	"HikariCha/models"
	"HikariCha/pkg/context"
	"HikariCha/pkg/response"
	"HikariCha/service"
	"HikariCha/types"

	"github.com/gin-gonic/gin"
)

type Point struct {
	PointService service.IPointService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/points")
	g.GET("/balance", context.Wrap(p.Balance))
	g.GET("/records", context.Wrap(p.GetRecords))
	g.POST("/consume", context.Wrap(p.Consume))
}

func (p *Point) Balance(c *gin.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	account, err := p.PointService.GetAccountDashboard(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, account)
	return nil
}

func (p *Point) GetRecords(c *gin.Context) error {
	var req types.ListPointRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(400, "参数错误: "+err.Error())
	}

	action := ""
	switch req.Action {
	case 1:
		action = "income"
	case 2:
		action = "expense"
	}

	resp, err := p.PointService.ListPointRecords(c.Request.Context(), req.UserID, action, req.Cursor, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Consume 奖励兑换扣减
func (p *Point) Consume(c *gin.Context) error {
	var req types.ConsumePointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, "参数错误: "+err.Error())
	}
	if req.ChangeType == 0 {
		req.ChangeType = models.TypeRewardRedeem
	}

	account, err := p.PointService.ConsumePoints(c.Request.Context(), req.UserID, req.Amount, req.ChangeType, req.SourceID, req.Remark)
	if err != nil {
		return err
	}
	response.Success(c, account)
	return nil
}
