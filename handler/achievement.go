package handler

import (
	"HikariCha/catalog"
	"HikariCha/pkg/context"
	"HikariCha/pkg/response"
	"HikariCha/service"
	"HikariCha/types"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Achievement struct {
	AchievementService service.IAchievementService
	ClaimService       service.IClaimService
	StatsService       service.IStatsService
}

func (a *Achievement) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/achievements")
	g.POST("/track", context.Wrap(a.Track))
	g.POST("/evaluate", context.Wrap(a.Evaluate))
	g.GET("/progress", context.Wrap(a.Progress))
	g.GET("/claimable", context.Wrap(a.Claimable))
	g.POST("/claim", context.Wrap(a.Claim))
	g.GET("/claimed", context.Wrap(a.Claimed))
	g.GET("/stats", context.Wrap(a.Stats))
	g.GET("/activities", context.Wrap(a.Activities))
}

// Track 行为上报：成就引擎出错不影响响应成功，错误以标记形式返回
func (a *Achievement) Track(c *gin.Context) error {
	var req types.TrackActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, "参数错误: "+err.Error())
	}

	resp, err := a.AchievementService.RecordActivity(c.Request.Context(), req.UserID, req.Action, req.DurationMinutes)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Evaluate 直接评估：业务方自己维护计数时的入口，参数错误直接报错
func (a *Achievement) Evaluate(c *gin.Context) error {
	var req types.EvaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, "参数错误: "+err.Error())
	}

	result, err := a.AchievementService.Evaluate(c.Request.Context(), req.UserID, catalog.Type(req.Type), req.Value)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (a *Achievement) Progress(c *gin.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	snapshot, err := a.AchievementService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, snapshot)
	return nil
}

func (a *Achievement) Claimable(c *gin.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	list, err := a.ClaimService.ListClaimable(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"claimable": list, "count": len(list)})
	return nil
}

func (a *Achievement) Claim(c *gin.Context) error {
	var req types.ClaimReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, "参数错误: "+err.Error())
	}

	result, err := a.ClaimService.Claim(c.Request.Context(), req.UserID, req.AchievementID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

// Claimed 领奖历史
func (a *Achievement) Claimed(c *gin.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := a.ClaimService.ClaimHistory(c.Request.Context(), userID, limit)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"claimed": list, "count": len(list)})
	return nil
}

// Activities 成就活动流水；带 since 参数时按时间范围查询
func (a *Achievement) Activities(c *gin.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	if raw := c.Query("since"); raw != "" {
		since, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return response.NewError(400, "since 参数错误，需要 RFC3339 时间")
		}
		resp, err := a.AchievementService.ListActivitiesSince(c.Request.Context(), userID, since)
		if err != nil {
			return err
		}
		response.Success(c, resp)
		return nil
	}

	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := a.AchievementService.ListActivities(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Stats 原始计数快照
func (a *Achievement) Stats(c *gin.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	snap, err := a.StatsService.Snapshot(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

func queryUserID(c *gin.Context) (uint64, error) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return 0, response.NewError(400, "user_id 参数错误")
	}
	return userID, nil
}
