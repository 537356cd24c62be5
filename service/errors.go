package service

import "HikariCha/pkg/response"

// 成就引擎错误分类；错误码 404xx-资源不存在 400xx-业务校验 500xx-系统
var (
	ErrInvalidType        = response.NewError(40401, "成就类型不存在")
	ErrInvalidValue       = response.NewError(40001, "计数值非法")
	ErrNotFound           = response.NewError(40402, "记录不存在")
	ErrNotCompleted       = response.NewError(40003, "成就等级尚未完成")
	ErrAlreadyClaimed     = response.NewError(40004, "奖励已领取，请勿重复操作")
	ErrTransactionFailure = response.NewError(50001, "结算事务失败，请重试") // 可重试
)
