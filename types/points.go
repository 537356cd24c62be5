package types

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID          int64  `json:"id"`          // 流水唯一ID
	Amount      int64  `json:"amount"`      // 变动数值（如 +25, -50）
	Balance     int64  `json:"balance"`     // 变动后的余额快照
	Description string `json:"description"` // 详细描述（如：成就结算、兑换奖励）
	OrderType   string `json:"order_type"`  // 业务类型：INCOME(收入), EXPENSE(支出)
	Status      int    `json:"status"`      // 状态：0-待入账, 1-已入账
	CreatedAt   string `json:"created_at"`  // 变动时间：格式化字符串
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`     // 积分流水细节
	NextCursor int64         `json:"next_cursor"` // 游标：用于下一页请求
	HasMore    bool          `json:"has_more"`    // 标记是否还有更多数据
}

// PointsAccount 账户概览统计
type PointsAccount struct {
	Balance       int64 `json:"balance"`        // 当前可用积分余额
	TotalEarned   int64 `json:"total_earned"`   // 历史累计获得
	TotalUsed     int64 `json:"total_used"`     // 历史累计使用
	PendingCount  int64 `json:"pending_count"`  // 待入账笔数
	PendingAmount int64 `json:"pending_amount"` // 待入账积分总额
}

// ConsumePointsReq 消费积分请求体（奖励兑换扣减）
type ConsumePointsReq struct {
	UserID     uint64 `json:"user_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"` // 消费数额 (前端传正数)
	ChangeType int    `json:"change_type"` // 缺省按奖励兑换处理
	SourceID   string `json:"source_id" binding:"required"` // 业务关联ID (幂等关键)
	Remark     string `json:"remark"`
}

// ListPointRecordsReq 流水查询参数
type ListPointRecordsReq struct {
	UserID uint64 `form:"user_id" binding:"required"`
	Action uint8  `form:"action" binding:"oneof=0 1 2"` // 0-全部, 1-仅收入, 2-仅支出
	Cursor int64  `form:"cursor"`                       // 分页游标 (ID)
	Limit  int    `form:"limit,default=10"`             // 每页数量
}
