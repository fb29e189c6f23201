package dto

// ProfitLossParams defines the required range of a profit and loss statement.
type ProfitLossParams struct {
	DateFrom string `form:"dateFrom" binding:"required"`
	DateTo   string `form:"dateTo" binding:"required"`
}

// ActivityParams defines query parameters for the activity feed.
type ActivityParams struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// UpsertSettingRequest sets the value of a system setting.
type UpsertSettingRequest struct {
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}
