package dto

// DeactivateResponse represents the response for account deactivation.
type DeactivateResponse struct {
	Modified bool `json:"modified"`
}

// PurgeResponse carries the number of records removed per collection during a
// full account purge.
type PurgeResponse struct {
	Transactions int64 `json:"transactions"`
	Budgets      int64 `json:"budgets"`
	Categories   int64 `json:"categories"`
	Users        int64 `json:"users"`
}
