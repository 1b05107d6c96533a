package dataverse

import "context"

// Operation names understood by the connector.
const (
	OpList   = "ListRecordsWithOrganization"
	OpGet    = "GetRecordWithOrganization"
	OpCreate = "CreateRecordWithOrganization"
	OpUpdate = "UpdateRecordWithOrganization"
	OpDelete = "DeleteRecordWithOrganization"
)

// Parameter bag keys for Execute.
const (
	ParamID      = "id"
	ParamRecord  = "record"
	ParamSelect  = "select"
	ParamFilter  = "filter"
	ParamOrderBy = "orderBy"
	ParamTop     = "top"
	ParamSkip    = "skip"
	ParamCount   = "count"
)

// OperationError carries the provider's failure detail. Status follows HTTP
// semantics even when the transport is not HTTP.
type OperationError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// OperationResult is the provider response envelope. Data holds a single
// record (map[string]any) or a page of records ([]map[string]any) depending
// on the operation.
type OperationResult struct {
	Success   bool            `json:"success"`
	Data      any             `json:"data,omitempty"`
	Error     *OperationError `json:"error,omitempty"`
	Count     *int            `json:"count,omitempty"`
	SkipToken string          `json:"skipToken,omitempty"`
}

// Client is the connector the remote data service drives. Implementations own
// the wire protocol and auth handshake; callers only supply the logical table
// name, the operation, and a parameter bag.
type Client interface {
	Execute(ctx context.Context, table, operation string, params map[string]any) (*OperationResult, error)
}
