package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// PageParams are the offset/limit query parameters shared by list endpoints.
type PageParams struct {
	From int `form:"from,default=0" binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1"`
}
