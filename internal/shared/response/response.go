package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// bulatkan ke atas: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// Paginate returns the [start:end) window of a slice of length n.
func Paginate(n, page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start := (page - 1) * pageSize
	if start > n {
		start = n
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}

// Success writes {"message": message, key: data, "meta": meta}.
// An empty key omits the entity field.
func Success(c *gin.Context, status int, message string, key string, data any, meta *PaginationMeta) {
	body := gin.H{"message": message}
	if key != "" {
		body[key] = data
	}
	if meta != nil {
		body["meta"] = meta
	}
	c.JSON(status, body)
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	body := gin.H{
		"message": message,
		"code":    errorCode,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
