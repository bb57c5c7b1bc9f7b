package http

import "time"

// Response is the success envelope shared by every endpoint. Rejected orders
// travel inside it: a rejection is a recorded outcome, not an HTTP error.
type Response struct {
	Success  bool        `json:"success"`
	Msg      string      `json:"msg"`
	Result   interface{} `json:"result"`
	Metadata interface{} `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Success bool      `json:"success"`
	Result  ErrorBody `json:"result"`
}

type ErrorBody struct {
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

type PagingMetadata struct {
	TotalCount    int64 `json:"totalCount"`
	NumberOfPages int64 `json:"numberOfPages"`
	PageSize      int   `json:"pageSize"`
	CurrentPage   int   `json:"currentPage"`
	NextPage      *int  `json:"nextPage"`
}

func successResponse(result interface{}) Response {
	return Response{
		Success: true,
		Result:  result,
	}
}

func successResponseWithMetadata(result, metadata interface{}) Response {
	return Response{
		Success:  true,
		Result:   result,
		Metadata: metadata,
	}
}

func errorResponse(message, code string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Result: ErrorBody{
			Message:   message,
			Code:      code,
			Timestamp: time.Now().UTC(),
		},
	}
}

func pagingMetadata(currentPage int, count int64, pageSize int) PagingMetadata {
	if pageSize < 1 {
		pageSize = 1
	}

	numberOfPages := count / int64(pageSize)
	if count%int64(pageSize) != 0 {
		numberOfPages++
	}

	var nextPage *int
	if int64(currentPage) < numberOfPages {
		n := currentPage + 1
		nextPage = &n
	}

	return PagingMetadata{
		TotalCount:    count,
		NumberOfPages: numberOfPages,
		PageSize:      pageSize,
		CurrentPage:   currentPage,
		NextPage:      nextPage,
	}
}
