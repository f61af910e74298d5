package dto

type AddWatchedRequest struct {
	Email   string   `json:"email" binding:"required,email"`
	MovieID string   `json:"movie_id" binding:"required"`
	Rating  *float64 `json:"rating"`
}

type UpdateRatingRequest struct {
	Email   string   `json:"email" binding:"required,email"`
	MovieID string   `json:"movie_id" binding:"required"`
	Rating  *float64 `json:"rating" binding:"required"`
}

type RemoveMovieRequest struct {
	Email   string `json:"email" binding:"required,email"`
	MovieID string `json:"movie_id" binding:"required"`
}

type AddWatchLaterRequest struct {
	Email   string `json:"email" binding:"required,email"`
	MovieID string `json:"movie_id" binding:"required"`
}

type ExportRequest struct {
	Email string `json:"email" binding:"required,email"`
}
