package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/dto"
	"github.com/vthang/Skillforge/internal/service"
)

type RecruiterController struct {
	assessmentService service.AssessmentService
	reviewService     service.ReviewService
}

func NewRecruiterController(
	assessmentService service.AssessmentService,
	reviewService service.ReviewService,
) *RecruiterController {
	return &RecruiterController{
		assessmentService: assessmentService,
		reviewService:     reviewService,
	}
}

// CreateAssessment godoc
// @Summary (Recruiter) Create an assessment
// @Description Create an assessment, optionally with its questions. Question payloads are validated per type.
// @Tags Recruiter - Assessments & Reviews
// @Accept json
// @Produce json
// @Param assessment body dto.CreateAssessmentRequest true "Assessment data including optional questions"
// @Success 201 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/assessments [post]
func (c *RecruiterController) CreateAssessment(ctx *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateAssessment: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	assessment, err := c.assessmentService.CreateAssessment(&req)
	if err != nil {
		log.Error().Err(err).Msg("CreateAssessment: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create assessment", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, assessment)
}

// ListAssessmentAttempts godoc
// @Summary (Recruiter) List all attempts on an assessment
// @Description Retrieve every candidate attempt on the assessment, newest first.
// @Tags Recruiter - Assessments & Reviews
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /admin/assessments/{assessment_id}/attempts [get]
func (c *RecruiterController) ListAssessmentAttempts(ctx *gin.Context) {
	assessmentID, ok := pathID(ctx, "assessment_id")
	if !ok {
		return
	}
	attempts, err := c.assessmentService.ListAttempts(assessmentID)
	if err != nil {
		log.Warn().Err(err).Uint("assessmentID", assessmentID).Msg("ListAssessmentAttempts: Not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Assessment not found"})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// OpenReview godoc
// @Summary (Recruiter) Open a review for a completed attempt
// @Description Open the attempt's review, creating it with an auto-grade snapshot on first open. Reopening returns the existing review unchanged.
// @Tags Recruiter - Assessments & Reviews
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param review_data body dto.OpenReviewRequest true "Reviewer opening the review"
// @Success 200 {object} dto.ReviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Attempt is not completed"
// @Router /admin/attempts/{attempt_id}/review [post]
func (c *RecruiterController) OpenReview(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.OpenReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("OpenReview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	review, err := c.reviewService.OpenReview(attemptID, &req)
	if err != nil {
		respondReviewError(ctx, err, "Failed to open review")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// GetReview godoc
// @Summary (Recruiter) Get a review
// @Description Retrieve a review with its per-question snapshot, manual overrides, and resolved final scores.
// @Tags Recruiter - Assessments & Reviews
// @Produce json
// @Param review_id path int true "Review ID"
// @Success 200 {object} dto.ReviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Review ID format"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /admin/reviews/{review_id} [get]
func (c *RecruiterController) GetReview(ctx *gin.Context) {
	reviewID, ok := pathID(ctx, "review_id")
	if !ok {
		return
	}
	review, err := c.reviewService.GetReview(reviewID)
	if err != nil {
		log.Warn().Err(err).Uint("reviewID", reviewID).Msg("GetReview: Not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Review not found"})
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// EditReviewAnswer godoc
// @Summary (Recruiter) Override one answer's grade
// @Description While the review is pending, set a manual score, correctness flag, feedback, or notes on one answer. Manual scores are clamped to the question's maximum.
// @Tags Recruiter - Assessments & Reviews
// @Accept json
// @Produce json
// @Param review_id path int true "Review ID"
// @Param question_id path int true "Question ID"
// @Param override body dto.EditReviewAnswerRequest true "Manual override fields"
// @Success 200 {object} dto.ReviewAnswerDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Review is not pending"
// @Router /admin/reviews/{review_id}/answers/{question_id} [put]
func (c *RecruiterController) EditReviewAnswer(ctx *gin.Context) {
	reviewID, ok := pathID(ctx, "review_id")
	if !ok {
		return
	}
	questionID, ok := pathID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.EditReviewAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("EditReviewAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.reviewService.EditAnswer(reviewID, questionID, &req)
	if err != nil {
		respondReviewError(ctx, err, "Failed to edit review answer")
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// CompleteReview godoc
// @Summary (Recruiter) Complete a review
// @Description Lock the review, recompute the overall score from the final per-answer scores, and overwrite the attempt's score.
// @Tags Recruiter - Assessments & Reviews
// @Accept json
// @Produce json
// @Param review_id path int true "Review ID"
// @Param completion body dto.CompleteReviewRequest true "Overall feedback"
// @Success 200 {object} dto.ReviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Review is not pending"
// @Router /admin/reviews/{review_id}/complete [post]
func (c *RecruiterController) CompleteReview(ctx *gin.Context) {
	reviewID, ok := pathID(ctx, "review_id")
	if !ok {
		return
	}
	var req dto.CompleteReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CompleteReview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	review, err := c.reviewService.CompleteReview(reviewID, &req)
	if err != nil {
		respondReviewError(ctx, err, "Failed to complete review")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// ReleaseReview godoc
// @Summary (Recruiter) Release a completed review
// @Description Notify the candidate that results are available. Releasing again re-sends the notification.
// @Tags Recruiter - Assessments & Reviews
// @Produce json
// @Param review_id path int true "Review ID"
// @Success 200 {object} dto.ReviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Review ID format"
// @Failure 409 {object} dto.ErrorResponse "Review is not completed"
// @Router /admin/reviews/{review_id}/release [post]
func (c *RecruiterController) ReleaseReview(ctx *gin.Context) {
	reviewID, ok := pathID(ctx, "review_id")
	if !ok {
		return
	}
	review, err := c.reviewService.ReleaseReview(reviewID)
	if err != nil {
		respondReviewError(ctx, err, "Failed to release review")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func respondReviewError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrAttemptNotCompleted),
		errors.Is(err, service.ErrReviewNotPending),
		errors.Is(err, service.ErrReviewNotCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg(fallback)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}
