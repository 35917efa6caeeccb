package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/dto"
	"github.com/vthang/Skillforge/internal/service"
)

type CandidateController struct {
	assessmentService   service.AssessmentService
	attemptService      service.AttemptService
	executionService    service.ExecutionService
	notificationService service.NotificationService
}

func NewCandidateController(
	assessmentService service.AssessmentService,
	attemptService service.AttemptService,
	executionService service.ExecutionService,
	notificationService service.NotificationService,
) *CandidateController {
	return &CandidateController{
		assessmentService:   assessmentService,
		attemptService:      attemptService,
		executionService:    executionService,
		notificationService: notificationService,
	}
}

// ListAssessments godoc
// @Summary (Candidate) List all assessments
// @Description Get a summary list of assessments with their question counts.
// @Tags Candidate - Assessments & Attempts
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [get]
func (c *CandidateController) ListAssessments(ctx *gin.Context) {
	assessments, err := c.assessmentService.ListAssessments()
	if err != nil {
		log.Error().Err(err).Msg("ListAssessments: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve assessments", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// GetAssessment godoc
// @Summary (Candidate) Get an assessment with its questions
// @Description Get an assessment and its questions in order. Answer keys, reference solutions, and expected outputs are never included.
// @Tags Candidate - Assessments & Attempts
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{assessment_id} [get]
func (c *CandidateController) GetAssessment(ctx *gin.Context) {
	id, ok := pathID(ctx, "assessment_id")
	if !ok {
		return
	}
	assessment, err := c.assessmentService.GetAssessment(id)
	if err != nil {
		log.Warn().Err(err).Uint("assessmentID", id).Msg("GetAssessment: Not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Assessment not found"})
		return
	}
	ctx.JSON(http.StatusOK, assessment)
}

// StartAttempt godoc
// @Summary (Candidate) Start a new attempt
// @Description Open a new attempt on an assessment. Rejected when the assessment is closed, the candidate already has an attempt in progress, or the attempt limit is reached.
// @Tags Candidate - Assessments & Attempts
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param start_data body dto.StartAttemptRequest true "Candidate starting the attempt"
// @Success 201 {object} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Assessment closed, attempt in progress, or limit reached"
// @Router /assessments/{assessment_id}/attempts [post]
func (c *CandidateController) StartAttempt(ctx *gin.Context) {
	assessmentID, ok := pathID(ctx, "assessment_id")
	if !ok {
		return
	}
	var req dto.StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	attempt, err := c.attemptService.StartAttempt(assessmentID, &req)
	if err != nil {
		respondAttemptError(ctx, err, "Failed to start attempt")
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// SubmitAnswer godoc
// @Summary (Candidate) Save an answer
// @Description Save or overwrite the answer to one question of an in-progress attempt. Coding answers are executed against the question's test cases immediately.
// @Tags Candidate - Assessments & Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param answer body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} dto.AnswerFeedbackDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or question not part of the assessment"
// @Failure 409 {object} dto.ErrorResponse "Attempt is not in progress"
// @Router /attempts/{attempt_id}/answers [post]
func (c *CandidateController) SubmitAnswer(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	feedback, err := c.attemptService.SubmitAnswer(ctx.Request.Context(), attemptID, &req)
	if err != nil {
		respondAttemptError(ctx, err, "Failed to save answer")
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// SubmitAttempt godoc
// @Summary (Candidate) Submit an attempt for scoring
// @Description Finish an in-progress attempt. All stored answers are auto-scored, the time spent is derived from the server clock, and the attempt becomes completed.
// @Tags Candidate - Assessments & Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 409 {object} dto.ErrorResponse "Attempt is not in progress"
// @Router /attempts/{attempt_id}/submit [post]
func (c *CandidateController) SubmitAttempt(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attempt_id")
	if !ok {
		return
	}

	summary, err := c.attemptService.SubmitAttempt(attemptID)
	if err != nil {
		respondAttemptError(ctx, err, "Failed to submit attempt")
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetAttemptDetails godoc
// @Summary (Candidate) Get details of an attempt
// @Description Retrieve one attempt with all saved answers and their grading state.
// @Tags Candidate - Assessments & Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *CandidateController) GetAttemptDetails(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attempt_id")
	if !ok {
		return
	}
	detail, err := c.attemptService.GetAttemptDetails(attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptDetails: Not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Attempt not found"})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetMyAttempts godoc
// @Summary (Candidate) List a candidate's attempts on an assessment
// @Description Retrieve every attempt the candidate made on the assessment, oldest first.
// @Tags Candidate - Assessments & Attempts
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param candidate_id query int true "Candidate ID (temporary, will come from the auth token)"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{assessment_id}/my-attempts [get]
func (c *CandidateController) GetMyAttempts(ctx *gin.Context) {
	assessmentID, ok := pathID(ctx, "assessment_id")
	if !ok {
		return
	}
	candidateIDStr := ctx.Query("candidate_id")
	candidateID, err := strconv.ParseUint(candidateIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid candidate_id format in query"})
		return
	}

	attempts, err := c.attemptService.GetCandidateAttempts(uint(candidateID), assessmentID)
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Msg("GetMyAttempts: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// ExecuteCode godoc
// @Summary (Candidate) Run code in the sandbox
// @Description Execute ad hoc code. With test cases the run is graded per case; without, the code runs once against the given input and the raw output is returned.
// @Tags Candidate - Code Execution
// @Accept json
// @Produce json
// @Param execution body dto.ExecuteCodeRequest true "Code, language, and optional input or test cases"
// @Success 200 {object} dto.ExecutionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unsupported language"
// @Failure 500 {object} dto.ErrorResponse "Sandbox failure"
// @Router /execute [post]
func (c *CandidateController) ExecuteCode(ctx *gin.Context) {
	var req dto.ExecuteCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ExecuteCode: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.executionService.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("language", req.Language).Msg("ExecuteCode: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to execute code", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetNotifications godoc
// @Summary (Candidate) List notifications
// @Description Retrieve the user's notifications, newest first, e.g. released review results.
// @Tags Candidate - Notifications
// @Produce json
// @Param user_id query int true "User ID (temporary, will come from the auth token)"
// @Success 200 {array} model.Notification
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications [get]
func (c *CandidateController) GetNotifications(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format in query"})
		return
	}
	notifications, err := c.notificationService.ListForUser(uint(userID))
	if err != nil {
		log.Error().Err(err).Uint64("userID", userID).Msg("GetNotifications: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve notifications", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// respondAttemptError maps the attempt lifecycle's sentinel errors onto status
// codes; anything unrecognized is a 500.
func respondAttemptError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrAssessmentClosed),
		errors.Is(err, service.ErrAttemptLimitReached),
		errors.Is(err, service.ErrAttemptInProgress),
		errors.Is(err, service.ErrAttemptNotInProgress):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrQuestionNotInAssessment):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg(fallback)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}
