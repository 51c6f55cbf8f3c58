package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maintdesk/internal/application/ticket/usecases"
	"maintdesk/internal/interfaces/http/middleware"
	"maintdesk/internal/shared/logger"
	"maintdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	getTicketUC      usecases.GetTicketExecutor
	completeTicketUC usecases.CompleteTicketExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	uploadUC         usecases.UploadAttachmentExecutor
	downloadUC       usecases.DownloadAttachmentExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	completeTicketUC usecases.CompleteTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	uploadUC usecases.UploadAttachmentExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		listTicketsUC:    listTicketsUC,
		getTicketUC:      getTicketUC,
		completeTicketUC: completeTicketUC,
		deleteTicketUC:   deleteTicketUC,
		uploadUC:         uploadUC,
		downloadUC:       downloadUC,
		logger:           log,
	}
}

// ListTickets handles GET /api/maintenance
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTicket handles POST /api/maintenance
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := currentUserID(c)
	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /api/maintenance/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CompleteTicket handles POST /api/maintenance/:id/complete
func (h *TicketHandler) CompleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for complete ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CompleteTicketCommand{
		TicketID:          ticketID,
		ResolutionContent: req.ResolutionContent,
		AssigneeUserIDs:   req.AssigneeUserIDs,
		CompletedBy:       currentUserID(c),
	}

	result, err := h.completeTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket completed successfully", result)
}

// DeleteTicket handles DELETE /api/maintenance/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID := currentUserID(c)
	if userID == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated user")
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID:  ticketID,
		DeletedBy: *userID,
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// UploadAttachment handles POST /api/maintenance/:id/attachment
func (h *TicketHandler) UploadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer src.Close()

	userID := currentUserID(c)
	cmd := usecases.UploadAttachmentCommand{
		TicketID:    ticketID,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Body:        src,
	}
	if userID != nil {
		cmd.UploadedBy = *userID
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment uploaded successfully", result)
}

// DownloadAttachment handles GET /api/maintenance/:id/attachment/download
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.MIME != "" {
		c.Header("Content-Type", result.MIME)
	}
	c.FileAttachment(result.Path, result.Filename)
}

func currentUserID(c *gin.Context) *uint {
	value, exists := c.Get(middleware.ContextKeyUserID)
	if !exists {
		return nil
	}
	userID, ok := value.(uint)
	if !ok {
		return nil
	}
	return &userID
}
